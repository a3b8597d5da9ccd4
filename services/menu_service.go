package services

import (
	"foodorder/entity"
	"foodorder/repository"
	"foodorder/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type MenuService struct {
	DB       *gorm.DB
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
	Roles    *RoleService
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository, restRepo *repository.RestaurantRepository, roles *RoleService) *MenuService {
	return &MenuService{DB: db, Repo: repo, RestRepo: restRepo, Roles: roles}
}

func (s *MenuService) ListItems(restID uint) ([]entity.MenuItem, error) {
	return s.Repo.FindByRestaurant(restID)
}

func parseItem(name, price string) (string, int64, error) {
	n, err := utils.ValidateItemName(name)
	if err != nil {
		return "", 0, validation("%s", err.Error())
	}
	p, err := utils.ParsePrice(price)
	if err != nil {
		return "", 0, validation("%s", err.Error())
	}
	return n, p, nil
}

// requireOwner loads the live restaurant and checks the requester owns it.
func requireOwner(tx *gorm.DB, restRepo *repository.RestaurantRepository, roles *RoleService, restID uint, username string) error {
	if _, err := restRepo.WithTx(tx).FindByID(restID); err != nil {
		if isNotFound(err) {
			return notFound("restaurant does not exist or has been deleted")
		}
		return err
	}
	caps, err := roles.WithTx(tx).ResolveRestaurant(restID, username)
	if err != nil {
		return err
	}
	if !caps.IsOwner {
		return forbidden("not authorized to perform this action")
	}
	return nil
}

func (s *MenuService) AddItem(restID uint, name, price, username string) (*entity.MenuItem, error) {
	n, p, err := parseItem(name, price)
	if err != nil {
		return nil, err
	}

	item := entity.MenuItem{RestaurantID: restID, Name: n, Price: p}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireOwner(tx, s.RestRepo, s.Roles, restID, username); err != nil {
			return err
		}
		return s.Repo.WithTx(tx).Create(&item)
	})
	if err != nil {
		return nil, err
	}
	log.Info().Uint("restaurant_id", restID).Uint("item_id", item.ID).Int64("price", p).Msg("menu item added")
	return &item, nil
}

// UpdateItem edits a live item in place. Paid order lines keep the price
// stamped when they were charged.
func (s *MenuService) UpdateItem(restID, itemID uint, name, price, username string) error {
	n, p, err := parseItem(name, price)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireOwner(tx, s.RestRepo, s.Roles, restID, username); err != nil {
			return err
		}
		affected, err := s.Repo.WithTx(tx).Update(restID, itemID, n, p)
		if err != nil {
			return err
		}
		if affected == 0 {
			return notFound("item %d does not exist", itemID)
		}
		return nil
	})
}

func (s *MenuService) DeleteItem(restID, itemID uint, username string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireOwner(tx, s.RestRepo, s.Roles, restID, username); err != nil {
			return err
		}
		affected, err := s.Repo.WithTx(tx).SoftDelete(restID, itemID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return notFound("item %d does not exist", itemID)
		}
		return nil
	})
}
