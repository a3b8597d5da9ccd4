package services

import (
	"foodorder/entity"
	"foodorder/repository"
	"foodorder/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type RestaurantService struct {
	DB          *gorm.DB
	Repo        *repository.RestaurantRepository
	AccountRepo *repository.AccountRepository
	Roles       *RoleService
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, accountRepo *repository.AccountRepository, roles *RoleService) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, AccountRepo: accountRepo, Roles: roles}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("restaurant %d does not exist", id)
		}
		return nil, err
	}
	return rest, nil
}

// CreateRestaurant also enrols the owner as the first employee.
func (s *RestaurantService) CreateRestaurant(name, owner string) (*entity.Restaurant, error) {
	if owner == "" {
		return nil, forbidden("not logged in")
	}
	n, err := utils.ValidateRestaurantName(name)
	if err != nil {
		return nil, validation("%s", err.Error())
	}

	rest := entity.Restaurant{Owner: owner, Name: n}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		if err := repo.Create(&rest); err != nil {
			return err
		}
		return repo.AddEmployee(rest.ID, owner)
	})
	if err != nil {
		return nil, err
	}
	log.Info().Uint("restaurant_id", rest.ID).Str("owner", owner).Msg("restaurant created")
	return &rest, nil
}

func (s *RestaurantService) RenameRestaurant(id uint, name, username string) error {
	n, err := utils.ValidateRestaurantName(name)
	if err != nil {
		return validation("%s", err.Error())
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireOwner(tx, s.Repo, s.Roles, id, username); err != nil {
			return err
		}
		return s.Repo.WithTx(tx).UpdateName(id, n)
	})
}

// DeleteRestaurant hides the restaurant and its menu; its orders stay
// queryable.
func (s *RestaurantService) DeleteRestaurant(id uint, username string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireOwner(tx, s.Repo, s.Roles, id, username); err != nil {
			return err
		}
		return s.Repo.WithTx(tx).SoftDelete(id)
	})
	if err == nil {
		log.Info().Uint("restaurant_id", id).Str("owner", username).Msg("restaurant deleted")
	}
	return err
}

func (s *RestaurantService) Employees(id uint, username string) ([]string, error) {
	caps, err := s.Roles.ResolveRestaurant(id, username)
	if err != nil {
		return nil, err
	}
	if !caps.IsOwner {
		return nil, forbidden("not the owner")
	}
	return s.Repo.Employees(id)
}

func (s *RestaurantService) AddEmployee(id uint, employee, username string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireOwner(tx, s.Repo, s.Roles, id, username); err != nil {
			return err
		}
		ok, err := s.AccountRepo.WithTx(tx).Exists(employee)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUserNotExist
		}
		return s.Repo.WithTx(tx).AddEmployee(id, employee)
	})
}

func (s *RestaurantService) RemoveEmployee(id uint, employee, username string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireOwner(tx, s.Repo, s.Roles, id, username); err != nil {
			return err
		}
		return s.Repo.WithTx(tx).RemoveEmployee(id, employee)
	})
}
