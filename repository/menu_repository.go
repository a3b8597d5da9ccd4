package repository

import (
	"foodorder/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) WithTx(tx *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: tx}
}

// FindByRestaurant returns the non-deleted menu of a restaurant.
func (r *MenuRepository) FindByRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("restaurant_id = ? AND deleted = ?", restID, false).
		Order("id").
		Find(&items).Error
	return items, err
}

// FindByID includes deleted items; order lines still point at them.
func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) FindByIDs(ids []uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if len(ids) == 0 {
		return items, nil
	}
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Omit(clause.Associations).Create(item).Error
}

// Update is scoped to the restaurant so an owner cannot edit another
// restaurant's item by id.
func (r *MenuRepository) Update(restID, itemID uint, name string, price int64) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND restaurant_id = ? AND deleted = ?", itemID, restID, false).
		Updates(map[string]any{"name": name, "price": price})
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) SoftDelete(restID, itemID uint) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND restaurant_id = ?", itemID, restID).
		Update("deleted", true)
	return res.RowsAffected, res.Error
}
