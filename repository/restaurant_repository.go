package repository

import (
	"foodorder/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) WithTx(tx *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: tx}
}

// FindAll lists restaurants that are not deleted.
func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Where("deleted = ?", false).Order("id").Find(&rests).Error
	return rests, err
}

// FindByID returns a live restaurant; deleted ones are not found.
func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("id = ? AND deleted = ?", id, false).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Omit(clause.Associations).Create(rest).Error
}

func (r *RestaurantRepository) UpdateName(id uint, name string) error {
	return r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("name", name).Error
}

func (r *RestaurantRepository) SoftDelete(id uint) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Update("deleted", true).Error
}

// IsOwnedBy checks ownership regardless of the deleted flag.
func (r *RestaurantRepository) IsOwnedBy(restID uint, username string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner = ?", restID, username).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Employees ----------------

func (r *RestaurantRepository) IsEmployee(restID uint, username string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.RestaurantEmployee{}).
		Where("restaurant_id = ? AND username = ?", restID, username).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) Employees(restID uint) ([]string, error) {
	var names []string
	err := r.DB.Model(&entity.RestaurantEmployee{}).
		Where("restaurant_id = ?", restID).
		Order("username").
		Pluck("username", &names).Error
	return names, err
}

// AddEmployee is idempotent.
func (r *RestaurantRepository) AddEmployee(restID uint, username string) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entity.RestaurantEmployee{RestaurantID: restID, Username: username}).Error
}

func (r *RestaurantRepository) RemoveEmployee(restID uint, username string) error {
	return r.DB.Where("restaurant_id = ? AND username = ?", restID, username).
		Delete(&entity.RestaurantEmployee{}).Error
}
