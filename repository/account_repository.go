package repository

import (
	"foodorder/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository only talks to the accounts table.
type AccountRepository struct {
	DB *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) WithTx(tx *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: tx}
}

func (r *AccountRepository) FindByUsername(username string) (*entity.Account, error) {
	var a entity.Account
	if err := r.DB.Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) Exists(username string) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Account{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the account and reports false when the username is taken.
func (r *AccountRepository) Create(a *entity.Account) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(a)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *AccountRepository) Update(username string, updates map[string]any) error {
	return r.DB.Model(&entity.Account{}).Where("username = ?", username).Updates(updates).Error
}
