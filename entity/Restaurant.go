package entity

import "time"

type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Owner   string `gorm:"not null;index" json:"owner"`
	Name    string `gorm:"not null" json:"name"`
	Deleted bool   `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	OwnerAccount Account              `gorm:"foreignKey:Owner;references:Username;constraint:OnDelete:CASCADE" json:"-"`
	MenuItems    []MenuItem           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Employees    []RestaurantEmployee `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders       []Order              `json:"-"`
}
