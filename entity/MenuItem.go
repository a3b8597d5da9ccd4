package entity

import "time"

// MenuItem prices are integer cents. Deleted items stay referenced by
// existing order lines.
type MenuItem struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	RestaurantID uint   `gorm:"not null;index" json:"restaurantId"`
	Name         string `gorm:"not null" json:"name"`
	Price        int64  `gorm:"not null" json:"price"`
	Deleted      bool   `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Restaurant Restaurant `json:"-"`
}
