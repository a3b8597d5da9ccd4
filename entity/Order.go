package entity

import "time"

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Date         time.Time   `gorm:"not null" json:"date"`
	RestaurantID uint        `gorm:"not null;index" json:"restaurantId"`
	Username     string      `gorm:"not null;index;size:24" json:"username"`
	Address      string      `json:"address"` // set when paid
	Total        int64       `gorm:"not null" json:"total"`
	Status       OrderStatus `gorm:"not null;size:16;index" json:"status"`

	Restaurant Restaurant  `json:"-"`
	Items      []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
