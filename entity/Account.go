package entity

import "time"

// Account is keyed by username; the app never deletes accounts, the store
// cascades memberships and orders if one is removed by hand.
type Account struct {
	Username     string `gorm:"primaryKey;size:24" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Address      string `json:"address"`

	// billing
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCode   string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	Memberships []RestaurantEmployee `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"-"`
	Orders      []Order              `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"-"`
}
