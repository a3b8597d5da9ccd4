package entity

// RestaurantEmployee is the (restaurant, account) membership row.
type RestaurantEmployee struct {
	RestaurantID uint   `gorm:"primaryKey;autoIncrement:false" json:"restaurantId"`
	Username     string `gorm:"primaryKey;size:24" json:"username"`
}
