package entity

// OrderItem is one line of the menu snapshot taken when the order was
// created. Quantity 0 means listed but not selected. UnitPrice and ItemName
// are stamped at payment.
type OrderItem struct {
	OrderID   uint   `gorm:"primaryKey;autoIncrement:false" json:"orderId"`
	ItemID    uint   `gorm:"primaryKey;autoIncrement:false" json:"itemId"`
	Quantity  int    `gorm:"not null" json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	ItemName  string `json:"itemName"`

	Item MenuItem `gorm:"foreignKey:ItemID" json:"-"`
}
