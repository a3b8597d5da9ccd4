package entity

type OrderStatus string

const (
	// created by the customer, still editable, not visible to the restaurant
	OrderPending OrderStatus = "PENDING"
	// paid, waiting for the restaurant to accept
	OrderPaid OrderStatus = "PAID"
	// accepted by the restaurant, can no longer be cancelled
	OrderAccepted OrderStatus = "ACCEPTED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderAccepted, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}
