package repository

import (
	"time"

	"foodorder/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: tx}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(o *entity.Order) error {
	return r.DB.Omit(clause.Associations).Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderSummary is one row of an order list, with the restaurant name joined in.
type OrderSummary struct {
	ID             uint               `json:"id"`
	Date           time.Time          `json:"date"`
	RestaurantID   uint               `json:"restaurantId"`
	RestaurantName string             `json:"restaurantName"`
	Username       string             `json:"username"`
	Address        string             `json:"address"`
	Total          int64              `json:"total"`
	Status         entity.OrderStatus `json:"status"`
}

func (r *OrderRepository) summaries() *gorm.DB {
	return r.DB.Table("orders AS o").
		Select("o.id, o.date, o.restaurant_id, r.name AS restaurant_name, o.username, o.address, o.total, o.status").
		Joins("LEFT JOIN restaurants r ON r.id = o.restaurant_id")
}

func (r *OrderRepository) ListOrdersForUser(username string) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.summaries().
		Where("o.username = ?", username).
		Order("o.id DESC").
		Scan(&out).Error
	return out, err
}

// ListOrdersForRestaurant returns orders of the restaurant in the given states.
func (r *OrderRepository) ListOrdersForRestaurant(restID uint, statuses ...entity.OrderStatus) ([]OrderSummary, error) {
	var out []OrderSummary
	q := r.summaries().Where("o.restaurant_id = ?", restID)
	if len(statuses) > 0 {
		q = q.Where("o.status IN ?", statuses)
	}
	err := q.Order("o.id").Scan(&out).Error
	return out, err
}

// UpdateStatusGuard moves the order from one status to another only if it is
// still in the expected status. Zero rows affected means someone got there
// first or the precondition never held.
func (r *OrderRepository) UpdateStatusGuard(orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// MarkPaid records the billing snapshot and moves PENDING -> PAID in one
// guarded write.
func (r *OrderRepository) MarkPaid(orderID uint, address string, total int64) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderPending).
		Updates(map[string]any{
			"address": address,
			"total":   total,
			"status":  entity.OrderPaid,
		})
	return res.RowsAffected, res.Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItems(items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.Omit(clause.Associations).Create(&items).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("Item").
		Where("order_id = ?", orderID).
		Order("item_id").
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetOrderItem(orderID, itemID uint) (*entity.OrderItem, error) {
	var it entity.OrderItem
	if err := r.DB.Preload("Item").
		Where("order_id = ? AND item_id = ?", orderID, itemID).
		First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// AdjustQuantity adds delta to the line, never going below zero.
func (r *OrderRepository) AdjustQuantity(orderID, itemID uint, delta int) error {
	return r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ? AND item_id = ?", orderID, itemID).
		Update("quantity", gorm.Expr("CASE WHEN quantity + ? < 0 THEN 0 ELSE quantity + ? END", delta, delta)).Error
}

// StampLine freezes the price and name a line was charged at.
func (r *OrderRepository) StampLine(orderID, itemID uint, unitPrice int64, name string) error {
	return r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ? AND item_id = ?", orderID, itemID).
		Updates(map[string]any{"unit_price": unitPrice, "item_name": name}).Error
}

func (r *OrderRepository) GetOrderSummary(orderID uint) (*OrderSummary, error) {
	var out OrderSummary
	res := r.summaries().Where("o.id = ?", orderID).Limit(1).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &out, nil
}
