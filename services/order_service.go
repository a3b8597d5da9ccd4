package services

import (
	"time"

	"foodorder/entity"
	"foodorder/repository"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// OrderEvent is published after every successful status change.
type OrderEvent struct {
	OrderID      uint               `json:"orderId"`
	RestaurantID uint               `json:"restaurantId"`
	Username     string             `json:"username"`
	Status       entity.OrderStatus `json:"status"`
	Total        int64              `json:"total"`
	At           time.Time          `json:"at"`
}

type OrderNotifier interface {
	OrderChanged(ev OrderEvent)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	RestRepo    *repository.RestaurantRepository
	MenuRepo    *repository.MenuRepository
	AccountRepo *repository.AccountRepository
	Roles       *RoleService

	Notifier OrderNotifier
	Now      func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	menuRepo *repository.MenuRepository,
	accountRepo *repository.AccountRepository,
	roles *RoleService,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		RestRepo:    restRepo,
		MenuRepo:    menuRepo,
		AccountRepo: accountRepo,
		Roles:       roles,
	}
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ----- Create -----

// CreateOrder opens a PENDING order holding one zero-quantity line per
// item currently on the menu.
func (s *OrderService) CreateOrder(restID uint, username string) (*entity.Order, error) {
	if username == "" {
		return nil, forbidden("not logged in")
	}

	var out entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.RestRepo.WithTx(tx).FindByID(restID); err != nil {
			if isNotFound(err) {
				return notFound("restaurant does not exist or has been deleted")
			}
			return err
		}
		menu, err := s.MenuRepo.WithTx(tx).FindByRestaurant(restID)
		if err != nil {
			return err
		}

		order := entity.Order{
			Date:         s.now(),
			RestaurantID: restID,
			Username:     username,
			Status:       entity.OrderPending,
		}
		orders := s.Repo.WithTx(tx)
		if err := orders.CreateOrder(&order); err != nil {
			return err
		}

		lines := lo.Map(menu, func(m entity.MenuItem, _ int) entity.OrderItem {
			return entity.OrderItem{OrderID: order.ID, ItemID: m.ID}
		})
		if err := orders.CreateOrderItems(lines); err != nil {
			return err
		}
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Uint("order_id", out.ID).Uint("restaurant_id", restID).Str("username", username).Msg("order created")
	return &out, nil
}

// ----- Cart -----

// AdjustQuantity adds +1 or -1 to one line of a pending order. Items outside
// the snapshot, and increases of items deleted since, are ignored.
func (s *OrderService) AdjustQuantity(orderID, itemID uint, delta int, username string) error {
	if delta != 1 && delta != -1 {
		return validation("invalid quantity change")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		orders := s.Repo.WithTx(tx)

		o, err := orders.GetOrder(orderID)
		if err != nil {
			if isNotFound(err) {
				return notFound("order %d does not exist", orderID)
			}
			return err
		}
		if username == "" || o.Username != username {
			return forbidden("not the order owner")
		}
		if o.Status != entity.OrderPending {
			return conflict("cannot modify items for non-pending order")
		}

		line, err := orders.GetOrderItem(orderID, itemID)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}
		if delta > 0 && line.Item.Deleted {
			return nil
		}
		return orders.AdjustQuantity(orderID, itemID, delta)
	})
}

// ----- List & Detail -----

// OrderLine is one displayed line of an order.
type OrderLine struct {
	ItemID    uint   `json:"itemId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
	Deleted   bool   `json:"deleted"`
}

// DisplayLines applies the display policy: a pending order shows its whole
// snapshot at live menu prices (minus unselected items deleted since), any
// other order only the selected lines at their charged price.
func DisplayLines(status entity.OrderStatus, items []entity.OrderItem) []OrderLine {
	if status == entity.OrderPending {
		visible := lo.Filter(items, func(it entity.OrderItem, _ int) bool {
			return !it.Item.Deleted || it.Quantity > 0
		})
		return lo.Map(visible, func(it entity.OrderItem, _ int) OrderLine {
			return newLine(it, it.Item.Name, it.Item.Price)
		})
	}

	selected := lo.Filter(items, func(it entity.OrderItem, _ int) bool { return it.Quantity > 0 })
	return lo.Map(selected, func(it entity.OrderItem, _ int) OrderLine {
		name, price := it.ItemName, it.UnitPrice
		if name == "" {
			name, price = it.Item.Name, it.Item.Price
		}
		return newLine(it, name, price)
	})
}

func newLine(it entity.OrderItem, name string, price int64) OrderLine {
	return OrderLine{
		ItemID:    it.ItemID,
		Name:      name,
		Price:     price,
		Quantity:  it.Quantity,
		LineTotal: price * int64(it.Quantity),
		Deleted:   it.Item.Deleted,
	}
}

// OrderDetail is the order page view model.
type OrderDetail struct {
	Order      repository.OrderSummary `json:"order"`
	Items      []OrderLine             `json:"items"`
	IsOwnOrder bool                    `json:"isOwnOrder"`
	IsEmployee bool                    `json:"isEmployee"`
}

func (s *OrderService) Detail(orderID uint, username string) (*OrderDetail, error) {
	caps, err := s.Roles.ResolveOrder(orderID, username)
	if err != nil {
		return nil, err
	}
	if !caps.CanView() {
		return nil, forbidden("not authorized to view order")
	}

	sum, err := s.Repo.GetOrderSummary(orderID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("order %d does not exist", orderID)
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		Order:      *sum,
		Items:      DisplayLines(sum.Status, items),
		IsOwnOrder: caps.IsOwnOrder,
		IsEmployee: caps.IsEmployee,
	}, nil
}

func (s *OrderService) ListForCustomer(username string) ([]repository.OrderSummary, error) {
	if username == "" {
		return nil, forbidden("not logged in")
	}
	return s.Repo.ListOrdersForUser(username)
}

// ActiveForRestaurant lists paid and accepted orders for the restaurant's
// employees.
func (s *OrderService) ActiveForRestaurant(restID uint, username string) ([]repository.OrderSummary, error) {
	caps, err := s.Roles.ResolveRestaurant(restID, username)
	if err != nil {
		return nil, err
	}
	if !caps.IsEmployee {
		return nil, forbidden("not an employee")
	}
	return s.Repo.ListOrdersForRestaurant(restID, entity.OrderPaid, entity.OrderAccepted)
}
