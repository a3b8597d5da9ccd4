package services

import (
	"fmt"

	"foodorder/entity"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// nextStatuses is the whole order lifecycle. Anything not listed here is a
// bad transition.
var nextStatuses = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPending:  {entity.OrderPaid, entity.OrderCancelled},
	entity.OrderPaid:     {entity.OrderAccepted, entity.OrderCancelled},
	entity.OrderAccepted: {entity.OrderDelivered},
}

func CanTransition(from, to entity.OrderStatus) bool {
	return lo.Contains(nextStatuses[from], to)
}

// ----- Customer actions -----

func (s *OrderService) Pay(orderID uint, username string) error {
	return s.Transition(username, 0, orderID, entity.OrderPaid)
}

func (s *OrderService) Cancel(orderID uint, username string) error {
	return s.Transition(username, 0, orderID, entity.OrderCancelled)
}

// ----- Employee actions -----

func (s *OrderService) Accept(orderID uint, username string) error {
	return s.Transition(username, 0, orderID, entity.OrderAccepted)
}

func (s *OrderService) Deliver(orderID uint, username string) error {
	return s.Transition(username, 0, orderID, entity.OrderDelivered)
}

// Transition validates permissions and preconditions and moves the order to
// the target status in one transaction. A non-zero restID additionally
// requires the order to belong to that restaurant.
func (s *OrderService) Transition(username string, restID, orderID uint, to entity.OrderStatus) error {
	var moved *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		orders := s.Repo.WithTx(tx)

		o, err := orders.GetOrder(orderID)
		if err != nil {
			if isNotFound(err) {
				return notFound("order %d does not exist", orderID)
			}
			return err
		}
		if restID != 0 && o.RestaurantID != restID {
			return notFound("no such order %d for restaurant %d", orderID, restID)
		}
		if _, err := s.RestRepo.WithTx(tx).FindByID(o.RestaurantID); err != nil {
			if isNotFound(err) {
				return notFound("restaurant does not exist or has been deleted")
			}
			return err
		}

		if !CanTransition(o.Status, to) {
			return conflict(fmt.Sprintf("bad transition %s -> %s", o.Status, to))
		}
		if err := s.authorize(tx, o, username, to); err != nil {
			return err
		}

		if to == entity.OrderPaid {
			total, address, err := s.settle(tx, o)
			if err != nil {
				return err
			}
			o.Total, o.Address = total, address
			affected, err := orders.MarkPaid(o.ID, address, total)
			if err != nil {
				return err
			}
			if affected == 0 {
				return conflict("order changed while paying")
			}
		} else {
			affected, err := orders.UpdateStatusGuard(o.ID, o.Status, to)
			if err != nil {
				return err
			}
			if affected == 0 {
				return conflict("invalid_or_conflict")
			}
		}

		o.Status = to
		moved = o
		return nil
	})
	if err != nil {
		log.Debug().Err(err).
			Uint("order_id", orderID).
			Str("username", username).
			Str("to", string(to)).
			Str("reason", reasonOf(err)).
			Msg("order transition rejected")
		return err
	}

	log.Info().
		Uint("order_id", moved.ID).
		Uint("restaurant_id", moved.RestaurantID).
		Str("username", username).
		Str("status", string(moved.Status)).
		Int64("total", moved.Total).
		Msg("order transitioned")
	s.publish(moved)
	return nil
}

// authorize checks who may drive the order to the target status.
func (s *OrderService) authorize(tx *gorm.DB, o *entity.Order, username string, to entity.OrderStatus) error {
	if username == "" {
		return forbidden("not logged in")
	}
	own := o.Username == username

	switch to {
	case entity.OrderPaid:
		if !own {
			return forbidden("cannot pay for someone else's order")
		}
		return nil
	case entity.OrderCancelled:
		if own {
			return nil
		}
	}

	employee, err := s.RestRepo.WithTx(tx).IsEmployee(o.RestaurantID, username)
	if err != nil {
		return err
	}
	if !employee {
		return forbidden(fmt.Sprintf("cannot move order to %s as a non-employee", to))
	}
	return nil
}

// settle prices the order from the current menu and stamps each selected
// line. It returns the total and the delivery address.
func (s *OrderService) settle(tx *gorm.DB, o *entity.Order) (int64, string, error) {
	acct, err := s.AccountRepo.WithTx(tx).FindByUsername(o.Username)
	if err != nil {
		if isNotFound(err) {
			return 0, "", ErrUserNotExist
		}
		return 0, "", err
	}
	if !hasBillingInfo(acct) {
		return 0, "", ErrInvalidPayment
	}

	orders := s.Repo.WithTx(tx)
	items, err := orders.GetOrderItems(o.ID)
	if err != nil {
		return 0, "", err
	}
	selected := lo.Filter(items, func(it entity.OrderItem, _ int) bool { return it.Quantity > 0 })
	if len(selected) == 0 {
		return 0, "", validation("order must contain at least one item")
	}
	for _, it := range selected {
		if it.Item.RestaurantID != o.RestaurantID {
			return 0, "", conflict(fmt.Sprintf("order contains item %d from another restaurant", it.ItemID))
		}
		if it.Item.Deleted {
			return 0, "", validation("cannot order deleted item %s", it.Item.Name)
		}
	}

	total := lo.SumBy(selected, func(it entity.OrderItem) int64 {
		return it.Item.Price * int64(it.Quantity)
	})
	for _, it := range selected {
		if err := orders.StampLine(o.ID, it.ItemID, it.Item.Price, it.Item.Name); err != nil {
			return 0, "", err
		}
	}
	return total, acct.Address, nil
}

func (s *OrderService) publish(o *entity.Order) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.OrderChanged(OrderEvent{
		OrderID:      o.ID,
		RestaurantID: o.RestaurantID,
		Username:     o.Username,
		Status:       o.Status,
		Total:        o.Total,
		At:           s.now(),
	})
}

func reasonOf(err error) string {
	if e, ok := err.(*Error); ok && e.Reason != "" {
		return e.Reason
	}
	return err.Error()
}
