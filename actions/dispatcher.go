package actions

import (
	"fmt"
	"net/url"

	"foodorder/entity"
	"foodorder/services"

	"github.com/rs/zerolog/log"
)

const (
	FlashInfo  = "info"
	FlashError = "error"
)

// Outcome is the uniform result of a dispatched action. Err is nil on
// success; Flash is always safe to show.
type Outcome struct {
	Kind     string `json:"kind,omitempty"`
	Flash    string `json:"flash,omitempty"`
	Redirect string `json:"redirect"`
	Err      error  `json:"-"`
}

func succeeded(redirect, flash string) Outcome {
	return Outcome{Kind: FlashInfo, Flash: flash, Redirect: redirect}
}

func failed(redirect string, err error) Outcome {
	msg := err.Error()
	if services.KindOf(err) == 0 {
		msg = "Something went wrong."
	}
	return Outcome{Kind: FlashError, Flash: msg, Redirect: redirect, Err: err}
}

// ErrUnknownAction is reported for tokens that do not parse.
var ErrUnknownAction = &services.Error{Kind: services.KindValidation, Msg: "Bad action."}

type Dispatcher struct {
	Restaurants *services.RestaurantService
	Menu        *services.MenuService
	Orders      *services.OrderService
}

func NewDispatcher(rs *services.RestaurantService, ms *services.MenuService, orders *services.OrderService) *Dispatcher {
	return &Dispatcher{Restaurants: rs, Menu: ms, Orders: orders}
}

func restaurantPath(id uint) string { return fmt.Sprintf("/restaurants/%d", id) }
func orderPath(id uint) string      { return fmt.Sprintf("/orders/%d", id) }

// DispatchRestaurant runs an action submitted from restaurant restID's page.
// Field values (names, prices, usernames) come from form.
func (d *Dispatcher) DispatchRestaurant(restID uint, username, token string, form url.Values) Outcome {
	here := restaurantPath(restID)
	if username == "" {
		return failed("/account/login", &services.Error{Kind: services.KindAuthorization, Msg: "Not logged in."})
	}

	action, ok := ParseRestaurantAction(token)
	if !ok {
		log.Debug().Str("action", token).Uint("restaurant_id", restID).Msg("unrecognised restaurant action")
		return failed(here, ErrUnknownAction)
	}

	switch a := action.(type) {
	case RestaurantAction:
		switch a.Verb {
		case "update":
			return d.result(here, "", d.Restaurants.RenameRestaurant(restID, form.Get("restaurant:name"), username))
		case "delete":
			if err := d.Restaurants.DeleteRestaurant(restID, username); err != nil {
				return failed(here, err)
			}
			return succeeded("/restaurants", "Restaurant deleted.")
		case "order":
			o, err := d.Orders.CreateOrder(restID, username)
			if err != nil {
				return failed(here, err)
			}
			return succeeded(orderPath(o.ID), "")
		}

	case EmployeeAction:
		if a.New {
			return d.result(here, "", d.Restaurants.AddEmployee(restID, form.Get("employee:new:username"), username))
		}
		return d.result(here, "", d.Restaurants.RemoveEmployee(restID, a.Username, username))

	case ItemAction:
		switch {
		case a.New:
			_, err := d.Menu.AddItem(restID, form.Get("item:new:name"), form.Get("item:new:price"), username)
			return d.result(here, "", err)
		case a.Verb == "update":
			prefix := fmt.Sprintf("item:%d:", a.ItemID)
			return d.result(here, "", d.Menu.UpdateItem(restID, a.ItemID, form.Get(prefix+"name"), form.Get(prefix+"price"), username))
		case a.Verb == "delete":
			return d.result(here, "", d.Menu.DeleteItem(restID, a.ItemID, username))
		}

	case OrderAction:
		return d.transition(here, username, restID, a)
	}
	return failed(here, ErrUnknownAction)
}

// DispatchOrder runs an action submitted from order orderID's page.
func (d *Dispatcher) DispatchOrder(orderID uint, username, token string) Outcome {
	here := orderPath(orderID)
	if username == "" {
		return failed("/account/login", &services.Error{Kind: services.KindAuthorization, Msg: "Not logged in."})
	}

	action, ok := ParseOrderAction(token)
	if !ok {
		log.Debug().Str("action", token).Uint("order_id", orderID).Msg("unrecognised order action")
		return failed(here, ErrUnknownAction)
	}

	switch a := action.(type) {
	case OrderAction:
		a.OrderID = orderID
		return d.transition(here, username, 0, a)
	case ItemAction:
		delta := 1
		if a.Verb == "subtract" {
			delta = -1
		}
		return d.result(here, "", d.Orders.AdjustQuantity(orderID, a.ItemID, delta, username))
	}
	return failed(here, ErrUnknownAction)
}

var transitions = map[string]struct {
	to    entity.OrderStatus
	flash string
}{
	"pay":     {entity.OrderPaid, "Order submitted."},
	"cancel":  {entity.OrderCancelled, "Order cancelled."},
	"accept":  {entity.OrderAccepted, "Order accepted."},
	"deliver": {entity.OrderDelivered, "Order delivered."},
}

func (d *Dispatcher) transition(here, username string, restID uint, a OrderAction) Outcome {
	t, found := transitions[a.Verb]
	if !found {
		return failed(here, ErrUnknownAction)
	}
	return d.result(here, t.flash, d.Orders.Transition(username, restID, a.OrderID, t.to))
}

func (d *Dispatcher) result(redirect, flash string, err error) Outcome {
	if err != nil {
		return failed(redirect, err)
	}
	return succeeded(redirect, flash)
}
