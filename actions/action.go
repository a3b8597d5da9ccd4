// Package actions turns the single "action" field a page submits into a
// typed value and routes it to the matching manager operation.
package actions

import (
	"strconv"
	"strings"
)

// Action is one of RestaurantAction, ItemAction, EmployeeAction or
// OrderAction.
type Action interface {
	isAction()
}

type RestaurantAction struct {
	Verb string // update, delete, order
}

type ItemAction struct {
	ItemID uint
	New    bool
	Verb   string // add, update, delete on the restaurant page; add, subtract on the order page
}

type EmployeeAction struct {
	Username string
	New      bool
	Verb     string // add, remove
}

// OrderAction targets OrderID, or the page's own order when OrderID is 0.
type OrderAction struct {
	OrderID uint
	Verb    string // pay, cancel, accept, deliver
}

func (RestaurantAction) isAction() {}
func (ItemAction) isAction()       {}
func (EmployeeAction) isAction()   {}
func (OrderAction) isAction()      {}

// ParseRestaurantAction parses tokens submitted from a restaurant page:
//
//	restaurant:update | restaurant:delete | restaurant:order
//	employee:new:add | employee:<username>:remove
//	item:new:add | item:<id>:update | item:<id>:delete
//	order:<id>:accept | order:<id>:deliver
//
// Anything else is reported as not ok.
func ParseRestaurantAction(token string) (Action, bool) {
	parts := strings.Split(token, ":")
	switch {
	case len(parts) == 2 && parts[0] == "restaurant":
		switch parts[1] {
		case "update", "delete", "order":
			return RestaurantAction{Verb: parts[1]}, true
		}

	case len(parts) == 3 && parts[0] == "employee":
		if parts[1] == "new" && parts[2] == "add" {
			return EmployeeAction{New: true, Verb: "add"}, true
		}
		if parts[1] != "" && parts[1] != "new" && parts[2] == "remove" {
			return EmployeeAction{Username: parts[1], Verb: "remove"}, true
		}

	case len(parts) == 3 && parts[0] == "item":
		if parts[1] == "new" {
			if parts[2] == "add" {
				return ItemAction{New: true, Verb: "add"}, true
			}
			return nil, false
		}
		id, ok := parseID(parts[1])
		if !ok {
			return nil, false
		}
		switch parts[2] {
		case "update", "delete":
			return ItemAction{ItemID: id, Verb: parts[2]}, true
		}

	case len(parts) == 3 && parts[0] == "order":
		id, ok := parseID(parts[1])
		if !ok {
			return nil, false
		}
		switch parts[2] {
		case "accept", "deliver":
			return OrderAction{OrderID: id, Verb: parts[2]}, true
		}
	}
	return nil, false
}

// ParseOrderAction parses tokens submitted from an order page:
//
//	order:pay | order:cancel | order:accept | order:deliver
//	item:<id>:add | item:<id>:subtract
func ParseOrderAction(token string) (Action, bool) {
	parts := strings.Split(token, ":")
	switch {
	case len(parts) == 2 && parts[0] == "order":
		switch parts[1] {
		case "pay", "cancel", "accept", "deliver":
			return OrderAction{Verb: parts[1]}, true
		}

	case len(parts) == 3 && parts[0] == "item":
		id, ok := parseID(parts[1])
		if !ok {
			return nil, false
		}
		switch parts[2] {
		case "add", "subtract":
			return ItemAction{ItemID: id, Verb: parts[2]}, true
		}
	}
	return nil, false
}

func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
