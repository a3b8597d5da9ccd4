package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRestaurantAction(t *testing.T) {
	cases := map[string]Action{
		"restaurant:update":     RestaurantAction{Verb: "update"},
		"restaurant:delete":     RestaurantAction{Verb: "delete"},
		"restaurant:order":      RestaurantAction{Verb: "order"},
		"employee:new:add":      EmployeeAction{New: true, Verb: "add"},
		"employee:squid:remove": EmployeeAction{Username: "squid", Verb: "remove"},
		"item:new:add":          ItemAction{New: true, Verb: "add"},
		"item:12:update":        ItemAction{ItemID: 12, Verb: "update"},
		"item:12:delete":        ItemAction{ItemID: 12, Verb: "delete"},
		"order:7:accept":        OrderAction{OrderID: 7, Verb: "accept"},
		"order:7:deliver":       OrderAction{OrderID: 7, Verb: "deliver"},
	}
	for token, want := range cases {
		got, ok := ParseRestaurantAction(token)
		assert.True(t, ok, token)
		assert.Equal(t, want, got, token)
	}

	for _, token := range []string{
		"", "restaurant", "restaurant:rename", "restaurant:update:now",
		"employee:new:remove", "employee::remove", "employee:new",
		"item:new:delete", "item:abc:update", "item:0:update", "item:-1:delete", "item:3:add",
		"order:7:pay", "order:x:accept", "order:pay", "menu:1:add",
	} {
		_, ok := ParseRestaurantAction(token)
		assert.False(t, ok, "token %q", token)
	}
}

func TestParseOrderAction(t *testing.T) {
	for _, verb := range []string{"pay", "cancel", "accept", "deliver"} {
		got, ok := ParseOrderAction("order:" + verb)
		assert.True(t, ok)
		assert.Equal(t, OrderAction{Verb: verb}, got)
	}

	got, ok := ParseOrderAction("item:4:add")
	assert.True(t, ok)
	assert.Equal(t, ItemAction{ItemID: 4, Verb: "add"}, got)

	got, ok = ParseOrderAction("item:4:subtract")
	assert.True(t, ok)
	assert.Equal(t, ItemAction{ItemID: 4, Verb: "subtract"}, got)

	for _, token := range []string{"order:refund", "order:1:pay", "item:new:add", "item:4:delete", "item:4", "restaurant:order"} {
		_, ok := ParseOrderAction(token)
		assert.False(t, ok, "token %q", token)
	}
}
