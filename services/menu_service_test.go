package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuManager(t *testing.T) {
	env := newTestEnv(t)
	env.account(t, "patrick", false)
	env.account(t, "squid", false)
	env.account(t, "plankton", false)
	rest, _ := env.restaurant(t, "patrick", "Krusty Krab")
	other, _ := env.restaurant(t, "plankton", "Chum Bucket")
	require.NoError(t, env.Restaurants.AddEmployee(rest.ID, "squid", "patrick"))

	t.Run("add parses the price", func(t *testing.T) {
		item, err := env.Menu.AddItem(rest.ID, "  Krabby Patty ", "$3.75", "patrick")
		require.NoError(t, err)
		assert.Equal(t, "Krabby Patty", item.Name)
		assert.Equal(t, int64(375), item.Price)
	})

	t.Run("add rejects bad input", func(t *testing.T) {
		for _, price := range []string{"-3.75", "", "abc", "1.005"} {
			_, err := env.Menu.AddItem(rest.ID, "Shake", price, "patrick")
			assert.EqualError(t, err, "invalid price", "price %q", price)
			assert.ErrorIs(t, err, ErrValidation)
		}
		_, err := env.Menu.AddItem(rest.ID, "   ", "1.00", "patrick")
		assert.EqualError(t, err, "item name must not be blank")
	})

	t.Run("only the owner edits the menu", func(t *testing.T) {
		for _, who := range []string{"squid", "plankton", ""} {
			_, err := env.Menu.AddItem(rest.ID, "Shake", "1.99", who)
			assert.True(t, IsBadAction(err), "user %q", who)
		}
	})

	t.Run("update in place", func(t *testing.T) {
		item, err := env.Menu.AddItem(rest.ID, "Coral Bits", "2.50", "patrick")
		require.NoError(t, err)
		require.NoError(t, env.Menu.UpdateItem(rest.ID, item.ID, "Coral Bites", "2.75", "patrick"))

		got, err := env.MenuRepo.FindByID(item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Coral Bites", got.Name)
		assert.Equal(t, int64(275), got.Price)

		err = env.Menu.UpdateItem(other.ID, item.ID, "Stolen", "0.01", "plankton")
		assert.ErrorIs(t, err, ErrNotFound, "item belongs to another restaurant")
	})

	t.Run("delete is soft", func(t *testing.T) {
		item, err := env.Menu.AddItem(rest.ID, "Salty Sauce", "0.25", "patrick")
		require.NoError(t, err)
		require.NoError(t, env.Menu.DeleteItem(rest.ID, item.ID, "patrick"))

		items, err := env.Menu.ListItems(rest.ID)
		require.NoError(t, err)
		for _, it := range items {
			assert.NotEqual(t, item.ID, it.ID)
		}

		got, err := env.MenuRepo.FindByID(item.ID)
		require.NoError(t, err)
		assert.True(t, got.Deleted)

		assert.ErrorIs(t, env.Menu.UpdateItem(rest.ID, item.ID, "Back", "1.00", "patrick"), ErrNotFound)
	})

	t.Run("deleted restaurant", func(t *testing.T) {
		require.NoError(t, env.Restaurants.DeleteRestaurant(other.ID, "plankton"))
		_, err := env.Menu.AddItem(other.ID, "Chum", "1.00", "plankton")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
