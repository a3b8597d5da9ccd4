package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurant(t *testing.T) {
	env := newTestEnv(t)
	env.account(t, "patrick", false)

	rest, err := env.Restaurants.CreateRestaurant("  Krusty Krab ", "patrick")
	require.NoError(t, err)
	assert.Equal(t, "Krusty Krab", rest.Name)
	assert.False(t, rest.Deleted)

	employees, err := env.Restaurants.Employees(rest.ID, "patrick")
	require.NoError(t, err)
	assert.Equal(t, []string{"patrick"}, employees)

	_, err = env.Restaurants.CreateRestaurant(" ", "patrick")
	assert.EqualError(t, err, "restaurant name must not be blank")

	_, err = env.Restaurants.CreateRestaurant("Anon", "")
	assert.True(t, IsBadAction(err))
}

func TestRestaurantOwnerOperations(t *testing.T) {
	env := newTestEnv(t)
	env.account(t, "patrick", false)
	env.account(t, "squid", false)
	rest, _ := env.restaurant(t, "patrick", "Krusty Krab")

	t.Run("rename", func(t *testing.T) {
		assert.True(t, IsBadAction(env.Restaurants.RenameRestaurant(rest.ID, "Mine", "squid")))
		require.NoError(t, env.Restaurants.RenameRestaurant(rest.ID, "Krusty Krab 2", "patrick"))

		got, err := env.Restaurants.Get(rest.ID)
		require.NoError(t, err)
		assert.Equal(t, "Krusty Krab 2", got.Name)
	})

	t.Run("employees", func(t *testing.T) {
		assert.ErrorIs(t, env.Restaurants.AddEmployee(rest.ID, "nobody", "patrick"), ErrUserNotExist)
		assert.True(t, IsBadAction(env.Restaurants.AddEmployee(rest.ID, "squid", "squid")))

		require.NoError(t, env.Restaurants.AddEmployee(rest.ID, "squid", "patrick"))
		require.NoError(t, env.Restaurants.AddEmployee(rest.ID, "squid", "patrick"))
		employees, err := env.Restaurants.Employees(rest.ID, "patrick")
		require.NoError(t, err)
		assert.Equal(t, []string{"patrick", "squid"}, employees)

		_, err = env.Restaurants.Employees(rest.ID, "squid")
		assert.True(t, IsBadAction(err))

		require.NoError(t, env.Restaurants.RemoveEmployee(rest.ID, "squid", "patrick"))
		employees, err = env.Restaurants.Employees(rest.ID, "patrick")
		require.NoError(t, err)
		assert.Equal(t, []string{"patrick"}, employees)
	})

	t.Run("delete", func(t *testing.T) {
		assert.True(t, IsBadAction(env.Restaurants.DeleteRestaurant(rest.ID, "squid")))
		require.NoError(t, env.Restaurants.DeleteRestaurant(rest.ID, "patrick"))

		_, err := env.Restaurants.Get(rest.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		list, err := env.Restaurants.List()
		require.NoError(t, err)
		assert.Empty(t, list)

		assert.ErrorIs(t, env.Restaurants.RenameRestaurant(rest.ID, "Again", "patrick"), ErrNotFound)
	})
}
