package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"foodorder/configs"
	"foodorder/entity"
	"foodorder/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv is a fully wired set of managers over a private in-memory store.
type testEnv struct {
	DB          *gorm.DB
	AccountRepo *repository.AccountRepository
	MenuRepo    *repository.MenuRepository
	OrderRepo   *repository.OrderRepository

	Roles       *RoleService
	Accounts    *AccountService
	Restaurants *RestaurantService
	Menu        *MenuService
	Orders      *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := configs.ConnectionDB("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	accountRepo := repository.NewAccountRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	roles := NewRoleService(restRepo, orderRepo)

	return &testEnv{
		DB:          db,
		AccountRepo: accountRepo,
		MenuRepo:    menuRepo,
		OrderRepo:   orderRepo,
		Roles:       roles,
		Accounts:    NewAccountService(accountRepo, "test-secret", time.Hour),
		Restaurants: NewRestaurantService(db, restRepo, accountRepo, roles),
		Menu:        NewMenuService(db, menuRepo, restRepo, roles),
		Orders:      NewOrderService(db, orderRepo, restRepo, menuRepo, accountRepo, roles),
	}
}

// account inserts an account directly; with billing it can pay for orders.
func (e *testEnv) account(t *testing.T, username string, billing bool) *entity.Account {
	t.Helper()
	a := &entity.Account{Username: username, PasswordHash: "x", FirstName: "Test", LastName: "User"}
	if billing {
		a.Address = "1 Test Street"
		a.CardNumber = "4111111111111111"
		a.CardExpiry = "12/28"
		a.CardCode = "123"
	}
	created, err := e.AccountRepo.Create(a)
	require.NoError(t, err)
	require.True(t, created)
	return a
}

// restaurant creates a restaurant with items given as name, price pairs.
func (e *testEnv) restaurant(t *testing.T, owner, name string, items ...string) (*entity.Restaurant, []*entity.MenuItem) {
	t.Helper()
	require.Zero(t, len(items)%2, "items are name, price pairs")

	rest, err := e.Restaurants.CreateRestaurant(name, owner)
	require.NoError(t, err)

	var out []*entity.MenuItem
	for i := 0; i < len(items); i += 2 {
		item, err := e.Menu.AddItem(rest.ID, items[i], items[i+1], owner)
		require.NoError(t, err)
		out = append(out, item)
	}
	return rest, out
}

func (e *testEnv) quantity(t *testing.T, orderID, itemID uint) int {
	t.Helper()
	line, err := e.OrderRepo.GetOrderItem(orderID, itemID)
	require.NoError(t, err)
	return line.Quantity
}

func (e *testEnv) status(t *testing.T, orderID uint) entity.OrderStatus {
	t.Helper()
	o, err := e.OrderRepo.GetOrder(orderID)
	require.NoError(t, err)
	return o.Status
}
