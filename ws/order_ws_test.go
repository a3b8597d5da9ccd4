package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodorder/configs"
	"foodorder/entity"
	"foodorder/repository"
	"foodorder/services"
	"foodorder/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

// newBoard serves the hub behind a fake auth that takes the username from
// the "as" query parameter. Krusty Krab (id 1) is owned by patrick and jeff
// has order 1 there.
func newBoard(t *testing.T) (*OrderHub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := configs.ConnectionDB("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	for _, u := range []string{"patrick", "jeff", "larry"} {
		require.NoError(t, db.Omit(clause.Associations).Create(&entity.Account{Username: u, PasswordHash: "x"}).Error)
	}
	require.NoError(t, db.Omit(clause.Associations).Create(&entity.Restaurant{ID: 1, Owner: "patrick", Name: "Krusty Krab"}).Error)
	require.NoError(t, db.Create(&entity.RestaurantEmployee{RestaurantID: 1, Username: "patrick"}).Error)
	require.NoError(t, db.Omit(clause.Associations).Create(&entity.Order{
		ID: 1, Date: time.Now(), RestaurantID: 1, Username: "jeff", Status: entity.OrderPaid,
	}).Error)

	roles := services.NewRoleService(repository.NewRestaurantRepository(db), repository.NewOrderRepository(db))
	hub := NewOrderHub(roles)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if u := c.Query("as"); u != "" {
			c.Set(utils.UsernameKey, u)
		}
	})
	r.GET("/ws/restaurants/:id/orders", hub.HandleRestaurant)
	r.GET("/ws/orders/:id", hub.HandleOrder)
	srv := httptest.NewServer(r)

	t.Cleanup(func() {
		srv.Close()
		cancel()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, path string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	return websocket.DefaultDialer.Dial(u, nil)
}

func TestOrderHubPushesEvents(t *testing.T) {
	hub, srv := newBoard(t)

	board, _, err := dial(t, srv, "/ws/restaurants/1/orders?as=patrick")
	require.NoError(t, err)
	defer board.Close()
	mine, _, err := dial(t, srv, "/ws/orders/1?as=jeff")
	require.NoError(t, err)
	defer mine.Close()

	require.Eventually(t, func() bool {
		return hub.Subscribers(restaurantTopic(1)) == 1 && hub.Subscribers(orderTopic(1)) == 1
	}, time.Second, 10*time.Millisecond)

	hub.OrderChanged(services.OrderEvent{OrderID: 1, RestaurantID: 1, Username: "jeff", Status: entity.OrderAccepted})

	for _, conn := range []*websocket.Conn{board, mine} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var ev services.OrderEvent
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, uint(1), ev.OrderID)
		assert.Equal(t, entity.OrderAccepted, ev.Status)
	}
}

func TestOrderHubRejectsOutsiders(t *testing.T) {
	_, srv := newBoard(t)

	_, res, err := dial(t, srv, "/ws/restaurants/1/orders?as=jeff")
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	_, res, err = dial(t, srv, "/ws/orders/1?as=larry")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	_, res, err = dial(t, srv, "/ws/orders/1")
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestOrderHubUnsubscribesOnClose(t *testing.T) {
	hub, srv := newBoard(t)

	conn, _, err := dial(t, srv, "/ws/orders/1?as=jeff")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.Subscribers(orderTopic(1)) == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Subscribers(orderTopic(1)) == 0 }, time.Second, 10*time.Millisecond)
}
