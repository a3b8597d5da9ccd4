package ws

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"foodorder/services"
	"foodorder/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// OrderHub pushes order status changes to the employees watching a
// restaurant's board and to the customer watching their order.
type OrderHub struct {
	clients    map[string]map[*websocket.Conn]bool // topic -> set of clients
	broadcast  chan services.OrderEvent
	register   chan Subscription
	unregister chan Subscription
	done       chan struct{}
	mu         sync.Mutex
	roles      *services.RoleService
}

// Subscription is one connection listening on one topic.
type Subscription struct {
	Conn     *websocket.Conn
	Topic    string
	Username string
}

func restaurantTopic(id uint) string { return fmt.Sprintf("restaurant:%d", id) }
func orderTopic(id uint) string      { return fmt.Sprintf("order:%d", id) }

func NewOrderHub(roles *services.RoleService) *OrderHub {
	return &OrderHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderEvent, 64),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
		done:       make(chan struct{}),
		roles:      roles,
	}
}

// OrderChanged implements services.OrderNotifier. It never blocks the
// request that changed the order; events are dropped when the hub is full.
func (h *OrderHub) OrderChanged(ev services.OrderEvent) {
	select {
	case h.broadcast <- ev:
	default:
		log.Warn().Uint("order_id", ev.OrderID).Msg("order hub full, event dropped")
	}
}

func (h *OrderHub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return

		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.Topic] == nil {
				h.clients[sub.Topic] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Topic][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.Topic][sub.Conn]; ok {
				delete(h.clients[sub.Topic], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for _, topic := range []string{restaurantTopic(ev.RestaurantID), orderTopic(ev.OrderID)} {
				for conn := range h.clients[topic] {
					if err := conn.WriteJSON(ev); err != nil {
						log.Debug().Err(err).Str("topic", topic).Msg("ws write error")
						conn.Close()
						delete(h.clients[topic], conn)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *OrderHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for topic, conns := range h.clients {
		for conn := range conns {
			conn.Close()
		}
		delete(h.clients, topic)
	}
}

// Subscribers counts connections on a topic.
func (h *OrderHub) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[topic])
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/restaurants/:id/orders (employees only)
func (h *OrderHub) HandleRestaurant(c *gin.Context) {
	var restID uint
	if _, err := fmt.Sscan(c.Param("id"), &restID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid restaurant id"})
		return
	}
	username := utils.CurrentUsername(c)

	caps, err := h.roles.ResolveRestaurant(restID, username)
	if err != nil || !caps.IsEmployee {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
		return
	}
	h.serve(c, restaurantTopic(restID), username)
}

// WS route: /ws/orders/:id (the customer or an employee)
func (h *OrderHub) HandleOrder(c *gin.Context) {
	var orderID uint
	if _, err := fmt.Sscan(c.Param("id"), &orderID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid order id"})
		return
	}
	username := utils.CurrentUsername(c)

	caps, err := h.roles.ResolveOrder(orderID, username)
	if err != nil || !caps.CanView() {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
		return
	}
	h.serve(c, orderTopic(orderID), username)
}

func (h *OrderHub) serve(c *gin.Context, topic, username string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug().Err(err).Msg("ws upgrade error")
		return
	}
	sub := Subscription{Conn: conn, Topic: topic, Username: username}
	select {
	case h.register <- sub:
	case <-h.done:
		conn.Close()
		return
	}

	go h.listen(sub)
}

// listen drains the connection until the client goes away; the board is
// push-only.
func (h *OrderHub) listen(sub Subscription) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
