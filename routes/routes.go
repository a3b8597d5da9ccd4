package routes

import (
	"foodorder/actions"
	"foodorder/configs"
	"foodorder/controllers"
	"foodorder/middlewares"
	"foodorder/repository"
	"foodorder/services"
	"foodorder/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto r and
// returns the order hub; the caller owns running it.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) *ws.OrderHub {
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins...))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	roles := services.NewRoleService(restRepo, orderRepo)
	accountSvc := services.NewAccountService(accountRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(db, restRepo, accountRepo, roles)
	menuSvc := services.NewMenuService(db, menuRepo, restRepo, roles)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, menuRepo, accountRepo, roles)

	hub := ws.NewOrderHub(roles)
	orderSvc.Notifier = hub

	dispatcher := actions.NewDispatcher(restSvc, menuSvc, orderSvc)

	// Controllers
	accountCtrl := controllers.NewAccountController(accountSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, menuSvc, orderSvc, roles, dispatcher)
	orderCtrl := controllers.NewOrderController(orderSvc, dispatcher)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	optional := middlewares.OptionalAuth(cfg.JWTSecret)

	// Account
	a := r.Group("/account")
	{
		a.POST("/create", accountCtrl.Create)
		a.POST("/login", accountCtrl.Login)
		a.GET("", auth, accountCtrl.Me)
		a.POST("", auth, accountCtrl.Update)
	}

	// Restaurants
	rs := r.Group("/restaurants")
	{
		rs.GET("", restCtrl.List)
		rs.POST("", auth, restCtrl.Create)
		rs.GET("/:id", optional, restCtrl.Detail)
		rs.POST("/:id", auth, restCtrl.Action)
	}

	// Orders
	o := r.Group("/orders", auth)
	{
		o.GET("", orderCtrl.ListForMe)
		o.GET("/:id", orderCtrl.Detail)
		o.POST("/:id", orderCtrl.Action)
	}

	// Live order board
	w := r.Group("/ws", auth)
	{
		w.GET("/restaurants/:id/orders", hub.HandleRestaurant)
		w.GET("/orders/:id", hub.HandleOrder)
	}

	return hub
}
