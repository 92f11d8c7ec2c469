package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/controllers"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController, mw Middleware) {
	server.GET("/orders", orders.GetOrders)
	server.POST("/orders", mw.Auth, orders.CreateOrder)
	server.PATCH("/orders/:id", mw.Auth, mw.Admin, orders.UpdateStatus)
	server.GET("/order-details", mw.Auth, orders.GetOrderDetails)
	server.GET("/order-details-seller", orders.GetSellerOrderDetails)
}
