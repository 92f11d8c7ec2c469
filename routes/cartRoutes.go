package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/controllers"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController, mw Middleware) {
	server.GET("/cart/:email", mw.Auth, cart.GetCart)
	server.POST("/cart", mw.Auth, cart.AddToCart)
	server.PUT("/cart/:id", mw.Auth, cart.UpdateQuantity)
	server.DELETE("/cart/:id", mw.Auth, cart.RemoveItem)
	server.DELETE("/cart", mw.Auth, cart.ClearCart)
}
