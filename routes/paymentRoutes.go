package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/controllers"
)

func PaymentRoutes(server *gin.Engine, payments *controllers.PaymentController) {
	server.POST("/create-payment-intent", payments.CreatePaymentIntent)
}
