package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/controllers"
)

func AdvertisementRoutes(server *gin.Engine, ads *controllers.AdvertisementController, mw Middleware) {
	server.GET("/advertisements", mw.Auth, ads.GetAdvertisements)
	server.GET("/advertisements/:email", mw.Auth, ads.GetAdvertisementsBySeller)
	server.POST("/advertisements", mw.Auth, mw.Seller, ads.CreateAdvertisement)
	server.PATCH("/advertisements/:id", mw.Auth, mw.Admin, ads.UpdateStatus)
}
