package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/controllers"
)

func CategoryRoutes(server *gin.Engine, categories *controllers.CategoryController, mw Middleware) {
	server.GET("/category", categories.GetCategories)
	server.GET("/categories", categories.GetFeaturedCategories)
	server.POST("/category", mw.Auth, mw.Admin, categories.CreateCategory)
	server.PUT("/category/:id", mw.Auth, mw.Admin, categories.UpdateCategory)
	server.DELETE("/category/:id", mw.Auth, mw.Admin, categories.DeleteCategory)
}
