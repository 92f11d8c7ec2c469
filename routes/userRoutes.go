package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/controllers"
)

func UserRoutes(server *gin.Engine, users *controllers.UserController, mw Middleware) {
	server.GET("/users", users.GetUsers)
	server.POST("/users", mw.Auth, users.CreateUser)
	server.PATCH("/users/:id", mw.Auth, mw.Admin, users.UpdateUserRole)
	server.GET("/users/admin/:email", mw.Auth, users.CheckAdmin)
	server.GET("/users/seller/:email", mw.Auth, users.CheckSeller)
	server.PUT("/user/updateProfile/:email", mw.Auth, users.UpdateProfile)
}
