package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/controllers"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	server.POST("/jwt", auth.IssueToken)
}
