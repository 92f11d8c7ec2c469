package routes

import "github.com/gin-gonic/gin"

// Middleware bundles the auth chain handed to every route group. Admin and
// Seller are layered on top of Auth by the caller that builds them.
type Middleware struct {
	Auth   gin.HandlerFunc
	Admin  gin.HandlerFunc
	Seller gin.HandlerFunc
}
