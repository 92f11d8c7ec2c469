package middlewares

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/httperr"
	"github.com/parmaworld/parmaworld-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UserFinder is the slice of the user store the role check needs.
type UserFinder interface {
	FindOne(ctx context.Context, filter bson.M) (*models.User, error)
}

// RequireRole looks up the caller's user record by the claimed email on
// every request and rejects with 403 unless the stored role matches. One
// function covers both the admin and the seller checks; roles are never
// cached, so a demotion takes effect on the next request.
func RequireRole(users UserFinder, role models.Role, log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := ClaimsFrom(ctx)
		if !ok {
			abortWithError(ctx, httperr.ErrUnauthenticated)
			return
		}

		user, err := users.FindOne(ctx.Request.Context(), bson.M{"email": claims.Email})
		if err != nil {
			log.Error("role lookup failed", zap.String("email", claims.Email), zap.Error(err))
			abortWithError(ctx, httperr.ErrInternal)
			return
		}
		if user == nil || user.Role != role {
			abortWithError(ctx, httperr.ErrForbidden)
			return
		}

		ctx.Next()
	}
}
