package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/auth"
	"github.com/parmaworld/parmaworld-api/httperr"
)

// ClaimsKey is where RequireAuth stores the verified claims in the gin
// context.
const ClaimsKey = "claims"

func abortWithError(ctx *gin.Context, apiErr *httperr.Error) {
	ctx.AbortWithStatusJSON(apiErr.Status, gin.H{"message": apiErr.Message})
}

// RequireAuth verifies the Bearer token on the Authorization header. A
// missing header, a malformed header and a failed verification all collapse
// to 401.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(ctx, httperr.ErrUnauthenticated)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortWithError(ctx, httperr.ErrUnauthenticated)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			abortWithError(ctx, httperr.ErrUnauthenticated)
			return
		}

		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}

// ClaimsFrom pulls the verified claims out of the gin context. The second
// return is false on routes that skipped RequireAuth.
func ClaimsFrom(ctx *gin.Context) (auth.Claims, bool) {
	value, exists := ctx.Get(ClaimsKey)
	if !exists {
		return auth.Claims{}, false
	}
	claims, ok := value.(auth.Claims)
	return claims, ok
}
