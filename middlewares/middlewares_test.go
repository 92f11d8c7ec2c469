package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/auth"
	"github.com/parmaworld/parmaworld-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUserFinder struct {
	users map[string]*models.User
	err   error
}

func (f *fakeUserFinder) FindOne(ctx context.Context, filter bson.M) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	email, _ := filter["email"].(string)
	return f.users[email], nil
}

func okHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

func get(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	router := gin.New()
	router.GET("/protected", RequireAuth(tokens), okHandler)

	t.Run("missing header", func(t *testing.T) {
		w := get(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message": "Unauthorized Access"}`, w.Body.String())
	})

	t.Run("not a bearer header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(router, "Token abc").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(router, "Bearer nope").Code)
	})

	t.Run("valid token", func(t *testing.T) {
		signed, err := tokens.Issue(map[string]any{"email": "a@x.com"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, get(router, "Bearer "+signed).Code)
	})

	t.Run("expired token", func(t *testing.T) {
		signed, err := auth.NewTokenService("test-secret", -time.Minute).Issue(map[string]any{"email": "a@x.com"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, get(router, "Bearer "+signed).Code)
	})
}

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	users := &fakeUserFinder{users: map[string]*models.User{
		"admin@x.com":  {Email: "admin@x.com", Role: models.RoleAdmin},
		"seller@x.com": {Email: "seller@x.com", Role: models.RoleSeller},
	}}

	router := gin.New()
	router.GET("/protected", RequireAuth(tokens), RequireRole(users, models.RoleAdmin, zap.NewNop()), okHandler)

	tokenFor := func(email string) string {
		signed, err := tokens.Issue(map[string]any{"email": email})
		require.NoError(t, err)
		return "Bearer " + signed
	}

	t.Run("admin passes", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(router, tokenFor("admin@x.com")).Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		w := get(router, tokenFor("seller@x.com"))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"message": "forbidden access"}`, w.Body.String())
	})

	t.Run("valid token for unknown user is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, get(router, tokenFor("ghost@x.com")).Code)
	})

	t.Run("no token at all", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(router, "").Code)
	})
}
