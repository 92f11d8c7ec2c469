package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/database"
	"github.com/parmaworld/parmaworld-api/httperr"
	"github.com/parmaworld/parmaworld-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	stubStore[models.User]
	byEmail map[string]*models.User
	lastSet bson.M
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*models.User{}}
}

func (f *fakeUserStore) FindOne(ctx context.Context, filter bson.M) (*models.User, error) {
	email, _ := filter["email"].(string)
	return f.byEmail[email], nil
}

func (f *fakeUserStore) InsertOne(ctx context.Context, doc *models.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *doc
	stored.ID = id
	f.byEmail[doc.Email] = &stored
	return id, nil
}

func (f *fakeUserStore) UpdateByID(ctx context.Context, id string, set bson.M) (database.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return database.UpdateResult{}, httperr.ErrInvalidID
	}
	for _, user := range f.byEmail {
		if user.ID.Hex() == id {
			f.lastSet = set
			return database.UpdateResult{Matched: 1, Modified: 1}, nil
		}
	}
	return database.UpdateResult{}, nil
}

func newUserRouter(store *fakeUserStore, claimEmail string) *gin.Engine {
	controller := NewUserController(store, testLogger())
	router := gin.New()
	router.POST("/users", withClaims(claimEmail), controller.CreateUser)
	router.PATCH("/users/:id", controller.UpdateUserRole)
	router.GET("/users/admin/:email", withClaims(claimEmail), controller.CheckAdmin)
	router.PUT("/user/updateProfile/:email", withClaims(claimEmail), controller.UpdateProfile)
	return router
}

func TestCreateUserIsIdempotentByEmail(t *testing.T) {
	store := newFakeUserStore()
	router := newUserRouter(store, "a@x.com")

	first := performRequest(router, http.MethodPost, "/users", gin.H{"email": "a@x.com", "name": "A"})
	second := performRequest(router, http.MethodPost, "/users", gin.H{"email": "a@x.com", "name": "A"})

	require.Equal(t, http.StatusCreated, first.Code)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Len(t, store.byEmail, 1)
}

func TestCreateUserDefaultsToGuest(t *testing.T) {
	store := newFakeUserStore()
	router := newUserRouter(store, "b@x.com")

	w := performRequest(router, http.MethodPost, "/users", gin.H{"email": "b@x.com"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.RoleGuest, store.byEmail["b@x.com"].Role)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	router := newUserRouter(newFakeUserStore(), "c@x.com")

	w := performRequest(router, http.MethodPost, "/users", gin.H{"email": "c@x.com", "role": "superuser"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserRole(t *testing.T) {
	store := newFakeUserStore()
	store.byEmail["a@x.com"] = &models.User{ID: primitive.NewObjectID(), Email: "a@x.com", Role: models.RoleGuest}
	router := newUserRouter(store, "admin@x.com")
	id := store.byEmail["a@x.com"].ID.Hex()

	t.Run("valid role", func(t *testing.T) {
		w := performRequest(router, http.MethodPatch, "/users/"+id, gin.H{"role": "seller"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.RoleSeller, store.lastSet["role"])
	})

	t.Run("role outside the enumeration", func(t *testing.T) {
		w := performRequest(router, http.MethodPatch, "/users/"+id, gin.H{"role": "root"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := performRequest(router, http.MethodPatch, "/users/"+primitive.NewObjectID().Hex(), gin.H{"role": "seller"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message": "resource not found"}`, w.Body.String())
	})
}

func TestCheckAdminOnlyForOwnEmail(t *testing.T) {
	store := newFakeUserStore()
	store.byEmail["a@x.com"] = &models.User{Email: "a@x.com", Role: models.RoleAdmin}

	t.Run("own email", func(t *testing.T) {
		router := newUserRouter(store, "a@x.com")
		w := performRequest(router, http.MethodGet, "/users/admin/a@x.com", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin":true`)
	})

	t.Run("someone else's email", func(t *testing.T) {
		router := newUserRouter(store, "b@x.com")
		w := performRequest(router, http.MethodGet, "/users/admin/a@x.com", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"message": "forbidden access"}`, w.Body.String())
	})
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	router := newUserRouter(newFakeUserStore(), "ghost@x.com")

	w := performRequest(router, http.MethodPut, "/user/updateProfile/ghost@x.com", gin.H{"name": "G", "photo": "p.png"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
