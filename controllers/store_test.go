package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/auth"
	"github.com/parmaworld/parmaworld-api/database"
	"github.com/parmaworld/parmaworld-api/httperr"
	"github.com/parmaworld/parmaworld-api/middlewares"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubStore is a no-op Store; fakes embed it and shadow the methods they
// care about.
type stubStore[T any] struct{}

func (stubStore[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	return []T{}, nil
}

func (stubStore[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	return nil, nil
}

func (stubStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, httperr.ErrInvalidID
	}
	return nil, nil
}

func (stubStore[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (stubStore[T]) UpdateByID(ctx context.Context, id string, set bson.M) (database.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return database.UpdateResult{}, httperr.ErrInvalidID
	}
	return database.UpdateResult{}, nil
}

func (stubStore[T]) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (database.UpdateResult, error) {
	return database.UpdateResult{}, nil
}

func (stubStore[T]) DeleteByID(ctx context.Context, id string) (int64, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return 0, httperr.ErrInvalidID
	}
	return 0, nil
}

func (stubStore[T]) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	return 0, nil
}

func (stubStore[T]) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]T, error) {
	return []T{}, nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// withClaims simulates RequireAuth having verified a token for email.
func withClaims(email string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middlewares.ClaimsKey, auth.Claims{Email: email})
		ctx.Next()
	}
}

func performRequest(handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}
