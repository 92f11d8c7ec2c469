package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/database"
	"github.com/parmaworld/parmaworld-api/httperr"
	"github.com/parmaworld/parmaworld-api/middlewares"
	"github.com/parmaworld/parmaworld-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type UserController struct {
	users database.Store[models.User]
	log   *zap.Logger
}

func NewUserController(users database.Store[models.User], log *zap.Logger) *UserController {
	return &UserController{users: users, log: log}
}

// GetUsers handles GET /users.
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.users.Find(ctx.Request.Context(), nil)
	if err != nil {
		respondError(ctx, c.log, err, "failed to list users")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, users)
}

// CreateUser handles POST /users with upsert-by-email semantics: when the
// email already exists the stored record comes back unchanged, so signing
// in twice is idempotent. The unique index on email closes the window
// between the lookup and the insert; a concurrent first sign-in surfaces as
// a duplicate key and resolves to the winner's record.
func (c *UserController) CreateUser(ctx *gin.Context) {
	var user models.User
	if err := ctx.ShouldBindJSON(&user); err != nil {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}
	if user.Role == "" {
		user.Role = models.RoleGuest
	}
	if !user.Role.Valid() {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	existing, err := c.users.FindOne(ctx.Request.Context(), bson.M{"email": user.Email})
	if err != nil {
		respondError(ctx, c.log, err, "failed to look up user")
		return
	}
	if existing != nil {
		sendJSONResponse(ctx, http.StatusCreated, existing)
		return
	}

	id, err := c.users.InsertOne(ctx.Request.Context(), &user)
	if err != nil {
		if database.IsDuplicateKey(err) {
			winner, findErr := c.users.FindOne(ctx.Request.Context(), bson.M{"email": user.Email})
			if findErr == nil && winner != nil {
				sendJSONResponse(ctx, http.StatusCreated, winner)
				return
			}
		}
		respondError(ctx, c.log, err, "failed to create user")
		return
	}

	user.ID = id
	sendJSONResponse(ctx, http.StatusCreated, &user)
}

// UpdateUserRole handles PATCH /users/:id. Admin only; the role must belong
// to the closed enumeration.
func (c *UserController) UpdateUserRole(ctx *gin.Context) {
	var body struct {
		Role models.Role `json:"role" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil || !body.Role.Valid() {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	result, err := c.users.UpdateByID(ctx.Request.Context(), ctx.Param("id"), bson.M{"role": body.Role})
	if err != nil {
		respondError(ctx, c.log, err, "failed to update user role")
		return
	}
	if result.Matched == 0 {
		sendAPIError(ctx, httperr.ErrNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Role updated successfully."})
}

// CheckAdmin handles GET /users/admin/:email. Callers may only ask about
// themselves.
func (c *UserController) CheckAdmin(ctx *gin.Context) {
	c.checkRole(ctx, models.RoleAdmin, "admin")
}

// CheckSeller handles GET /users/seller/:email.
func (c *UserController) CheckSeller(ctx *gin.Context) {
	c.checkRole(ctx, models.RoleSeller, "seller")
}

func (c *UserController) checkRole(ctx *gin.Context, role models.Role, field string) {
	email := ctx.Param("email")
	claims, ok := middlewares.ClaimsFrom(ctx)
	if !ok || claims.Email != email {
		sendAPIError(ctx, httperr.ErrForbidden)
		return
	}

	user, err := c.users.FindOne(ctx.Request.Context(), bson.M{"email": email})
	if err != nil {
		respondError(ctx, c.log, err, "failed to look up user")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{field: user != nil && user.Role == role})
}

// UpdateProfile handles PUT /user/updateProfile/:email. Only the profile
// fields the owner controls are merged.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var body struct {
		Name  string `json:"name"`
		Photo string `json:"photo"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	email := ctx.Param("email")
	claims, ok := middlewares.ClaimsFrom(ctx)
	if !ok || claims.Email != email {
		sendAPIError(ctx, httperr.ErrForbidden)
		return
	}

	result, err := c.users.UpdateOne(ctx.Request.Context(), bson.M{"email": email}, bson.M{"name": body.Name, "photo": body.Photo})
	if err != nil {
		respondError(ctx, c.log, err, "failed to update profile")
		return
	}
	if result.Matched == 0 {
		sendAPIError(ctx, httperr.ErrNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully."})
}
