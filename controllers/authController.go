package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/auth"
	"github.com/parmaworld/parmaworld-api/httperr"
	"go.uber.org/zap"
)

// AuthController issues tokens for externally authenticated identities. The
// client posts its identity (at least an email) and gets back a short-lived
// signed token.
type AuthController struct {
	tokens *auth.TokenService
	log    *zap.Logger
}

func NewAuthController(tokens *auth.TokenService, log *zap.Logger) *AuthController {
	return &AuthController{tokens: tokens, log: log}
}

// IssueToken handles POST /jwt.
func (c *AuthController) IssueToken(ctx *gin.Context) {
	var identity map[string]any
	if err := ctx.ShouldBindJSON(&identity); err != nil {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	email, _ := identity["email"].(string)
	if email == "" {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	token, err := c.tokens.Issue(identity)
	if err != nil {
		c.log.Error("failed to sign token", zap.Error(err))
		sendAPIError(ctx, httperr.ErrInternal)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": token})
}
