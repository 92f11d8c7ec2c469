package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/httperr"
	"go.uber.org/zap"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// sendAPIError renders a taxonomy error with its canonical status and
// caller-safe message.
func sendAPIError(ctx *gin.Context, apiErr *httperr.Error) {
	sendErrorResponse(ctx, apiErr.Status, apiErr.Message)
}

// respondError maps taxonomy errors to their status and caller-safe message.
// Anything else is an unexpected store failure: logged server-side, generic
// message to the caller, never retried.
func respondError(ctx *gin.Context, log *zap.Logger, err error, logMsg string) {
	var apiErr *httperr.Error
	if errors.As(err, &apiErr) {
		sendAPIError(ctx, apiErr)
		return
	}
	log.Error(logMsg, zap.Error(err))
	sendAPIError(ctx, httperr.ErrInternal)
}
