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

type AdvertisementController struct {
	ads database.Store[models.Advertisement]
	log *zap.Logger
}

func NewAdvertisementController(ads database.Store[models.Advertisement], log *zap.Logger) *AdvertisementController {
	return &AdvertisementController{ads: ads, log: log}
}

// GetAdvertisements handles GET /advertisements.
func (c *AdvertisementController) GetAdvertisements(ctx *gin.Context) {
	ads, err := c.ads.Find(ctx.Request.Context(), nil)
	if err != nil {
		respondError(ctx, c.log, err, "failed to list advertisements")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, ads)
}

// GetAdvertisementsBySeller handles GET /advertisements/:email.
func (c *AdvertisementController) GetAdvertisementsBySeller(ctx *gin.Context) {
	ads, err := c.ads.Find(ctx.Request.Context(), bson.M{"seller": ctx.Param("email")})
	if err != nil {
		respondError(ctx, c.log, err, "failed to list advertisements")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, ads)
}

// CreateAdvertisement handles POST /advertisements. Seller only; new
// advertisements always start pending regardless of what was submitted, and
// the seller is stamped from the verified claims.
func (c *AdvertisementController) CreateAdvertisement(ctx *gin.Context) {
	var ad models.Advertisement
	if err := ctx.ShouldBindJSON(&ad); err != nil {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	if claims, ok := middlewares.ClaimsFrom(ctx); ok {
		ad.Seller = claims.Email
	}
	ad.Status = models.AdStatusPending

	id, err := c.ads.InsertOne(ctx.Request.Context(), &ad)
	if err != nil {
		respondError(ctx, c.log, err, "failed to create advertisement")
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// UpdateStatus handles PATCH /advertisements/:id. Admin only; only the
// status field moves.
func (c *AdvertisementController) UpdateStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	result, err := c.ads.UpdateByID(ctx.Request.Context(), ctx.Param("id"), bson.M{"status": body.Status})
	if err != nil {
		respondError(ctx, c.log, err, "failed to update advertisement status")
		return
	}
	if result.Matched == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Advertisement not found.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Status updated successfully."})
}
