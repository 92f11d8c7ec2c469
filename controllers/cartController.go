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

type CartController struct {
	cart database.Store[models.CartItem]
	log  *zap.Logger
}

func NewCartController(cart database.Store[models.CartItem], log *zap.Logger) *CartController {
	return &CartController{cart: cart, log: log}
}

// GetCart handles GET /cart/:email.
func (c *CartController) GetCart(ctx *gin.Context) {
	items, err := c.cart.Find(ctx.Request.Context(), bson.M{"email": ctx.Param("email")})
	if err != nil {
		respondError(ctx, c.log, err, "failed to fetch cart")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, items)
}

// AddToCart handles POST /cart. The initial total is price times quantity,
// the same derivation UpdateQuantity maintains afterwards.
func (c *CartController) AddToCart(ctx *gin.Context) {
	var item models.CartItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}
	if item.Quantity < 0 {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}
	item.TotalPrice = item.Price * float64(item.Quantity)

	id, err := c.cart.InsertOne(ctx.Request.Context(), &item)
	if err != nil {
		respondError(ctx, c.log, err, "failed to add cart item")
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// UpdateQuantity handles PUT /cart/:id. TotalPrice is recomputed from the
// stored unit price on every quantity change and written alongside it.
func (c *CartController) UpdateQuantity(ctx *gin.Context) {
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil || *body.Quantity < 0 {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	item, err := c.cart.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, err, "failed to fetch cart item")
		return
	}
	if item == nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not found")
		return
	}

	quantity := *body.Quantity
	totalPrice := item.Price * float64(quantity)

	result, err := c.cart.UpdateByID(ctx.Request.Context(), ctx.Param("id"), bson.M{
		"quantity":   quantity,
		"totalPrice": totalPrice,
	})
	if err != nil {
		respondError(ctx, c.log, err, "failed to update cart item")
		return
	}
	if result.Matched == 0 {
		// Deleted between the read and the write.
		sendErrorResponse(ctx, http.StatusNotFound, "Item not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Quantity updated successfully!"})
}

// RemoveItem handles DELETE /cart/:id, idempotently.
func (c *CartController) RemoveItem(ctx *gin.Context) {
	deleted, err := c.cart.DeleteByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, err, "failed to remove cart item")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"deletedCount": deleted})
}

// ClearCart handles DELETE /cart, removing only the caller's items.
func (c *CartController) ClearCart(ctx *gin.Context) {
	claims, ok := middlewares.ClaimsFrom(ctx)
	if !ok {
		sendAPIError(ctx, httperr.ErrUnauthenticated)
		return
	}

	deleted, err := c.cart.DeleteMany(ctx.Request.Context(), bson.M{"email": claims.Email})
	if err != nil {
		respondError(ctx, c.log, err, "failed to clear cart")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"deletedCount": deleted})
}
