package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/database"
	"github.com/parmaworld/parmaworld-api/httperr"
	"github.com/parmaworld/parmaworld-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type OrderController struct {
	orders    database.Store[models.Order]
	medicines database.Store[models.Medicine]
	log       *zap.Logger
}

func NewOrderController(orders database.Store[models.Order], medicines database.Store[models.Medicine], log *zap.Logger) *OrderController {
	return &OrderController{orders: orders, medicines: medicines, log: log}
}

// GetOrders handles GET /orders: the raw documents, no enrichment.
func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.orders.Find(ctx.Request.Context(), nil)
	if err != nil {
		respondError(ctx, c.log, err, "failed to list orders")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, orders)
}

// CreateOrder handles POST /orders. Every field the payment flow produced
// must be present; the stored document gains only the server-side order
// date.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var body struct {
		Buyer         string             `json:"buyer"`
		TotalAmount   float64            `json:"totalAmount"`
		PaymentStatus string             `json:"paymentStatus"`
		TransactionID string             `json:"transactionId"`
		MedicineItem  []models.OrderItem `json:"medicineItem"`
		Status        *string            `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}

	if body.Buyer == "" || body.TotalAmount <= 0 || body.PaymentStatus == "" ||
		body.TransactionID == "" || len(body.MedicineItem) == 0 || body.Status == nil {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}

	order := models.Order{
		Buyer:         body.Buyer,
		TotalAmount:   body.TotalAmount,
		PaymentStatus: body.PaymentStatus,
		TransactionID: body.TransactionID,
		MedicineItem:  body.MedicineItem,
		Status:        *body.Status,
		OrderDate:     time.Now(),
	}

	id, err := c.orders.InsertOne(ctx.Request.Context(), &order)
	if err != nil {
		respondError(ctx, c.log, err, "failed to save order")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"success": true, "orderId": id.Hex()})
}

// UpdateStatus handles PATCH /orders/:id. Admin only; orders are immutable
// except for this field.
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	result, err := c.orders.UpdateByID(ctx.Request.Context(), ctx.Param("id"), bson.M{"status": body.Status})
	if err != nil {
		respondError(ctx, c.log, err, "failed to update order status")
		return
	}
	if result.Matched == 0 {
		sendAPIError(ctx, httperr.ErrNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Status updated successfully."})
}

// GetOrderDetails handles GET /order-details, optionally filtered to one
// buyer, with every line item enriched from the current catalog.
func (c *OrderController) GetOrderDetails(ctx *gin.Context) {
	filter := bson.M{}
	if email := ctx.Query("email"); email != "" {
		filter["buyer"] = email
	}

	orders, err := c.orders.Find(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, c.log, err, "failed to fetch orders")
		return
	}

	enriched, err := c.enrichOrders(ctx.Request.Context(), orders, "")
	if err != nil {
		respondError(ctx, c.log, err, "failed to enrich orders")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, enriched)
}

// GetSellerOrderDetails handles GET /order-details-seller: every order is
// reduced to the line items belonging to the given seller, and orders left
// with no items are dropped. No email matches no items, so the response is
// an empty list, never the unfiltered view.
func (c *OrderController) GetSellerOrderDetails(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		sendJSONResponse(ctx, http.StatusOK, []models.Order{})
		return
	}

	orders, err := c.orders.Find(ctx.Request.Context(), bson.M{})
	if err != nil {
		respondError(ctx, c.log, err, "failed to fetch orders")
		return
	}

	enriched, err := c.enrichOrders(ctx.Request.Context(), orders, email)
	if err != nil {
		respondError(ctx, c.log, err, "failed to enrich orders")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, enriched)
}

// enrichOrders walks every line item and attaches the current item name,
// seller email and total price from the catalog. Items whose medicine no
// longer exists (or whose reference is malformed) are skipped with a
// warning instead of failing the whole request. With sellerEmail set, only
// that seller's items survive and emptied orders are dropped.
func (c *OrderController) enrichOrders(ctx context.Context, orders []models.Order, sellerEmail string) ([]models.Order, error) {
	enriched := []models.Order{}

	for _, order := range orders {
		items := []models.OrderItem{}

		for _, item := range order.MedicineItem {
			medicine, err := c.medicines.FindByID(ctx, item.MedicineID)
			if errors.Is(err, httperr.ErrInvalidID) {
				c.log.Warn("order has malformed medicine reference",
					zap.String("orderId", order.ID.Hex()),
					zap.String("medicineId", item.MedicineID))
				continue
			}
			if err != nil {
				return nil, err
			}
			if medicine == nil {
				c.log.Warn("order references missing medicine",
					zap.String("orderId", order.ID.Hex()),
					zap.String("medicineId", item.MedicineID))
				continue
			}

			if sellerEmail != "" && medicine.Email != sellerEmail {
				continue
			}

			item.ItemName = medicine.ItemName
			item.Email = medicine.Email
			item.TotalPrice = medicine.PerUnitPrice * float64(item.Quantity)
			items = append(items, item)
		}

		if sellerEmail != "" && len(items) == 0 {
			continue
		}

		order.MedicineItem = items
		enriched = append(enriched, order)
	}

	return enriched, nil
}
