package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/database"
	"github.com/parmaworld/parmaworld-api/httperr"
	"github.com/parmaworld/parmaworld-api/middlewares"
	"github.com/parmaworld/parmaworld-api/models"
	"github.com/parmaworld/parmaworld-api/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MedicineController struct {
	medicines database.Store[models.Medicine]
	uploader  *utils.Uploader
	log       *zap.Logger
}

func NewMedicineController(medicines database.Store[models.Medicine], uploader *utils.Uploader, log *zap.Logger) *MedicineController {
	return &MedicineController{medicines: medicines, uploader: uploader, log: log}
}

// GetAllMedicines handles GET /allMedicines.
func (c *MedicineController) GetAllMedicines(ctx *gin.Context) {
	medicines, err := c.medicines.Find(ctx.Request.Context(), nil)
	if err != nil {
		respondError(ctx, c.log, err, "failed to list medicines")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, medicines)
}

// GetMedicines handles GET /medicines with optional category and seller
// email filters.
func (c *MedicineController) GetMedicines(ctx *gin.Context) {
	filter := bson.M{}
	if category := ctx.Query("category"); category != "" {
		filter["category"] = category
	}
	if email := ctx.Query("email"); email != "" {
		filter["email"] = email
	}

	medicines, err := c.medicines.Find(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, c.log, err, "failed to fetch medicines")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, medicines)
}

// GetDiscountProducts handles GET /discount-products. Legacy documents
// store discount as a string; the pipeline casts those to int inside the
// database and keeps the positive ones.
func (c *MedicineController) GetDiscountProducts(ctx *gin.Context) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"discount": bson.M{"$type": "string"}}}},
		{{Key: "$addFields", Value: bson.M{"discount": bson.M{"$toInt": "$discount"}}}},
		{{Key: "$match", Value: bson.M{"discount": bson.M{"$gt": 0}}}},
	}

	products, err := c.medicines.Aggregate(ctx.Request.Context(), pipeline)
	if err != nil {
		respondError(ctx, c.log, err, "failed to fetch discounted products")
		return
	}
	if len(products) == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "No discounted products found.")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, products)
}

// CreateMedicine handles POST /medicines. Seller only; the seller email is
// stamped from the verified claims so a seller cannot list under another
// account.
func (c *MedicineController) CreateMedicine(ctx *gin.Context) {
	var medicine models.Medicine
	if err := ctx.ShouldBindJSON(&medicine); err != nil {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	if claims, ok := middlewares.ClaimsFrom(ctx); ok {
		medicine.Email = claims.Email
	}

	id, err := c.medicines.InsertOne(ctx.Request.Context(), &medicine)
	if err != nil {
		respondError(ctx, c.log, err, "failed to create medicine")
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// UpdateMedicine handles PUT /medicine/:id as a partial field merge: only
// the submitted fields are written.
func (c *MedicineController) UpdateMedicine(ctx *gin.Context) {
	var update map[string]any
	if err := ctx.ShouldBindJSON(&update); err != nil || len(update) == 0 {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}
	delete(update, "_id")

	result, err := c.medicines.UpdateByID(ctx.Request.Context(), ctx.Param("id"), bson.M(update))
	if err != nil {
		respondError(ctx, c.log, err, "failed to update medicine")
		return
	}
	if result.Matched == 0 {
		sendAPIError(ctx, httperr.ErrNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "modifiedCount": result.Modified})
}

// DeleteMedicine handles DELETE /medicine/:id. Deleting an absent id is a
// no-op, not an error.
func (c *MedicineController) DeleteMedicine(ctx *gin.Context) {
	deleted, err := c.medicines.DeleteByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, err, "failed to delete medicine")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"deletedCount": deleted})
}

// UploadImages handles POST /medicine-images: multipart "images" files go
// to S3, and the public URLs come back. Per-file failures are collected
// rather than failing the batch.
func (c *MedicineController) UploadImages(ctx *gin.Context) {
	if c.uploader == nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "image uploads are not configured")
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No files uploaded")
		return
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			c.log.Warn("failed to open uploaded file", zap.String("filename", file.Filename), zap.Error(openErr))
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		url, uploadErr := c.uploader.Upload(ctx.Request.Context(), file.Filename, file.Header.Get("Content-Type"), f)
		f.Close()

		if uploadErr != nil {
			c.log.Warn("failed to upload file", zap.String("filename", file.Filename), zap.Error(uploadErr))
			failedUploads = append(failedUploads, file.Filename)
			continue
		}
		uploadedUrls = append(uploadedUrls, url)
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}
