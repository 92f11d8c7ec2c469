package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/database"
	"github.com/parmaworld/parmaworld-api/httperr"
	"github.com/parmaworld/parmaworld-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// featuredCategoryLimit caps the GET /categories home-page listing.
const featuredCategoryLimit = 6

type CategoryController struct {
	categories database.Store[models.Category]
	log        *zap.Logger
}

func NewCategoryController(categories database.Store[models.Category], log *zap.Logger) *CategoryController {
	return &CategoryController{categories: categories, log: log}
}

// GetCategories handles GET /category: the full list.
func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categories, err := c.categories.Find(ctx.Request.Context(), nil)
	if err != nil {
		respondError(ctx, c.log, err, "failed to list categories")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, categories)
}

// GetFeaturedCategories handles GET /categories: the first six, for the
// home page.
func (c *CategoryController) GetFeaturedCategories(ctx *gin.Context) {
	categories, err := c.categories.Find(ctx.Request.Context(), nil, options.Find().SetLimit(featuredCategoryLimit))
	if err != nil {
		respondError(ctx, c.log, err, "failed to list categories")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, categories)
}

// CreateCategory handles POST /category. Admin only.
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	id, err := c.categories.InsertOne(ctx.Request.Context(), &category)
	if err != nil {
		respondError(ctx, c.log, err, "failed to create category")
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"insertedId": id.Hex()})
}

// UpdateCategory handles PUT /category/:id.
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	var body struct {
		CategoryName  string `json:"categoryName"`
		CategoryImage string `json:"categoryImage"`
		CompanyName   string `json:"companyName"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendAPIError(ctx, httperr.ErrInvalidInput)
		return
	}

	set := bson.M{
		"categoryName":  body.CategoryName,
		"categoryImage": body.CategoryImage,
		"companyName":   body.CompanyName,
	}
	result, err := c.categories.UpdateByID(ctx.Request.Context(), ctx.Param("id"), set)
	if err != nil {
		respondError(ctx, c.log, err, "failed to update category")
		return
	}
	if result.Matched == 0 {
		sendAPIError(ctx, httperr.ErrNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "modifiedCount": result.Modified})
}

// DeleteCategory handles DELETE /category/:id, idempotently.
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	deleted, err := c.categories.DeleteByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.log, err, "failed to delete category")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"deletedCount": deleted})
}
