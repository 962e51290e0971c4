package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/kartikmaddali/aura-commerce-demo/errors"
	"github.com/kartikmaddali/aura-commerce-demo/middleware"
	"github.com/kartikmaddali/aura-commerce-demo/models"
	"github.com/kartikmaddali/aura-commerce-demo/services"
)

// ProductController exposes the catalog endpoints.
type ProductController struct {
	products services.ProductService
	validate *RequestValidator
	logger   *zap.Logger
}

// NewProductController creates a ProductController.
func NewProductController(products services.ProductService, logger *zap.Logger) *ProductController {
	return &ProductController{
		products: products,
		validate: NewRequestValidator(),
		logger:   logger,
	}
}

// List handles GET /api/products with optional filters and pagination.
func (pc *ProductController) List(c *gin.Context) {
	filter, err := pc.validate.ParseFilter(c)
	if err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	products, pagination, svcErr := pc.products.List(c.Request.Context(), filter)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   products,
		"pagination": pagination,
	})
}

// Search handles GET /api/products/search?q=&brand=.
func (pc *ProductController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		apperrors.Abort(c, apperrors.NewValidation("Query parameter 'q' is required"))
		return
	}

	brand, err := pc.validate.ParseBrand(c)
	if err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	products, svcErr := pc.products.Search(c.Request.Context(), query, brand)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"products": products,
		"total":    len(products),
	})
}

// Categories handles GET /api/products/categories?brand=.
func (pc *ProductController) Categories(c *gin.Context) {
	brand, err := pc.validate.ParseBrand(c)
	if err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	categories, svcErr := pc.products.Categories(c.Request.Context(), brand)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Get handles GET /api/products/:id.
func (pc *ProductController) Get(c *gin.Context) {
	product, svcErr := pc.products.Get(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create handles POST /api/products (admin only).
func (pc *ProductController) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	product, svcErr := pc.products.Create(c.Request.Context(), &req)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	pc.logger.Info("product created",
		zap.String("id", product.ID),
		zap.String("brand", string(product.Brand)),
	)
	c.JSON(http.StatusCreated, product)
}

// Update handles PUT /api/products/:id (admin only).
func (pc *ProductController) Update(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Abort(c, apperrors.NewValidation(err.Error()))
		return
	}

	product, svcErr := pc.products.Update(c.Request.Context(), c.Param("id"), &req)
	if svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/products/:id (admin only).
func (pc *ProductController) Delete(c *gin.Context) {
	id := c.Param("id")
	if svcErr := pc.products.Delete(c.Request.Context(), id); svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	pc.logger.Info("product deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted",
	})
}

// AddToWishlist handles POST /api/products/:id/wishlist.
func (pc *ProductController) AddToWishlist(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	if svcErr := pc.products.AddToWishlist(c.Request.Context(), user, c.Param("id")); svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Added to wishlist",
	})
}

// RemoveFromWishlist handles DELETE /api/products/:id/wishlist.
func (pc *ProductController) RemoveFromWishlist(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Abort(c, apperrors.ErrMissingToken)
		return
	}

	if svcErr := pc.products.RemoveFromWishlist(c.Request.Context(), user, c.Param("id")); svcErr != nil {
		apperrors.Abort(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Removed from wishlist",
	})
}
