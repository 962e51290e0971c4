package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kartikmaddali/aura-commerce-demo/models"
)

const brandRule = "oneof=luxeloom urbanmarket aura-wholesale"

// RequestValidator parses and validates the query parameters shared by the
// catalog endpoints.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a RequestValidator.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// ParseBrand validates the optional brand query parameter. Absent means no
// brand filter.
func (rv *RequestValidator) ParseBrand(c *gin.Context) (*models.Brand, error) {
	raw := strings.TrimSpace(c.Query("brand"))
	if raw == "" {
		return nil, nil
	}
	if err := rv.validate.Var(raw, brandRule); err != nil {
		return nil, errors.New("unknown brand: " + raw)
	}
	brand := models.Brand(raw)
	return &brand, nil
}

// ParseFilter parses the full catalog filter set. Invalid numeric and
// boolean values are rejected rather than ignored; page and limit fall back
// to their defaults on bad input.
func (rv *RequestValidator) ParseFilter(c *gin.Context) (models.ProductFilter, error) {
	filter := models.ProductFilter{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 20),
	}

	brand, err := rv.ParseBrand(c)
	if err != nil {
		return filter, err
	}
	filter.Brand = brand

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		filter.Category = &category
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		filter.Search = &search
	}

	if raw := strings.TrimSpace(c.Query("minPrice")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("invalid minPrice value")
		}
		filter.MinPrice = &parsed
	}
	if raw := strings.TrimSpace(c.Query("maxPrice")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("invalid maxPrice value")
		}
		filter.MaxPrice = &parsed
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return filter, errors.New("minPrice must be less than or equal to maxPrice")
	}

	if raw := strings.TrimSpace(c.Query("inStock")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.New("invalid boolean value for 'inStock'")
		}
		filter.InStock = &parsed
	}

	return filter, nil
}

// queryInt parses an integer query parameter, falling back on bad input.
func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}
