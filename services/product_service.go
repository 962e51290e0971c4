package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/kartikmaddali/aura-commerce-demo/errors"
	"github.com/kartikmaddali/aura-commerce-demo/models"
	"github.com/kartikmaddali/aura-commerce-demo/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// ProductService implements the catalog operations over the product
// repository.
type ProductService interface {
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, models.Pagination, *apperrors.Error)
	Get(ctx context.Context, id string) (*models.Product, *apperrors.Error)
	Search(ctx context.Context, query string, brand *models.Brand) ([]models.Product, *apperrors.Error)
	Categories(ctx context.Context, brand *models.Brand) ([]string, *apperrors.Error)
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *apperrors.Error)
	Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, *apperrors.Error)
	Delete(ctx context.Context, id string) *apperrors.Error
	AddToWishlist(ctx context.Context, user *models.User, id string) *apperrors.Error
	RemoveFromWishlist(ctx context.Context, user *models.User, id string) *apperrors.Error
}

type productServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewProductService creates a ProductService backed by the given repository.
func NewProductService(repo repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, logger: logger}
}

// List applies the filter chain as a short-circuiting conjunction over the
// collection, then paginates. Absent parameters apply no filter; page and
// limit clamp to 1 and 20.
func (s *productServiceImpl) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, models.Pagination, *apperrors.Error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, models.Pagination{}, apperrors.NewInternal("Failed to fetch products", err)
	}

	filtered := make([]models.Product, 0, len(all))
	for _, p := range all {
		if matchesFilter(&p, &filter) {
			filtered = append(filtered, p)
		}
	}

	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	total := len(filtered)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	pagination := models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
	return filtered[start:end], pagination, nil
}

func matchesFilter(p *models.Product, f *models.ProductFilter) bool {
	if f.Brand != nil && p.Brand != *f.Brand {
		return false
	}
	if f.Category != nil && !strings.EqualFold(p.Category, *f.Category) {
		return false
	}
	if f.Search != nil && !matchesSearch(p, *f.Search) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against name,
// description and tags.
func matchesSearch(p *models.Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Get returns a single product by id.
func (s *productServiceImpl) Get(ctx context.Context, id string) (*models.Product, *apperrors.Error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFound("Product not found")
	}
	return product, nil
}

// Search runs the free-text matcher with an optional brand filter, without
// pagination.
func (s *productServiceImpl) Search(ctx context.Context, query string, brand *models.Brand) ([]models.Product, *apperrors.Error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to fetch products", err)
	}

	results := make([]models.Product, 0)
	for _, p := range all {
		if brand != nil && p.Brand != *brand {
			continue
		}
		if matchesSearch(&p, query) {
			results = append(results, p)
		}
	}
	return results, nil
}

// Categories returns the distinct category names in insertion order,
// optionally restricted to a brand.
func (s *productServiceImpl) Categories(ctx context.Context, brand *models.Brand) ([]string, *apperrors.Error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to fetch products", err)
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range all {
		if brand != nil && p.Brand != *brand {
			continue
		}
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

// Create adds a new product with a brand-prefixed timestamp id. New products
// start in stock with zero quantity, matching the storefront's draft flow.
func (s *productServiceImpl) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, *apperrors.Error) {
	now := time.Now().UTC()
	product := &models.Product{
		ID:               fmt.Sprintf("%s-%d", req.Brand, now.UnixMilli()),
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		Brand:            req.Brand,
		Category:         req.Category,
		Subcategory:      req.Subcategory,
		Images:           orEmpty(req.Images),
		Sizes:            req.Sizes,
		Colors:           req.Colors,
		InStock:          true,
		StockQuantity:    0,
		Tags:             orEmpty(req.Tags),
		Features:         req.Features,
		CareInstructions: req.CareInstructions,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, apperrors.NewInternal("Failed to create product", err)
	}

	s.logger.Info("Product created", zap.String("id", product.ID), zap.String("brand", string(product.Brand)))
	return product, nil
}

// Update shallow-merges the provided fields into the stored product and
// refreshes updatedAt.
func (s *productServiceImpl) Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, *apperrors.Error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFound("Product not found")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Subcategory != nil {
		product.Subcategory = *req.Subcategory
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Sizes != nil {
		product.Sizes = req.Sizes
	}
	if req.Colors != nil {
		product.Colors = req.Colors
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.String("id", id), zap.Error(err))
		return nil, apperrors.NewInternal("Failed to update product", err)
	}

	s.logger.Info("Product updated", zap.String("id", id))
	return product, nil
}

// Delete removes a product by id.
func (s *productServiceImpl) Delete(ctx context.Context, id string) *apperrors.Error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.NewNotFound("Product not found")
	}
	s.logger.Info("Product deleted", zap.String("id", id))
	return nil
}

// AddToWishlist records a wishlist add. Wishlist is disabled for the
// wholesale brand; the add itself is a no-op beyond validation in this demo.
func (s *productServiceImpl) AddToWishlist(ctx context.Context, user *models.User, id string) *apperrors.Error {
	if user.Brand.IsB2B() {
		return apperrors.NewForbidden("Wishlist not available for B2B users")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apperrors.NewNotFound("Product not found")
	}
	s.logger.Info("Product added to wishlist", zap.String("product_id", id), zap.String("user_id", user.ID))
	return nil
}

// RemoveFromWishlist records a wishlist removal, under the same rules as
// AddToWishlist.
func (s *productServiceImpl) RemoveFromWishlist(ctx context.Context, user *models.User, id string) *apperrors.Error {
	if user.Brand.IsB2B() {
		return apperrors.NewForbidden("Wishlist not available for B2B users")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apperrors.NewNotFound("Product not found")
	}
	s.logger.Info("Product removed from wishlist", zap.String("product_id", id), zap.String("user_id", user.ID))
	return nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
