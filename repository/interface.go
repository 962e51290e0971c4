package repository

import (
	"context"

	"github.com/kartikmaddali/aura-commerce-demo/models"
)

// ProductRepository defines the catalog storage operations. The demo ships an
// in-memory implementation; the interface keeps persistence pluggable without
// touching handlers.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}
