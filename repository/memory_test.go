package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kartikmaddali/aura-commerce-demo/models"
	"github.com/kartikmaddali/aura-commerce-demo/repository"
)

func seededRepo() *repository.MemoryProductRepository {
	return repository.NewMemoryProductRepository(repository.SeedProducts())
}

func TestFindAllReturnsSeedInOrder(t *testing.T) {
	repo := seededRepo()

	products, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 9)
	assert.Equal(t, "luxeloom-001", products[0].ID)
	assert.Equal(t, "aura-wholesale-003", products[8].ID)
}

func TestFindAllReturnsSnapshot(t *testing.T) {
	repo := seededRepo()

	products, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	products[0].Name = "mutated"

	again, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Silk Evening Gown", again[0].Name)
}

func TestFindByID(t *testing.T) {
	repo := seededRepo()

	product, err := repo.FindByID(context.Background(), "urbanmarket-002")
	assert.NoError(t, err)
	assert.Equal(t, "Graphic T-Shirt", product.Name)

	_, err = repo.FindByID(context.Background(), "missing-001")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	repo := seededRepo()

	err := repo.Create(context.Background(), &models.Product{ID: "luxeloom-001", Name: "Clone"})
	assert.ErrorIs(t, err, repository.ErrDuplicateID)

	err = repo.Create(context.Background(), &models.Product{ID: "luxeloom-999", Name: "New"})
	assert.NoError(t, err)

	product, err := repo.FindByID(context.Background(), "luxeloom-999")
	assert.NoError(t, err)
	assert.Equal(t, "New", product.Name)
}

func TestUpdateReplacesStoredProduct(t *testing.T) {
	repo := seededRepo()

	product, err := repo.FindByID(context.Background(), "luxeloom-002")
	assert.NoError(t, err)
	product.Price = 799.99

	assert.NoError(t, repo.Update(context.Background(), product))

	updated, err := repo.FindByID(context.Background(), "luxeloom-002")
	assert.NoError(t, err)
	assert.Equal(t, 799.99, updated.Price)

	err = repo.Update(context.Background(), &models.Product{ID: "missing-001"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteReindexesRemainingProducts(t *testing.T) {
	repo := seededRepo()

	assert.NoError(t, repo.Delete(context.Background(), "luxeloom-001"))

	_, err := repo.FindByID(context.Background(), "luxeloom-001")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// products after the removed one stay reachable by id
	product, err := repo.FindByID(context.Background(), "aura-wholesale-003")
	assert.NoError(t, err)
	assert.Equal(t, "Promotional Tote Bags", product.Name)

	products, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 8)

	err = repo.Delete(context.Background(), "luxeloom-001")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
