package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

// CatalogEditor manages categories and products. Deleting a category leaves its products
// pointing at the stale id.
type CatalogEditor struct {
	state *Container
}

func NewCatalogEditor(state *Container) *CatalogEditor {
	return &CatalogEditor{state: state}
}

// UpsertCategory replaces the category with the same id, or appends it under a new id.
func (e *CatalogEditor) UpsertCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	c := e.state
	c.mu.Lock()
	defer c.mu.Unlock()

	if category.ID == "" {
		category.ID = uuid.NewString()
		c.categories = append(c.categories, category)
		return category, c.persistLocked(ctx, port.KeyCategories)
	}
	for i := range c.categories {
		if c.categories[i].ID == category.ID {
			c.categories[i] = category
			return category, c.persistLocked(ctx, port.KeyCategories)
		}
	}
	return domain.Category{}, ErrCategoryNotFound
}

func (e *CatalogEditor) DeleteCategory(ctx context.Context, id string) error {
	c := e.state
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]domain.Category, 0, len(c.categories))
	for _, category := range c.categories {
		if category.ID != id {
			kept = append(kept, category)
		}
	}
	c.categories = kept
	return c.persistLocked(ctx, port.KeyCategories)
}

// UpsertProduct mirrors UpsertCategory. Price is stored as given.
func (e *CatalogEditor) UpsertProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	c := e.state
	c.mu.Lock()
	defer c.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
		c.products = append(c.products, product)
		return product, c.persistLocked(ctx, port.KeyProducts)
	}
	for i := range c.products {
		if c.products[i].ID == product.ID {
			c.products[i] = product
			return product, c.persistLocked(ctx, port.KeyProducts)
		}
	}
	return domain.Product{}, ErrProductNotFound
}

func (e *CatalogEditor) DeleteProduct(ctx context.Context, id string) error {
	c := e.state
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]domain.Product, 0, len(c.products))
	for _, product := range c.products {
		if product.ID != id {
			kept = append(kept, product)
		}
	}
	c.products = kept
	return c.persistLocked(ctx, port.KeyProducts)
}
