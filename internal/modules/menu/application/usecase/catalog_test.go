package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

func TestDeleteCategoryLeavesDanglingProducts(t *testing.T) {
	c, publisher := newTestContainer(t, newMemStore())
	editor := NewCatalogEditor(c)

	if err := editor.DeleteCategory(context.Background(), "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, category := range c.Categories() {
		if category.ID == "1" {
			t.Fatalf("category 1 still present")
		}
	}
	var hummus domain.Product
	for _, p := range c.Products() {
		if p.ID == "p1" {
			hummus = p
		}
	}
	if hummus.CategoryID != "1" {
		t.Fatalf("expected product to keep stale category id, got %q", hummus.CategoryID)
	}
	if publisher.count("categories.updated") != 1 || publisher.count("products.updated") != 0 {
		t.Fatalf("only the categories collection should change")
	}
}

func TestUpsertCategory(t *testing.T) {
	c, _ := newTestContainer(t, newMemStore())
	editor := NewCatalogEditor(c)
	ctx := context.Background()

	created, err := editor.UpsertCategory(ctx, domain.Category{NameAr: "شوربات", NameEn: "Soups"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	again, _ := editor.UpsertCategory(ctx, domain.Category{NameEn: "Soups"})
	if again.ID == created.ID {
		t.Fatalf("ids must be unique")
	}

	created.NameEn = "Soup"
	if _, err := editor.UpsertCategory(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}
	categories := c.Categories()
	if categories[6].NameEn != "Soup" || len(categories) != 8 {
		t.Fatalf("expected in-place replace, got %+v", categories)
	}

	if _, err := editor.UpsertCategory(ctx, domain.Category{ID: "missing"}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestUpsertAndDeleteProduct(t *testing.T) {
	c, _ := newTestContainer(t, newMemStore())
	editor := NewCatalogEditor(c)
	ctx := context.Background()

	created, err := editor.UpsertProduct(ctx, domain.Product{CategoryID: "2", NameEn: "Kebab", Price: 30})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := len(c.Products()); got != 6 {
		t.Fatalf("expected 6 products, got %d", got)
	}
	if err := editor.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := editor.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("deleting an absent product should be harmless: %v", err)
	}
	if got := len(c.Products()); got != 5 {
		t.Fatalf("expected 5 products, got %d", got)
	}
	if _, err := editor.UpsertProduct(ctx, domain.Product{ID: "zz"}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
