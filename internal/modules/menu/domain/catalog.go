package domain

import "github.com/shopspring/decimal"

// Category groups products on the storefront.
type Category struct {
	ID     string `json:"id"`
	NameAr string `json:"name_ar"`
	NameEn string `json:"name_en"`
	Image  string `json:"image"`
}

// Name returns the localized category name.
func (c Category) Name(lang Language) string {
	return pick(lang, c.NameAr, c.NameEn)
}

// Product is a single menu item. CategoryID may reference a category that no longer exists.
type Product struct {
	ID            string  `json:"id"`
	CategoryID    string  `json:"categoryId"`
	NameAr        string  `json:"name_ar"`
	NameEn        string  `json:"name_en"`
	DescriptionAr string  `json:"description_ar"`
	DescriptionEn string  `json:"description_en"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	MostRequested bool    `json:"mostRequested"`
}

// Name returns the localized product name.
func (p Product) Name(lang Language) string {
	return pick(lang, p.NameAr, p.NameEn)
}

// Description returns the localized product description.
func (p Product) Description(lang Language) string {
	return pick(lang, p.DescriptionAr, p.DescriptionEn)
}

// CartItem is a copy of a product taken when it was added, plus the ordered quantity.
// Later catalog edits do not reach items already in the cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotal sums the line totals of every item.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// CartCount sums the quantities of every item.
func CartCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// ProductsInCategory filters products by category id, keeping catalog order.
func ProductsInCategory(products []Product, categoryID string) []Product {
	out := make([]Product, 0)
	for _, p := range products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// MostRequestedProducts returns the flagged products in catalog order.
func MostRequestedProducts(products []Product) []Product {
	out := make([]Product, 0)
	for _, p := range products {
		if p.MostRequested {
			out = append(out, p)
		}
	}
	return out
}
