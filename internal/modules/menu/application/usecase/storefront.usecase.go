package usecase

import (
	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

// MenuView is everything the storefront renders on load.
type MenuView struct {
	Language      domain.Language         `json:"language"`
	Direction     string                  `json:"direction"`
	Currency      string                  `json:"currency"`
	Name          string                  `json:"name"`
	Location      string                  `json:"location"`
	Open          bool                    `json:"open"`
	Config        domain.RestaurantConfig `json:"config"`
	Categories    []domain.Category       `json:"categories"`
	Products      []domain.Product        `json:"products"`
	MostRequested []domain.Product        `json:"mostRequested"`
	SocialLinks   []domain.SocialLink     `json:"socialLinks"`
	Phrases       []string                `json:"phrases"`
	CartCount     int                     `json:"cartCount"`
}

// Storefront answers read-only queries for the public views.
type Storefront struct {
	state *Container
}

func NewStorefront(state *Container) *Storefront {
	return &Storefront{state: state}
}

func (s *Storefront) Menu() MenuView {
	c := s.state
	c.mu.Lock()
	defer c.mu.Unlock()

	lang := c.language
	products := append([]domain.Product{}, c.products...)
	return MenuView{
		Language:      lang,
		Direction:     lang.Direction(),
		Currency:      lang.Currency(),
		Name:          c.config.Name(lang),
		Location:      c.config.Location(lang),
		Open:          c.config.IsOpen(c.clock.Now()),
		Config:        c.config.Clone(),
		Categories:    append([]domain.Category{}, c.categories...),
		Products:      products,
		MostRequested: domain.MostRequestedProducts(products),
		SocialLinks:   c.config.ActiveSocialLinks(),
		Phrases:       domain.TeaserPhrases(),
		CartCount:     domain.CartCount(c.cart),
	}
}

// ProductsInCategory lists a category's products. Unknown categories yield ErrCategoryNotFound.
func (s *Storefront) ProductsInCategory(categoryID string) ([]domain.Product, error) {
	c := s.state
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, category := range c.categories {
		if category.ID == categoryID {
			return domain.ProductsInCategory(c.products, categoryID), nil
		}
	}
	return nil, ErrCategoryNotFound
}

// IsOpen evaluates the store status now.
func (s *Storefront) IsOpen() bool {
	cfg := s.state.Config()
	return cfg.IsOpen(s.state.Now())
}
