package infrastructure

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

// WriteCatalogXLSX exports products with their category names in both languages.
// Products pointing at a deleted category keep the id with empty names.
func WriteCatalogXLSX(w io.Writer, categories []domain.Category, products []domain.Product) error {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headers := []string{
		"ID", "CategoryID", "CategoryAR", "CategoryEN", "NameAR", "NameEN",
		"DescriptionAR", "DescriptionEN", "Price", "MostRequested",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		category := byID[p.CategoryID]
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.CategoryID)
		row.AddCell().SetValue(category.NameAr)
		row.AddCell().SetValue(category.NameEn)
		row.AddCell().SetValue(p.NameAr)
		row.AddCell().SetValue(p.NameEn)
		row.AddCell().SetValue(p.DescriptionAr)
		row.AddCell().SetValue(p.DescriptionEn)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.MostRequested)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
