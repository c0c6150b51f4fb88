package infrastructure

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

// QRCodePNG renders target as a square PNG of the given pixel size.
func QRCodePNG(target string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// WritePoster renders a printable A4 table poster pointing at menuURL.
// Core PDF fonts have no Arabic glyphs, so the poster uses the English texts.
func WritePoster(w io.Writer, cfg domain.RestaurantConfig, menuURL string) error {
	qr, err := QRCodePNG(menuURL, 512)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 18, cfg.Name(domain.LanguageEnglish), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 10, "Scan to see our menu", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qr))
	pdf.ImageOptions("qr", 55, pdf.GetY(), 100, 100, false, imgOpts, 0, "")
	pdf.SetY(pdf.GetY() + 108)

	pdf.SetFont("Helvetica", "", 12)
	if location := cfg.Location(domain.LanguageEnglish); location != "" {
		pdf.CellFormat(0, 8, location, "", 1, "C", false, 0, "")
	}
	if cfg.ShowFooterPhone && cfg.Phone != "" {
		pdf.CellFormat(0, 8, "Phone: "+cfg.Phone, "", 1, "C", false, 0, "")
	}
	if cfg.ShowFooterWhatsApp && cfg.WhatsApp != "" {
		pdf.CellFormat(0, 8, "WhatsApp: +"+cfg.WhatsApp, "", 1, "C", false, 0, "")
	}

	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 10, menuURL, "T", 0, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render poster: %w", err)
	}
	return nil
}
