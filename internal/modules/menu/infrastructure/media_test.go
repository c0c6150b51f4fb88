package infrastructure

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/tealeg/xlsx"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

func samplePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode sample: %v", err)
	}
	return buf.Bytes()
}

func TestImageEncoderKeepsPNGAndFits(t *testing.T) {
	t.Parallel()
	encoder := NewImageEncoder(1<<20, 100, 100)

	uri, err := encoder.Encode(bytes.NewReader(samplePNG(t, 400, 200)))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected prefix %q", uri[:30])
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("expected 100x50, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestImageEncoderRejects(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		payload []byte
		max     int64
		wantErr error
	}{
		{name: "too large", payload: samplePNG(t, 10, 10), max: 10, wantErr: ErrImageTooLarge},
		{name: "not an image", payload: []byte("hello, plain text"), max: 1 << 20, wantErr: ErrUnsupportedType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewImageEncoder(tc.max, 0, 0).Encode(bytes.NewReader(tc.payload))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

// 1x1 lossless WebP.
const sampleWebP = "UklGRhoAAABXRUJQVlA4TA0AAAAvAAAAEAcQERGIiP4HAA=="

func TestImageEncoderFormats(t *testing.T) {
	t.Parallel()
	webp, err := base64.StdEncoding.DecodeString(sampleWebP)
	if err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="8" height="8"><rect width="8" height="8"/></svg>`)
	icon := append([]byte{0x00, 0x00, 0x01, 0x00}, bytes.Repeat([]byte{0x10}, 16)...)

	cases := []struct {
		name    string
		payload []byte
		prefix  string
		raw     bool
	}{
		{name: "webp becomes png", payload: webp, prefix: "data:image/png;base64,"},
		{name: "svg kept as uploaded", payload: svg, prefix: "data:image/svg+xml;base64,", raw: true},
		{name: "icon kept as uploaded", payload: icon, prefix: "data:image/x-icon;base64,", raw: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uri, err := NewImageEncoder(1<<20, 0, 0).Encode(bytes.NewReader(tc.payload))
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if !strings.HasPrefix(uri, tc.prefix) {
				t.Fatalf("expected prefix %q, got %q", tc.prefix, uri)
			}
			if tc.raw && strings.TrimPrefix(uri, tc.prefix) != base64.StdEncoding.EncodeToString(tc.payload) {
				t.Fatalf("expected payload to be embedded unchanged")
			}
		})
	}
}

func TestQRCodeAndPoster(t *testing.T) {
	t.Parallel()
	qr, err := QRCodePNG("https://menu.example", 128)
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	if !bytes.HasPrefix(qr, []byte("\x89PNG")) {
		t.Fatalf("expected png output")
	}

	var buf bytes.Buffer
	if err := WritePoster(&buf, domain.DefaultConfig(), "https://menu.example"); err != nil {
		t.Fatalf("poster: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected pdf output")
	}
}

func TestWriteCatalogXLSX(t *testing.T) {
	t.Parallel()
	categories := domain.DefaultCategories()[1:]
	products := domain.DefaultProducts()

	var buf bytes.Buffer
	if err := WriteCatalogXLSX(&buf, categories, products); err != nil {
		t.Fatalf("export: %v", err)
	}
	file, err := xlsx.OpenBinary(buf.Bytes())
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	sheet := file.Sheets[0]
	if len(sheet.Rows) != len(products)+1 {
		t.Fatalf("expected %d rows, got %d", len(products)+1, len(sheet.Rows))
	}
	first := sheet.Rows[1]
	if first.Cells[0].String() != "p1" || first.Cells[2].String() != "" {
		t.Fatalf("dangling category should export empty names, got %q %q", first.Cells[0].String(), first.Cells[2].String())
	}
	if sheet.Rows[2].Cells[3].String() != "Main Courses" {
		t.Fatalf("expected category name, got %q", sheet.Rows[2].Cells[3].String())
	}
}
