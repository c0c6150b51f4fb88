package infrastructure

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var (
	ErrImageTooLarge   = errors.New("image exceeds upload limit")
	ErrUnsupportedType = errors.New("unsupported image type")
)

// ImageEncoder turns uploaded files into inline data URIs. PNG and WebP input is written as PNG
// so transparency survives; other raster formats are re-encoded as JPEG. Vector and icon files
// are embedded as uploaded.
type ImageEncoder struct {
	maxBytes  int64
	maxWidth  int
	maxHeight int
}

func NewImageEncoder(maxBytes int64, maxWidth, maxHeight int) *ImageEncoder {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &ImageEncoder{maxBytes: maxBytes, maxWidth: maxWidth, maxHeight: maxHeight}
}

func (e *ImageEncoder) Encode(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, e.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if int64(len(raw)) > e.maxBytes {
		return "", ErrImageTooLarge
	}

	contentType := http.DetectContentType(raw)
	format := imaging.JPEG
	switch {
	case contentType == "image/png", contentType == "image/webp":
		format = imaging.PNG
	case contentType == "image/jpeg", contentType == "image/gif", contentType == "image/bmp", contentType == "image/tiff":
	case contentType == "image/x-icon":
		return dataURI(contentType, raw), nil
	case isSVG(contentType, raw):
		return dataURI("image/svg+xml", raw), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	if (e.maxWidth > 0 && bounds.Dx() > e.maxWidth) || (e.maxHeight > 0 && bounds.Dy() > e.maxHeight) {
		width, height := e.maxWidth, e.maxHeight
		if width <= 0 {
			width = bounds.Dx()
		}
		if height <= 0 {
			height = bounds.Dy()
		}
		img = imaging.Fit(img, width, height, imaging.Lanczos)
	}

	var buf bytes.Buffer
	mime := "image/jpeg"
	if format == imaging.PNG {
		mime = "image/png"
		err = imaging.Encode(&buf, img, imaging.PNG)
	} else {
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85))
	}
	if err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	return dataURI(mime, buf.Bytes()), nil
}

func dataURI(mime string, raw []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

// isSVG recognises SVG documents, which sniff as text or XML.
func isSVG(contentType string, raw []byte) bool {
	if !strings.HasPrefix(contentType, "text/") {
		return false
	}
	head := raw
	if len(head) > 1024 {
		head = head[:1024]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}
