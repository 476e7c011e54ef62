package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrEmptyPayload is returned when there are no image bytes to decode.
var ErrEmptyPayload = errors.New("image payload is empty")

// Decode decodes an encoded image held in memory.
//
// Parameters:
//   - data: The encoded image. Supported formats are PNG, JPEG, GIF, BMP, TIFF
//     and WebP; the format is sniffed from the content, not from a name.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the format
//     and color model (e.g., *image.NRGBA, *image.YCbCr, *image.Paletted).
//   - string: The format name reported by the registered decoder ("png", "jpeg", ...).
//   - error: ErrEmptyPayload for empty input, otherwise a wrapped decoder error.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyPayload
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// DecodeDataURI extracts the image bytes from a data-URI-style string.
//
// Everything up to and including the first comma is treated as the header
// (e.g. "data:image/png;base64,") and ignored; the remainder must be standard
// base64. A string without a comma carries no payload and is rejected.
func DecodeDataURI(uri string) ([]byte, error) {
	_, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, fmt.Errorf("data URI has no payload separator: %w", ErrEmptyPayload)
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return data, nil
}

// LoadFile reads an encoded image from disk without decoding it.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return data, nil
}

// ImageInfo contains metadata about an encoded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format name reported by the decoder: "png", "jpeg", "gif",
	// "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// SizeBytes is the size of the encoded payload in bytes.
	SizeBytes int `json:"size_bytes"`
}

// Info reports the dimensions and format of an encoded image.
//
// Only the image header is parsed, so Info is cheap even for large payloads.
func Info(data []byte) (*ImageInfo, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}

	return &ImageInfo{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Format:    format,
		SizeBytes: len(data),
	}, nil
}
