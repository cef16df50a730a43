// Package media inspects admin image uploads before they are handed to
// object storage.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

const DefaultMaxBytes = 5 * 1024 * 1024

var (
	ErrTooLarge        = errors.New("media: image exceeds size limit")
	ErrUnsupportedType = errors.New("media: unsupported content type")
)

type Upload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

// Result carries the validated bytes plus the dimensions decoded from them.
type Result struct {
	Bytes       []byte
	ContentType string
	Width       int
	Height      int
}

type Processor interface {
	Process(upload Upload) (*Result, error)
}

// ImageProcessor accepts JPEG, PNG, GIF and WebP uploads, verifies the data
// actually decodes as an image and enforces the configured byte limit.
type ImageProcessor struct {
	maxBytes int64
}

func NewImageProcessor(maxBytes int64) *ImageProcessor {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &ImageProcessor{maxBytes: maxBytes}
}

func (p *ImageProcessor) Process(upload Upload) (*Result, error) {
	if upload.Reader == nil {
		return nil, fmt.Errorf("media: empty reader")
	}
	if upload.Size > p.maxBytes {
		return nil, ErrTooLarge
	}

	// LimitReader catches clients that lie about Size in the multipart part.
	data, err := io.ReadAll(io.LimitReader(upload.Reader, p.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("media: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("media: empty image data")
	}
	if int64(len(data)) > p.maxBytes {
		return nil, ErrTooLarge
	}

	contentType := normalizeContentType(upload.ContentType, upload.FileName)
	if !allowedType(contentType) {
		return nil, ErrUnsupportedType
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("media: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	return &Result{
		Bytes:       data,
		ContentType: contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

func allowedType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}

func normalizeContentType(value, fileName string) string {
	ct := strings.ToLower(strings.TrimSpace(value))
	if ct != "" {
		if ct == "image/jpg" {
			return "image/jpeg"
		}
		return ct
	}
	ext := strings.ToLower(strings.TrimSpace(filepath.Ext(fileName)))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	}
	if ext != "" {
		if mt := mime.TypeByExtension(ext); mt != "" {
			return strings.ToLower(mt)
		}
	}
	return "image/jpeg"
}
