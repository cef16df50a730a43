package media

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestProcessValidPNG(t *testing.T) {
	data := pngBytes(t, 12, 8)
	p := NewImageProcessor(0)

	got, err := p.Process(Upload{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		FileName:    "hero.png",
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if got.Width != 12 || got.Height != 8 {
		t.Fatalf("dimensions = %dx%d, want 12x8", got.Width, got.Height)
	}
	if got.ContentType != "image/png" {
		t.Fatalf("content type = %q", got.ContentType)
	}
}

func TestProcessRejectsOversized(t *testing.T) {
	data := pngBytes(t, 4, 4)
	p := NewImageProcessor(int64(len(data) - 1))

	_, err := p.Process(Upload{Reader: bytes.NewReader(data), Size: int64(len(data))})
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestProcessRejectsUndeclaredOversize(t *testing.T) {
	data := pngBytes(t, 4, 4)
	p := NewImageProcessor(int64(len(data) - 1))

	// Declared size lies; the limited reader still catches it.
	_, err := p.Process(Upload{Reader: bytes.NewReader(data), Size: 1})
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestProcessRejectsNonImage(t *testing.T) {
	p := NewImageProcessor(0)

	_, err := p.Process(Upload{
		Reader:      bytes.NewReader([]byte("<!doctype html>")),
		Size:        15,
		ContentType: "image/png",
	})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestProcessRejectsUnsupportedType(t *testing.T) {
	p := NewImageProcessor(0)

	_, err := p.Process(Upload{
		Reader:      bytes.NewReader([]byte("%PDF-1.4")),
		Size:        8,
		FileName:    "brochure.pdf",
		ContentType: "application/pdf",
	})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestNormalizeContentType(t *testing.T) {
	cases := []struct {
		value, file, want string
	}{
		{"image/jpg", "", "image/jpeg"},
		{"IMAGE/PNG", "", "image/png"},
		{"", "photo.WEBP", "image/webp"},
		{"", "photo.gif", "image/gif"},
		{"", "", "image/jpeg"},
	}
	for _, tc := range cases {
		if got := normalizeContentType(tc.value, tc.file); got != tc.want {
			t.Errorf("normalizeContentType(%q, %q) = %q, want %q", tc.value, tc.file, got, tc.want)
		}
	}
}
