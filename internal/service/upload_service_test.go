package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/atlastrips/atlas-cms-backend/internal/media"
)

type fakeStorage struct {
	bucket      string
	objectName  string
	contentType string
	size        int64
	err         error
}

func (f *fakeStorage) Upload(_ context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.bucket = bucket
	f.objectName = objectName
	f.contentType = contentType
	f.size = size
	return objectName, nil
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 3))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadImage(t *testing.T) {
	storage := &fakeStorage{}
	svc := NewUploadService(storage, media.NewImageProcessor(0), "atlas-uploads", "https://cdn.example.com")
	data := testPNG(t)

	result, err := svc.UploadImage(context.Background(), ImageUpload{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		FileName:    "hero.png",
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if storage.bucket != "atlas-uploads" {
		t.Fatalf("bucket = %q", storage.bucket)
	}
	if !strings.HasPrefix(storage.objectName, "uploads/") || !strings.HasSuffix(storage.objectName, ".png") {
		t.Fatalf("object key = %q", storage.objectName)
	}
	if !strings.HasPrefix(result.URL, "https://cdn.example.com/uploads/") {
		t.Fatalf("url = %q, want public base applied", result.URL)
	}
	if result.Width != 3 || result.Height != 3 {
		t.Fatalf("dimensions = %dx%d", result.Width, result.Height)
	}
}

func TestUploadImageRejectsOversized(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, media.NewImageProcessor(8), "atlas-uploads", "")
	data := testPNG(t)

	_, err := svc.UploadImage(context.Background(), ImageUpload{
		Reader: bytes.NewReader(data),
		Size:   int64(len(data)),
	})
	if !errors.Is(err, ErrImageTooLarge) {
		t.Fatalf("err = %v, want ErrImageTooLarge", err)
	}
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, media.NewImageProcessor(0), "atlas-uploads", "")

	_, err := svc.UploadImage(context.Background(), ImageUpload{
		Reader:      strings.NewReader("plain text"),
		Size:        10,
		FileName:    "notes.txt",
		ContentType: "text/plain",
	})
	if !errors.Is(err, ErrImageUnsupportedType) {
		t.Fatalf("err = %v, want ErrImageUnsupportedType", err)
	}
}

func TestUploadImageStorageFailure(t *testing.T) {
	boom := errors.New("bucket unreachable")
	svc := NewUploadService(&fakeStorage{err: boom}, media.NewImageProcessor(0), "atlas-uploads", "")
	data := testPNG(t)

	_, err := svc.UploadImage(context.Background(), ImageUpload{
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: "image/png",
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want storage error passed through", err)
	}
}
