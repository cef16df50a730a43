package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlastrips/atlas-cms-backend/internal/media"
	"github.com/atlastrips/atlas-cms-backend/internal/repository/ports"
)

// ImageUpload is one image arriving from the admin upload form.
type ImageUpload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

// UploadedImage is what the form stores back into the entity being edited.
type UploadedImage struct {
	URL         string `json:"url"`
	ObjectKey   string `json:"object_key"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// UploadService pushes validated admin images to the asset host and hands
// back the public URL.
type UploadService struct {
	storage    ports.ObjectStorage
	processor  media.Processor
	bucket     string
	publicBase string
	now        func() time.Time
}

func NewUploadService(storage ports.ObjectStorage, processor media.Processor, bucket, publicBaseURL string) *UploadService {
	return &UploadService{
		storage:    storage,
		processor:  processor,
		bucket:     strings.TrimSpace(bucket),
		publicBase: strings.TrimRight(publicBaseURL, "/"),
		now:        time.Now,
	}
}

func (s *UploadService) UploadImage(ctx context.Context, upload ImageUpload) (*UploadedImage, error) {
	result, err := s.processor.Process(media.Upload{
		Reader:      upload.Reader,
		Size:        upload.Size,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
	})
	if err != nil {
		switch {
		case errors.Is(err, media.ErrTooLarge):
			return nil, ErrImageTooLarge
		case errors.Is(err, media.ErrUnsupportedType):
			return nil, ErrImageUnsupportedType
		default:
			return nil, err
		}
	}

	objectKey := fmt.Sprintf("uploads/%s/%s%s",
		s.now().UTC().Format("2006/01"),
		uuid.NewString(),
		imageExtension(result.ContentType, upload.FileName),
	)

	url, err := s.storage.Upload(ctx, s.bucket, objectKey, result.ContentType, bytes.NewReader(result.Bytes), int64(len(result.Bytes)))
	if err != nil {
		return nil, err
	}
	if s.publicBase != "" {
		url = s.publicBase + "/" + strings.TrimLeft(objectKey, "/")
	}

	return &UploadedImage{
		URL:         url,
		ObjectKey:   objectKey,
		ContentType: result.ContentType,
		Width:       result.Width,
		Height:      result.Height,
	}, nil
}

func imageExtension(contentType, fileName string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	if ext := strings.ToLower(strings.TrimSpace(filepath.Ext(fileName))); ext != "" {
		return ext
	}
	return ".bin"
}
