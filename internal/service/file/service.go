package file

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/storage"
)

// FileService stores check-in photo evidence.
type FileService interface {
	// UploadCheckPhoto stores one checkpoint photo and returns its URL.
	UploadCheckPhoto(ctx context.Context, staffID string, date time.Time, checkType int, photo []byte) (string, error)
}

type fileServiceImpl struct {
	store storage.PhotoStore
}

func NewFileService(store storage.PhotoStore) FileService {
	return &fileServiceImpl{store: store}
}

// UploadCheckPhoto implements FileService.
func (s *fileServiceImpl) UploadCheckPhoto(ctx context.Context, staffID string, date time.Time, checkType int, photo []byte) (string, error) {
	key := fmt.Sprintf("attendance/%s/%s/check%d-%s.jpg",
		staffID,
		date.Format("2006-01-02"),
		checkType,
		uuid.NewString(),
	)

	url, err := s.store.Upload(ctx, key, bytes.NewReader(photo))
	if err != nil {
		return "", fmt.Errorf("failed to upload check photo: %w", err)
	}
	return url, nil
}
