package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	MaxFileSize        = 10 * 1024 * 1024 // 10 MB
	MaxFilesPerRequest = 10
)

// AllowedMimeTypes lists the image types a listing photo may have.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Service turns uploaded image blobs into storage references.
type Service struct {
	repo    Repository
	storage Storage
	now     func() time.Time
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage, now: time.Now}
}

// Ingest validates every file first, then stores them in order and returns their URLs.
// If any file fails to store, the ones already stored are removed again.
func (s *Service) Ingest(ctx context.Context, ownerID int64, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if len(files) > MaxFilesPerRequest {
		return nil, ErrTooManyFiles
	}

	mimeTypes := make([]string, len(files))
	for i, fh := range files {
		mimeType, err := sniff(fh)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fh.Filename, err)
		}
		mimeTypes[i] = mimeType
	}

	stored := make([]*Upload, 0, len(files))
	for i, fh := range files {
		u, err := s.store(ctx, ownerID, fh, mimeTypes[i])
		if err != nil {
			s.rollback(ctx, stored)
			return nil, err
		}
		stored = append(stored, u)
	}

	urls := make([]string, len(stored))
	for i, u := range stored {
		urls[i] = u.URL
	}
	log.Info().Int64("user_id", ownerID).Int("count", len(urls)).Msg("images ingested")
	return urls, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*Upload, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Delete removes the stored object and its record.
func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.UserID != userID {
		return ErrNotOwner
	}
	if err := s.storage.Delete(ctx, u.Key); err != nil {
		log.Warn().Err(err).Str("key", u.Key).Msg("failed to delete stored object")
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) store(ctx context.Context, ownerID int64, fh *multipart.FileHeader, mimeType string) (*Upload, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	now := s.now().UTC()
	id := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	key := fmt.Sprintf("listings/%d/%02d/%s_%s%s", now.Year(), now.Month(), id, sanitizeName(fh.Filename), ext)

	url, err := s.storage.Put(ctx, key, mimeType, file, fh.Size)
	if err != nil {
		return nil, err
	}

	u := &Upload{
		ID:           id,
		UserID:       ownerID,
		OriginalName: fh.Filename,
		Key:          key,
		URL:          url,
		MimeType:     mimeType,
		Size:         fh.Size,
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		_ = s.storage.Delete(ctx, key)
		return nil, fmt.Errorf("failed to save upload record: %w", err)
	}
	return u, nil
}

func (s *Service) rollback(ctx context.Context, stored []*Upload) {
	for _, u := range stored {
		_ = s.storage.Delete(ctx, u.Key)
		_ = s.repo.Delete(ctx, u.ID)
	}
}

// sniff checks size limits and detects the MIME type from the first 512 bytes.
func sniff(fh *multipart.FileHeader) (string, error) {
	if fh.Size == 0 {
		return "", ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if !AllowedMimeTypes[mimeType] {
		return "", ErrInvalidMimeType
	}
	return mimeType, nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "image"
	}
	return name
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
