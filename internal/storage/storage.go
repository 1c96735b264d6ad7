// Package storage keeps uploaded poster and theater images on local disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

const (
	MaxImageSize = 5 << 20
	PublicPrefix = "uploads/"
)

var (
	ErrUnsupportedImage = errors.New("only JPEG images are allowed")
	ErrImageTooLarge    = errors.New("image must not exceed 5MB")
)

type ImageStore struct {
	dir string
	now func() time.Time
}

func NewImageStore(dir string) (*ImageStore, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &ImageStore{dir: dir, now: time.Now}, nil
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// Save stores a JPEG image and returns its public path.
func (s *ImageStore) Save(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", err
	}

	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	if !mimetype.Detect(data).Is("image/jpeg") {
		return "", ErrUnsupportedImage
	}

	name := fmt.Sprintf("%d-%s.jpg", s.now().UnixMilli(), uuid.NewString())

	err = os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
	if err != nil {
		return "", err
	}

	return PublicPrefix + name, nil
}

// Remove deletes an image previously returned by Save. Fallback images and
// paths that do not point into the store are left alone.
func (s *ImageStore) Remove(publicPath string) error {
	if publicPath == domain.FallbackPoster || publicPath == domain.FallbackTheaterPhoto {
		return nil
	}

	name, ok := strings.CutPrefix(publicPath, PublicPrefix)
	if !ok || name == "" || name != filepath.Base(name) {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
