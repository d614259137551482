package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "garden-backend/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// allowedImageTypes are the screenshot formats accepted for upload. Detection
// is by content sniffing, not the client-supplied extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadStore saves screenshot uploads under a local directory served as
// static files.
type UploadStore struct {
	dir      string
	maxBytes int64
}

// NewUploadStore creates the upload directory if needed.
func NewUploadStore(dir string, maxBytes int64) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir, maxBytes: maxBytes}, nil
}

// Save validates and stores an uploaded screenshot and returns its public
// path under /uploads.
func (u *UploadStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > u.maxBytes {
		return "", apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	// Sniff the real content type from the first bytes.
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	mtype := mimetype.Detect(head[:n])
	ext, ok := allowedImageTypes[mtype.String()]
	if !ok {
		return "", apperrors.ErrUnsupportedFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name := fmt.Sprintf("project-%d-%s%s",
		time.Now().UnixNano(),
		strings.Split(uuid.New().String(), "-")[0],
		ext,
	)

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, u.maxBytes)); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return "/uploads/" + name, nil
}

// Remove deletes a stored screenshot by its public path. Missing files are
// not an error.
func (u *UploadStore) Remove(publicPath string) error {
	name := filepath.Base(publicPath)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(u.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// Dir returns the local upload directory, used to mount the static route.
func (u *UploadStore) Dir() string { return u.dir }
