package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// UploadService persists submitted images into the local uploads directory,
// which the server exposes under /uploads.
type UploadService struct {
	baseDir string
}

func NewUploadService() *UploadService {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./static/uploads"
	}
	return &UploadService{baseDir: dir}
}

// Store writes the uploaded file verbatim and returns the stored filename.
// Names follow `<UTC timestamp>_<original name>`; two same-named uploads
// within the same second overwrite one another.
func (s *UploadService) Store(file multipart.File, header *multipart.FileHeader) (string, error) {
	name := filepath.Base(header.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		// Client sent no usable name
		name = uuid.NewString() + filepath.Ext(header.Filename)
	}

	filename := fmt.Sprintf("%s_%s", time.Now().UTC().Format("20060102_150405"), name)

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(s.baseDir, filename))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return filename, nil
}
