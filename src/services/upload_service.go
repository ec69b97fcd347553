package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/debreiyesus/church-server/src/logging"
)

// allowed image extensions for uploads
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadService stores uploaded images on disk and maps them to public URLs
type UploadService struct {
	uploadDir string
	baseURL   string
	maxBytes  int64
	logger    zerolog.Logger
}

// NewUploadService creates an upload service rooted at uploadDir. The
// directory is created if missing.
func NewUploadService(uploadDir, baseURL string, maxBytes int64) (*UploadService, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{
		uploadDir: uploadDir,
		baseURL:   strings.TrimRight(baseURL, "/"),
		maxBytes:  maxBytes,
		logger:    logging.NewLogger("uploads"),
	}, nil
}

// Save writes the upload to a timestamped file and returns its public URL
func (s *UploadService) Save(originalName string, size int64, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedImageExts[ext] {
		return "", validationError("only image files are allowed (jpg, png, gif, webp)")
	}
	if size > s.maxBytes {
		return "", validationError("file exceeds the maximum upload size")
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(suffix), ext)

	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, s.maxBytes+1)); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}

// Remove deletes the backing file of a previously returned URL. Paths
// outside the upload directory are refused. Missing files are not an error.
func (s *UploadService) Remove(imageURL string) {
	idx := strings.Index(imageURL, "/uploads/")
	if idx < 0 {
		return
	}
	name := filepath.Base(imageURL[idx+len("/uploads/"):])
	if name == "" || name == "." || name == ".." {
		return
	}

	path := filepath.Join(s.uploadDir, name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Str("path", path).Msg("failed to remove uploaded file")
	}
}
