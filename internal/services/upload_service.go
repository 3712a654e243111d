package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"blog-api/internal/config"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // WebP decoder
)

var (
	ErrFileTooLarge     = errors.New("uploaded file is too large")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// imageExtensions maps detected MIME types to stored file extensions. WebP
// uploads are re-encoded to JPEG since there is no pure-Go WebP encoder.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".jpg",
}

// UploadService stores post images on the local filesystem under generated
// names and hands back fetchable references.
type UploadService struct {
	dir        string
	publicPath string
	maxSize    int64
	maxWidth   int
	quality    int
}

func NewUploadService() *UploadService {
	cfg := config.App.Upload
	return &UploadService{
		dir:        cfg.Dir,
		publicPath: cfg.PublicPath,
		maxSize:    cfg.MaxSizeMB * 1024 * 1024,
		maxWidth:   cfg.MaxWidthPX,
		quality:    cfg.JPEGQuality,
	}
}

// SaveImage validates and stores an uploaded image, downscaling anything
// wider than the configured limit, and returns its public reference.
func (s *UploadService) SaveImage(header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	mimeType := http.DetectContentType(data)
	ext, ok := imageExtensions[mimeType]
	if !ok {
		return "", ErrUnsupportedImage
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", ErrUnsupportedImage
	}

	// Downscale oversized images, preserving aspect ratio
	if img.Bounds().Dx() > s.maxWidth {
		img = imaging.Resize(img, s.maxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)
	if err := imaging.Save(img, path, imaging.JPEGQuality(s.quality)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return s.publicPath + "/" + name, nil
}

// IsLocal reports whether an image reference points at a locally-stored
// upload rather than an external URL.
func (s *UploadService) IsLocal(ref string) bool {
	return strings.HasPrefix(ref, s.publicPath+"/")
}

// Delete releases a locally-stored upload. External references and already
// missing files are ignored.
func (s *UploadService) Delete(ref string) error {
	if !s.IsLocal(ref) {
		return nil
	}

	name := filepath.Base(strings.TrimPrefix(ref, s.publicPath+"/"))
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the local storage directory, used to mount the static route.
func (s *UploadService) Dir() string {
	return s.dir
}

// PublicPath returns the URL prefix uploads are served under.
func (s *UploadService) PublicPath() string {
	return s.publicPath
}
