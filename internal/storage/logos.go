package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"pagecraft/internal/domain"
)

const logoPrefix = "logos"

// logoTypes lists the raster formats accepted for logos, keyed by sniffed
// MIME type. SVG uploads are never accepted.
var logoTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var logoContentTypes = func() map[string]string {
	out := make(map[string]string, len(logoTypes))
	for mime, ext := range logoTypes {
		out[ext] = mime
	}
	return out
}()

// LogoStore validates and stores user supplied logo images.
type LogoStore struct {
	files    *FileStore
	baseURL  string
	maxBytes int64
	now      func() time.Time
}

func NewLogoStore(files *FileStore, baseURL string, maxBytes int64) *LogoStore {
	return &LogoStore{
		files:    files,
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		maxBytes: maxBytes,
		now:      time.Now,
	}
}

// MaxBytes is the largest accepted upload.
func (s *LogoStore) MaxBytes() int64 { return s.maxBytes }

// Upload sniffs data, rejects anything that is not a PNG, JPEG, GIF or WebP
// image or exceeds the size limit, and returns the public URL of the stored
// file.
func (s *LogoStore) Upload(ctx context.Context, userID string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", domain.ErrInvalidLogo)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return "", domain.ErrLogoTooLarge
	}
	mime := mimetype.Detect(data).String()
	ext, ok := logoTypes[mime]
	if !ok {
		return "", fmt.Errorf("%w: %s is not an accepted image type", domain.ErrInvalidLogo, mime)
	}

	key := fmt.Sprintf("%s/%s-%d%s", logoPrefix, sanitizeSegment(userID), s.now().UnixMilli(), ext)
	stored, err := s.files.Write(ctx, key, data)
	if err != nil {
		return "", err
	}
	return s.URL(stored), nil
}

// Logo is a stored logo opened for serving.
type Logo struct {
	*os.File
	Name        string
	ContentType string
	ModTime     time.Time
}

// Open returns the logo stored under name, the last segment of the URL
// Upload returned. Unknown names and extensions report domain.ErrNotFound.
func (s *LogoStore) Open(name string) (*Logo, error) {
	if name == "" || name != path.Base(name) {
		return nil, domain.ErrNotFound
	}
	contentType, ok := logoContentTypes[path.Ext(name)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	f, info, err := s.files.Open(logoPrefix + "/" + name)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrInvalidKey) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Logo{File: f, Name: name, ContentType: contentType, ModTime: info.ModTime()}, nil
}

// URL maps a storage key to its public address.
func (s *LogoStore) URL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}

func sanitizeSegment(v string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, v)
}
