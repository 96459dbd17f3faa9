// Package localfs stores uploaded files on disk under a single directory,
// served back via /uploads/. Files are append-only; nothing reconciles them
// against orders and cleanup is manual.
package localfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Storage struct {
	dir     string
	baseURL string
	now     func() time.Time
}

func New(dir, baseURL string) *Storage {
	return &Storage{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// SaveFile writes data under "{unix-milli}-{name}" so that concurrent
// uploads of the same original name cannot collide on disk. It returns the
// serving path and the absolute URL the file is retrievable under.
func (s *Storage) SaveFile(_ context.Context, name string, data []byte) (string, string, error) {
	stored := fmt.Sprintf("%d-%s", s.now().UnixMilli(), sanitizeName(name))
	if err := os.WriteFile(filepath.Join(s.dir, stored), data, 0o644); err != nil {
		log.Error().Err(err).Str("file", stored).Msg("save upload")
		return "", "", fmt.Errorf("save file: %w", err)
	}
	path := "/uploads/" + stored
	return path, s.baseURL + path, nil
}

// sanitizeName strips any path components and characters that do not belong
// in a URL path segment. An empty or all-invalid name falls back to a
// generated one.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return uuid.NewString()
	}
	return out
}
