package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	dir := t.TempDir()
	s := New(dir, "http://shop.test/")
	s.now = func() time.Time { return time.UnixMilli(1741600000123) }
	return s, dir
}

func TestSaveFile(t *testing.T) {
	s, dir := newTestStorage(t)

	path, url, err := s.SaveFile(context.Background(), "reference.jpg", []byte("jpeg bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/1741600000123-reference.jpg", path)
	assert.Equal(t, "http://shop.test/uploads/1741600000123-reference.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "1741600000123-reference.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)
}

func TestSaveFileSanitizesName(t *testing.T) {
	s, dir := newTestStorage(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces", "my photo.jpg", "1741600000123-my-photo.jpg"},
		{"path_traversal", "../../etc/passwd", "1741600000123-passwd"},
		{"windows_path", `C:\Users\me\shot.png`, "1741600000123-shot.png"},
		{"odd_chars", "récu#$%.png", "1741600000123-rcu.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, _, err := s.SaveFile(context.Background(), tt.in, []byte("x"))
			require.NoError(t, err)
			assert.Equal(t, "/uploads/"+tt.want, path)
			_, err = os.Stat(filepath.Join(dir, tt.want))
			assert.NoError(t, err)
		})
	}
}

func TestSaveFileGeneratesNameWhenUnusable(t *testing.T) {
	s, dir := newTestStorage(t)

	path, _, err := s.SaveFile(context.Background(), "###", []byte("x"))
	require.NoError(t, err)
	assert.Regexp(t, `^/uploads/1741600000123-[0-9a-f-]{36}$`, path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveFileDirMissing(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"), "http://shop.test")
	_, _, err := s.SaveFile(context.Background(), "a.jpg", []byte("x"))
	assert.Error(t, err)
}
