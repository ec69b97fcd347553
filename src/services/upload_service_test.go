package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadServiceForTest(t *testing.T) (*UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	svc, err := NewUploadService(dir, "http://localhost:3010", 1024*1024)
	require.NoError(t, err)
	return svc, dir
}

func TestUploadSaveReturnsPublicURL(t *testing.T) {
	svc, dir := newUploadServiceForTest(t)

	url, err := svc.Save("photo.JPG", 11, strings.NewReader("image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:3010/uploads/"), "got %s", url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), "extension should be lowercased: %s", url)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(content))
}

func TestUploadSaveRejectsNonImages(t *testing.T) {
	svc, dir := newUploadServiceForTest(t)

	_, err := svc.Save("malware.exe", 10, strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestUploadSaveRejectsOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewUploadService(dir, "http://localhost:3010", 10)
	require.NoError(t, err)

	_, err = svc.Save("big.png", 11, strings.NewReader("12345678901"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUploadRemoveDeletesOwnedFile(t *testing.T) {
	svc, dir := newUploadServiceForTest(t)

	url, err := svc.Save("photo.png", 4, strings.NewReader("data"))
	require.NoError(t, err)

	svc.Remove(url)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries, "backing file should be removed")
}

func TestUploadRemoveIgnoresForeignPaths(t *testing.T) {
	svc, dir := newUploadServiceForTest(t)

	outside := filepath.Join(filepath.Dir(dir), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))
	defer os.Remove(outside)

	// Traversal attempts and URLs outside /uploads/ are ignored
	svc.Remove("http://localhost:3010/uploads/../outside.txt")
	svc.Remove("http://evil.example/other/outside.txt")
	svc.Remove("")

	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside the upload dir must survive")
}
