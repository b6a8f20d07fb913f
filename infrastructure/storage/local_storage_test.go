package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) (*LocalStorage, string) {
	t.Helper()

	base := t.TempDir()
	port, err := NewLocalStorage(LocalStorageConfig{BasePath: base})
	require.NoError(t, err)
	return port.(*LocalStorage), base
}

func TestLocalStorage_UploadAndRead(t *testing.T) {
	store, base := newTestLocalStorage(t)

	content := "hello attachment"
	path, err := store.UploadFile(strings.NewReader(content), "stories/s1/report.pdf", int64(len(content)), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "stories/s1/report.pdf", path)

	// ไฟล์อยู่ใต้ basePath จริง
	_, err = os.Stat(filepath.Join(base, "stories", "s1", "report.pdf"))
	require.NoError(t, err)

	rc, err := store.GetFileContent(path)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestLocalStorage_GetMissingFile(t *testing.T) {
	store, _ := newTestLocalStorage(t)

	_, err := store.GetFileContent("stories/nope/missing.txt")
	assert.Error(t, err)
}

func TestLocalStorage_DeleteIsIdempotent(t *testing.T) {
	store, _ := newTestLocalStorage(t)

	path, err := store.UploadFile(strings.NewReader("x"), "stories/s2/a.txt", 1, "text/plain")
	require.NoError(t, err)

	require.NoError(t, store.DeleteFile(path))
	// ลบซ้ำต้องไม่ error
	assert.NoError(t, store.DeleteFile(path))
}

func TestLocalStorage_DeleteCleansEmptyDirs(t *testing.T) {
	store, base := newTestLocalStorage(t)

	path, err := store.UploadFile(strings.NewReader("x"), "stories/s3/a.txt", 1, "text/plain")
	require.NoError(t, err)
	require.NoError(t, store.DeleteFile(path))

	// directory ของ story ว่างแล้วต้องถูกเก็บกวาด แต่ basePath ยังอยู่
	_, err = os.Stat(filepath.Join(base, "stories", "s3"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(base)
	assert.NoError(t, err)
}

func TestLocalStorage_ProviderName(t *testing.T) {
	store, _ := newTestLocalStorage(t)
	assert.Equal(t, "local", store.GetProviderName())
}
