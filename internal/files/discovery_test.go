package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(path, mod, mod))
	return path
}

func TestDiscovery_FindPDFFiles(t *testing.T) {
	base := t.TempDir()
	now := time.Now()

	touch(t, base, "older.pdf", now.Add(-2*time.Hour))
	touch(t, base, "newer.PDF", now.Add(-1*time.Hour))
	touch(t, base, "ignored.txt", now)
	require.NoError(t, os.Mkdir(filepath.Join(base, "sub.pdf"), 0755))

	d := NewDiscovery(base)
	files, err := d.FindPDFFiles(base)
	require.NoError(t, err)

	require.Len(t, files, 2)
	// Oldest first.
	assert.Equal(t, "older.pdf", files[0].Name)
	assert.Equal(t, "newer.PDF", files[1].Name)
}

func TestDiscovery_RelativeDirJoinsBase(t *testing.T) {
	base := t.TempDir()
	sub := filepath.Join(base, "downloads")
	require.NoError(t, os.Mkdir(sub, 0755))
	touch(t, sub, "results.pdf", time.Now())

	d := NewDiscovery(base)
	files, err := d.FindPDFFiles("downloads")
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(sub, "results.pdf"), files[0].Path)
}

func TestDiscovery_IgnoresOtherExtensions(t *testing.T) {
	base := t.TempDir()
	touch(t, base, "events.csv", time.Now())
	touch(t, base, "results.pdf", time.Now())

	files, err := NewDiscovery(base).FindPDFFiles(base)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "results.pdf", files[0].Name)
}

func TestDiscovery_MissingDirectory(t *testing.T) {
	_, err := NewDiscovery(t.TempDir()).FindPDFFiles("absent")
	assert.Error(t, err)
}

func TestGetLatestFile(t *testing.T) {
	now := time.Now()
	files := []FileInfo{
		{Name: "a.pdf", ModTime: now.Add(-3 * time.Hour)},
		{Name: "c.pdf", ModTime: now},
		{Name: "b.pdf", ModTime: now.Add(-1 * time.Hour)},
	}

	latest, ok := GetLatestFile(files)
	require.True(t, ok)
	assert.Equal(t, "c.pdf", latest.Name)

	_, ok = GetLatestFile(nil)
	assert.False(t, ok)
}
