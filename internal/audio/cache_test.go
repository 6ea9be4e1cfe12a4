package audio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheStats(t *testing.T) {
	cacheDir := filepath.Join(t.TempDir(), "cache")

	count, size, err := CacheStats(cacheDir)
	if err != nil || count != 0 || size != 0 {
		t.Errorf("CacheStats() on missing dir = %d, %d, %v", count, size, err)
	}

	files := map[string]string{
		"ab/cdef.mp3": "12345",
		"ab/0123.wav": "123",
		"ff/9999.mp3": "1",
	}
	for name, content := range files {
		path := filepath.Join(cacheDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	count, size, err = CacheStats(cacheDir)
	if err != nil {
		t.Fatalf("CacheStats() error = %v", err)
	}
	if count != 3 || size != 9 {
		t.Errorf("CacheStats() = %d files, %d bytes, want 3 files, 9 bytes", count, size)
	}

	if err := ClearCache(cacheDir); err != nil {
		t.Fatalf("ClearCache() error = %v", err)
	}
	if _, err := os.Stat(cacheDir); !os.IsNotExist(err) {
		t.Error("cache directory still exists after ClearCache")
	}
}

func TestCacheEmptyDir(t *testing.T) {
	if err := ClearCache(""); err != nil {
		t.Errorf("ClearCache(\"\") error = %v", err)
	}
	if count, size, err := CacheStats(""); err != nil || count != 0 || size != 0 {
		t.Errorf("CacheStats(\"\") = %d, %d, %v", count, size, err)
	}
}
