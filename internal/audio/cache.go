package audio

import (
	"fmt"
	"os"
	"path/filepath"
)

// ClearCache removes all cached audio files below cacheDir
func ClearCache(cacheDir string) error {
	if cacheDir == "" {
		return nil
	}
	if err := os.RemoveAll(cacheDir); err != nil {
		return fmt.Errorf("failed to clear audio cache: %w", err)
	}
	return nil
}

// CacheStats returns the number and total size of cached audio files.
// A missing cache directory is an empty cache.
func CacheStats(cacheDir string) (fileCount int, totalSize int64, err error) {
	if cacheDir == "" {
		return 0, 0, nil
	}
	if _, err := os.Stat(cacheDir); os.IsNotExist(err) {
		return 0, 0, nil
	}

	err = filepath.Walk(cacheDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			fileCount++
			totalSize += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read audio cache: %w", err)
	}

	return fileCount, totalSize, nil
}
