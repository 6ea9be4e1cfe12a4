package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoCards is returned when the cards directory holds no card directories
var ErrNoCards = errors.New("no cards to archive")

// ArchiveCards moves the cards directory to <parent>/archive/cards-YYYYMMDD-HHMMSS
// and returns the archive path
func ArchiveCards(cardsDir string) (string, error) {
	entries, err := os.ReadDir(cardsDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("cards directory does not exist: %s", cardsDir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cards directory: %w", err)
	}

	cardCount := 0
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			cardCount++
		}
	}
	if cardCount == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoCards, cardsDir)
	}

	archiveDir := filepath.Join(filepath.Dir(cardsDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	now := time.Now()
	archivePath := filepath.Join(archiveDir, "cards-"+now.Format("20060102-150405"))

	// Two archives within the same second get a sub-second suffix
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, "cards-"+now.Format("20060102-150405.000000"))
	}

	if err := os.Rename(cardsDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive cards directory: %w", err)
	}

	fmt.Printf("Archived %d cards to: %s\n", cardCount, archivePath)
	return archivePath, nil
}
