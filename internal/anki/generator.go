package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Card represents a single Anki flashcard
type Card struct {
	Text      string // The input text, e.g. a callsign
	Spelling  string // The ICAO spelling of Text
	AudioFile string // Path to audio file
	Notes     string // Optional notes
}

// Files kept in a card directory
const (
	TextFile     = "text.txt"
	SpellingFile = "spelling.txt"
)

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
	AudioFormat    string // Audio file format (mp3, wav)
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
		AudioFormat:    "mp3",
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GetCards returns a slice of all cards for modification
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		if err := writer.Write([]string{"Text", "Spelling", "Audio", "Notes"}); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{
			card.Text,
			card.Spelling,
			formatAudioField(card.AudioFile),
			card.Notes,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatAudioField formats the audio file reference for Anki
func formatAudioField(audioFile string) string {
	if audioFile == "" {
		return ""
	}
	return fmt.Sprintf("[sound:%s]", filepath.Base(audioFile))
}

// GenerateFromDirectory creates cards from a directory of card directories.
// Each card directory holds text.txt, spelling.txt and optionally an audio file.
func (g *Generator) GenerateFromDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range entries {
		// Skip plain files and hidden directories
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		card, ok := loadCard(filepath.Join(dir, entry.Name()), g.options.AudioFormat)
		if ok {
			g.AddCard(card)
		}
	}

	return nil
}

// loadCard reads a card directory. Directories without a spelling are ignored.
func loadCard(cardDir, audioFormat string) (Card, bool) {
	var card Card

	text, err := os.ReadFile(filepath.Join(cardDir, TextFile))
	if err != nil {
		return card, false
	}
	spelling, err := os.ReadFile(filepath.Join(cardDir, SpellingFile))
	if err != nil {
		return card, false
	}

	card.Text = strings.TrimRight(string(text), "\n")
	card.Spelling = strings.TrimRight(string(spelling), "\n")

	formats := []string{"mp3", "wav"}
	if audioFormat != "" {
		formats = append([]string{audioFormat}, formats...)
	}
	for _, format := range formats {
		audioFile := filepath.Join(cardDir, "audio."+format)
		if _, err := os.Stat(audioFile); err == nil {
			card.AudioFile = audioFile
			break
		}
	}

	return card, true
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)

	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}

	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withAudio int) {
	totalCards = len(g.cards)

	for _, card := range g.cards {
		if card.AudioFile != "" {
			withAudio++
		}
	}

	return
}
