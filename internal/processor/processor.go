package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/icao/internal"
	"codeberg.org/snonux/icao/internal/anki"
	"codeberg.org/snonux/icao/internal/audio"
	"codeberg.org/snonux/icao/internal/batch"
	"codeberg.org/snonux/icao/internal/cli"
	"codeberg.org/snonux/icao/internal/phonetic"
)

// Processor handles spelling texts and writing the resulting card materials
type Processor struct {
	flags     *cli.Flags
	defaults  *cli.Flags
	converter *phonetic.Converter
	provider  audio.Provider // created on first use
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:     flags,
		defaults:  cli.NewFlags(),
		converter: phonetic.NewConverter(),
	}
}

// ProcessText spells a single text and returns the spelling
func (p *Processor) ProcessText(text string) (string, error) {
	if p.upper() {
		text = upperASCII(text)
	}

	spelling, err := p.converter.Convert(text)
	if err != nil {
		return "", fmt.Errorf("cannot spell %q: %w", text, err)
	}

	fmt.Printf("%s -> %s\n", text, spelling)

	if !p.flags.GenerateAudio && !p.flags.GenerateAnki {
		return spelling, nil
	}

	cardDir, err := p.findOrCreateCardDirectory(text)
	if err != nil {
		return "", err
	}

	spellingFile := filepath.Join(cardDir, anki.SpellingFile)
	if err := os.WriteFile(spellingFile, []byte(spelling), 0644); err != nil {
		return "", fmt.Errorf("failed to save spelling: %w", err)
	}

	if p.flags.GenerateAudio && strings.TrimSpace(spelling) == "" {
		fmt.Printf("  Skipping audio: spelling has nothing to speak\n")
	} else if p.flags.GenerateAudio {
		if err := p.generateAudio(spelling, cardDir); err != nil {
			return "", fmt.Errorf("audio generation failed: %w", err)
		}
	}

	return spelling, nil
}

// ProcessBatch spells every entry of the batch file. Failing entries are
// reported by line number and processing continues with the next entry.
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	var errs []error
	processedCount := 0

	for _, entry := range entries {
		if _, err := p.ProcessText(entry.Text); err != nil {
			err = fmt.Errorf("line %d: %w", entry.Line, err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			errs = append(errs, err)
			continue
		}
		processedCount++
	}

	// Print summary
	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total entries: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	if len(errs) > 0 {
		fmt.Printf("Errors: %d\n", len(errs))
	}
	fmt.Printf("================================\n")

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d entries failed: %w", len(errs), len(entries), errors.Join(errs...))
	}
	return nil
}

// PrintTable prints the alphabet in canonical order
func (p *Processor) PrintTable() {
	fmt.Println("ICAO spelling alphabet:")
	for _, entry := range p.converter.Entries() {
		word := entry.Word
		if entry.Char == ' ' {
			word = "(pause)"
		}
		fmt.Printf("  %q  %s\n", entry.Char, word)
	}
}

// GenerateAnkiFile generates the Anki import file from all card directories
// and returns the output path
func (p *Processor) GenerateAnkiFile() (string, error) {
	outputDir := filepath.Dir(p.flags.OutputDir)
	audioFormat := p.audioFormat()

	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     filepath.Join(outputDir, "anki_import.csv"),
		IncludeHeaders: true,
		AudioFormat:    audioFormat,
	})

	if err := gen.GenerateFromDirectory(p.flags.OutputDir); err != nil {
		return "", fmt.Errorf("failed to generate cards: %w", err)
	}

	var outputPath string
	if p.flags.AnkiCSV {
		outputPath = filepath.Join(outputDir, "anki_import.csv")
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		deckName := p.deckName()
		outputPath = filepath.Join(outputDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(deckName)))
		if err := gen.GenerateAPKG(outputPath, deckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	total, withAudio := gen.Stats()
	fmt.Printf("  Generated %d cards (%d with audio)\n", total, withAudio)

	return outputPath, nil
}

// GenerateAlphabetDeck writes an APKG with one note per alphabet entry
// and returns the output path
func (p *Processor) GenerateAlphabetDeck() (string, error) {
	deckName := p.deckName()
	outputDir := filepath.Dir(p.flags.OutputDir)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	gen := anki.NewAPKGGenerator(deckName)
	count := 0
	for _, entry := range p.converter.Entries() {
		if entry.Char == ' ' {
			continue
		}
		gen.AddCard(anki.Card{
			Text:     string(entry.Char),
			Spelling: entry.Word,
		})
		count++
	}

	outputPath := filepath.Join(outputDir, internal.SanitizeFilename(deckName)+"_alphabet.apkg")
	if err := gen.GenerateAPKG(outputPath); err != nil {
		return "", fmt.Errorf("failed to generate alphabet deck: %w", err)
	}

	fmt.Printf("  Generated %d alphabet cards\n", count)
	return outputPath, nil
}

// generateAudio voices the spelling into the card directory
func (p *Processor) generateAudio(spelling, cardDir string) error {
	format := p.audioFormat()
	outputFile := filepath.Join(cardDir, fmt.Sprintf("audio.%s", format))

	if _, err := os.Stat(outputFile); err == nil {
		fmt.Printf("  Audio already exists: %s\n", outputFile)
		return nil
	}

	provider, err := p.audioProvider()
	if err != nil {
		return err
	}

	fmt.Printf("  Generating audio with %s...\n", provider.Name())
	if err := provider.GenerateAudio(context.Background(), spelling, outputFile); err != nil {
		return err
	}

	if err := p.saveAudioMetadata(cardDir, provider.Name(), format); err != nil {
		fmt.Printf("  Warning: Failed to save audio metadata: %v\n", err)
	}

	return nil
}

// audioProvider returns the configured provider, wrapped with a fallback
// when audio.fallback names a different provider
func (p *Processor) audioProvider() (audio.Provider, error) {
	if p.provider != nil {
		return p.provider, nil
	}

	config := p.audioConfig()
	provider, err := audio.NewProvider(config)
	if err != nil {
		return nil, err
	}

	if fallbackName := viper.GetString("audio.fallback"); fallbackName != "" && fallbackName != config.Provider {
		fallbackConfig := *config
		fallbackConfig.Provider = fallbackName
		fallback, err := audio.NewProvider(&fallbackConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: fallback audio provider unavailable: %v\n", err)
		} else {
			provider = audio.NewProviderWithFallback(provider, fallback)
		}
	}

	p.provider = provider
	return provider, nil
}

// audioConfig builds the provider configuration. Flags left at their
// defaults are overridden by config file values.
func (p *Processor) audioConfig() *audio.Config {
	d := p.defaults
	config := audio.DefaultProviderConfig()

	config.Provider = p.stringSetting(p.flags.AudioProvider, d.AudioProvider, "audio.provider")
	config.OutputDir = p.flags.OutputDir
	config.OutputFormat = p.audioFormat()

	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIModel = p.stringSetting(p.flags.OpenAIModel, d.OpenAIModel, "audio.openai_model")
	config.OpenAIVoice = p.stringSetting(p.flags.OpenAIVoice, d.OpenAIVoice, "audio.openai_voice")
	config.OpenAISpeed = p.flags.OpenAISpeed
	if p.flags.OpenAISpeed == d.OpenAISpeed && viper.IsSet("audio.openai_speed") {
		config.OpenAISpeed = viper.GetFloat64("audio.openai_speed")
	}
	if instruction := p.stringSetting(p.flags.OpenAIInstruction, "", "audio.openai_instruction"); instruction != "" {
		config.OpenAIInstruction = instruction
	}

	config.GeminiKey = cli.GetGeminiKey()
	config.GeminiModel = p.stringSetting(p.flags.GeminiModel, d.GeminiModel, "audio.gemini_model")
	config.GeminiVoice = p.stringSetting(p.flags.GeminiVoice, d.GeminiVoice, "audio.gemini_voice")

	config.ESpeakVoice = p.stringSetting(p.flags.ESpeakVoice, d.ESpeakVoice, "audio.espeak_voice")
	if viper.IsSet("audio.espeak_speed") {
		config.ESpeakSpeed = viper.GetInt("audio.espeak_speed")
	}
	if viper.IsSet("audio.espeak_word_gap") {
		config.ESpeakWordGap = viper.GetInt("audio.espeak_word_gap")
	}

	config.EnableCache = viper.GetBool("audio.enable_cache")
	config.CacheDir = p.cacheDir()

	return config
}

func (p *Processor) cacheDir() string {
	if dir := viper.GetString("audio.cache_dir"); dir != "" {
		return dir
	}
	return "./.audio_cache"
}

// PrintCacheStats prints the number and size of cached TTS files
func (p *Processor) PrintCacheStats() error {
	dir := p.cacheDir()
	count, size, err := audio.CacheStats(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Audio cache %s: %d files, %.1f KiB\n", dir, count, float64(size)/1024)
	return nil
}

// ClearAudioCache removes all cached TTS files
func (p *Processor) ClearAudioCache() error {
	dir := p.cacheDir()
	if err := audio.ClearCache(dir); err != nil {
		return err
	}

	fmt.Printf("Audio cache cleared: %s\n", dir)
	return nil
}

// audioFormat returns the output format. Gemini only produces wav.
func (p *Processor) audioFormat() string {
	format := p.stringSetting(p.flags.AudioFormat, p.defaults.AudioFormat, "audio.format")
	provider := p.stringSetting(p.flags.AudioProvider, p.defaults.AudioProvider, "audio.provider")
	if provider == "gemini" && format != "wav" {
		return "wav"
	}
	return format
}

func (p *Processor) deckName() string {
	return p.stringSetting(p.flags.DeckName, p.defaults.DeckName, "anki.deck_name")
}

// upperASCII upper-cases a-z only. Byte offsets of the result match the input.
func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func (p *Processor) upper() bool {
	return p.flags.Upper || viper.GetBool("convert.uppercase")
}

func (p *Processor) stringSetting(flagValue, defaultValue, key string) string {
	if flagValue == defaultValue && viper.IsSet(key) {
		return viper.GetString(key)
	}
	return flagValue
}

// Helper methods

func (p *Processor) findOrCreateCardDirectory(text string) (string, error) {
	if dir := p.findCardDirectory(text); dir != "" {
		return dir, nil
	}

	cardDir := filepath.Join(p.flags.OutputDir, internal.GenerateCardID(text))
	if err := os.MkdirAll(cardDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create card directory: %w", err)
	}

	textFile := filepath.Join(cardDir, anki.TextFile)
	if err := os.WriteFile(textFile, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to save text: %w", err)
	}

	return cardDir, nil
}

func (p *Processor) findCardDirectory(text string) string {
	entries, err := os.ReadDir(p.flags.OutputDir)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dirPath := filepath.Join(p.flags.OutputDir, entry.Name())
		if data, err := os.ReadFile(filepath.Join(dirPath, anki.TextFile)); err == nil {
			if string(data) == text {
				return dirPath
			}
		}
	}

	return ""
}

func (p *Processor) saveAudioMetadata(cardDir, providerName, format string) error {
	metadata := fmt.Sprintf("provider=%s\nformat=%s\ngenerated=%s\n",
		providerName, format, time.Now().Format("2006-01-02 15:04:05"))

	metadataFile := filepath.Join(cardDir, "audio_metadata.txt")
	if err := os.WriteFile(metadataFile, []byte(metadata), 0644); err != nil {
		return fmt.Errorf("failed to write audio metadata: %w", err)
	}
	return nil
}
