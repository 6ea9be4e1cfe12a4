package audio

import (
	"context"
	"path/filepath"
	"strings"
)

// ESpeakProvider implements Provider interface for espeak-ng
type ESpeakProvider struct {
	espeak *ESpeak
}

// NewESpeakProvider creates a new espeak-ng provider. The voice, speed and
// word gap of settings override the engine configuration.
func NewESpeakProvider(config *ESpeakConfig, settings *Config) (Provider, error) {
	espeak, err := New(config)
	if err != nil {
		return nil, err
	}

	if settings != nil {
		espeak.Configure(settings)
	}

	return &ESpeakProvider{espeak: espeak}, nil
}

// GenerateAudio generates audio using espeak-ng
func (p *ESpeakProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateText(text); err != nil {
		return err
	}

	text = strings.TrimSpace(text)

	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".wav":
		return p.espeak.GenerateAudio(text, outputFile)
	case ".mp3":
		return p.espeak.GenerateMP3(text, outputFile)
	default:
		return p.espeak.GenerateMP3(text, outputFile+".mp3")
	}
}

// Name returns the provider name
func (p *ESpeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *ESpeakProvider) IsAvailable() error {
	return checkESpeakInstalled()
}
