package audio

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

// Gemini TTS returns raw 16-bit little endian mono PCM at 24 kHz
const (
	geminiSampleRate    = 24000
	geminiBitsPerSample = 16
	geminiChannels      = 1
)

// contentGenerator is the part of the genai client used for TTS
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider implements Provider interface for Gemini speech generation
type GeminiProvider struct {
	models  contentGenerator
	breaker *gobreaker.CircuitBreaker
	config  *Config
}

// NewGeminiProvider creates a new Gemini TTS provider
func NewGeminiProvider(ctx context.Context, config *Config) (Provider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newGeminiProvider(config, client.Models), nil
}

func newGeminiProvider(config *Config, models contentGenerator) *GeminiProvider {
	return &GeminiProvider{
		models:  models,
		breaker: newBreaker("gemini-tts"),
		config:  config,
	}
}

// GenerateAudio generates a WAV file using Gemini speech generation
func (p *GeminiProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateText(text); err != nil {
		return err
	}

	if ext := strings.ToLower(filepath.Ext(outputFile)); ext != ".wav" {
		return fmt.Errorf("gemini provider only produces wav audio, got %q", ext)
	}

	fmt.Printf("Gemini TTS: Using model '%s' with voice '%s'\n", p.config.GeminiModel, p.config.GeminiVoice)

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: p.config.GeminiVoice,
				},
			},
		},
	}

	prompt := "Read this ICAO spelling clearly: " + strings.TrimSpace(text)

	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.models.GenerateContent(ctx, p.config.GeminiModel, genai.Text(prompt), config)
	})
	if err != nil {
		return fmt.Errorf("Gemini TTS API error: %w", err)
	}

	pcm := extractPCM(result.(*genai.GenerateContentResponse))
	if len(pcm) == 0 {
		return fmt.Errorf("no audio data received from Gemini")
	}

	var buf bytes.Buffer
	if err := writeWAV(&buf, pcm, geminiSampleRate, geminiBitsPerSample, geminiChannels); err != nil {
		return fmt.Errorf("failed to encode wav: %w", err)
	}

	return writeAudioFile(outputFile, &buf)
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider has a key and the breaker is closed
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	if p.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("Gemini TTS temporarily disabled after repeated failures")
	}
	return nil
}

// extractPCM concatenates the inline audio parts of a response
func extractPCM(resp *genai.GenerateContentResponse) []byte {
	if resp == nil {
		return nil
	}

	var pcm []byte
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil {
				pcm = append(pcm, part.InlineData.Data...)
			}
		}
	}
	return pcm
}
