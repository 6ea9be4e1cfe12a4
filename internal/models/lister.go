package models

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey is returned when no OpenAI API key is configured
var ErrMissingAPIKey = errors.New("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure audio.openai_key in .icao.yaml")

type modelClient interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Lister lists the OpenAI models usable for voicing spellings
type Lister struct {
	apiKey string
	client modelClient
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// TTSModels returns the sorted IDs of all speech-capable models
func (l *Lister) TTSModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var ttsModels []string
	for _, model := range models.Models {
		if strings.Contains(model.ID, "tts") || strings.Contains(model.ID, "audio") {
			ttsModels = append(ttsModels, model.ID)
		}
	}
	sort.Strings(ttsModels)

	return ttsModels, nil
}

// ListAvailableModels prints the speech-capable models
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	ttsModels, err := l.TTSModels(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Available OpenAI Text-to-Speech (TTS) Models:")
	if len(ttsModels) == 0 {
		fmt.Println("  No TTS models found")
		return nil
	}
	for _, model := range ttsModels {
		fmt.Printf("  %s\n", model)
	}

	return nil
}
