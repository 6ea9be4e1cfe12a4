package models

import (
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/icao/internal/testutil"
)

type fakeModelClient struct {
	models openai.ModelsList
	err    error
}

func (f *fakeModelClient) ListModels(ctx context.Context) (openai.ModelsList, error) {
	return f.models, f.err
}

func fakeModels(ids ...string) openai.ModelsList {
	var list openai.ModelsList
	for _, id := range ids {
		list.Models = append(list.Models, openai.Model{ID: id})
	}
	return list
}

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}
	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}
	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestTTSModels(t *testing.T) {
	lister := &Lister{
		apiKey: "test",
		client: &fakeModelClient{models: fakeModels("tts-1-hd", "gpt-4o", "dall-e-3", "gpt-4o-mini-tts", "tts-1", "gpt-4o-audio-preview")},
	}

	got, err := lister.TTSModels(context.Background())
	if err != nil {
		t.Fatalf("TTSModels failed: %v", err)
	}

	want := []string{"gpt-4o-audio-preview", "gpt-4o-mini-tts", "tts-1", "tts-1-hd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TTSModels() = %v, want %v", got, want)
	}
}

func TestTTSModels_ClientError(t *testing.T) {
	lister := &Lister{apiKey: "test", client: &fakeModelClient{err: errors.New("unauthorized")}}

	_, err := lister.TTSModels(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unauthorized") {
		t.Errorf("Expected wrapped client error, got %v", err)
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("")

	err := lister.ListAvailableModels(context.Background())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got: %v", err)
	}
}

func TestListAvailableModels_Output(t *testing.T) {
	tests := []struct {
		name   string
		models openai.ModelsList
		want   string
	}{
		{"with models", fakeModels("tts-1", "gpt-4o"), "  tts-1\n"},
		{"none", fakeModels("gpt-4o"), "No TTS models found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &Lister{apiKey: "test", client: &fakeModelClient{models: tt.models}}

			stdout, _ := testutil.CaptureOutput(t, func() {
				if err := lister.ListAvailableModels(context.Background()); err != nil {
					t.Errorf("ListAvailableModels failed: %v", err)
				}
			})
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("Expected output to contain %q, got %q", tt.want, stdout)
			}
		})
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	if err := NewLister(apiKey).ListAvailableModels(context.Background()); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
}
