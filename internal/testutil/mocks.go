package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// MockAudioProvider implements audio.Provider without calling any TTS service
type MockAudioProvider struct {
	Data   []byte
	Errors map[string]error // keyed by input text
	Calls  []string
}

// GenerateAudio records the call and writes Data to outputFile
func (m *MockAudioProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	m.Calls = append(m.Calls, fmt.Sprintf("TTS: %s -> %s", text, filepath.Base(outputFile)))

	if err, ok := m.Errors[text]; ok {
		return err
	}

	data := m.Data
	if data == nil {
		data = []byte{0xFF, 0xFB, 0x90, 0x00}
	}
	return os.WriteFile(outputFile, data, 0644)
}

// Name returns the provider name
func (m *MockAudioProvider) Name() string {
	return "mock"
}

// IsAvailable always succeeds
func (m *MockAudioProvider) IsAvailable() error {
	return nil
}
