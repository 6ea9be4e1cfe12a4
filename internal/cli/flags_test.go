package cli

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"AudioProvider", flags.AudioProvider, "openai"},
		{"AudioFormat", flags.AudioFormat, "mp3"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini-tts"},
		{"OpenAIVoice", flags.OpenAIVoice, "alloy"},
		{"OpenAISpeed", flags.OpenAISpeed, 1.0},
		{"GeminiModel", flags.GeminiModel, "gemini-2.5-flash-preview-tts"},
		{"GeminiVoice", flags.GeminiVoice, "Kore"},
		{"ESpeakVoice", flags.ESpeakVoice, "en"},
		{"DeckName", flags.DeckName, "ICAO Alphabet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	boolTests := []struct {
		name  string
		value bool
	}{
		{"Upper", flags.Upper},
		{"ShowTable", flags.ShowTable},
		{"ListModels", flags.ListModels},
		{"ArchiveCards", flags.ArchiveCards},
		{"GenerateAudio", flags.GenerateAudio},
		{"GenerateAnki", flags.GenerateAnki},
		{"AnkiCSV", flags.AnkiCSV},
		{"AlphabetDeck", flags.AlphabetDeck},
		{"CacheStats", flags.CacheStats},
		{"ClearCache", flags.ClearCache},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}
}

func TestHasAction(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *Flags)
		want   bool
	}{
		{"defaults", func(f *Flags) {}, false},
		{"audio alone needs input", func(f *Flags) { f.GenerateAudio = true }, false},
		{"upper alone needs input", func(f *Flags) { f.Upper = true }, false},
		{"batch", func(f *Flags) { f.BatchFile = "texts.txt" }, true},
		{"table", func(f *Flags) { f.ShowTable = true }, true},
		{"list models", func(f *Flags) { f.ListModels = true }, true},
		{"archive", func(f *Flags) { f.ArchiveCards = true }, true},
		{"alphabet deck", func(f *Flags) { f.AlphabetDeck = true }, true},
		{"anki", func(f *Flags) { f.GenerateAnki = true }, true},
		{"cache stats", func(f *Flags) { f.CacheStats = true }, true},
		{"clear cache", func(f *Flags) { f.ClearCache = true }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			tt.modify(flags)
			if got := flags.HasAction(); got != tt.want {
				t.Errorf("HasAction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(f *Flags)
		args    []string
		wantErr string
	}{
		{"text", func(f *Flags) {}, []string{"LH26"}, ""},
		{"table only", func(f *Flags) { f.ShowTable = true }, nil, ""},
		{"table with text", func(f *Flags) { f.ShowTable = true }, []string{"LH26"}, ""},
		{"archive only", func(f *Flags) { f.ArchiveCards = true }, nil, ""},
		{"nothing to do", func(f *Flags) {}, nil, "no text given"},
		{"audio without text", func(f *Flags) { f.GenerateAudio = true }, nil, "no text given"},
		{"archive with text", func(f *Flags) { f.ArchiveCards = true }, []string{"LH26"}, "--archive cannot be combined"},
		{"archive with batch", func(f *Flags) { f.ArchiveCards = true; f.BatchFile = "texts.txt" }, nil, "--archive cannot be combined"},
		{"text with batch", func(f *Flags) { f.BatchFile = "texts.txt" }, []string{"LH26"}, "either text arguments or --batch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			tt.modify(flags)

			err := flags.Validate(tt.args)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
