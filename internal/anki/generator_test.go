package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/icao/internal/testutil"
)

func TestNewGenerator(t *testing.T) {
	gen := NewGenerator(nil)

	if gen.options.OutputPath != "anki_import.csv" {
		t.Errorf("Expected default output path, got %s", gen.options.OutputPath)
	}
	if !gen.options.IncludeHeaders {
		t.Error("Expected headers by default")
	}
	if len(gen.GetCards()) != 0 {
		t.Errorf("Expected no cards, got %d", len(gen.GetCards()))
	}
}

func TestGenerateCSV(t *testing.T) {
	tests := []struct {
		name           string
		includeHeaders bool
		cards          []Card
		want           [][]string
	}{
		{
			name:           "with headers",
			includeHeaders: true,
			cards: []Card{
				{Text: "LH26", Spelling: "Lima Hotel Two Six ", AudioFile: "/cards/1_ab/audio.mp3"},
			},
			want: [][]string{
				{"Text", "Spelling", "Audio", "Notes"},
				{"LH26", "Lima Hotel Two Six ", "[sound:audio.mp3]", ""},
			},
		},
		{
			name:           "without headers",
			includeHeaders: false,
			cards: []Card{
				{Text: "9.", Spelling: "Nine Stop ", Notes: "end of message"},
				{Text: "A", Spelling: "Alfa "},
			},
			want: [][]string{
				{"9.", "Nine Stop ", "", "end of message"},
				{"A", "Alfa ", "", ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath := filepath.Join(t.TempDir(), "out.csv")
			gen := NewGenerator(&GeneratorOptions{
				OutputPath:     outputPath,
				IncludeHeaders: tt.includeHeaders,
			})
			for _, c := range tt.cards {
				gen.AddCard(c)
			}

			if err := gen.GenerateCSV(); err != nil {
				t.Fatalf("GenerateCSV() error = %v", err)
			}

			f, err := os.Open(outputPath)
			if err != nil {
				t.Fatalf("Failed to open CSV: %v", err)
			}
			defer f.Close()

			got, err := csv.NewReader(f).ReadAll()
			if err != nil {
				t.Fatalf("Failed to parse CSV: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CSV = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateCSV_InvalidPath(t *testing.T) {
	gen := NewGenerator(&GeneratorOptions{OutputPath: "/nonexistent/dir/out.csv"})
	if err := gen.GenerateCSV(); err == nil {
		t.Error("Expected error for invalid output path")
	}
}

func TestGenerateFromDirectory(t *testing.T) {
	dir := t.TempDir()

	withAudio := testutil.CreateTestCardDirectory(t, dir, "1_aaaa", "LH26", "Lima Hotel Two Six ")
	testutil.CreateTestFile(t, filepath.Join(withAudio, "audio.mp3"), []byte{0xFF, 0xFB})
	testutil.CreateTestCardDirectory(t, dir, "2_bbbb", "9.", "Nine Stop ")

	// Ignored: hidden directory, directory without spelling, plain file
	testutil.CreateTestCardDirectory(t, dir, ".trash", "X", "X-Ray ")
	testutil.CreateTestFile(t, filepath.Join(dir, "3_cccc", TextFile), []byte("ABC"))
	testutil.CreateTestFile(t, filepath.Join(dir, "notes.txt"), []byte("not a card"))

	gen := NewGenerator(&GeneratorOptions{AudioFormat: "mp3"})
	if err := gen.GenerateFromDirectory(dir); err != nil {
		t.Fatalf("GenerateFromDirectory() error = %v", err)
	}

	want := []Card{
		{Text: "LH26", Spelling: "Lima Hotel Two Six ", AudioFile: filepath.Join(withAudio, "audio.mp3")},
		{Text: "9.", Spelling: "Nine Stop "},
	}
	if !reflect.DeepEqual(gen.GetCards(), want) {
		t.Errorf("cards = %+v, want %+v", gen.GetCards(), want)
	}

	total, audio := gen.Stats()
	if total != 2 || audio != 1 {
		t.Errorf("Stats() = %d, %d, want 2, 1", total, audio)
	}
}

func TestGenerateFromDirectory_Missing(t *testing.T) {
	gen := NewGenerator(nil)
	if err := gen.GenerateFromDirectory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing directory")
	}
}
