package cli

import "fmt"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	OutputDir    string
	BatchFile    string
	Upper        bool
	ShowTable    bool
	ListModels   bool
	ArchiveCards bool

	// Audio flags
	GenerateAudio bool
	AudioProvider string
	AudioFormat   string
	CacheStats    bool
	ClearCache    bool

	// OpenAI flags
	OpenAIModel       string
	OpenAIVoice       string
	OpenAISpeed       float64
	OpenAIInstruction string

	// Gemini flags
	GeminiModel string
	GeminiVoice string

	// espeak-ng flags
	ESpeakVoice string

	// Anki flags
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string
	AlphabetDeck bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		AudioProvider: "openai",
		AudioFormat:   "mp3",
		OpenAIModel:   "gpt-4o-mini-tts",
		OpenAIVoice:   "alloy",
		OpenAISpeed:   1.0,
		GeminiModel:   "gemini-2.5-flash-preview-tts",
		GeminiVoice:   "Kore",
		ESpeakVoice:   "en",
		DeckName:      "ICAO Alphabet",
	}
}

// HasAction reports whether a flag requests work that needs no input text
func (f *Flags) HasAction() bool {
	return f.BatchFile != "" || f.ShowTable || f.ListModels || f.ArchiveCards ||
		f.AlphabetDeck || f.GenerateAnki || f.CacheStats || f.ClearCache
}

// Validate checks the combination of flags and positional text arguments
func (f *Flags) Validate(args []string) error {
	if len(args) == 0 && !f.HasAction() {
		return fmt.Errorf("no text given: pass text to spell or use --batch, --table or --alphabet-deck")
	}
	if f.ArchiveCards && (len(args) > 0 || f.BatchFile != "") {
		return fmt.Errorf("--archive cannot be combined with text to spell")
	}
	if len(args) > 0 && f.BatchFile != "" {
		return fmt.Errorf("pass either text arguments or --batch, not both")
	}
	return nil
}
