package phonetic

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	c := NewConverter()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"callsign", "LH26EDF", "Lima Hotel Two Six Echo Delta Foxtrot "},
		{"digit and stop", "9.", "Nine Stop "},
		{"empty", "", ""},
		{"single letter", "X", "X-Ray "},
		{"space is a word", "A B", "Alfa   Bravo "},
		{"all digits", "0123456789", "Zero One Two Three Four Five Six Seven Eight Nine "},
		{"repeated", "AAA", "Alfa Alfa Alfa "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_UnknownCharacter(t *testing.T) {
	c := NewConverter()

	tests := []struct {
		name       string
		input      string
		wantChar   rune
		wantOffset int
	}{
		{"equals sign", "DF=", '=', 2},
		{"lowercase", "a", 'a', 0},
		{"lowercase in the middle", "AbC", 'b', 1},
		{"tab", "A\tB", '\t', 1},
		{"newline", "A\n", '\n', 1},
		{"comma", ",", ',', 0},
		{"non ascii", "AÄ", 'Ä', 1},
		{"cyrillic", "Я", 'Я', 0},
		{"first unknown wins", "A?!", '?', 1},
		{"invalid utf8", "A\xff", '\uFFFD', 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.input)
			require.Error(t, err)
			assert.Empty(t, got, "no partial result on error")
			assert.True(t, errors.Is(err, ErrUnknownCharacter))

			var uce *UnknownCharacterError
			require.True(t, errors.As(err, &uce))
			assert.Equal(t, tt.wantChar, uce.Char)
			assert.Equal(t, tt.wantOffset, uce.Offset)
		})
	}
}

func TestConvert_EverySingleEntry(t *testing.T) {
	c := NewConverter()

	for _, e := range c.Entries() {
		got, err := c.Convert(string(e.Char))
		require.NoError(t, err, "char %q", e.Char)
		assert.Equal(t, e.Word+" ", got)
	}
}

func TestConvert_EveryUnmappedASCII(t *testing.T) {
	c := NewConverter()

	for r := rune(0); r < 128; r++ {
		if _, ok := c.Lookup(r); ok {
			continue
		}
		for _, input := range []string{string(r), "A" + string(r), string(r) + "A", "AB" + string(r) + "CD"} {
			_, err := c.Convert(input)
			assert.ErrorIs(t, err, ErrUnknownCharacter, "input %q", input)
		}
	}
}

func TestConvert_Concatenation(t *testing.T) {
	c := NewConverter()

	pairs := [][2]string{
		{"LH", "26EDF"},
		{"", "ABC"},
		{"HELLO ", "WORLD."},
		{"0", "9"},
	}

	for _, p := range pairs {
		left, err := c.Convert(p[0])
		require.NoError(t, err)
		right, err := c.Convert(p[1])
		require.NoError(t, err)
		whole, err := c.Convert(p[0] + p[1])
		require.NoError(t, err)
		assert.Equal(t, left+right, whole)
	}
}

func TestLookup(t *testing.T) {
	c := NewConverter()

	word, ok := c.Lookup('Q')
	assert.True(t, ok)
	assert.Equal(t, "Quebec", word)

	_, ok = c.Lookup('q')
	assert.False(t, ok)

	_, ok = c.Lookup(-1)
	assert.False(t, ok)

	_, ok = c.Lookup('€')
	assert.False(t, ok)
}

func TestEntries(t *testing.T) {
	c := NewConverter()
	entries := c.Entries()

	require.Len(t, entries, 38)
	assert.Equal(t, AlphabetSize, len(entries))
	assert.Equal(t, Entry{'A', "Alfa"}, entries[0])
	assert.Equal(t, Entry{'.', "Stop"}, entries[len(entries)-1])

	seen := make(map[rune]bool)
	for _, e := range entries {
		assert.False(t, seen[e.Char], "duplicate key %q", e.Char)
		seen[e.Char] = true
		assert.NotEmpty(t, e.Word)
	}

	// Mutating the copy must not leak into the converter.
	entries[0].Word = "Apple"
	word, _ := c.Lookup('A')
	assert.Equal(t, "Alfa", word)
}

func TestConverter_ConcurrentUse(t *testing.T) {
	c := NewConverter()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := c.Convert("LH26EDF")
				if err != nil || !strings.HasPrefix(got, "Lima") {
					t.Errorf("unexpected result %q, %v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestUnknownCharacterError_Message(t *testing.T) {
	err := &UnknownCharacterError{Char: '=', Offset: 2}
	assert.Equal(t, `unknown character '=' at offset 2`, err.Error())
}
