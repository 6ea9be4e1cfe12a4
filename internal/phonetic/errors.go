package phonetic

import (
	"errors"
	"fmt"
)

// ErrUnknownCharacter is returned when the input contains a character that
// has no word in the alphabet.
var ErrUnknownCharacter = errors.New("unknown character")

// UnknownCharacterError reports the first unsupported character of an input
// and its byte offset.
type UnknownCharacterError struct {
	Char   rune
	Offset int
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("%v %q at offset %d", ErrUnknownCharacter, e.Char, e.Offset)
}

// Is makes errors.Is(err, ErrUnknownCharacter) hold.
func (e *UnknownCharacterError) Is(target error) bool {
	return target == ErrUnknownCharacter
}
