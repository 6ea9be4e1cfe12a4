package audio

import (
	"fmt"
	"strings"
)

// ValidateText rejects input that would produce no speech
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}
	return nil
}
