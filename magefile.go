//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"codeberg.org/snonux/icao/internal"
	"codeberg.org/snonux/icao/internal/audio"
)

const binary = "icao"

// Default target to run when none is specified
var Default = Build

// Build compiles the icao binary into the working directory
func Build() error {
	fmt.Printf("Building %s %s\n", binary, internal.Version)
	return sh.RunV("go", "build", "-o", binary, "./cmd/icao")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and copies the binary to ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	binDir := filepath.Join(home, "go", "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", binDir, err)
	}
	return sh.Copy(filepath.Join(binDir, binary), binary)
}

// Clean removes build artifacts and the audio cache
func Clean() error {
	if err := sh.Rm(binary); err != nil {
		return err
	}
	return audio.ClearCache(".audio_cache")
}
