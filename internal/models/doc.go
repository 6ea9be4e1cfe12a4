// Package models lists the OpenAI text-to-speech models available for
// the configured API key.
package models
