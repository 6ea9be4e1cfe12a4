package audio

import (
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// newBreaker guards a remote TTS API. It opens after three consecutive
// failures and rejects calls for 30 seconds before probing again.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fmt.Printf("%s: circuit breaker %s -> %s\n", name, from, to)
		},
	})
}
