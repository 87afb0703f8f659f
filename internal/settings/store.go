package settings

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"sizing-assistant/internal/sizing"
)

// Bounds for user-adjustable generation settings.
const (
	MinTemperature = 0.0
	MaxTemperature = 1.0
	MinMaxTokens   = 50
	MaxMaxTokens   = 500
)

// Settings holds the parameters used for every completion request.
type Settings struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// MaskedKey returns the API key with all but the last four characters hidden.
func (s Settings) MaskedKey() string {
	if s.APIKey == "" {
		return ""
	}
	if len(s.APIKey) <= 4 {
		return strings.Repeat("*", len(s.APIKey))
	}
	return strings.Repeat("*", len(s.APIKey)-4) + s.APIKey[len(s.APIKey)-4:]
}

// Validate returns every constraint violation in s.
func Validate(s Settings) []sizing.FieldError {
	var errs []sizing.FieldError
	if math.IsNaN(s.Temperature) || s.Temperature < MinTemperature || s.Temperature > MaxTemperature {
		errs = append(errs, sizing.FieldError{
			Field:   "temperature",
			Message: fmt.Sprintf("must be between %g and %g", MinTemperature, MaxTemperature),
		})
	}
	if s.MaxTokens < MinMaxTokens || s.MaxTokens > MaxMaxTokens {
		errs = append(errs, sizing.FieldError{
			Field:   "max_tokens",
			Message: fmt.Sprintf("must be between %d and %d", MinMaxTokens, MaxMaxTokens),
		})
	}
	return errs
}

// Store keeps the current Settings in memory for the life of the process.
// Readers always observe a complete value; Save replaces it as a whole.
type Store struct {
	current atomic.Pointer[Settings]
}

// NewStore creates a Store holding initial. The initial value is trusted.
func NewStore(initial Settings) *Store {
	s := &Store{}
	s.current.Store(&initial)
	return s
}

// Get returns a copy of the current settings.
func (s *Store) Get() Settings {
	return *s.current.Load()
}

// Save validates candidate and, if it is valid, makes it the current settings.
// On failure the stored value is left unchanged.
func (s *Store) Save(candidate Settings) []sizing.FieldError {
	if errs := Validate(candidate); len(errs) > 0 {
		return errs
	}
	s.current.Store(&candidate)
	return nil
}
