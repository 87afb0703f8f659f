package service

import (
	"strings"
	"testing"

	"sizing-assistant/internal/llm"
)

func TestPresent(t *testing.T) {
	tests := []struct {
		name     string
		outcome  llm.Outcome
		wantKind DisplayKind
		contains []string
	}{
		{
			name:     "success carries text",
			outcome:  llm.Success("4 AWG THHN copper"),
			wantKind: DisplaySuccess,
			contains: []string{"4 AWG THHN copper"},
		},
		{
			name:     "empty success is still shown",
			outcome:  llm.Success(""),
			wantKind: DisplaySuccess,
			contains: []string{"empty recommendation"},
		},
		{
			name:     "transport failure",
			outcome:  llm.Failure(llm.FailureTransport, "dial tcp: connection refused"),
			wantKind: DisplayError,
			contains: []string{"transport", "connection refused"},
		},
		{
			name:     "api failure",
			outcome:  llm.Failure(llm.FailureAPI, "500 - boom"),
			wantKind: DisplayError,
			contains: []string{"api", "500", "boom"},
		},
		{
			name:     "parse failure",
			outcome:  llm.Failure(llm.FailureParse, "no choices returned"),
			wantKind: DisplayError,
			contains: []string{"parse", "no choices returned"},
		},
		{
			name:     "unknown failure kind",
			outcome:  llm.Failure("other", "detail"),
			wantKind: DisplayError,
			contains: []string{"other", "detail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Present(tt.outcome)
			if got.Kind != tt.wantKind {
				t.Errorf("Present() Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Title == "" {
				t.Error("Present() Title is empty")
			}
			for _, s := range tt.contains {
				if !strings.Contains(got.Message, s) {
					t.Errorf("Present() Message = %q, missing %q", got.Message, s)
				}
			}
		})
	}
}
