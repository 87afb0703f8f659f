package service

import (
	"fmt"

	"sizing-assistant/internal/llm"
)

// DisplayKind distinguishes positive and error presentations.
type DisplayKind string

const (
	DisplaySuccess DisplayKind = "success"
	DisplayError   DisplayKind = "error"
)

const (
	recommendationTitle = "Recommended Conductor Size"
	emptyRecommendation = "The completion service returned an empty recommendation."
)

// DisplayState is what the presentation layer shows after a submission.
type DisplayState struct {
	Kind    DisplayKind
	Title   string
	Message string
	// HTML is Message rendered from markdown; set only for successful outcomes.
	HTML string
	// ResultID identifies the stored history record, if one was written.
	ResultID string
}

// Present maps a completion outcome to a display state. Every outcome yields
// a non-empty message.
func Present(outcome llm.Outcome) DisplayState {
	if outcome.OK() {
		msg := outcome.Text
		if msg == "" {
			msg = emptyRecommendation
		}
		return DisplayState{
			Kind:    DisplaySuccess,
			Title:   recommendationTitle,
			Message: msg,
		}
	}
	return DisplayState{
		Kind:    DisplayError,
		Title:   "Error",
		Message: failureMessage(outcome.Err),
	}
}

func failureMessage(err *llm.CompletionError) string {
	switch err.Kind {
	case llm.FailureTransport:
		return fmt.Sprintf("Error: could not reach the completion service (%s): %s", err.Kind, err.Detail)
	case llm.FailureAPI:
		return fmt.Sprintf("Error: the completion service rejected the request (%s): %s", err.Kind, err.Detail)
	case llm.FailureParse:
		return fmt.Sprintf("Error: unexpected response from the completion service (%s): %s", err.Kind, err.Detail)
	default:
		return fmt.Sprintf("Error (%s): %s", err.Kind, err.Detail)
	}
}
