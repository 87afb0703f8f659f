package llm

import "fmt"

// FailureKind classifies why a completion request did not produce text.
type FailureKind string

const (
	// FailureTransport means the request never produced an HTTP response
	// (DNS, connection refused, timeout, cancellation).
	FailureTransport FailureKind = "transport"
	// FailureAPI means the endpoint answered with a non-200 status.
	FailureAPI FailureKind = "api"
	// FailureParse means a 200 response did not carry the expected body.
	FailureParse FailureKind = "parse"
)

// CompletionError describes a failed completion request.
type CompletionError struct {
	Kind   FailureKind
	Detail string
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Detail)
}

// Outcome is the result of one completion request: either Text or Err is set.
type Outcome struct {
	Text string
	Err  *CompletionError
}

// Success returns a successful outcome carrying text.
func Success(text string) Outcome {
	return Outcome{Text: text}
}

// Failure returns a failed outcome.
func Failure(kind FailureKind, detail string) Outcome {
	return Outcome{Err: &CompletionError{Kind: kind, Detail: detail}}
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// CompletionRequest is the payload sent to the completion endpoint.
type CompletionRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

// CompletionChoice is one generated alternative. Text is a pointer so that a
// missing field can be told apart from an empty string.
type CompletionChoice struct {
	Text         *string `json:"text"`
	Index        int     `json:"index"`
	FinishReason string  `json:"finish_reason"`
}

// CompletionResponse is the subset of the endpoint's response that is consumed.
type CompletionResponse struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
}
