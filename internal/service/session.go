package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_completion_client.go -package=mocks sizing-assistant/internal/service CompletionClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_result_store.go -package=mocks sizing-assistant/internal/service ResultStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_session.go -package=mocks -mock_names=Session=MockSession sizing-assistant/internal/service Session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"sizing-assistant/internal/contextutil"
	"sizing-assistant/internal/llm"
	"sizing-assistant/internal/markdown"
	"sizing-assistant/internal/metrics"
	"sizing-assistant/internal/settings"
	"sizing-assistant/internal/sizing"
	"sizing-assistant/internal/storage"
)

// CompletionClient sends a prompt to the completion endpoint.
// This interface is defined from the service layer's perspective (consumer-first).
type CompletionClient interface {
	// Submit performs one blocking request and reports its outcome.
	Submit(ctx context.Context, prompt string, s settings.Settings) llm.Outcome
}

// ResultStore persists displayed results.
type ResultStore interface {
	Insert(ctx context.Context, result *storage.Result) error
	GetByID(ctx context.Context, id string) (*storage.Result, error)
	ListRecent(ctx context.Context, limit int) ([]storage.Result, error)
}

// State is the session's submission state.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
)

// Session is the boundary exposed to the presentation layer.
type Session interface {
	// Validate checks a parameter set without side effects.
	Validate(p sizing.ParameterSet) []sizing.FieldError
	// Preview returns the prompt that would be submitted for p.
	Preview(p sizing.ParameterSet) (string, error)
	// ComposeAndSubmit validates p, composes the prompt and blocks until the
	// completion endpoint answers. Completion failures are reported in the
	// returned DisplayState; the error is non-nil only for validation
	// failures and ErrBusy.
	ComposeAndSubmit(ctx context.Context, p sizing.ParameterSet) (DisplayState, error)
	// Settings returns the current settings.
	Settings() settings.Settings
	// SaveSettings validates and stores candidate. An empty API key keeps the
	// current key.
	SaveSettings(ctx context.Context, candidate settings.Settings) error
	// State reports whether a submission is in flight.
	State() State
	// Results lists stored results, newest first.
	Results(ctx context.Context, limit int) ([]storage.Result, error)
	// Result returns one stored result.
	Result(ctx context.Context, id string) (*storage.Result, error)
}

// session implements Session.
type session struct {
	client   CompletionClient
	settings *settings.Store
	results  ResultStore
	renderer *markdown.Renderer

	mu    sync.Mutex
	state State
}

// NewSession creates a new Session. results may be nil, in which case no
// history is kept.
func NewSession(client CompletionClient, store *settings.Store, results ResultStore, renderer *markdown.Renderer) Session {
	return &session{
		client:   client,
		settings: store,
		results:  results,
		renderer: renderer,
		state:    StateIdle,
	}
}

// Validate checks a parameter set.
func (s *session) Validate(p sizing.ParameterSet) []sizing.FieldError {
	return sizing.Validate(p)
}

// Preview validates p and returns its composed prompt.
func (s *session) Preview(p sizing.ParameterSet) (string, error) {
	if errs := sizing.Validate(p); len(errs) > 0 {
		return "", toValidationErrors(errs)
	}
	return sizing.Compose(p), nil
}

// ComposeAndSubmit runs one validate, compose, submit, present cycle.
func (s *session) ComposeAndSubmit(ctx context.Context, p sizing.ParameterSet) (DisplayState, error) {
	logger := contextutil.LoggerFromContext(ctx)

	// Business validation
	if errs := sizing.Validate(p); len(errs) > 0 {
		for _, fe := range errs {
			metrics.ValidationRejectionsTotal.WithLabelValues(fe.Field).Inc()
		}
		logger.WarnContext(ctx, "submission rejected by validation", "errors", len(errs))
		return DisplayState{}, toValidationErrors(errs)
	}

	if !s.begin() {
		logger.WarnContext(ctx, "submission rejected while another is in flight")
		return DisplayState{}, ErrBusy
	}
	defer s.end()

	current := s.settings.Get()
	prompt := sizing.Compose(p)

	logger.InfoContext(ctx, "submitting sizing query", "model", current.Model, "prompt_length", len(prompt))
	outcome := s.client.Submit(ctx, prompt, current)
	display := Present(outcome)

	if display.Kind == DisplaySuccess && s.renderer != nil {
		html, err := s.renderer.Render(display.Message)
		if err != nil {
			logger.WarnContext(ctx, "failed to render recommendation", "error", err)
		} else {
			display.HTML = html
		}
	}

	if s.results != nil {
		id, err := s.record(ctx, p, prompt, current.Model, display)
		if err != nil {
			logger.ErrorContext(ctx, "failed to store result", "error", err)
		} else {
			display.ResultID = id
		}
	}

	return display, nil
}

// begin moves the session from Idle to Submitting. It reports false if a
// submission is already in flight.
func (s *session) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return false
	}
	s.state = StateSubmitting
	return true
}

func (s *session) end() {
	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
}

// State reports the current submission state.
func (s *session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *session) record(ctx context.Context, p sizing.ParameterSet, prompt, model string, display DisplayState) (string, error) {
	params, err := json.Marshal(p)
	if err != nil {
		return "", WrapError(err, "failed to encode parameters")
	}
	result := &storage.Result{
		ProjectName:   p.ProjectName,
		JobNumber:     p.JobNumber,
		LoadTagNumber: p.LoadTagNumber,
		Parameters:    string(params),
		Prompt:        prompt,
		Model:         model,
		Status:        string(display.Kind),
		Message:       display.Message,
	}
	if err := s.results.Insert(ctx, result); err != nil {
		return "", err
	}
	return result.ID, nil
}

// Settings returns the current settings.
func (s *session) Settings() settings.Settings {
	return s.settings.Get()
}

// SaveSettings validates and stores candidate.
func (s *session) SaveSettings(ctx context.Context, candidate settings.Settings) error {
	logger := contextutil.LoggerFromContext(ctx)

	if candidate.APIKey == "" {
		candidate.APIKey = s.settings.Get().APIKey
	}
	if errs := s.settings.Save(candidate); len(errs) > 0 {
		logger.WarnContext(ctx, "settings rejected", "errors", len(errs))
		return toValidationErrors(errs)
	}

	logger.InfoContext(ctx, "settings saved", "model", candidate.Model, "temperature", candidate.Temperature, "max_tokens", candidate.MaxTokens)
	return nil
}

// Results lists stored results, newest first.
func (s *session) Results(ctx context.Context, limit int) ([]storage.Result, error) {
	if s.results == nil {
		return nil, nil
	}
	results, err := s.results.ListRecent(ctx, limit)
	if err != nil {
		return nil, WrapError(err, "failed to list results")
	}
	return results, nil
}

// Result returns one stored result.
func (s *session) Result(ctx context.Context, id string) (*storage.Result, error) {
	if s.results == nil {
		return nil, ErrNotFound
	}
	result, err := s.results.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, WrapError(err, "failed to get result")
	}
	return result, nil
}
