package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"sizing-assistant/internal/settings"
)

func testSettings() settings.Settings {
	return settings.Settings{
		APIKey:      "test-key",
		Model:       "test-model",
		Temperature: 0.5,
		MaxTokens:   120,
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8081/v1/completions", 5*time.Second)
	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.URL != "http://localhost:8081/v1/completions" {
		t.Errorf("NewClient() URL = %v, want http://localhost:8081/v1/completions", client.URL)
	}
	if client.Timeout != 5*time.Second {
		t.Errorf("NewClient() Timeout = %v, want 5s", client.Timeout)
	}
	if client.client == nil {
		t.Error("NewClient() client should not be nil")
	}
}

func TestClient_Submit(t *testing.T) {
	tests := []struct {
		name       string
		serverResp func(w http.ResponseWriter, r *http.Request)
		wantOK     bool
		wantText   string
		wantKind   FailureKind
		wantDetail []string
	}{
		{
			name: "successful completion is trimmed",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"choices":[{"text":" 4 AWG "}]}`))
			},
			wantOK:   true,
			wantText: "4 AWG",
		},
		{
			name: "only first choice is used",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":"cmpl-1","choices":[{"text":"\n\n2/0 AWG copper\n","index":0},{"text":"other","index":1}]}`))
			},
			wantOK:   true,
			wantText: "2/0 AWG copper",
		},
		{
			name: "server error keeps status and body",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("boom"))
			},
			wantKind:   FailureAPI,
			wantDetail: []string{"500", "boom"},
		},
		{
			name: "unauthorized",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
			},
			wantKind:   FailureAPI,
			wantDetail: []string{"401", `{"error":{"message":"Incorrect API key provided"}}`},
		},
		{
			name: "missing choices",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			wantKind: FailureParse,
		},
		{
			name: "empty choices",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[]}`))
			},
			wantKind: FailureParse,
		},
		{
			name: "choice without text",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[{"index":0}]}`))
			},
			wantKind: FailureParse,
		},
		{
			name: "invalid JSON",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			wantKind: FailureParse,
		},
		{
			name: "choices of wrong type",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices":"nope"}`))
			},
			wantKind: FailureParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResp))
			defer server.Close()

			client := NewClient(server.URL, time.Second)
			outcome := client.Submit(context.Background(), "prompt", testSettings())

			if tt.wantOK {
				if !outcome.OK() {
					t.Fatalf("Submit() unexpected failure: %v", outcome.Err)
				}
				if outcome.Text != tt.wantText {
					t.Errorf("Submit() text = %q, want %q", outcome.Text, tt.wantText)
				}
				return
			}

			if outcome.OK() {
				t.Fatalf("Submit() expected failure, got success %q", outcome.Text)
			}
			if outcome.Err.Kind != tt.wantKind {
				t.Errorf("Submit() kind = %v, want %v", outcome.Err.Kind, tt.wantKind)
			}
			for _, s := range tt.wantDetail {
				if !strings.Contains(outcome.Err.Detail, s) {
					t.Errorf("Submit() detail %q does not contain %q", outcome.Err.Detail, s)
				}
			}
		})
	}
}

func TestClient_Submit_Request(t *testing.T) {
	var got CompletionRequest
	var rawBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/completions" {
			t.Errorf("expected /v1/completions, got %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q, want %q", auth, "Bearer test-key")
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&rawBody); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices":[{"text":"ok"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/v1/completions", time.Second)
	outcome := client.Submit(context.Background(), "What size?", testSettings())
	if !outcome.OK() {
		t.Fatalf("Submit() unexpected failure: %v", outcome.Err)
	}

	if len(rawBody) != 3 {
		t.Errorf("request body has %d fields, want 3: %v", len(rawBody), rawBody)
	}
	got.Model, _ = rawBody["model"].(string)
	got.Prompt, _ = rawBody["prompt"].(string)
	if tokens, ok := rawBody["max_tokens"].(float64); ok {
		got.MaxTokens = int(tokens)
	}
	want := CompletionRequest{Model: "test-model", Prompt: "What size?", MaxTokens: 120}
	if got != want {
		t.Errorf("request body = %+v, want %+v", got, want)
	}
}

func TestClient_Submit_EmptyKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The server trims the trailing space of "Bearer ".
		if got := strings.TrimSpace(r.Header.Get("Authorization")); got != "Bearer" {
			t.Errorf("Authorization = %q, want bare Bearer", got)
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("missing key"))
	}))
	defer server.Close()

	s := testSettings()
	s.APIKey = ""
	outcome := NewClient(server.URL, time.Second).Submit(context.Background(), "p", s)
	if outcome.OK() || outcome.Err.Kind != FailureAPI {
		t.Errorf("Submit() = %+v, want api failure", outcome)
	}
}

func TestClient_Submit_LargeErrorBody(t *testing.T) {
	tests := []struct {
		name          string
		size          int
		wantTruncated bool
	}{
		{name: "at limit kept verbatim", size: maxBodyBytes, wantTruncated: false},
		{name: "over limit marked", size: maxBodyBytes + 10, wantTruncated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.Repeat("x", tt.size)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			outcome := NewClient(server.URL, 5*time.Second).Submit(context.Background(), "p", testSettings())
			if outcome.OK() || outcome.Err.Kind != FailureAPI {
				t.Fatalf("Submit() = %v, want api failure", outcome.Err)
			}

			detail := outcome.Err.Detail
			if got := strings.HasSuffix(detail, truncatedMarker); got != tt.wantTruncated {
				t.Errorf("detail truncated marker = %v, want %v", got, tt.wantTruncated)
			}
			wantPrefix := "502 - " + body[:min(tt.size, maxBodyBytes)]
			if !strings.HasPrefix(detail, wantPrefix) {
				t.Errorf("detail does not start with the first %d body bytes", min(tt.size, maxBodyBytes))
			}
			if !tt.wantTruncated && detail != "502 - "+body {
				t.Error("detail should carry the body verbatim")
			}
		})
	}
}

func TestClient_Submit_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	outcome := NewClient(url, time.Second).Submit(context.Background(), "p", testSettings())
	if outcome.OK() {
		t.Fatal("Submit() expected transport failure")
	}
	if outcome.Err.Kind != FailureTransport {
		t.Errorf("Submit() kind = %v, want %v", outcome.Err.Kind, FailureTransport)
	}
	if outcome.Err.Detail == "" {
		t.Error("Submit() transport failure has empty detail")
	}
}

func TestClient_Submit_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	outcome := NewClient(server.URL, 50*time.Millisecond).Submit(context.Background(), "p", testSettings())
	if outcome.OK() || outcome.Err.Kind != FailureTransport {
		t.Errorf("Submit() = %+v, want transport failure on timeout", outcome)
	}
}

func TestClient_Submit_NoRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_ = NewClient(server.URL, time.Second).Submit(context.Background(), "p", testSettings())
	if n := calls.Load(); n != 1 {
		t.Errorf("server received %d calls, want 1", n)
	}
}

func TestCompletionError_Error(t *testing.T) {
	err := &CompletionError{Kind: FailureAPI, Detail: "500 - boom"}
	if got := err.Error(); got != "api error: 500 - boom" {
		t.Errorf("Error() = %q", got)
	}
}
