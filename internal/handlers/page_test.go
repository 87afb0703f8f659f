package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sizing-assistant/internal/markdown"
)

func TestPageHandler_ServeHTTP(t *testing.T) {
	handler, err := NewPageHandler(markdown.NewRenderer())
	if err != nil {
		t.Fatalf("NewPageHandler() error = %v", err)
	}
	handler.now = func() time.Time { return time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC) }

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("ServeHTTP() status = %v, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		pageTitle,
		`value="2024-03-05"`,
		"Thermoset",
		"Metric",
		"<h1",
		`<section id="results">`,
		"<h2>Results</h2>",
		"/api/results",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
