package handlers

import (
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"sizing-assistant/internal/contextutil"
	"sizing-assistant/internal/markdown"
	"sizing-assistant/internal/sizing"
)

var (
	//go:embed assets/index.html.tmpl
	indexTemplate string

	//go:embed assets/instructions.md
	instructionsMarkdown string
)

const pageTitle = "Conductor Sizing Assistant"

// pageData holds template data for the index page.
type pageData struct {
	Title        string
	Defaults     sizing.ParameterSet
	Units        []sizing.Units
	Phases       []int
	Insulation   []sizing.InsulationType
	Instructions template.HTML
}

// PageHandler serves the entry form with the rendered instructions.
type PageHandler struct {
	template     *template.Template
	instructions template.HTML
	now          func() time.Time
}

// NewPageHandler creates a new PageHandler. The instructions are rendered once.
func NewPageHandler(renderer *markdown.Renderer) (*PageHandler, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	instructions, err := renderer.Render(instructionsMarkdown)
	if err != nil {
		return nil, fmt.Errorf("render instructions: %w", err)
	}
	return &PageHandler{
		template:     tmpl,
		instructions: template.HTML(instructions),
		now:          time.Now,
	}, nil
}

// ServeHTTP renders the index page.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := pageData{
		Title:        pageTitle,
		Defaults:     sizing.Defaults(h.now()),
		Units:        sizing.AllUnits,
		Phases:       sizing.AllPhases,
		Insulation:   sizing.AllInsulationType,
		Instructions: h.instructions,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, data); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to execute index template", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}
