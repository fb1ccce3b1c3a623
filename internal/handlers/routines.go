package handlers

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"gimnasio/internal/contextutil"
	"gimnasio/internal/markdown"
	"gimnasio/internal/service"
)

// RoutineHandler serves the routine archive as JSON or rendered HTML.
type RoutineHandler struct {
	routines service.RoutineService
	renderer *markdown.Renderer
	template *template.Template
}

// RoutineResponse is the JSON form of an archived routine.
type RoutineResponse struct {
	ID        string   `json:"id"`
	Goal      string   `json:"goal"`
	Level     string   `json:"level"`
	Duration  string   `json:"duration"`
	Content   string   `json:"content"`
	Model     string   `json:"model"`
	Sections  []string `json:"sections"`
	CreatedAt string   `json:"created_at"`
}

// SimilarRoutineResponse is a similarity search hit.
type SimilarRoutineResponse struct {
	RoutineResponse
	Score float32 `json:"score"`
}

// routinePageData holds template data for rendered routine pages.
type routinePageData struct {
	Title     string
	Level     string
	Duration  string
	Model     string
	CreatedAt string
	Content   template.HTML
}

// NewRoutineHandler creates a new RoutineHandler.
func NewRoutineHandler(routines service.RoutineService, renderer *markdown.Renderer) *RoutineHandler {
	tmpl := template.Must(template.New("routine").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
      background: #0b1220;
      color: #e2e8f0;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid rgba(148, 163, 184, 0.2);
      padding-bottom: 1.5rem;
    }
    h1 {
      margin-top: 0;
      color: #fff;
    }
    article {
      background: rgba(15, 23, 42, 0.85);
      border: 1px solid rgba(34, 197, 94, 0.25);
      border-radius: 16px;
      padding: 2rem;
    }
    article h2, article h3 {
      color: #86efac;
    }
    table {
      border-collapse: collapse;
    }
    th, td {
      border: 1px solid rgba(148, 163, 184, 0.3);
      padding: 0.4rem 0.8rem;
    }
    .meta {
      color: #94a3b8;
      font-size: 0.95rem;
    }
    @media (max-width: 640px) {
      body {
        padding: 1rem;
      }
      article {
        padding: 1.25rem;
      }
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">Nivel: {{.Level}} &middot; Duración: {{.Duration}} &middot; {{.Model}} &middot; {{.CreatedAt}}</p>
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &RoutineHandler{
		routines: routines,
		renderer: renderer,
		template: tmpl,
	}
}

// List handles GET /api/gemini/routines?limit=.
func (h *RoutineHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := intQuery(r, "limit", service.DefaultRoutineListLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	routines, err := h.routines.List(ctx, limit)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list routines")
		return
	}

	resp := make([]RoutineResponse, 0, len(routines))
	for _, routine := range routines {
		resp = append(resp, toRoutineResponse(routine))
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /api/gemini/routines/{id}. With ?format=html the routine
// is rendered as a page.
func (h *RoutineHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	routine, err := h.routines.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get routine")
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	switch format {
	case "", "json":
		writeJSON(w, r, http.StatusOK, toRoutineResponse(routine))
		return
	case "html":
	default:
		writeError(w, http.StatusBadRequest, "format must be json or html")
		return
	}

	htmlContent, err := h.renderer.ToHTML(routine.Content)
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "routine_id", routine.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render routine")
		return
	}

	pageData := routinePageData{
		Title:     "Rutina: " + routine.Goal,
		Level:     routine.Level,
		Duration:  routine.Duration,
		Model:     routine.Model,
		CreatedAt: routine.CreatedAt.UTC().Format(time.RFC3339),
		Content:   template.HTML(htmlContent),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute routine template", "routine_id", routine.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render routine")
		return
	}
}

// Similar handles GET /api/gemini/routines/similar?q=&k=&level=.
func (h *RoutineHandler) Similar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	k, err := intQuery(r, "k", service.DefaultSimilarK)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := r.URL.Query()
	hits, err := h.routines.Similar(ctx, query.Get("q"), k, query.Get("level"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search routines")
		return
	}

	resp := make([]SimilarRoutineResponse, 0, len(hits))
	for _, hit := range hits {
		resp = append(resp, SimilarRoutineResponse{
			RoutineResponse: toRoutineResponse(hit.Routine),
			Score:           hit.Score,
		})
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// Delete handles DELETE /api/gemini/routines/{id}.
func (h *RoutineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.routines.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, r.Context(), err, "Failed to delete routine")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toRoutineResponse(routine service.Routine) RoutineResponse {
	sections := routine.Sections
	if sections == nil {
		sections = []string{}
	}
	return RoutineResponse{
		ID:        routine.ID,
		Goal:      routine.Goal,
		Level:     routine.Level,
		Duration:  routine.Duration,
		Content:   routine.Content,
		Model:     routine.Model,
		Sections:  sections,
		CreatedAt: routine.CreatedAt.UTC().Format(time.RFC3339),
	}
}
