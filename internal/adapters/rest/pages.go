package rest

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

const errCodeUnknownKind = "UNKNOWN_KIND"

// pageResponse is the JSON view of one page.
type pageResponse struct {
	RenderID    string          `json:"render_id"`
	Kind        string          `json:"kind"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Insight     string          `json:"insight,omitempty"`
	IsFallback  bool            `json:"is_fallback"`
	Notice      string          `json:"notice,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
	Encoding    domain.Encoding `json:"encoding"`
	Heatmap     *domain.Heatmap `json:"heatmap,omitempty"`
	Records     any             `json:"records"`
}

func newPageResponse(p domain.Page) pageResponse {
	return pageResponse{
		RenderID:    p.RenderID,
		Kind:        string(p.Kind),
		Title:       p.Title,
		Description: p.Description,
		Insight:     p.Insight,
		IsFallback:  p.IsFallback,
		Notice:      p.Notice,
		GeneratedAt: p.GeneratedAt,
		Encoding:    p.Encoding,
		Heatmap:     p.Heatmap,
		Records:     p.Records(),
	}
}

// PageData handles GET /api/{kind}
func (h *Handler) PageData(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newPageResponse(page))
}

// RenderPage handles GET /pages/{kind}
func (h *Handler) RenderPage(w http.ResponseWriter, r *http.Request) {
	page, ok := h.page(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, page); err != nil {
		log.Printf("WARN rest: render %s: %v", page.Kind, err)
		writeError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	writeHTML(w, buf.Bytes())
}

// Dashboard handles GET / with every page on one document.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.Dashboard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	for _, p := range pages {
		h.metrics.PageRendered(string(p.Kind), p.IsFallback)
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderDashboard(&buf, pages); err != nil {
		log.Printf("WARN rest: render dashboard: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to render dashboard")
		return
	}
	writeHTML(w, buf.Bytes())
}

// page resolves the {kind} path value and builds its page, writing the error
// response itself when that fails.
func (h *Handler) page(w http.ResponseWriter, r *http.Request) (domain.Page, bool) {
	kind, err := domain.ParseStatisticKind(r.PathValue("kind"))
	if err != nil {
		writeErrorWithCode(w, http.StatusNotFound, err.Error(), errCodeUnknownKind)
		return domain.Page{}, false
	}

	page, err := h.svc.Page(r.Context(), kind)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownKind) {
			writeErrorWithCode(w, http.StatusNotFound, err.Error(), errCodeUnknownKind)
			return domain.Page{}, false
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return domain.Page{}, false
	}
	h.metrics.PageRendered(string(page.Kind), page.IsFallback)
	return page, true
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
