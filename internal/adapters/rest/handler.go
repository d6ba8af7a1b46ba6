package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
	"github.com/ewilliams-labs/spotify-insights/internal/core/ports"
	"github.com/ewilliams-labs/spotify-insights/internal/metrics"
)

// PageService builds dashboard pages. *services.Insights satisfies it.
type PageService interface {
	Page(ctx context.Context, kind domain.StatisticKind) (domain.Page, error)
	Dashboard(ctx context.Context) ([]domain.Page, error)
}

// Authenticator runs the OAuth authorization-code flow.
// *spotify.Authenticator satisfies it.
type Authenticator interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Logout(ctx context.Context) error
}

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc      PageService
	renderer ports.ChartRenderer
	auth     Authenticator
	metrics  *metrics.Metrics
	router   *http.ServeMux // Standard library router
}

// NewHandler initializes the HTTP adapter and sets up routes. auth and m may
// be nil: login is then reported as not configured and metrics are skipped.
func NewHandler(svc PageService, renderer ports.ChartRenderer, auth Authenticator, m *metrics.Metrics) *Handler {
	h := &Handler{
		svc:      svc,
		renderer: renderer,
		auth:     auth,
		metrics:  m,
		router:   http.NewServeMux(),
	}

	// Register Routes
	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
// It acts as a proxy, passing the request to our internal router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	h.handle("GET /health", h.HealthCheck)
	// Dashboard
	h.handle("GET /{$}", h.Dashboard)
	h.handle("GET /pages/{kind}", h.RenderPage)
	h.handle("GET /api/{kind}", h.PageData)
	// OAuth
	h.handle("GET /login", h.Login)
	h.handle("GET /callback", h.Callback)
	h.handle("POST /logout", h.Logout)

	if h.metrics != nil {
		h.router.Handle("GET /metrics", h.metrics.Handler())
	}
}

func (h *Handler) handle(pattern string, fn http.HandlerFunc) {
	if h.metrics == nil {
		h.router.HandleFunc(pattern, fn)
		return
	}
	h.router.Handle(pattern, h.metrics.WrapHandler(pattern, fn))
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "spotify insights is live"})
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeErrorWithCode(w, status, message, "")
}

func writeErrorWithCode(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}
