package rest

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	stateCookie    = "insights_oauth_state"
	stateCookieTTL = 10 * time.Minute
)

// Login handles GET /login by redirecting to the consent page.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		writeError(w, http.StatusNotImplemented, "spotify login not configured")
		return
	}

	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.auth.AuthCodeURL(state), http.StatusFound)
}

// Callback handles GET /callback, the redirect back from the consent page.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		writeError(w, http.StatusNotImplemented, "spotify login not configured")
		return
	}

	q := r.URL.Query()
	if reason := q.Get("error"); reason != "" {
		writeError(w, http.StatusForbidden, "authorization denied: "+reason)
		return
	}

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != q.Get("state") {
		writeError(w, http.StatusBadRequest, "invalid oauth state")
		return
	}
	// the state is single use
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Value: "", Path: "/", MaxAge: -1})

	code := q.Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	if _, err := h.auth.Exchange(r.Context(), code); err != nil {
		log.Printf("WARN rest: oauth callback: %v", err)
		writeError(w, http.StatusBadGateway, "failed to complete spotify login")
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout handles POST /logout by forgetting the stored token. Pages fall back
// to sample data until the next login.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		writeError(w, http.StatusNotImplemented, "spotify login not configured")
		return
	}
	if err := h.auth.Logout(r.Context()); err != nil {
		log.Printf("WARN rest: logout: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to log out")
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
