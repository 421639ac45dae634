package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"trivia-quiz-service/internal/logging"
	"trivia-quiz-service/internal/respond"
)

const stateCookie = "oauth_state"

// Handler serves the sign-in, callback and sign-out routes.
type Handler struct {
	oauth      *oauth2.Config
	verifier   *Verifier
	cookieName string
	enabled    bool
}

func NewHandler(oauth *oauth2.Config, verifier *Verifier, cookieName string, enabled bool) *Handler {
	return &Handler{oauth: oauth, verifier: verifier, cookieName: cookieName, enabled: enabled}
}

// SignIn redirects to the provider's consent page.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.oauth.AuthCodeURL(state), http.StatusFound)
}

// Callback completes the code exchange and stores the verified identity token.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())
	if !h.enabled {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	state, err := r.Cookie(stateCookie)
	if err != nil || state.Value == "" || state.Value != r.URL.Query().Get("state") {
		log.Warn("oauth state mismatch")
		respond.Error(w, http.StatusBadRequest, "invalid oauth state")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Value: "", Path: "/", MaxAge: -1})

	code := r.URL.Query().Get("code")
	if code == "" {
		respond.Error(w, http.StatusBadRequest, "missing authorization code")
		return
	}
	token, err := h.oauth.Exchange(r.Context(), code)
	if err != nil {
		log.WithError(err).Error("oauth code exchange failed")
		respond.Error(w, http.StatusBadGateway, "sign-in failed")
		return
	}

	raw, err := identityToken(token)
	if err != nil {
		log.WithError(err).Error("provider returned no identity token")
		respond.Error(w, http.StatusBadGateway, "sign-in failed")
		return
	}
	id, err := h.verifier.Verify(raw)
	if err != nil {
		log.WithError(err).Warn("identity token rejected")
		respond.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    raw,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	}
	if !token.Expiry.IsZero() {
		cookie.Expires = token.Expiry
	}
	http.SetCookie(w, cookie)
	log.WithField("user_id", id.UserID).Info("user signed in")
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// SignOut clears the session cookie.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respond.JSON(w, http.StatusOK, map[string]string{
		"message":  "signed out",
		"redirect": "/sign-in",
	})
}

// identityToken prefers the OIDC id_token and falls back to a JWT access token.
func identityToken(token *oauth2.Token) (string, error) {
	if raw, ok := token.Extra("id_token").(string); ok && raw != "" {
		return raw, nil
	}
	if token.AccessToken != "" {
		return token.AccessToken, nil
	}
	return "", errors.New("no token in provider response")
}
