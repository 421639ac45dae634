package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"trivia-quiz-service/internal/auth"
)

func newProvider(t *testing.T, v *auth.Verifier) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		idToken, err := v.Issue(auth.Identity{UserID: "user-42", Name: "Grace"}, time.Hour)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "opaque",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	}))
}

func newHandler(provider *httptest.Server, v *auth.Verifier) *auth.Handler {
	cfg := &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost/sso-callback",
		Scopes:       []string{"openid"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  provider.URL + "/authorize",
			TokenURL: provider.URL + "/token",
		},
	}
	return auth.NewHandler(cfg, v, "session", true)
}

func TestSignInRedirectsWithState(t *testing.T) {
	v := auth.NewVerifier(testSecret, "")
	provider := newProvider(t, v)
	defer provider.Close()
	h := newHandler(provider, v)

	rec := httptest.NewRecorder()
	h.SignIn(rec, httptest.NewRequest(http.MethodGet, "/sign-in", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/authorize", loc.Path)

	var state string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "oauth_state" {
			state = c.Value
		}
	}
	require.NotEmpty(t, state)
	assert.Equal(t, state, loc.Query().Get("state"))
}

func TestCallbackSetsSessionCookie(t *testing.T) {
	v := auth.NewVerifier(testSecret, "")
	provider := newProvider(t, v)
	defer provider.Close()
	h := newHandler(provider, v)

	req := httptest.NewRequest(http.MethodGet, "/sso-callback?code=good-code&state=s1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	require.Equal(t, http.StatusFound, rec.Code, rec.Body.String())
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	var session string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			session = c.Value
		}
	}
	require.NotEmpty(t, session)
	id, err := v.Verify(session)
	require.NoError(t, err)
	assert.Equal(t, "user-42", id.UserID)
}

func TestCallbackRejectsStateMismatch(t *testing.T) {
	v := auth.NewVerifier(testSecret, "")
	provider := newProvider(t, v)
	defer provider.Close()
	h := newHandler(provider, v)

	req := httptest.NewRequest(http.MethodGet, "/sso-callback?code=good-code&state=other", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCallbackExchangeFailure(t *testing.T) {
	v := auth.NewVerifier(testSecret, "")
	provider := newProvider(t, v)
	defer provider.Close()
	h := newHandler(provider, v)

	req := httptest.NewRequest(http.MethodGet, "/sso-callback?code=bad&state=s1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSignOutClearsCookie(t *testing.T) {
	h := auth.NewHandler(&oauth2.Config{}, auth.NewVerifier(testSecret, ""), "session", true)

	rec := httptest.NewRecorder()
	h.SignOut(rec, httptest.NewRequest(http.MethodPost, "/sign-out", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}
