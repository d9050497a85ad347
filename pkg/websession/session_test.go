package websession

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"order-management/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(utils.SessionConfig{
		Secret:      "0123456789abcdef0123456789abcdef",
		Name:        "test_session",
		ExpiryHours: 1,
	})
}

// carry copies the cookies set on rec into a fresh request.
func carry(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestManager_Token(t *testing.T) {
	m := newTestManager()

	assert.Empty(t, m.Token(httptest.NewRequest(http.MethodGet, "/", nil)))

	rec := httptest.NewRecorder()
	require.NoError(t, m.SetToken(rec, httptest.NewRequest(http.MethodGet, "/", nil), "abc"))

	cookie := rec.Result().Cookies()[0]
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.Equal(t, "abc", m.Token(carry(rec)))

	cleared := httptest.NewRecorder()
	require.NoError(t, m.Clear(cleared, carry(rec)))
	assert.Empty(t, m.Token(carry(cleared)))
}

func TestManager_TamperedCookie(t *testing.T) {
	m := newTestManager()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: "forged"})

	assert.Empty(t, m.Token(req))
}

func TestManager_Flashes(t *testing.T) {
	m := newTestManager()

	rec := httptest.NewRecorder()
	require.NoError(t, m.AddFlash(rec, httptest.NewRequest(http.MethodGet, "/", nil), "Account created for alice"))

	next := httptest.NewRecorder()
	assert.Equal(t, []string{"Account created for alice"}, m.Flashes(next, carry(rec)))

	// popped flashes do not come back
	assert.Empty(t, m.Flashes(httptest.NewRecorder(), carry(next)))
}
