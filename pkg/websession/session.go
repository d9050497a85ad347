// Package websession keeps the browser side of a login: a signed cookie that
// carries the server-side session token plus one-shot flash messages.
package websession

import (
	"net/http"

	"order-management/pkg/utils"

	"github.com/gorilla/sessions"
)

const tokenKey = "token"

type Manager struct {
	store sessions.Store
	name  string
}

func NewManager(cfg utils.SessionConfig) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Expiry().Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: cfg.Name}
}

// NewManagerWithStore is used when the caller owns the sessions.Store.
func NewManagerWithStore(store sessions.Store, name string) *Manager {
	return &Manager{store: store, name: name}
}

// Token returns the session token stored in the cookie, or "" when the
// cookie is absent or has been tampered with.
func (m *Manager) Token(r *http.Request) string {
	session, err := m.store.Get(r, m.name)
	if err != nil {
		return ""
	}
	token, _ := session.Values[tokenKey].(string)
	return token
}

func (m *Manager) SetToken(w http.ResponseWriter, r *http.Request, token string) error {
	session, _ := m.store.Get(r, m.name)
	session.Values[tokenKey] = token
	return session.Save(r, w)
}

// Clear forgets the token. Pending flashes survive.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, m.name)
	delete(session.Values, tokenKey)
	return session.Save(r, w)
}

func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session, _ := m.store.Get(r, m.name)
	session.AddFlash(message)
	return session.Save(r, w)
}

// Flashes pops every pending flash message.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, err := m.store.Get(r, m.name)
	if err != nil {
		return nil
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	_ = session.Save(r, w)
	return messages
}
