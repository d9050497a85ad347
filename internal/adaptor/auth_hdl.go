package adaptor

import (
	"errors"
	"net"
	"net/http"

	"order-management/internal/dto/request"
	"order-management/internal/usecase"
	"order-management/pkg/utils"
	"order-management/pkg/websession"

	"go.uber.org/zap"
)

const loginFailedMessage = "Username or Password is incorrect"

type AuthHandler struct {
	service  usecase.AuthService
	pages    *Pages
	sessions *websession.Manager
	log      *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, pages *Pages, sessions *websession.Manager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		pages:    pages,
		sessions: sessions,
		log:      log,
	}
}

// RegisterPage handles GET /register
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, r, http.StatusOK, "register", "Register", nil, request.RegisterRequest{})
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.Render(w, r, http.StatusBadRequest, "register", "Register", nil, request.RegisterRequest{})
		return
	}

	req := request.RegisterRequest{
		Username:  r.PostFormValue("username"),
		Email:     r.PostFormValue("email"),
		Password1: r.PostFormValue("password1"),
		Password2: r.PostFormValue("password2"),
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if ve, ok := usecase.AsValidationError(err); ok {
			// passwords are never echoed back
			form := request.RegisterRequest{Username: req.Username, Email: req.Email}
			h.pages.Render(w, r, http.StatusOK, "register", "Register", ve.Fields, form)
			return
		}
		h.pages.handleServiceError(w, r, err, "register")
		return
	}

	if err := h.sessions.AddFlash(w, r, "Account created for "+user.Username); err != nil {
		h.log.Warn("Failed to save flash message", zap.Error(err))
	}
	utils.Redirect(w, r, "/login")
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, r, http.StatusOK, "login", "Login", nil, request.LoginRequest{})
}

// Login handles POST /login. Success always lands on "/"; the page the
// visitor originally asked for is not resumed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.Render(w, r, http.StatusBadRequest, "login", "Login", nil, request.LoginRequest{})
		return
	}

	req := request.LoginRequest{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		UserAgent: r.UserAgent(),
		IPAddress: clientIP(r),
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		_, invalid := usecase.AsValidationError(err)
		if invalid || errors.Is(err, usecase.ErrInvalidCredentials) || errors.Is(err, usecase.ErrInactive) {
			if err := h.sessions.AddFlash(w, r, loginFailedMessage); err != nil {
				h.log.Warn("Failed to save flash message", zap.Error(err))
			}
			h.pages.Render(w, r, http.StatusOK, "login", "Login", nil, request.LoginRequest{Username: req.Username})
			return
		}
		h.pages.handleServiceError(w, r, err, "login")
		return
	}

	if err := h.sessions.SetToken(w, r, auth.Token); err != nil {
		h.pages.handleServiceError(w, r, err, "store session cookie")
		return
	}

	utils.Redirect(w, r, "/")
}

// Logout handles GET /logout. It is safe to call without a session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		token = h.sessions.Token(r)
	}

	if token != "" {
		if err := h.service.Logout(r.Context(), token); err != nil {
			h.log.Error("Failed to revoke session", zap.Error(err))
		}
	}

	if err := h.sessions.Clear(w, r); err != nil {
		h.log.Warn("Failed to clear session cookie", zap.Error(err))
	}

	utils.Redirect(w, r, "/login")
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
