package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hirebase/hirebase-go/internal/crypto"
	"github.com/hirebase/hirebase-go/internal/middleware"
	"github.com/hirebase/hirebase-go/internal/model"
	"github.com/hirebase/hirebase-go/internal/service"
)

// AuthHandler orchestrates the auth service and token issuer for the login,
// registration and logout endpoints.
type AuthHandler struct {
	service   *service.AuthService
	jwtSecret string
	jwtExpiry time.Duration
	secure    bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie controls the Secure
// flag on the session cookie and should only be false in local development.
func NewAuthHandler(svc *service.AuthService, secret string, expiry time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:   svc,
		jwtSecret: secret,
		jwtExpiry: expiry,
		secure:    secureCookie,
	}
}

// HandleLogin handles POST /login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorEnvelope{
			Error: model.ErrorBody{ErrorCode: -1, ErrorMsg: "invalid request body"},
		})
		slog.Warn("login rejected", "handler", "auth", "reason", "malformed request body")
		return
	}

	user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One fixed message for unknown user and wrong password alike.
			writeJSON(w, http.StatusUnauthorized, model.CredentialErrorEnvelope{
				Error: model.CredentialError{ErrorCode: 1, Message: "Invalid credentials"},
			})
			slog.Warn("login rejected", "handler", "auth", "reason", "invalid credentials")
			return
		}
		writeText(w, http.StatusInternalServerError, "error logging in")
		slog.Error("login failed", "handler", "auth", "reason", "auth service failure", "error", err)
		return
	}

	if err := h.setSessionCookie(w, user.Email); err != nil {
		writeText(w, http.StatusInternalServerError, "error logging in")
		slog.Error("login failed", "handler", "auth", "reason", "token creation failure", "error", err)
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{Message: "Login successful", FoundUser: user.Found()})
	slog.Info("login successful", "handler", "auth", "reason", "user logged in", "username", user.Username)
}

// HandleRegister handles POST /register requests. A fresh account starts in
// the applicant role and is signed in immediately via the session cookie.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorEnvelope{
			Error: model.ErrorBody{ErrorCode: -1, ErrorMsg: "invalid request body"},
		})
		slog.Warn("register rejected", "handler", "auth", "reason", "malformed request body")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		var verr service.ValidationError
		if errors.As(err, &verr) {
			// The validation text travels to the client verbatim.
			writeText(w, http.StatusUnauthorized, verr.Error())
			slog.Warn("register rejected", "handler", "auth", "reason", verr.Error())
			return
		}
		// Generic body only; the underlying cause is logged, never echoed.
		writeText(w, http.StatusInternalServerError, "error registering")
		slog.Error("register failed", "handler", "auth", "reason", "auth service failure", "error", err)
		return
	}

	if err := h.setSessionCookie(w, user.Email); err != nil {
		writeText(w, http.StatusInternalServerError, "error registering")
		slog.Error("register failed", "handler", "auth", "reason", "token creation failure", "error", err)
		return
	}

	writeJSON(w, http.StatusOK, model.RegisterResponse{Message: "Register successful", CreatedUser: user.Created()})
	slog.Info("register successful", "handler", "auth", "reason", "registration was successful", "username", user.Username)
}

// HandleLogout handles POST /logout requests by clearing the session cookie.
// The token itself stays cryptographically valid until its expiry elapses;
// without a server-side session table, logout is client-side erasure.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	writeText(w, http.StatusOK, "User logged out successfully")
	slog.Info("logout", "handler", "auth", "reason", "user logged out")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, email string) error {
	token, err := crypto.GenerateToken(email, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
