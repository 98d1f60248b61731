package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/xavierca1/leadboard/internal/entity"
	custommw "github.com/xavierca1/leadboard/internal/infra/http/middleware"
	"github.com/xavierca1/leadboard/internal/infra/session"
)

type SessionHandler struct {
	store       *session.Store
	rateLimiter *RateLimiter
}

func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{
		store:       store,
		rateLimiter: NewRateLimiter(5, time.Minute), // 5 tentativas/min por IP
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool            `json:"success"`
	User    *entity.Session `json:"user,omitempty"`
	Message string          `json:"message,omitempty"`
}

func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, LoginResponse{
			Success: false,
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, LoginResponse{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	sess, token, err := h.store.Login(req.Email, req.Password)
	if errors.Is(err, session.ErrLoginFailed) {
		custommw.RecordLoginAttempt("failure")
		// Mensagem única de propósito: não diferencia email de senha.
		writeJSON(w, http.StatusUnauthorized, LoginResponse{
			Success: false,
			Message: "Email ou senha inválidos",
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, LoginResponse{
			Success: false,
			Message: "Failed to persist session",
		})
		return
	}

	custommw.RecordLoginAttempt("success")
	http.SetCookie(w, &http.Cookie{
		Name:     custommw.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		User:    &sess,
	})
}

// HandleLogout é idempotente: sem sessão ativa continua respondendo 200.
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Logout(); err != nil {
		writeJSON(w, http.StatusInternalServerError, LoginResponse{
			Success: false,
			Message: "Failed to clear session",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     custommw.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, LoginResponse{Success: true})
}

// HandleMe roda atrás do RequireSession, então a sessão já está no contexto.
func (h *SessionHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := custommw.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, LoginResponse{
			Success: false,
			Message: "No active session",
		})
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		User:    &sess,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
