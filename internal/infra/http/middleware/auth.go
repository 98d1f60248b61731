package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/session"
)

const SessionCookieName = "leadboard_session"

type contextKey string

const sessionContextKey contextKey = "session"

// RequireSession é o gate das rotas protegidas: sem sessão válida, 401 com a
// dica de redirect para o login. Enquanto o store ainda não restaurou
// (StateUnknown), responde neutro em vez de negar — o equivalente do spinner
// que o front mostrava antes de decidir a rota.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store.State() == session.StateUnknown {
				writeGateJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "restoring",
				})
				return
			}

			sess, ok := store.Validate(bearerToken(r))
			if !ok {
				writeGateJSON(w, http.StatusUnauthorized, map[string]string{
					"error":    "unauthorized",
					"redirect": "/login",
				})
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAnonymous protege as rotas públicas (login): quem já tem sessão
// válida é mandado de volta para o dashboard.
func RequireAnonymous(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store.State() == session.StateUnknown {
				writeGateJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "restoring",
				})
				return
			}

			if _, ok := store.Validate(bearerToken(r)); ok {
				writeGateJSON(w, http.StatusConflict, map[string]string{
					"error":    "already_authenticated",
					"redirect": "/dashboard",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromContext recupera a sessão colocada pelo RequireSession.
func SessionFromContext(ctx context.Context) (entity.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(entity.Session)
	return sess, ok
}

// bearerToken aceita o cookie da aplicação ou um Authorization: Bearer.
func bearerToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return ""
}

func writeGateJSON(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
