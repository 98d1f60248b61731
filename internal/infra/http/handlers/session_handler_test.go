package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/leadboard/internal/infra/http/handlers"
	custommw "github.com/xavierca1/leadboard/internal/infra/http/middleware"
	"github.com/xavierca1/leadboard/internal/infra/session"
)

type memoryStorage struct {
	data   []byte
	exists bool
}

func (m *memoryStorage) Load() ([]byte, bool, error) { return m.data, m.exists, nil }
func (m *memoryStorage) Save(data []byte) error      { m.data = data; m.exists = true; return nil }
func (m *memoryStorage) Clear() error                { m.data = nil; m.exists = false; return nil }

func newSessionFixture() (*handlers.SessionHandler, *session.Store) {
	store := session.NewStore(&memoryStorage{}, "admin123", 0)
	store.Restore()
	return handlers.NewSessionHandler(store), store
}

func loginRequest(body any) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleLoginSuccess(t *testing.T) {
	handler, store := newSessionFixture()

	w := httptest.NewRecorder()
	handler.HandleLogin(w, loginRequest(handlers.LoginRequest{
		Email:    "admin@example.com",
		Password: "admin123",
	}))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handlers.LoginResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "admin@example.com", resp.User.Email)
	assert.Equal(t, "Admin User", resp.User.Name)

	// cookie emitido valida contra o store
	cookies := w.Result().Cookies()
	var token string
	for _, c := range cookies {
		if c.Name == custommw.SessionCookieName {
			token = c.Value
		}
	}
	assert.NotEmpty(t, token)
	_, ok := store.Validate(token)
	assert.True(t, ok)
}

func TestHandleLoginFailureIsGeneric(t *testing.T) {
	handler, store := newSessionFixture()

	var failureCases = []struct {
		desc string
		body handlers.LoginRequest
	}{
		{
			desc: "wrong password",
			body: handlers.LoginRequest{Email: "admin@example.com", Password: "wrong"},
		},
		{
			desc: "empty email",
			body: handlers.LoginRequest{Email: "", Password: "admin123"},
		},
	}

	for _, testData := range failureCases {
		t.Run(testData.desc, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.HandleLogin(w, loginRequest(testData.body))

			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var resp handlers.LoginResponse
			json.Unmarshal(w.Body.Bytes(), &resp)
			assert.False(t, resp.Success)
			// mesma mensagem nos dois casos, sem dica de qual campo errou
			assert.Equal(t, "Email ou senha inválidos", resp.Message)
		})
	}

	assert.Equal(t, session.StateAnonymous, store.State())
}

func TestHandleLoginInvalidJSON(t *testing.T) {
	handler, _ := newSessionFixture()

	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("{broken")))
	w := httptest.NewRecorder()
	handler.HandleLogin(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleLoginRateLimit(t *testing.T) {
	handler, _ := newSessionFixture()

	// 5 tentativas/min por IP; a sexta cai no limite
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.HandleLogin(w, loginRequest(handlers.LoginRequest{Email: "a@b.com", Password: "wrong"}))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := httptest.NewRecorder()
	handler.HandleLogin(w, loginRequest(handlers.LoginRequest{Email: "a@b.com", Password: "wrong"}))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestHandleLogout(t *testing.T) {
	handler, store := newSessionFixture()
	store.Login("admin@example.com", "admin123")

	w := httptest.NewRecorder()
	handler.HandleLogout(w, httptest.NewRequest("POST", "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.StateAnonymous, store.State())

	// idempotente: repetir o logout continua 200
	w = httptest.NewRecorder()
	handler.HandleLogout(w, httptest.NewRequest("POST", "/auth/logout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
