package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/leadboard/internal/entity"
)

// Estados do slot de sessão. Unknown dura até o Restore checar o storage;
// consumidores (gate de rotas) precisam distinguir Unknown de Anonymous para
// não redirecionar antes da hora.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

// ErrLoginFailed é genérico de propósito: não revela se o problema foi o
// email ou a senha.
var ErrLoginFailed = errors.New("invalid credentials")

// Storage persiste o registro de sessão sob uma chave fixa.
type Storage interface {
	Load() (data []byte, exists bool, err error)
	Save(data []byte) error
	Clear() error
}

// record é o formato persistido. O token acompanha a sessão para que um
// restart do processo não invalide o cookie do cliente.
type record struct {
	Token string         `json:"token"`
	User  entity.Session `json:"user"`
}

type Store struct {
	mu      sync.Mutex
	state   State
	current entity.Session
	token   string

	storage Storage
	secret  string

	// Latência simulada do login. Zero nos testes.
	loginDelay time.Duration
}

func NewStore(storage Storage, secret string, loginDelay time.Duration) *Store {
	return &Store{
		state:      StateUnknown,
		storage:    storage,
		secret:     secret,
		loginDelay: loginDelay,
	}
}

// Restore lê o registro persistido e sai do estado Unknown. Deve rodar antes
// de qualquer decisão de gate de rota. Registro ausente ou corrompido vira
// Anonymous, nunca erro fatal.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, exists, err := s.storage.Load()
	if err != nil {
		s.state = StateAnonymous
		return fmt.Errorf("falha ao ler sessão persistida: %w", err)
	}

	if !exists {
		s.state = StateAnonymous
		return nil
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || rec.User.ID == "" {
		s.storage.Clear()
		s.state = StateAnonymous
		return nil
	}

	s.current = rec.User
	s.token = rec.Token
	s.state = StateAuthenticated
	return nil
}

// Login valida as credenciais mock: qualquer email não-vazio pareado com o
// segredo compartilhado. PLACEHOLDER herdado do front original — não é um
// contrato de autenticação real.
//
// O mutex fica preso durante a janela de latência, então tentativas
// concorrentes são serializadas e não geram sessão dupla.
func (s *Store) Login(email, password string) (entity.Session, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loginDelay > 0 {
		time.Sleep(s.loginDelay)
	}

	if strings.TrimSpace(email) == "" || password != s.secret {
		// Mantém o estado anterior e responde sem detalhe.
		return entity.Session{}, "", ErrLoginFailed
	}

	sess := entity.Session{
		ID:    "1",
		Name:  "Admin User",
		Email: email,
	}
	token := uuid.New().String()

	data, err := json.Marshal(record{Token: token, User: sess})
	if err != nil {
		return entity.Session{}, "", fmt.Errorf("falha ao serializar sessão: %w", err)
	}
	if err := s.storage.Save(data); err != nil {
		return entity.Session{}, "", fmt.Errorf("falha ao persistir sessão: %w", err)
	}

	s.current = sess
	s.token = token
	s.state = StateAuthenticated
	return sess, token, nil
}

// Logout limpa o registro persistido e volta para Anonymous. Idempotente.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAnonymous {
		return nil
	}

	if err := s.storage.Clear(); err != nil {
		return fmt.Errorf("falha ao limpar sessão persistida: %w", err)
	}

	s.current = entity.Session{}
	s.token = ""
	s.state = StateAnonymous
	return nil
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current devolve a sessão ativa, se houver.
func (s *Store) Current() (entity.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return entity.Session{}, false
	}
	return s.current, true
}

// Validate confere um token de portador contra a sessão ativa.
func (s *Store) Validate(token string) (entity.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated || token == "" || token != s.token {
		return entity.Session{}, false
	}
	return s.current, true
}
