package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xavierca1/leadboard/internal/entity"
)

// LeadRepository guarda a coleção canônica em memória. É o repositório de
// desenvolvimento/teste: a carga inicial vem de um fixture, uma única vez por
// processo, com uma janela de latência simulada durante a qual Loading()
// responde true e List() devolve a coleção vazia.
type LeadRepository struct {
	mu      sync.RWMutex
	loading bool
	leads   []entity.Lead
	index   map[string]int

	now func() time.Time
}

func NewLeadRepository(seed []entity.Lead, seedDelay time.Duration) *LeadRepository {
	r := &LeadRepository{
		loading: true,
		index:   make(map[string]int),
		now:     time.Now,
	}

	if seedDelay <= 0 {
		r.populate(seed)
		return r
	}

	go func() {
		time.Sleep(seedDelay)
		r.populate(seed)
	}()

	return r
}

func (r *LeadRepository) populate(seed []entity.Lead) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, lead := range seed {
		if _, exists := r.index[lead.ID]; exists {
			continue
		}
		r.index[lead.ID] = len(r.leads)
		r.leads = append(r.leads, lead)
	}
	r.loading = false
}

func (r *LeadRepository) Loading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loading
}

// List devolve uma cópia em ordem de inserção. Mutações no retorno não
// vazam para o repositório.
func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]entity.Lead, len(r.leads))
	copy(snapshot, r.leads)
	return snapshot, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}

	lead := r.leads[pos]
	return &lead, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[lead.ID]; exists {
		return fmt.Errorf("lead %s already exists", lead.ID)
	}

	r.index[lead.ID] = len(r.leads)
	r.leads = append(r.leads, *lead)
	return nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error) {
	if !entity.IsValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}

	r.leads[pos].Status = status
	r.leads[pos].UpdatedAt = r.now()

	lead := r.leads[pos]
	return &lead, nil
}

func (r *LeadRepository) UpdateNotes(ctx context.Context, id, notes string) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}

	r.leads[pos].Notes = notes
	r.leads[pos].UpdatedAt = r.now()

	lead := r.leads[pos]
	return &lead, nil
}
