package usecase

import (
	"context"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	// List retorna um snapshot da coleção em ordem de inserção.
	// Mutações no retorno não afetam o repositório.
	List(ctx context.Context) ([]entity.Lead, error)
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	Create(ctx context.Context, lead *entity.Lead) error
	UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error)
	UpdateNotes(ctx context.Context, id, notes string) (*entity.Lead, error)

	// Loading indica se a carga inicial (seed assíncrono) ainda está pendente.
	Loading() bool
}

type QueueProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
