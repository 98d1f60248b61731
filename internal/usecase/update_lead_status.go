package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/queue"
)

type UpdateLeadStatusUseCase struct {
	Repo  LeadRepositoryInterface
	Queue QueueProducerInterface
}

func NewUpdateLeadStatusUseCase(repo LeadRepositoryInterface, producer QueueProducerInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{
		Repo:  repo,
		Queue: producer,
	}
}

// Execute move o lead para qualquer status válido. Transições são livres:
// converted pode voltar para new, não há progressão linear obrigatória.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, input UpdateLeadStatusInput) (*UpdateLeadStatusOutput, error) {
	if !entity.IsValidStatus(input.Status) {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "status must be new, contacted or converted",
		}
	}

	previous, err := uc.Repo.FindByID(ctx, input.LeadID)
	if err != nil {
		return nil, mapLeadLookupError(err)
	}

	lead, err := uc.Repo.UpdateStatus(ctx, input.LeadID, input.Status)
	if err != nil {
		return nil, mapLeadLookupError(err)
	}

	go func() {
		if uc.Queue != nil {
			uc.Queue.PublishLeadEvent(context.Background(), queue.LeadEventPayload{
				LeadID:         lead.ID,
				Name:           lead.Name,
				Email:          lead.Email,
				PreviousStatus: previous.Status,
				NewStatus:      lead.Status,
				OccurredAt:     time.Now(),
			})
		}
	}()

	return &UpdateLeadStatusOutput{
		Lead:           *lead,
		PreviousStatus: previous.Status,
	}, nil
}

func mapLeadLookupError(err error) error {
	if errors.Is(err, entity.ErrLeadNotFound) {
		return &DomainError{
			Code:    "LEAD_NOT_FOUND",
			Message: "lead não encontrado",
		}
	}
	return &TechnicalError{
		Code:    "REPOSITORY_ERROR",
		Message: err.Error(),
	}
}
