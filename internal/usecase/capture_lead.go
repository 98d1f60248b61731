package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/queue"
)

type CaptureLeadUseCase struct {
	Repo  LeadRepositoryInterface
	Queue QueueProducerInterface
}

func NewCaptureLeadUseCase(repo LeadRepositoryInterface, producer QueueProducerInterface) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Repo:  repo,
		Queue: producer,
	}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	validationErrors := ValidateCaptureLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	lead, err := entity.NewLead(input.Name, input.Email, input.Phone, input.Company, input.Source)
	if err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		}
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "REPOSITORY_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	// Evento é cortesia: falha na fila não derruba a captura.
	go func() {
		if uc.Queue != nil {
			uc.Queue.PublishLeadEvent(context.Background(), queue.LeadEventPayload{
				LeadID:     lead.ID,
				Name:       lead.Name,
				Email:      lead.Email,
				NewStatus:  lead.Status,
				OccurredAt: time.Now(),
			})
		}
	}()

	return &CaptureLeadOutput{
		ID:     lead.ID,
		Status: lead.Status,
		Msg:    "Lead capturado com sucesso!",
	}, nil
}
