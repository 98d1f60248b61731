package usecase

import (
	"context"

	"github.com/xavierca1/leadboard/internal/entity"
)

type AnnotateLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewAnnotateLeadUseCase(repo LeadRepositoryInterface) *AnnotateLeadUseCase {
	return &AnnotateLeadUseCase{Repo: repo}
}

// Execute substitui as anotações do lead por inteiro (não concatena).
func (uc *AnnotateLeadUseCase) Execute(ctx context.Context, input AnnotateLeadInput) (*entity.Lead, error) {
	lead, err := uc.Repo.UpdateNotes(ctx, input.LeadID, input.Notes)
	if err != nil {
		return nil, mapLeadLookupError(err)
	}

	return lead, nil
}
