package usecase

import (
	"context"
)

type ListLeadsUseCase struct {
	Repo LeadRepositoryInterface
}

func NewListLeadsUseCase(repo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, input ListLeadsInput) (*ListLeadsOutput, error) {
	leads, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "REPOSITORY_ERROR",
			Message: "failed to list leads: " + err.Error(),
		}
	}

	// Stats sempre sobre a coleção inteira; o filtro só afeta a listagem.
	return &ListLeadsOutput{
		Leads:   FilterLeads(leads, input.Query, input.Status),
		Stats:   ComputeStats(leads),
		Loading: uc.Repo.Loading(),
	}, nil
}
