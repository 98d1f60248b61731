package usecase

import "github.com/xavierca1/leadboard/internal/entity"

type ListLeadsInput struct {
	Query  string // busca case-insensitive em name/email
	Status string // new, contacted, converted ou "all"
}

type ListLeadsOutput struct {
	Leads   []entity.Lead    `json:"leads"`
	Stats   entity.LeadStats `json:"stats"`
	Loading bool             `json:"loading"`
}

type CaptureLeadInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Source  string `json:"source"`
}

type CaptureLeadOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

type UpdateLeadStatusInput struct {
	LeadID string
	Status string
}

type UpdateLeadStatusOutput struct {
	Lead           entity.Lead `json:"lead"`
	PreviousStatus string      `json:"previous_status"`
}

type AnnotateLeadInput struct {
	LeadID string
	Notes  string
}
