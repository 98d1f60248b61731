package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// Status do pipeline de vendas
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusConverted = "converted"
)

// Origem do lead
const (
	SourceWebsite     = "website"
	SourceContactForm = "contact_form"
	SourceReferral    = "referral"
)

var ErrLeadNotFound = errors.New("lead not found")

// Entidade: Lead
type Lead struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Source  string `json:"source"` // website, contact_form, referral
	Status  string `json:"status"` // new, contacted, converted
	Notes   string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeadStats é derivado da coleção, nunca armazenado.
type LeadStats struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Contacted int `json:"contacted"`
	Converted int `json:"converted"`
}

// Factory
func NewLead(name, email, phone, company, source string) (*Lead, error) {
	now := time.Now()
	lead := &Lead{
		ID:      uuid.New().String(),
		Name:    name,
		Email:   email,
		Phone:   phone,
		Company: company,
		Source:  source,

		Status:    StatusNew,
		Notes:     "",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if !IsValidStatus(l.Status) {
		return errors.New("status is invalid")
	}
	if !IsValidSource(l.Source) {
		return errors.New("source is invalid")
	}
	return nil
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusContacted, StatusConverted:
		return true
	}
	return false
}

func IsValidSource(source string) bool {
	switch source {
	case SourceWebsite, SourceContactForm, SourceReferral:
		return true
	}
	return false
}
