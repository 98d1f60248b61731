package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/leadboard/internal/entity"
)

func TestNewLead(t *testing.T) {
	lead, err := entity.NewLead("Mariana Costa", "mariana@solartech.com.br", "(11) 98765-4321", "SolarTech", entity.SourceWebsite)

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Equal(t, "", lead.Notes)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.False(t, lead.UpdatedAt.Before(lead.CreatedAt))
}

func TestNewLeadAssignsUniqueIDs(t *testing.T) {
	a, err := entity.NewLead("A", "a@example.com", "", "", entity.SourceReferral)
	assert.NoError(t, err)

	b, err := entity.NewLead("B", "b@example.com", "", "", entity.SourceReferral)
	assert.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewLeadValidation(t *testing.T) {
	var leadValidationCases = []struct {
		desc    string
		name    string
		email   string
		source  string
		wantErr string
	}{
		{
			desc:    "missing name",
			name:    "",
			email:   "a@example.com",
			source:  entity.SourceWebsite,
			wantErr: "name is required",
		},
		{
			desc:    "missing email",
			name:    "Fulano",
			email:   "",
			source:  entity.SourceWebsite,
			wantErr: "email is required",
		},
		{
			desc:    "unknown source",
			name:    "Fulano",
			email:   "a@example.com",
			source:  "cold_call",
			wantErr: "source is invalid",
		},
	}

	for _, testData := range leadValidationCases {
		t.Run(testData.desc, func(t *testing.T) {
			_, err := entity.NewLead(testData.name, testData.email, "", "", testData.source)
			assert.EqualError(t, err, testData.wantErr)
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, entity.IsValidStatus(entity.StatusNew))
	assert.True(t, entity.IsValidStatus(entity.StatusContacted))
	assert.True(t, entity.IsValidStatus(entity.StatusConverted))
	assert.False(t, entity.IsValidStatus("archived"))
	assert.False(t, entity.IsValidStatus(""))
}
