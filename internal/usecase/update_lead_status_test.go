package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/queue"
	"github.com/xavierca1/leadboard/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Lead, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateNotes(ctx context.Context, id, notes string) (*entity.Lead, error) {
	args := m.Called(ctx, id, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Loading() bool {
	args := m.Called()
	return args.Bool(0)
}

// fakeProducer entrega os eventos num canal para o teste poder esperar o
// goroutine de publicação sem sleep.
type fakeProducer struct {
	events chan queue.LeadEventPayload
}

func newFakeProducer() *fakeProducer {
	return &fakeProducer{events: make(chan queue.LeadEventPayload, 8)}
}

func (f *fakeProducer) PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error {
	f.events <- payload
	return nil
}

func TestUpdateLeadStatusSuccess(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	producer := newFakeProducer()

	before := &entity.Lead{ID: "lead-1", Name: "Mariana", Email: "mariana@x.com", Status: entity.StatusNew}
	after := &entity.Lead{ID: "lead-1", Name: "Mariana", Email: "mariana@x.com", Status: entity.StatusContacted}

	mockRepo.On("FindByID", ctx, "lead-1").Return(before, nil)
	mockRepo.On("UpdateStatus", ctx, "lead-1", entity.StatusContacted).Return(after, nil)

	uc := usecase.NewUpdateLeadStatusUseCase(mockRepo, producer)

	output, err := uc.Execute(ctx, usecase.UpdateLeadStatusInput{
		LeadID: "lead-1",
		Status: entity.StatusContacted,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusContacted, output.Lead.Status)
	assert.Equal(t, entity.StatusNew, output.PreviousStatus)

	select {
	case event := <-producer.events:
		assert.Equal(t, "lead-1", event.LeadID)
		assert.Equal(t, entity.StatusNew, event.PreviousStatus)
		assert.Equal(t, entity.StatusContacted, event.NewStatus)
	case <-time.After(time.Second):
		t.Fatal("evento de status não foi publicado")
	}

	mockRepo.AssertExpectations(t)
}

func TestUpdateLeadStatusUnrestrictedTransitions(t *testing.T) {
	// converted pode voltar para new: não existe progressão obrigatória
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)

	before := &entity.Lead{ID: "lead-9", Name: "P", Email: "p@x.com", Status: entity.StatusConverted}
	after := &entity.Lead{ID: "lead-9", Name: "P", Email: "p@x.com", Status: entity.StatusNew}

	mockRepo.On("FindByID", ctx, "lead-9").Return(before, nil)
	mockRepo.On("UpdateStatus", ctx, "lead-9", entity.StatusNew).Return(after, nil)

	uc := usecase.NewUpdateLeadStatusUseCase(mockRepo, nil)

	output, err := uc.Execute(ctx, usecase.UpdateLeadStatusInput{LeadID: "lead-9", Status: entity.StatusNew})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusNew, output.Lead.Status)
}

func TestUpdateLeadStatusInvalidStatus(t *testing.T) {
	uc := usecase.NewUpdateLeadStatusUseCase(new(MockLeadRepository), nil)

	_, err := uc.Execute(context.Background(), usecase.UpdateLeadStatusInput{
		LeadID: "lead-1",
		Status: "archived",
	})

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, "VALIDATION_ERROR", err.(*usecase.DomainError).Code)
}

func TestUpdateLeadStatusNotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockRepo.On("FindByID", ctx, "ghost").Return(nil, entity.ErrLeadNotFound)

	uc := usecase.NewUpdateLeadStatusUseCase(mockRepo, nil)

	_, err := uc.Execute(ctx, usecase.UpdateLeadStatusInput{LeadID: "ghost", Status: entity.StatusNew})

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, "LEAD_NOT_FOUND", err.(*usecase.DomainError).Code)
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnnotateLeadSuccess(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)

	annotated := &entity.Lead{ID: "lead-2", Name: "Rafael", Email: "rafael@x.com", Status: entity.StatusContacted, Notes: "ligar amanhã"}
	mockRepo.On("UpdateNotes", ctx, "lead-2", "ligar amanhã").Return(annotated, nil)

	uc := usecase.NewAnnotateLeadUseCase(mockRepo)

	lead, err := uc.Execute(ctx, usecase.AnnotateLeadInput{LeadID: "lead-2", Notes: "ligar amanhã"})

	assert.NoError(t, err)
	assert.Equal(t, "ligar amanhã", lead.Notes)
	mockRepo.AssertExpectations(t)
}

func TestAnnotateLeadNotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateNotes", ctx, "ghost", "x").Return(nil, entity.ErrLeadNotFound)

	uc := usecase.NewAnnotateLeadUseCase(mockRepo)

	_, err := uc.Execute(ctx, usecase.AnnotateLeadInput{LeadID: "ghost", Notes: "x"})

	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, "LEAD_NOT_FOUND", err.(*usecase.DomainError).Code)
}
