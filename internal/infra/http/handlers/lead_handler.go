package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadboard/internal/entity"
	custommw "github.com/xavierca1/leadboard/internal/infra/http/middleware"
	"github.com/xavierca1/leadboard/internal/usecase"
)

type LeadHandler struct {
	ListUC         *usecase.ListLeadsUseCase
	CaptureUC      *usecase.CaptureLeadUseCase
	UpdateStatusUC *usecase.UpdateLeadStatusUseCase
	AnnotateUC     *usecase.AnnotateLeadUseCase
	Repo           usecase.LeadRepositoryInterface
}

func NewLeadHandler(
	listUC *usecase.ListLeadsUseCase,
	captureUC *usecase.CaptureLeadUseCase,
	updateStatusUC *usecase.UpdateLeadStatusUseCase,
	annotateUC *usecase.AnnotateLeadUseCase,
	repo usecase.LeadRepositoryInterface,
) *LeadHandler {
	return &LeadHandler{
		ListUC:         listUC,
		CaptureUC:      captureUC,
		UpdateStatusUC: updateStatusUC,
		AnnotateUC:     annotateUC,
		Repo:           repo,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleList devolve a visão derivada: leads filtrados + stats da coleção
// inteira + flag de loading da carga inicial.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListLeadsInput{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
	}
	if input.Status == "" {
		input.Status = usecase.StatusAll
	}

	output, err := h.ListUC.Execute(r.Context(), input)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lead, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "leadId"))
	if errors.Is(err, entity.ErrLeadNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "lead_not_found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json"})
		return
	}

	output, err := h.CaptureUC.Execute(r.Context(), input)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}

	custommw.RecordLeadCaptured(input.Source)
	writeJSON(w, http.StatusCreated, output)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json"})
		return
	}

	output, err := h.UpdateStatusUC.Execute(r.Context(), usecase.UpdateLeadStatusInput{
		LeadID: chi.URLParam(r, "leadId"),
		Status: req.Status,
	})
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}

	custommw.RecordStatusTransition(output.PreviousStatus, output.Lead.Status)
	writeJSON(w, http.StatusOK, output.Lead)
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

func (h *LeadHandler) HandleUpdateNotes(w http.ResponseWriter, r *http.Request) {
	var req UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json"})
		return
	}

	lead, err := h.AnnotateUC.Execute(r.Context(), usecase.AnnotateLeadInput{
		LeadID: chi.URLParam(r, "leadId"),
		Notes:  req.Notes,
	})
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) writeUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case "LEAD_NOT_FOUND":
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "lead_not_found"})
		case "VALIDATION_ERROR":
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: domainErr.Message})
		default:
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: domainErr.Message})
		}
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
}
