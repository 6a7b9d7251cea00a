package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"careercompass/internal/model"
	"careercompass/internal/repository"
	"careercompass/internal/service"
	"careercompass/internal/transport/rest/middleware"
)

// AssessmentHandler handles completed-assessment endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// SubmitRequest is the request body for submitting a finished response set
type SubmitRequest struct {
	Responses []model.Response `json:"responses"`
}

// Submit handles POST /v1/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.assessmentSvc.Submit(r.Context(), userID, req.Responses)
	if err != nil {
		if errors.Is(err, service.ErrInvalidResponse) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "your assessment could not be saved")
		return
	}

	writeJSON(w, http.StatusCreated, assessment)
}

// List handles GET /v1/assessments
func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	assessments, err := h.assessmentSvc.List(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if assessments == nil {
		assessments = []model.Assessment{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": assessments})
}

// Get handles GET /v1/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := mux.Vars(r)["id"]

	assessment, err := h.assessmentSvc.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Delete handles DELETE /v1/assessments/{id}
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.assessmentSvc.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
