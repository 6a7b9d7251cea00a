package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"careercompass/internal/model"
	"careercompass/internal/service"
	"careercompass/internal/session"
	"careercompass/internal/transport/rest/middleware"
)

// SessionHandler drives the assessment walkthrough endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Start handles POST /v1/session/start
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	state, err := h.sessionSvc.Start(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

// Resume handles GET /v1/session
func (h *SessionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	state, err := h.sessionSvc.Resume(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// AnswerRequest is the request body for answering a question
type AnswerRequest struct {
	Response model.ResponseValue `json:"response"`
}

// Answer handles POST /v1/session/answer
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.sessionSvc.Answer(r.Context(), userID, req.Response)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// AnswerQuestion handles PUT /v1/session/answers/{questionId}
func (h *SessionHandler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	questionID := mux.Vars(r)["questionId"]

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.sessionSvc.AnswerQuestion(r.Context(), userID, questionID, req.Response)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Next handles POST /v1/session/next
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	state, err := h.sessionSvc.Next(r.Context(), userID)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Back handles POST /v1/session/back
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	state, err := h.sessionSvc.Back(r.Context(), userID)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Complete handles POST /v1/session/complete
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	assessment, err := h.sessionSvc.Complete(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		if errors.Is(err, session.ErrNotComplete) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		// Storage failure is fatal to this action; the user is told the
		// result could not be saved.
		writeError(w, http.StatusInternalServerError, "your assessment could not be saved")
		return
	}
	writeJSON(w, http.StatusCreated, assessment)
}

// Abandon handles DELETE /v1/session
func (h *SessionHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if err := h.sessionSvc.Abandon(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "discarded"})
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrUnanswered),
		errors.Is(err, session.ErrNoQuestion),
		errors.Is(err, session.ErrUnknownQuestion):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
