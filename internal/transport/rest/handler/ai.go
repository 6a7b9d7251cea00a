package handler

import (
	"encoding/json"
	"net/http"

	"careercompass/internal/model"
	"careercompass/internal/service"
)

// AIHandler proxies explanation, suggestion, and chat requests
type AIHandler struct {
	aiSvc *service.AIService
}

// NewAIHandler creates a new AI handler
func NewAIHandler(aiSvc *service.AIService) *AIHandler {
	return &AIHandler{aiSvc: aiSvc}
}

// Chat handles POST /v1/ai/chat
func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "no 'messages' array found in the request body")
		return
	}

	resp, err := h.aiSvc.Chat(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Explain handles POST /v1/ai/explain
func (h *AIHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req model.ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "no 'question' found in the request body")
		return
	}

	resp, err := h.aiSvc.ExplainQuestion(r.Context(), req.Question)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Suggest handles POST /v1/ai/suggest
func (h *AIHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req model.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "no 'question' found in the request body")
		return
	}

	resp, err := h.aiSvc.SuggestAnswer(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
