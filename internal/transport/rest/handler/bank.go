package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"careercompass/internal/bank"
)

// BankHandler serves the static assessment catalog
type BankHandler struct{}

// NewBankHandler creates a new bank handler
func NewBankHandler() *BankHandler {
	return &BankHandler{}
}

// Layers handles GET /v1/layers
func (h *BankHandler) Layers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"layers": bank.Layers()})
}

// Layer handles GET /v1/layers/{layerId}
func (h *BankHandler) Layer(w http.ResponseWriter, r *http.Request) {
	layer := bank.LayerByID(mux.Vars(r)["layerId"])
	if layer == nil {
		writeError(w, http.StatusNotFound, "layer not found")
		return
	}
	writeJSON(w, http.StatusOK, layer)
}

// CareerMapping handles GET /v1/careers/mapping
func (h *BankHandler) CareerMapping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, bank.CareerMapping)
}

// CareerDetail handles GET /v1/careers/{name}
func (h *BankHandler) CareerDetail(w http.ResponseWriter, r *http.Request) {
	detail, ok := bank.CareerDetail(mux.Vars(r)["name"])
	if !ok {
		writeError(w, http.StatusNotFound, "no details for this career")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
