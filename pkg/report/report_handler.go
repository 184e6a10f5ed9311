package report

import (
	"encoding/json"
	"net/http"
)

type MonthlyDTO struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type CategoryDTO struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type DailyDTO struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
}

type ComparisonDTO struct {
	Month    string  `json:"month"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Monthly(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]MonthlyDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, MonthlyDTO(e))
	}
	respond(w, dtos)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Categories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]CategoryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, CategoryDTO(e))
	}
	respond(w, dtos)
}

func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Daily(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]DailyDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, DailyDTO(e))
	}
	respond(w, dtos)
}

func (h *Handler) YearlyComparison(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.YearlyComparison(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ComparisonDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, ComparisonDTO(e))
	}
	respond(w, dtos)
}

func respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
