package activity

import (
	"encoding/json"
	"net/http"
	"time"
)

type EntryDTO struct {
	ID        string  `json:"id"`
	Action    string  `json:"action"`
	Kind      string  `json:"kind"`
	Title     string  `json:"title"`
	Category  string  `json:"category,omitempty"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := h.service.Recent(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		amount, _ := entry.Amount.Round(2).Float64()
		dtos = append(dtos, EntryDTO{
			ID:        entry.ID,
			Action:    entry.Action,
			Kind:      entry.Kind,
			Title:     entry.Title,
			Category:  entry.Category,
			Amount:    amount,
			Timestamp: entry.Timestamp.Format(time.RFC3339),
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
