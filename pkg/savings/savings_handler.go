package savings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/govalues/decimal"
	log "github.com/sirupsen/logrus"
)

type GoalDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	TargetDate    string  `json:"targetDate"`
	// Derived fields, ignored on input.
	Percent         int     `json:"percent"`
	DaysRemaining   int     `json:"daysRemaining"`
	AmountRemaining float64 `json:"amountRemaining"`
	PastDue         bool    `json:"pastDue"`
}

type OverviewDTO struct {
	Goals      []GoalDTO `json:"goals"`
	TotalSaved float64   `json:"totalSaved"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	views, err := h.service.Overview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	total, err := h.service.TotalSaved(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := OverviewDTO{Goals: make([]GoalDTO, 0, len(views))}
	for _, view := range views {
		dto.Goals = append(dto.Goals, GoalToDTO(view))
	}
	dto.TotalSaved, _ = total.Round(2).Float64()

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new savings goal")
	w.Header().Set("Content-Type", "application/json")

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	goal, err := DTOToGoal(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), goal)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(GoalToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != id {
		http.Error(w, "Invalid savings goal id in request body", http.StatusBadRequest)
		return
	}
	goal, err := DTOToGoal(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), goal)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(GoalToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "Savings goal not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func GoalToDTO(view GoalWithStatus) GoalDTO {
	target, _ := view.TargetAmount.Round(2).Float64()
	current, _ := view.CurrentAmount.Round(2).Float64()
	remaining, _ := view.Status.AmountRemaining.Round(2).Float64()
	return GoalDTO{
		ID:              view.ID,
		Name:            view.Name,
		TargetAmount:    target,
		CurrentAmount:   current,
		TargetDate:      view.TargetDate.Format("2006-01-02"),
		Percent:         view.Status.Percent,
		DaysRemaining:   view.Status.DaysRemaining,
		AmountRemaining: remaining,
		PastDue:         view.Status.PastDue,
	}
}

func DTOToGoal(dto GoalDTO) (Goal, error) {
	var date time.Time
	if dto.TargetDate != "" {
		parsed, err := time.Parse("2006-01-02", dto.TargetDate)
		if err != nil {
			return Goal{}, err
		}
		date = parsed
	}
	target, err := decimal.NewFromFloat64(dto.TargetAmount)
	if err != nil {
		return Goal{}, err
	}
	current, err := decimal.NewFromFloat64(dto.CurrentAmount)
	if err != nil {
		return Goal{}, err
	}
	return Goal{
		ID:            dto.ID,
		Name:          dto.Name,
		TargetAmount:  target.Round(2),
		CurrentAmount: current.Round(2),
		TargetDate:    date,
	}, nil
}
