package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/govalues/decimal"
	log "github.com/sirupsen/logrus"
)

type BudgetDTO struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Spent    float64 `json:"spent"`
	Period   string  `json:"period"`
	// Derived fields, ignored on input.
	Percent int     `json:"percent"`
	Status  string  `json:"status"`
	Overage float64 `json:"overage"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	budgets, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]BudgetDTO, 0, len(budgets))
	for _, budget := range budgets {
		dtos = append(dtos, BudgetToDTO(budget))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new budget")
	w.Header().Set("Content-Type", "application/json")

	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	budget, err := DTOToBudget(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), budget)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(BudgetToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != id {
		http.Error(w, "Invalid budget id in request body", http.StatusBadRequest)
		return
	}
	budget, err := DTOToBudget(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), budget)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(BudgetToDTO(updated)); err != nil {
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
		http.Error(w, "Budget not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func BudgetToDTO(budget Budget) BudgetDTO {
	amount, _ := budget.Amount.Round(2).Float64()
	spent, _ := budget.Spent.Round(2).Float64()
	progress := budget.Progress()
	overage, _ := progress.Overage.Round(2).Float64()
	return BudgetDTO{
		ID:       budget.ID,
		Category: budget.Category,
		Amount:   amount,
		Spent:    spent,
		Period:   string(budget.Period),
		Percent:  progress.Percent,
		Status:   string(progress.Status),
		Overage:  overage,
	}
}

func DTOToBudget(dto BudgetDTO) (Budget, error) {
	amount, err := decimal.NewFromFloat64(dto.Amount)
	if err != nil {
		return Budget{}, err
	}
	spent, err := decimal.NewFromFloat64(dto.Spent)
	if err != nil {
		return Budget{}, err
	}
	return Budget{
		ID:       dto.ID,
		Category: dto.Category,
		Amount:   amount.Round(2),
		Spent:    spent.Round(2),
		Period:   Period(dto.Period),
	}, nil
}
