package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/budgetwise/budgetwise/pkg/ledger"
	"github.com/gorilla/mux"
	"github.com/govalues/decimal"
	log "github.com/sirupsen/logrus"
)

type ExpenseDTO struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	query := ledger.Query{
		Text:     r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	expenses, err := h.service.List(r.Context(), query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		dtos = append(dtos, ExpenseToDTO(expense))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new expense")
	w.Header().Set("Content-Type", "application/json")

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	expense, err := DTOToExpense(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), expense)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != id {
		http.Error(w, "Invalid expense id in request body", http.StatusBadRequest)
		return
	}
	expense, err := DTOToExpense(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), expense)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(updated)); err != nil {
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
		http.Error(w, "Expense not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ExpenseToDTO(expense Expense) ExpenseDTO {
	amount, _ := expense.Amount.Round(2).Float64()
	return ExpenseDTO{
		ID:          expense.ID,
		Date:        expense.Date.Format("2006-01-02"),
		Category:    expense.Category,
		Amount:      amount,
		Description: expense.Description,
	}
}

func DTOToExpense(dto ExpenseDTO) (Expense, error) {
	var date time.Time
	if dto.Date != "" {
		parsed, err := time.Parse("2006-01-02", dto.Date)
		if err != nil {
			return Expense{}, err
		}
		date = parsed
	}
	amount, err := decimal.NewFromFloat64(dto.Amount)
	if err != nil {
		return Expense{}, err
	}
	return Expense{
		ID:          dto.ID,
		Date:        date,
		Category:    dto.Category,
		Amount:      amount.Round(2),
		Description: dto.Description,
	}, nil
}
