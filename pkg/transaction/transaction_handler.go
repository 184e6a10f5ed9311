package transaction

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

type TransactionDTO struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

type SummaryDTO struct {
	TotalIncome  float64            `json:"totalIncome"`
	TotalExpense float64            `json:"totalExpense"`
	Balance      float64            `json:"balance"`
	ByCategory   []CategoryTotalDTO `json:"byCategory"`
}

type CategoryTotalDTO struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	params := r.URL.Query()
	query := ledger.Query{
		Text:     params.Get("search"),
		Category: params.Get("category"),
		Flow:     params.Get("type"),
	}
	order := ledger.Sort{
		Key:       ledger.SortKey(params.Get("sortBy")),
		Direction: ledger.SortDirection(params.Get("order")),
	}

	transactions, err := h.service.List(r.Context(), query, order)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TransactionDTO, 0, len(transactions))
	for _, transaction := range transactions {
		dtos = append(dtos, TransactionToDTO(transaction))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	params := r.URL.Query()
	query := ledger.Query{
		Text:     params.Get("search"),
		Category: params.Get("category"),
		Flow:     params.Get("type"),
	}

	summary, err := h.service.Summary(r.Context(), query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SummaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new transaction")
	w.Header().Set("Content-Type", "application/json")

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	transaction, err := DTOToTransaction(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), transaction)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(TransactionToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != id {
		http.Error(w, "Invalid transaction id in request body", http.StatusBadRequest)
		return
	}
	transaction, err := DTOToTransaction(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), transaction)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TransactionToDTO(updated)); err != nil {
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
		http.Error(w, "Transaction not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func TransactionToDTO(transaction Transaction) TransactionDTO {
	amount, _ := transaction.Amount.Round(2).Float64()
	return TransactionDTO{
		ID:          transaction.ID,
		Date:        transaction.Date.Format("2006-01-02"),
		Description: transaction.Description,
		Category:    transaction.Category,
		Amount:      amount,
		Type:        string(transaction.Type),
	}
}

func DTOToTransaction(dto TransactionDTO) (Transaction, error) {
	var date time.Time
	if dto.Date != "" {
		parsed, err := time.Parse("2006-01-02", dto.Date)
		if err != nil {
			return Transaction{}, err
		}
		date = parsed
	}
	amount, err := decimal.NewFromFloat64(dto.Amount)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:          dto.ID,
		Date:        date,
		Description: dto.Description,
		Category:    dto.Category,
		Amount:      amount.Round(2),
		Type:        Type(dto.Type),
	}, nil
}

func SummaryToDTO(summary ledger.Summary) SummaryDTO {
	income, _ := summary.TotalIncome.Round(2).Float64()
	expense, _ := summary.TotalExpense.Round(2).Float64()
	balance, _ := summary.Balance.Round(2).Float64()

	byCategory := make([]CategoryTotalDTO, 0, len(summary.ByCategory))
	for _, entry := range summary.ByCategory {
		total, _ := entry.Total.Round(2).Float64()
		byCategory = append(byCategory, CategoryTotalDTO{Category: entry.Category, Total: total})
	}
	return SummaryDTO{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      balance,
		ByCategory:   byCategory,
	}
}
