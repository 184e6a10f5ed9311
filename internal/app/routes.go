package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Categories
	r.HandleFunc("/api/category", deps.CategoryHandler.List).Methods("GET")

	// Expenses
	r.HandleFunc("/api/expense", deps.ExpenseHandler.List).Methods("GET")
	r.HandleFunc("/api/expense", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Budgets
	r.HandleFunc("/api/budget", deps.BudgetHandler.List).Methods("GET")
	r.HandleFunc("/api/budget", deps.BudgetHandler.Create).Methods("POST")
	r.HandleFunc("/api/budget/{id}", deps.BudgetHandler.Update).Methods("PUT")
	r.HandleFunc("/api/budget/{id}", deps.BudgetHandler.Delete).Methods("DELETE")

	// Savings goals
	r.HandleFunc("/api/savings", deps.SavingsHandler.List).Methods("GET")
	r.HandleFunc("/api/savings", deps.SavingsHandler.Create).Methods("POST")
	r.HandleFunc("/api/savings/{id}", deps.SavingsHandler.Update).Methods("PUT")
	r.HandleFunc("/api/savings/{id}", deps.SavingsHandler.Delete).Methods("DELETE")

	// Transactions
	r.HandleFunc("/api/transaction", deps.TransactionHandler.List).Methods("GET")
	r.HandleFunc("/api/transaction/summary", deps.TransactionHandler.Summary).Methods("GET")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Update).Methods("PUT")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Delete).Methods("DELETE")

	// Reports
	r.HandleFunc("/api/report/monthly", deps.ReportHandler.Monthly).Methods("GET")
	r.HandleFunc("/api/report/categories", deps.ReportHandler.Categories).Methods("GET")
	r.HandleFunc("/api/report/daily", deps.ReportHandler.Daily).Methods("GET")
	r.HandleFunc("/api/report/yearly", deps.ReportHandler.YearlyComparison).Methods("GET")

	// Assistant
	r.HandleFunc("/api/assistant/history", deps.AssistantHandler.History).Methods("GET")
	r.HandleFunc("/api/assistant/message", deps.AssistantHandler.Send).Methods("POST")

	// Activity feed
	r.HandleFunc("/api/activity", deps.ActivityHandler.Recent).Methods("GET")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
}
