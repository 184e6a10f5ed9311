package app

import (
	"github.com/budgetwise/budgetwise/internal/config"
	"github.com/budgetwise/budgetwise/internal/demo"
	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/activity"
	"github.com/budgetwise/budgetwise/pkg/assistant"
	"github.com/budgetwise/budgetwise/pkg/budget"
	"github.com/budgetwise/budgetwise/pkg/category"
	"github.com/budgetwise/budgetwise/pkg/expense"
	"github.com/budgetwise/budgetwise/pkg/report"
	"github.com/budgetwise/budgetwise/pkg/savings"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/budgetwise/budgetwise/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	UserService user.Service
	UserHandler *user.Handler

	CategoryHandler *category.Handler

	ExpenseRepo    expense.Repo
	ExpenseService *expense.ServiceImpl
	ExpenseHandler *expense.Handler

	BudgetRepo    budget.Repo
	BudgetService *budget.ServiceImpl
	BudgetHandler *budget.Handler

	SavingsRepo    savings.Repo
	SavingsService *savings.ServiceImpl
	SavingsHandler *savings.Handler

	TransactionRepo    transaction.Repo
	TransactionService *transaction.ServiceImpl
	TransactionHandler *transaction.Handler

	ReportService *report.ServiceImpl
	ReportHandler *report.Handler

	AssistantRepo    assistant.Repo
	AssistantService *assistant.ServiceImpl
	AssistantHandler *assistant.Handler

	ActivityService *activity.ServiceImpl
	ActivityHandler *activity.Handler

	DemoSeeder *demo.Seeder
}

// BuildDependencies initializes and wires all application services and
// handlers. With the database disabled everything runs on in-memory
// repositories.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	var userRepo user.Repo = user.NewMemoryRepo()
	deps.ExpenseRepo = expense.NewMemoryRepo()
	deps.BudgetRepo = budget.NewMemoryRepo()
	deps.SavingsRepo = savings.NewMemoryRepo()
	deps.TransactionRepo = transaction.NewMemoryRepo()
	deps.AssistantRepo = assistant.NewMemoryRepo()

	if cfg.Database.Enabled {
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, err
		}
		userRepo = user.NewPostgresRepo(db)
		deps.ExpenseRepo = expense.NewPostgresRepo(db)
		deps.BudgetRepo = budget.NewPostgresRepo(db)
		deps.SavingsRepo = savings.NewPostgresRepo(db)
		deps.TransactionRepo = transaction.NewPostgresRepo(db)
		deps.AssistantRepo = assistant.NewPostgresRepo(db)
	}

	deps.UserService = user.NewService(userRepo)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.CategoryHandler = category.NewHandler()

	deps.ExpenseService = expense.NewService(deps.ExpenseRepo, deps.Bus)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.BudgetService = budget.NewService(deps.BudgetRepo, deps.Bus)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	deps.SavingsService = savings.NewService(deps.SavingsRepo, deps.Bus, deps.Clock)
	deps.SavingsHandler = savings.NewHandler(deps.SavingsService)

	deps.TransactionService = transaction.NewService(deps.TransactionRepo, deps.Bus)
	deps.TransactionHandler = transaction.NewHandler(deps.TransactionService)

	deps.ReportService = report.NewService(deps.TransactionService, deps.ExpenseService, deps.Clock)
	deps.ReportHandler = report.NewHandler(deps.ReportService)

	deps.AssistantService = assistant.NewService(deps.AssistantRepo, deps.Clock)
	deps.AssistantHandler = assistant.NewHandler(deps.AssistantService)

	deps.ActivityService = activity.NewService(deps.Bus)
	deps.ActivityHandler = activity.NewHandler(deps.ActivityService)

	deps.DemoSeeder = &demo.Seeder{
		Users:        deps.UserService,
		Expenses:     deps.ExpenseService,
		Budgets:      deps.BudgetService,
		Goals:        deps.SavingsService,
		Transactions: deps.TransactionService,
	}

	return deps, nil
}
