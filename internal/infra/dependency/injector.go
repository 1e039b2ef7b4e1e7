// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/finance-ledger/core/config"
	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/application/usecase/account"
	"github.com/finance-ledger/core/internal/application/usecase/auth"
	"github.com/finance-ledger/core/internal/application/usecase/category"
	"github.com/finance-ledger/core/internal/application/usecase/transaction"
	"github.com/finance-ledger/core/internal/integration/adapters"
	"github.com/finance-ledger/core/internal/integration/persistence"
	"github.com/finance-ledger/core/internal/integration/persistence/model"
	"github.com/finance-ledger/core/internal/integration/store"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  adapter.RecordStore

	// Auth use cases
	RegisterUser  *auth.RegisterUserUseCase
	LoginUser     *auth.LoginUserUseCase
	UpdateProfile *auth.UpdateProfileUseCase

	// Account use cases
	GetOrCreateAccount *account.GetOrCreateAccountUseCase
	CreateAccount      *account.CreateAccountUseCase
	ListAccounts       *account.ListAccountsUseCase
	GetBalance         *account.GetBalanceUseCase
	Deposit            *account.DepositUseCase
	RecordExpense      *account.RecordExpenseUseCase

	// Category use cases
	CreateCategory *category.CreateCategoryUseCase
	GetCategory    *category.GetCategoryUseCase
	FindCategory   *category.FindCategoryUseCase
	ListCategories *category.ListCategoriesUseCase
	UpdateCategory *category.UpdateCategoryUseCase
	DeleteCategory *category.DeleteCategoryUseCase

	// Transaction use cases
	ListTransactions  *transaction.ListTransactionsUseCase
	UpdateTransaction *transaction.UpdateTransactionUseCase
	DeleteTransaction *transaction.DeleteTransactionUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config) (*Injector, error) {
	recordStore, err := newRecordStore(cfg)
	if err != nil {
		return nil, err
	}
	return NewInjectorWithStore(cfg, recordStore), nil
}

// NewInjectorWithStore wires all dependencies over an already-open store.
// Tests use this with the in-memory backend.
func NewInjectorWithStore(cfg *config.Config, recordStore adapter.RecordStore) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(recordStore)
	accountRepo := persistence.NewAccountRepository(recordStore)
	categoryRepo := persistence.NewCategoryRepository(recordStore)
	transactionRepo := persistence.NewTransactionRepository(recordStore)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Auth.BcryptCost)
	clock := adapters.NewSystemClock()
	guard := adapter.NewLedgerGuard()

	return &Injector{
		Config: cfg,
		Store:  recordStore,

		RegisterUser:  auth.NewRegisterUserUseCase(userRepo, passwordService, clock, guard),
		LoginUser:     auth.NewLoginUserUseCase(userRepo, passwordService, guard),
		UpdateProfile: auth.NewUpdateProfileUseCase(userRepo, passwordService, guard),

		GetOrCreateAccount: account.NewGetOrCreateAccountUseCase(accountRepo, clock, guard),
		CreateAccount:      account.NewCreateAccountUseCase(accountRepo, clock, guard),
		ListAccounts:       account.NewListAccountsUseCase(accountRepo, guard),
		GetBalance:         account.NewGetBalanceUseCase(accountRepo, transactionRepo, guard),
		Deposit:            account.NewDepositUseCase(accountRepo, transactionRepo, clock, guard),
		RecordExpense:      account.NewRecordExpenseUseCase(accountRepo, transactionRepo, clock, guard),

		CreateCategory: category.NewCreateCategoryUseCase(categoryRepo, guard),
		GetCategory:    category.NewGetCategoryUseCase(categoryRepo, guard),
		FindCategory:   category.NewFindCategoryUseCase(categoryRepo, guard),
		ListCategories: category.NewListCategoriesUseCase(categoryRepo, guard),
		UpdateCategory: category.NewUpdateCategoryUseCase(categoryRepo, guard),
		DeleteCategory: category.NewDeleteCategoryUseCase(categoryRepo, guard),

		ListTransactions:  transaction.NewListTransactionsUseCase(transactionRepo, guard),
		UpdateTransaction: transaction.NewUpdateTransactionUseCase(transactionRepo, guard),
		DeleteTransaction: transaction.NewDeleteTransactionUseCase(transactionRepo, guard),
	}
}

// Close releases the backing store.
func (i *Injector) Close() error {
	return i.Store.Close()
}

func newRecordStore(cfg *config.Config) (adapter.RecordStore, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendWorkbook:
		return store.NewWorkbook(cfg.Store.DataDir, model.LegacyTables())
	case config.StoreBackendSQLite:
		return store.NewSQLite(cfg.Store.SQLitePath)
	case config.StoreBackendMemory:
		return store.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
