// Package steps provides step definitions for BDD integration tests.
//
// Scenarios drive the use cases directly over an in-memory record store,
// with a controllable clock so timestamps are deterministic.
package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/application/usecase/account"
	"github.com/finance-ledger/core/internal/application/usecase/auth"
	"github.com/finance-ledger/core/internal/application/usecase/category"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
	"github.com/finance-ledger/core/internal/integration/adapters"
	"github.com/finance-ledger/core/internal/integration/persistence"
	"github.com/finance-ledger/core/internal/integration/store"
	"github.com/finance-ledger/core/test/integration/mock"
)

// ledgerContext holds the test state for each scenario.
type ledgerContext struct {
	store *store.Memory
	clock *mock.Clock

	registerUser   *auth.RegisterUserUseCase
	loginUser      *auth.LoginUserUseCase
	getOrCreate    *account.GetOrCreateAccountUseCase
	getBalance     *account.GetBalanceUseCase
	deposit        *account.DepositUseCase
	recordExpense  *account.RecordExpenseUseCase
	createCategory *category.CreateCategoryUseCase
	getCategory    *category.GetCategoryUseCase
	updateCategory *category.UpdateCategoryUseCase

	accounts   map[string]*entity.Account  // keyed by owner email
	categories map[string]*entity.Category // keyed by name at creation time

	defaultCategoryID int64
	lastLogin         *auth.LoginUserOutput
	lastExpenseErr    error
}

func newLedgerContext() *ledgerContext {
	tc := &ledgerContext{}
	tc.reset()
	return tc
}

func (tc *ledgerContext) reset() {
	tc.store = store.NewMemory()
	tc.clock = mock.NewClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	userRepo := persistence.NewUserRepository(tc.store)
	accountRepo := persistence.NewAccountRepository(tc.store)
	categoryRepo := persistence.NewCategoryRepository(tc.store)
	transactionRepo := persistence.NewTransactionRepository(tc.store)

	passwordService := adapters.NewPasswordService(bcrypt.MinCost)
	guard := adapter.NewLedgerGuard()

	tc.registerUser = auth.NewRegisterUserUseCase(userRepo, passwordService, tc.clock, guard)
	tc.loginUser = auth.NewLoginUserUseCase(userRepo, passwordService, guard)
	tc.getOrCreate = account.NewGetOrCreateAccountUseCase(accountRepo, tc.clock, guard)
	tc.getBalance = account.NewGetBalanceUseCase(accountRepo, transactionRepo, guard)
	tc.deposit = account.NewDepositUseCase(accountRepo, transactionRepo, tc.clock, guard)
	tc.recordExpense = account.NewRecordExpenseUseCase(accountRepo, transactionRepo, tc.clock, guard)
	tc.createCategory = category.NewCreateCategoryUseCase(categoryRepo, guard)
	tc.getCategory = category.NewGetCategoryUseCase(categoryRepo, guard)
	tc.updateCategory = category.NewUpdateCategoryUseCase(categoryRepo, guard)

	tc.accounts = make(map[string]*entity.Account)
	tc.categories = make(map[string]*entity.Category)
	tc.defaultCategoryID = 0
	tc.lastLogin = nil
	tc.lastExpenseErr = nil
}

// InitializeTestSuite sets up suite-level hooks.
func InitializeTestSuite(sc *godog.TestSuiteContext) {}

// InitializeScenario registers all step definitions.
func InitializeScenario(sc *godog.ScenarioContext) {
	tc := newLedgerContext()

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	sc.Step(`^a registered user "([^"]*)" with email "([^"]*)" and password "([^"]*)"$`, tc.aRegisteredUser)
	sc.Step(`^"([^"]*)" deposits ([0-9.]+)$`, tc.userDeposits)
	sc.Step(`^"([^"]*)" spends ([0-9.]+) on "([^"]*)"$`, tc.userSpends)
	sc.Step(`^"([^"]*)" tries to spend ([0-9.]+) on "([^"]*)"$`, tc.userTriesToSpend)
	sc.Step(`^the expense is rejected for insufficient funds$`, tc.expenseRejectedForInsufficientFunds)
	sc.Step(`^the balance of "([^"]*)" is ([0-9.]+)$`, tc.balanceIs)
	sc.Step(`^"([^"]*)" logs in with password "([^"]*)"$`, tc.userLogsIn)
	sc.Step(`^the login succeeds$`, tc.loginSucceeds)
	sc.Step(`^the login is refused$`, tc.loginRefused)
	sc.Step(`^a category "([^"]*)" of kind "([^"]*)" with icon "([^"]*)"$`, tc.aCategory)
	sc.Step(`^the icon of category "([^"]*)" is changed to "([^"]*)"$`, tc.categoryIconChanged)
	sc.Step(`^category "([^"]*)" has icon "([^"]*)"$`, tc.categoryHasIcon)
	sc.Step(`^category "([^"]*)" has kind "([^"]*)"$`, tc.categoryHasKind)
	sc.Step(`^category "([^"]*)" is still named "([^"]*)"$`, tc.categoryIsNamed)
}

func (tc *ledgerContext) aRegisteredUser(name, email, password string) error {
	ctx := context.Background()

	if _, err := tc.registerUser.Execute(ctx, auth.RegisterUserInput{
		Name:     name,
		Email:    email,
		Password: password,
	}); err != nil {
		return fmt.Errorf("registering %s: %w", email, err)
	}

	login, err := tc.loginUser.Execute(ctx, auth.LoginUserInput{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("looking up %s: %w", email, err)
	}

	out, err := tc.getOrCreate.Execute(ctx, account.GetOrCreateAccountInput{UserID: login.User.ID})
	if err != nil {
		return fmt.Errorf("provisioning account for %s: %w", email, err)
	}
	tc.accounts[email] = out.Account
	return nil
}

func (tc *ledgerContext) userDeposits(email, amount string) error {
	acc, err := tc.accountOf(email)
	if err != nil {
		return err
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	categoryID, err := tc.ensureDefaultCategory()
	if err != nil {
		return err
	}
	_, err = tc.deposit.Execute(context.Background(), account.DepositInput{
		AccountID:  acc.ID,
		CategoryID: categoryID,
		Amount:     value,
	})
	return err
}

func (tc *ledgerContext) userSpends(email, amount, description string) error {
	if err := tc.userTriesToSpend(email, amount, description); err != nil {
		return err
	}
	return tc.lastExpenseErr
}

func (tc *ledgerContext) userTriesToSpend(email, amount, description string) error {
	acc, err := tc.accountOf(email)
	if err != nil {
		return err
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	categoryID, err := tc.ensureDefaultCategory()
	if err != nil {
		return err
	}
	_, tc.lastExpenseErr = tc.recordExpense.Execute(context.Background(), account.RecordExpenseInput{
		AccountID:   acc.ID,
		CategoryID:  categoryID,
		Amount:      value,
		Description: description,
	})
	return nil
}

func (tc *ledgerContext) expenseRejectedForInsufficientFunds() error {
	if tc.lastExpenseErr == nil {
		return errors.New("expected the expense to be rejected, but it was accepted")
	}
	if !errors.Is(tc.lastExpenseErr, domainerror.ErrInsufficientFunds) {
		return fmt.Errorf("expected an insufficient funds error, got: %v", tc.lastExpenseErr)
	}
	return nil
}

func (tc *ledgerContext) balanceIs(email, expected string) error {
	acc, err := tc.accountOf(email)
	if err != nil {
		return err
	}
	want, err := decimal.NewFromString(expected)
	if err != nil {
		return err
	}
	out, err := tc.getBalance.Execute(context.Background(), account.GetBalanceInput{AccountID: acc.ID})
	if err != nil {
		return err
	}
	if !out.Balance.Equal(want) {
		return fmt.Errorf("expected balance %s, got %s", want, out.Balance)
	}
	return nil
}

func (tc *ledgerContext) userLogsIn(email, password string) error {
	out, err := tc.loginUser.Execute(context.Background(), auth.LoginUserInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	tc.lastLogin = out
	return nil
}

func (tc *ledgerContext) loginSucceeds() error {
	if tc.lastLogin == nil || !tc.lastLogin.Authenticated {
		return errors.New("expected the login to be accepted")
	}
	return nil
}

func (tc *ledgerContext) loginRefused() error {
	if tc.lastLogin == nil {
		return errors.New("no login attempt recorded")
	}
	if tc.lastLogin.Authenticated {
		return errors.New("expected the login to be refused")
	}
	return nil
}

func (tc *ledgerContext) aCategory(name, kind, icon string) error {
	out, err := tc.createCategory.Execute(context.Background(), category.CreateCategoryInput{
		Name: name,
		Kind: entity.CategoryKind(kind),
		Icon: icon,
	})
	if err != nil {
		return err
	}
	tc.categories[name] = out.Category
	return nil
}

func (tc *ledgerContext) categoryIconChanged(name, icon string) error {
	cat, err := tc.categoryOf(name)
	if err != nil {
		return err
	}
	_, err = tc.updateCategory.Execute(context.Background(), category.UpdateCategoryInput{
		CategoryID: cat.ID,
		Icon:       &icon,
	})
	return err
}

func (tc *ledgerContext) categoryHasIcon(name, icon string) error {
	cat, err := tc.fetchCategory(name)
	if err != nil {
		return err
	}
	if cat.Icon != icon {
		return fmt.Errorf("expected icon %q, got %q", icon, cat.Icon)
	}
	return nil
}

func (tc *ledgerContext) categoryHasKind(name, kind string) error {
	cat, err := tc.fetchCategory(name)
	if err != nil {
		return err
	}
	if cat.Kind != entity.CategoryKind(kind) {
		return fmt.Errorf("expected kind %q, got %q", kind, cat.Kind)
	}
	return nil
}

func (tc *ledgerContext) categoryIsNamed(key, name string) error {
	cat, err := tc.fetchCategory(key)
	if err != nil {
		return err
	}
	if cat.Name != name {
		return fmt.Errorf("expected name %q, got %q", name, cat.Name)
	}
	return nil
}

func (tc *ledgerContext) accountOf(email string) (*entity.Account, error) {
	acc, ok := tc.accounts[email]
	if !ok {
		return nil, fmt.Errorf("no account registered for %s", email)
	}
	return acc, nil
}

func (tc *ledgerContext) categoryOf(name string) (*entity.Category, error) {
	cat, ok := tc.categories[name]
	if !ok {
		return nil, fmt.Errorf("no category created as %q", name)
	}
	return cat, nil
}

// fetchCategory reloads the category from the store so assertions observe
// persisted state, not the struct cached at creation time.
func (tc *ledgerContext) fetchCategory(name string) (*entity.Category, error) {
	cat, err := tc.categoryOf(name)
	if err != nil {
		return nil, err
	}
	out, err := tc.getCategory.Execute(context.Background(), category.GetCategoryInput{CategoryID: cat.ID})
	if err != nil {
		return nil, err
	}
	return out.Category, nil
}

func (tc *ledgerContext) ensureDefaultCategory() (int64, error) {
	if tc.defaultCategoryID != 0 {
		return tc.defaultCategoryID, nil
	}
	out, err := tc.createCategory.Execute(context.Background(), category.CreateCategoryInput{
		Name: "General",
		Kind: entity.CategoryKindVariable,
	})
	if err != nil {
		return 0, err
	}
	tc.defaultCategoryID = out.Category.ID
	return tc.defaultCategoryID, nil
}
