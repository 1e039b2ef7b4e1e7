// Package main is the console entry point for the personal finance ledger.
//
// The shell only prompts, parses and prints. Every rule lives in the use
// cases; this file calls them with already-parsed primitive values.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/core/config"
	"github.com/finance-ledger/core/internal/application/usecase/account"
	"github.com/finance-ledger/core/internal/application/usecase/auth"
	"github.com/finance-ledger/core/internal/application/usecase/category"
	"github.com/finance-ledger/core/internal/application/usecase/transaction"
	"github.com/finance-ledger/core/internal/domain/entity"
	"github.com/finance-ledger/core/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting ledger",
		"store", cfg.Store.Backend,
		"data_dir", cfg.Store.DataDir,
	)

	injector, err := dependency.NewInjector(cfg)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := injector.Close(); err != nil {
			slog.Error("Failed to close store", "error", err)
		}
	}()

	shell := &shell{
		in:       bufio.NewScanner(os.Stdin),
		injector: injector,
	}
	shell.run(context.Background())
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

type shell struct {
	in       *bufio.Scanner
	injector *dependency.Injector
	user     *entity.User
	account  *entity.Account
}

func (s *shell) run(ctx context.Context) {
	if !s.signIn(ctx) {
		return
	}
	if !s.openAccount(ctx) {
		return
	}

	for {
		fmt.Println()
		fmt.Println("1) Balance  2) Deposit  3) Expense  4) Statement  5) Categories  0) Exit")
		switch s.prompt("Choose an option: ") {
		case "1":
			s.showBalance(ctx)
		case "2":
			s.deposit(ctx)
		case "3":
			s.recordExpense(ctx)
		case "4":
			s.showStatement(ctx)
		case "5":
			s.categoriesMenu(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown option.")
		}
	}
}

func (s *shell) signIn(ctx context.Context) bool {
	email := s.prompt("Email: ")

	out, err := s.injector.LoginUser.Execute(ctx, auth.LoginUserInput{
		Email:    email,
		Password: s.prompt("Password: "),
	})
	if err == nil {
		if !out.Authenticated {
			fmt.Println("Wrong password.")
			return false
		}
		s.user = out.User
		fmt.Printf("Welcome back, %s!\n", s.user.Name)
		return true
	}

	fmt.Println("No user with this email; let's create one.")
	registered, err := s.injector.RegisterUser.Execute(ctx, auth.RegisterUserInput{
		Name:     s.prompt("Your name: "),
		Email:    email,
		Password: s.prompt("Choose a password: "),
	})
	if err != nil {
		fmt.Println("Could not create user:", err)
		return false
	}
	s.user = registered.User
	fmt.Printf("User %q created.\n", s.user.Name)
	return true
}

func (s *shell) openAccount(ctx context.Context) bool {
	out, err := s.injector.GetOrCreateAccount.Execute(ctx, account.GetOrCreateAccountInput{
		UserID: s.user.ID,
	})
	if err != nil {
		fmt.Println("Could not open an account:", err)
		return false
	}
	if out.Created {
		fmt.Println("No account found. A checking account was created.")
	}
	s.account = out.Account
	return true
}

func (s *shell) showBalance(ctx context.Context) {
	out, err := s.injector.GetBalance.Execute(ctx, account.GetBalanceInput{
		AccountID: s.account.ID,
	})
	if err != nil {
		fmt.Println("Could not compute balance:", err)
		return
	}
	fmt.Printf("Balance: %s\n", out.Balance.StringFixed(2))
}

func (s *shell) deposit(ctx context.Context) {
	amount, ok := s.promptAmount()
	if !ok {
		return
	}
	categoryID, ok := s.promptCategory(ctx)
	if !ok {
		return
	}

	_, err := s.injector.Deposit.Execute(ctx, account.DepositInput{
		AccountID:   s.account.ID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: s.prompt("Description (blank for default): "),
	})
	if err != nil {
		fmt.Println("Deposit rejected:", err)
		return
	}
	fmt.Println("Deposit recorded.")
}

func (s *shell) recordExpense(ctx context.Context) {
	amount, ok := s.promptAmount()
	if !ok {
		return
	}
	categoryID, ok := s.promptCategory(ctx)
	if !ok {
		return
	}

	_, err := s.injector.RecordExpense.Execute(ctx, account.RecordExpenseInput{
		AccountID:   s.account.ID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: s.prompt("Description (blank for default): "),
	})
	if err != nil {
		fmt.Println("Expense rejected:", err)
		return
	}
	fmt.Println("Expense recorded.")
}

func (s *shell) showStatement(ctx context.Context) {
	out, err := s.injector.ListTransactions.Execute(ctx, transaction.ListTransactionsInput{
		AccountID: s.account.ID,
	})
	if err != nil {
		fmt.Println("Could not load statement:", err)
		return
	}
	if len(out.Transactions) == 0 {
		fmt.Println("No transactions yet.")
		return
	}
	for _, t := range out.Transactions {
		sign := "+"
		if t.Type == entity.TransactionTypeExit {
			sign = "-"
		}
		fmt.Printf("#%d  %s  %s%s  %s\n",
			t.ID,
			t.Timestamp.Format("2006-01-02 15:04"),
			sign,
			t.Amount.StringFixed(2),
			t.Description,
		)
	}
}

func (s *shell) categoriesMenu(ctx context.Context) {
	s.listCategories(ctx)
	switch s.prompt("c) create  e) edit icon  d) delete  other) back: ") {
	case "c":
		s.createCategory(ctx)
	case "e":
		s.editCategoryIcon(ctx)
	case "d":
		s.deleteCategory(ctx)
	}
}

func (s *shell) listCategories(ctx context.Context) {
	out, err := s.injector.ListCategories.Execute(ctx)
	if err != nil {
		fmt.Println("Could not list categories:", err)
		return
	}
	if len(out.Categories) == 0 {
		fmt.Println("No categories yet.")
		return
	}
	for _, c := range out.Categories {
		fmt.Printf("#%d  %s (%s) %s\n", c.ID, c.Name, c.Kind, c.Icon)
	}
}

func (s *shell) createCategory(ctx context.Context) {
	out, err := s.injector.CreateCategory.Execute(ctx, category.CreateCategoryInput{
		Name: s.prompt("Name: "),
		Kind: entity.CategoryKind(s.prompt("Kind (fixed/variable): ")),
		Icon: s.prompt("Icon (optional): "),
	})
	if err != nil {
		fmt.Println("Could not create category:", err)
		return
	}
	fmt.Printf("Category %q created with id %d.\n", out.Category.Name, out.Category.ID)
}

func (s *shell) editCategoryIcon(ctx context.Context) {
	id, ok := s.promptID("Category id: ")
	if !ok {
		return
	}
	icon := s.prompt("New icon: ")
	_, err := s.injector.UpdateCategory.Execute(ctx, category.UpdateCategoryInput{
		CategoryID: id,
		Icon:       &icon,
	})
	if err != nil {
		fmt.Println("Could not update category:", err)
		return
	}
	fmt.Println("Category updated.")
}

func (s *shell) deleteCategory(ctx context.Context) {
	id, ok := s.promptID("Category id: ")
	if !ok {
		return
	}
	if err := s.injector.DeleteCategory.Execute(ctx, category.DeleteCategoryInput{CategoryID: id}); err != nil {
		fmt.Println("Could not delete category:", err)
		return
	}
	fmt.Println("Category deleted.")
}

func (s *shell) promptCategory(ctx context.Context) (int64, bool) {
	s.listCategories(ctx)
	return s.promptID("Category id: ")
}

func (s *shell) promptAmount() (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(s.prompt("Amount: "))
	if err != nil {
		fmt.Println("Not a number.")
		return decimal.Zero, false
	}
	return amount, true
}

func (s *shell) promptID(label string) (int64, bool) {
	id, err := strconv.ParseInt(s.prompt(label), 10, 64)
	if err != nil {
		fmt.Println("Not a valid id.")
		return 0, false
	}
	return id, true
}

func (s *shell) prompt(label string) string {
	fmt.Print(label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}
