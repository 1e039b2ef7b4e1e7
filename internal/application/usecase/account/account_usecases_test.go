// Package account contains account-related use cases: provisioning,
// balance projection, deposits and expenses.
package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
	"github.com/finance-ledger/core/internal/integration/persistence"
	"github.com/finance-ledger/core/internal/integration/store"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type fixture struct {
	account *entity.Account

	getOrCreate   *GetOrCreateAccountUseCase
	listAccounts  *ListAccountsUseCase
	getBalance    *GetBalanceUseCase
	deposit       *DepositUseCase
	recordExpense *RecordExpenseUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	memory := store.NewMemory()
	accountRepo := persistence.NewAccountRepository(memory)
	transactionRepo := persistence.NewTransactionRepository(memory)
	clock := &fixedClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	guard := adapter.NewLedgerGuard()

	f := &fixture{
		getOrCreate:   NewGetOrCreateAccountUseCase(accountRepo, clock, guard),
		listAccounts:  NewListAccountsUseCase(accountRepo, guard),
		getBalance:    NewGetBalanceUseCase(accountRepo, transactionRepo, guard),
		deposit:       NewDepositUseCase(accountRepo, transactionRepo, clock, guard),
		recordExpense: NewRecordExpenseUseCase(accountRepo, transactionRepo, clock, guard),
	}

	out, err := f.getOrCreate.Execute(context.Background(), GetOrCreateAccountInput{UserID: 1})
	if err != nil {
		t.Fatalf("provision account: %v", err)
	}
	f.account = out.Account
	return f
}

func (f *fixture) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	out, err := f.getBalance.Execute(context.Background(), GetBalanceInput{AccountID: f.account.ID})
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	return out.Balance
}

func TestGetOrCreateAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("provisions a checking account for a new user", func(t *testing.T) {
		if f.account.Kind != entity.AccountKindChecking {
			t.Errorf("expected a checking account, got %q", f.account.Kind)
		}
		if f.account.OwnerUserID != 1 {
			t.Errorf("expected owner 1, got %d", f.account.OwnerUserID)
		}
	})

	t.Run("returns the existing account on later calls", func(t *testing.T) {
		out, err := f.getOrCreate.Execute(ctx, GetOrCreateAccountInput{UserID: 1})
		if err != nil {
			t.Fatalf("execute: %v", err)
		}
		if out.Created {
			t.Error("expected Created to be false for an existing account")
		}
		if out.Account.ID != f.account.ID {
			t.Errorf("expected account %d, got %d", f.account.ID, out.Account.ID)
		}
	})

	t.Run("does not share accounts between users", func(t *testing.T) {
		out, err := f.getOrCreate.Execute(ctx, GetOrCreateAccountInput{UserID: 2})
		if err != nil {
			t.Fatalf("execute: %v", err)
		}
		if !out.Created {
			t.Error("expected a fresh account for a different user")
		}
	})
}

func TestGetBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("is zero for an account without transactions", func(t *testing.T) {
		if !f.balance(t).IsZero() {
			t.Errorf("expected zero balance, got %s", f.balance(t))
		}
	})

	t.Run("is entries minus exits", func(t *testing.T) {
		amounts := []struct {
			value   string
			expense bool
		}{
			{"100.00", false},
			{"0.01", false},
			{"30.00", true},
			{"12.50", true},
		}
		for _, a := range amounts {
			value := decimal.RequireFromString(a.value)
			var err error
			if a.expense {
				_, err = f.recordExpense.Execute(ctx, RecordExpenseInput{AccountID: f.account.ID, CategoryID: 1, Amount: value})
			} else {
				_, err = f.deposit.Execute(ctx, DepositInput{AccountID: f.account.ID, CategoryID: 1, Amount: value})
			}
			if err != nil {
				t.Fatalf("recording %s: %v", a.value, err)
			}
		}

		want := decimal.RequireFromString("57.51")
		if got := f.balance(t); !got.Equal(want) {
			t.Errorf("expected balance %s, got %s", want, got)
		}
	})

	t.Run("fails for an unknown account", func(t *testing.T) {
		_, err := f.getBalance.Execute(ctx, GetBalanceInput{AccountID: 99})
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestDeposit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "-1", "-0.01"} {
			_, err := f.deposit.Execute(ctx, DepositInput{
				AccountID: f.account.ID,
				Amount:    decimal.RequireFromString(amount),
			})
			if !errors.Is(err, domainerror.ErrInvalidAmount) {
				t.Errorf("deposit of %s: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
		if !f.balance(t).IsZero() {
			t.Errorf("rejected deposits must not change the balance, got %s", f.balance(t))
		}
	})

	t.Run("records an entry transaction", func(t *testing.T) {
		out, err := f.deposit.Execute(ctx, DepositInput{
			AccountID:   f.account.ID,
			CategoryID:  1,
			Amount:      decimal.RequireFromString("100.00"),
			Description: "salary",
		})
		if err != nil {
			t.Fatalf("deposit: %v", err)
		}
		if out.Transaction.Type != entity.TransactionTypeEntry {
			t.Errorf("expected an entry transaction, got %q", out.Transaction.Type)
		}
		if out.Transaction.Description != "salary" {
			t.Errorf("expected description to be kept, got %q", out.Transaction.Description)
		}
	})

	t.Run("defaults the description", func(t *testing.T) {
		out, err := f.deposit.Execute(ctx, DepositInput{
			AccountID: f.account.ID,
			Amount:    decimal.RequireFromString("1"),
		})
		if err != nil {
			t.Fatalf("deposit: %v", err)
		}
		if out.Transaction.Description != DefaultDepositDescription {
			t.Errorf("expected default description, got %q", out.Transaction.Description)
		}
	})

	t.Run("fails for an unknown account", func(t *testing.T) {
		_, err := f.deposit.Execute(ctx, DepositInput{
			AccountID: 99,
			Amount:    decimal.RequireFromString("1"),
		})
		if !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestRecordExpense(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.deposit.Execute(ctx, DepositInput{
		AccountID: f.account.ID,
		Amount:    decimal.RequireFromString("100.00"),
	}); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "-1", "-0.01"} {
			_, err := f.recordExpense.Execute(ctx, RecordExpenseInput{
				AccountID: f.account.ID,
				Amount:    decimal.RequireFromString(amount),
			})
			if !errors.Is(err, domainerror.ErrInvalidAmount) {
				t.Errorf("expense of %s: expected ErrInvalidAmount, got %v", amount, err)
			}
		}
	})

	t.Run("rejects an expense above the balance and keeps it unchanged", func(t *testing.T) {
		_, err := f.recordExpense.Execute(ctx, RecordExpenseInput{
			AccountID: f.account.ID,
			Amount:    decimal.RequireFromString("100.01"),
		})
		if !errors.Is(err, domainerror.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}

		want := decimal.RequireFromString("100.00")
		if got := f.balance(t); !got.Equal(want) {
			t.Errorf("expected balance to stay at %s, got %s", want, got)
		}
	})

	t.Run("accepts spending the exact balance", func(t *testing.T) {
		out, err := f.recordExpense.Execute(ctx, RecordExpenseInput{
			AccountID: f.account.ID,
			Amount:    decimal.RequireFromString("100.00"),
		})
		if err != nil {
			t.Fatalf("expense: %v", err)
		}
		if out.Transaction.Type != entity.TransactionTypeExit {
			t.Errorf("expected an exit transaction, got %q", out.Transaction.Type)
		}
		if out.Transaction.Description != DefaultExpenseDescription {
			t.Errorf("expected default description, got %q", out.Transaction.Description)
		}
		if !f.balance(t).IsZero() {
			t.Errorf("expected a zero balance, got %s", f.balance(t))
		}
	})

	t.Run("rejects any expense on an empty account", func(t *testing.T) {
		_, err := f.recordExpense.Execute(ctx, RecordExpenseInput{
			AccountID: f.account.ID,
			Amount:    decimal.RequireFromString("0.01"),
		})
		if !errors.Is(err, domainerror.ErrInsufficientFunds) {
			t.Errorf("expected ErrInsufficientFunds, got %v", err)
		}
	})
}

func TestListAccounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.getOrCreate.Execute(ctx, GetOrCreateAccountInput{UserID: 2}); err != nil {
		t.Fatalf("provision account: %v", err)
	}

	out, err := f.listAccounts.Execute(ctx, ListAccountsInput{UserID: 1})
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(out.Accounts) != 1 {
		t.Fatalf("expected 1 account for user 1, got %d", len(out.Accounts))
	}
	if out.Accounts[0].ID != f.account.ID {
		t.Errorf("expected account %d, got %d", f.account.ID, out.Accounts[0].ID)
	}
}
