package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finance-ledger/core/internal/domain/entity"
	domainerror "github.com/finance-ledger/core/internal/domain/error"
	"github.com/finance-ledger/core/internal/integration/store"
)

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(store.NewMemory())
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	checking := entity.NewAccount(1, entity.AccountKindChecking, createdAt)
	savings := entity.NewAccount(1, entity.AccountKindSavings, createdAt)
	foreign := entity.NewAccount(2, entity.AccountKindChecking, createdAt)

	for _, acc := range []*entity.Account{checking, savings, foreign} {
		if err := repo.Create(ctx, acc); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	t.Run("FindByID round-trips the account", func(t *testing.T) {
		found, err := repo.FindByID(ctx, savings.ID)
		if err != nil {
			t.Fatalf("find by id: %v", err)
		}
		if found.Kind != entity.AccountKindSavings || found.OwnerUserID != 1 {
			t.Errorf("unexpected account: %+v", found)
		}
		if !found.CreatedAt.Equal(createdAt) {
			t.Errorf("expected createdAt %v, got %v", createdAt, found.CreatedAt)
		}
	})

	t.Run("FindByUser lists only the owner's accounts", func(t *testing.T) {
		list, err := repo.FindByUser(ctx, 1)
		if err != nil {
			t.Fatalf("find by user: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 accounts for user 1, got %d", len(list))
		}
	})

	t.Run("FindByID of an absent account fails", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, 99); !errors.Is(err, domainerror.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
