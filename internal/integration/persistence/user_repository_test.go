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

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemory())
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Create assigns sequential ids", func(t *testing.T) {
		ana := entity.NewUser("Ana", "ana@example.com", "$2a$04$hash-a", createdAt)
		if err := repo.Create(ctx, ana); err != nil {
			t.Fatalf("create: %v", err)
		}
		if ana.ID != 1 {
			t.Errorf("expected first user to get id 1, got %d", ana.ID)
		}

		bia := entity.NewUser("Bia", "bia@example.com", "$2a$04$hash-b", createdAt)
		if err := repo.Create(ctx, bia); err != nil {
			t.Fatalf("create: %v", err)
		}
		if bia.ID != 2 {
			t.Errorf("expected second user to get id 2, got %d", bia.ID)
		}
	})

	t.Run("FindByID round-trips every field", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 1)
		if err != nil {
			t.Fatalf("find by id: %v", err)
		}
		if found.Name != "Ana" || found.Email != "ana@example.com" {
			t.Errorf("unexpected user: %+v", found)
		}
		if found.PasswordHash != "$2a$04$hash-a" {
			t.Errorf("password hash not preserved: %q", found.PasswordHash)
		}
		if !found.CreatedAt.Equal(createdAt) {
			t.Errorf("expected createdAt %v, got %v", createdAt, found.CreatedAt)
		}
	})

	t.Run("FindByEmail matches exactly", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "bia@example.com")
		if err != nil {
			t.Fatalf("find by email: %v", err)
		}
		if found.ID != 2 {
			t.Errorf("expected user 2, got %d", found.ID)
		}

		if _, err := repo.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("FindByEmail returns the first of duplicated emails", func(t *testing.T) {
		twin := entity.NewUser("Ana Clone", "ana@example.com", "$2a$04$hash-c", createdAt)
		if err := repo.Create(ctx, twin); err != nil {
			t.Fatalf("create: %v", err)
		}

		found, err := repo.FindByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("find by email: %v", err)
		}
		if found.ID != 1 {
			t.Errorf("expected the original user, got id %d", found.ID)
		}
	})

	t.Run("Update rewrites the stored user", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 1)
		if err != nil {
			t.Fatalf("find by id: %v", err)
		}
		found.Name = "Ana Maria"
		if err := repo.Update(ctx, found); err != nil {
			t.Fatalf("update: %v", err)
		}

		reloaded, err := repo.FindByID(ctx, 1)
		if err != nil {
			t.Fatalf("find by id: %v", err)
		}
		if reloaded.Name != "Ana Maria" {
			t.Errorf("expected updated name, got %q", reloaded.Name)
		}
	})

	t.Run("Update of an absent user fails", func(t *testing.T) {
		ghost := entity.NewUser("Ghost", "ghost@example.com", "hash", createdAt)
		ghost.ID = 99
		if err := repo.Update(ctx, ghost); !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
