package model

import (
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
)

// Legacy column names of the users collection.
const (
	colUserName      = "nome"
	colUserEmail     = "email"
	colUserPassword  = "senha"
	colUserCreatedAt = "data_cadastro"
)

// UserToRow encodes a User entity as a store row.
func UserToRow(user *entity.User) adapter.Row {
	return adapter.Row{
		colID:            encodeID(user.ID),
		colUserName:      user.Name,
		colUserEmail:     user.Email,
		colUserPassword:  user.PasswordHash,
		colUserCreatedAt: encodeTime(user.CreatedAt),
	}
}

// UserFromRow decodes a store row into a User entity.
func UserFromRow(row adapter.Row) (*entity.User, error) {
	id, err := decodeID(row, colID)
	if err != nil {
		return nil, fmt.Errorf("decode user row: %w", err)
	}
	createdAt, err := decodeTime(row, colUserCreatedAt)
	if err != nil {
		return nil, fmt.Errorf("decode user row: %w", err)
	}

	return &entity.User{
		ID:           id,
		Name:         row[colUserName],
		Email:        row[colUserEmail],
		PasswordHash: row[colUserPassword],
		CreatedAt:    createdAt,
	}, nil
}
