package model

import (
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
)

// Legacy column names of the accounts collection.
const (
	colAccountOwner     = "usuario_id"
	colAccountKind      = "tipo"
	colAccountCreatedAt = "data_criacao"
)

// legacy account kind encodings
const (
	accountKindCheckingEncoded = "corrente"
	accountKindSavingsEncoded  = "poupanca"
)

func encodeAccountKind(kind string) string {
	switch kind {
	case entity.AccountKindChecking:
		return accountKindCheckingEncoded
	case entity.AccountKindSavings:
		return accountKindSavingsEncoded
	}
	return kind
}

func decodeAccountKind(encoded string) string {
	switch encoded {
	case accountKindCheckingEncoded:
		return entity.AccountKindChecking
	case accountKindSavingsEncoded:
		return entity.AccountKindSavings
	}
	return encoded
}

// AccountToRow encodes an Account entity as a store row.
func AccountToRow(account *entity.Account) adapter.Row {
	return adapter.Row{
		colID:               encodeID(account.ID),
		colAccountOwner:     encodeID(account.OwnerUserID),
		colAccountKind:      encodeAccountKind(account.Kind),
		colAccountCreatedAt: encodeTime(account.CreatedAt),
	}
}

// AccountFromRow decodes a store row into an Account entity.
func AccountFromRow(row adapter.Row) (*entity.Account, error) {
	id, err := decodeID(row, colID)
	if err != nil {
		return nil, fmt.Errorf("decode account row: %w", err)
	}
	owner, err := decodeID(row, colAccountOwner)
	if err != nil {
		return nil, fmt.Errorf("decode account row: %w", err)
	}
	createdAt, err := decodeTime(row, colAccountCreatedAt)
	if err != nil {
		return nil, fmt.Errorf("decode account row: %w", err)
	}

	return &entity.Account{
		ID:          id,
		OwnerUserID: owner,
		Kind:        decodeAccountKind(row[colAccountKind]),
		CreatedAt:   createdAt,
	}, nil
}
