package model

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
)

// Legacy column names of the transactions collection.
const (
	colTransactionAccount     = "conta_id"
	colTransactionCategory    = "categoria_id"
	colTransactionType        = "tipo"
	colTransactionAmount      = "valor"
	colTransactionDescription = "descricao"
	colTransactionTimestamp   = "data"
)

// legacy transaction type encodings
const (
	transactionTypeEntryEncoded = "entrada"
	transactionTypeExitEncoded  = "saida"
)

func encodeTransactionType(t entity.TransactionType) string {
	switch t {
	case entity.TransactionTypeEntry:
		return transactionTypeEntryEncoded
	case entity.TransactionTypeExit:
		return transactionTypeExitEncoded
	}
	return string(t)
}

func decodeTransactionType(encoded string) (entity.TransactionType, error) {
	switch encoded {
	case transactionTypeEntryEncoded:
		return entity.TransactionTypeEntry, nil
	case transactionTypeExitEncoded:
		return entity.TransactionTypeExit, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", encoded)
}

// TransactionToRow encodes a Transaction entity as a store row.
func TransactionToRow(transaction *entity.Transaction) adapter.Row {
	return adapter.Row{
		colID:                     encodeID(transaction.ID),
		colTransactionAccount:     encodeID(transaction.AccountID),
		colTransactionCategory:    encodeID(transaction.CategoryID),
		colTransactionType:        encodeTransactionType(transaction.Type),
		colTransactionAmount:      transaction.Amount.String(),
		colTransactionDescription: transaction.Description,
		colTransactionTimestamp:   encodeTime(transaction.Timestamp),
	}
}

// TransactionFromRow decodes a store row into a Transaction entity.
func TransactionFromRow(row adapter.Row) (*entity.Transaction, error) {
	id, err := decodeID(row, colID)
	if err != nil {
		return nil, fmt.Errorf("decode transaction row: %w", err)
	}
	accountID, err := decodeID(row, colTransactionAccount)
	if err != nil {
		return nil, fmt.Errorf("decode transaction row: %w", err)
	}
	categoryID, err := decodeID(row, colTransactionCategory)
	if err != nil {
		return nil, fmt.Errorf("decode transaction row: %w", err)
	}
	transactionType, err := decodeTransactionType(row[colTransactionType])
	if err != nil {
		return nil, fmt.Errorf("decode transaction row: %w", err)
	}
	amount, err := decimal.NewFromString(row[colTransactionAmount])
	if err != nil {
		return nil, fmt.Errorf("decode transaction row: column %q: %w", colTransactionAmount, err)
	}
	timestamp, err := decodeTime(row, colTransactionTimestamp)
	if err != nil {
		return nil, fmt.Errorf("decode transaction row: %w", err)
	}

	return &entity.Transaction{
		ID:          id,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: row[colTransactionDescription],
		Timestamp:   timestamp,
	}, nil
}
