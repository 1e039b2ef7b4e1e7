package model

import (
	"fmt"

	"github.com/finance-ledger/core/internal/application/adapter"
	"github.com/finance-ledger/core/internal/domain/entity"
)

// Legacy column names of the categories collection.
const (
	colCategoryName = "nome"
	colCategoryKind = "tipo"
	colCategoryIcon = "icone"
)

// legacy category kind encodings
const (
	categoryKindFixedEncoded    = "fixa"
	categoryKindVariableEncoded = "variavel"
)

func encodeCategoryKind(kind entity.CategoryKind) string {
	switch kind {
	case entity.CategoryKindFixed:
		return categoryKindFixedEncoded
	case entity.CategoryKindVariable:
		return categoryKindVariableEncoded
	}
	return string(kind)
}

func decodeCategoryKind(encoded string) (entity.CategoryKind, error) {
	switch encoded {
	case categoryKindFixedEncoded:
		return entity.CategoryKindFixed, nil
	case categoryKindVariableEncoded:
		return entity.CategoryKindVariable, nil
	}
	return "", fmt.Errorf("unknown category kind %q", encoded)
}

// CategoryToRow encodes a Category entity as a store row.
func CategoryToRow(category *entity.Category) adapter.Row {
	return adapter.Row{
		colID:           encodeID(category.ID),
		colCategoryName: category.Name,
		colCategoryKind: encodeCategoryKind(category.Kind),
		colCategoryIcon: category.Icon,
	}
}

// CategoryFromRow decodes a store row into a Category entity.
func CategoryFromRow(row adapter.Row) (*entity.Category, error) {
	id, err := decodeID(row, colID)
	if err != nil {
		return nil, fmt.Errorf("decode category row: %w", err)
	}
	kind, err := decodeCategoryKind(row[colCategoryKind])
	if err != nil {
		return nil, fmt.Errorf("decode category row: %w", err)
	}

	return &entity.Category{
		ID:   id,
		Name: row[colCategoryName],
		Kind: kind,
		Icon: row[colCategoryIcon],
	}, nil
}
