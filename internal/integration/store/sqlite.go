package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-ledger/core/internal/application/adapter"
)

// recordModel represents the records table: one row per persisted record,
// with the row payload kept as JSON so the store stays schema-free.
type recordModel struct {
	Seq      uint   `gorm:"primaryKey;autoIncrement"`
	Kind     string `gorm:"size:32;not null;index"`
	RecordID int64  `gorm:"not null;index"`
	Payload  string `gorm:"type:text;not null"`
}

// TableName returns the table name for the recordModel.
func (recordModel) TableName() string {
	return "records"
}

// SQLite is a record store over a sqlite database. Unlike the workbook
// backend, OverwriteAll runs inside a database transaction, so a crash
// mid-write never leaves a half-rewritten collection.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (or creates) the sqlite database at path and migrates the
// records table.
func NewSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, storageError("open sqlite store "+path, err)
	}

	if err := db.AutoMigrate(&recordModel{}); err != nil {
		return nil, storageError("migrate records table", err)
	}

	slog.Info("sqlite store opened", "path", path)
	return &SQLite{db: db}, nil
}

// LoadAll returns every row of the collection in insertion order.
func (s *SQLite) LoadAll(ctx context.Context, kind adapter.Kind) ([]adapter.Row, error) {
	var records []recordModel
	result := s.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("seq ASC").
		Find(&records)
	if result.Error != nil {
		return nil, storageError("load collection "+string(kind), result.Error)
	}

	rows := make([]adapter.Row, 0, len(records))
	for _, record := range records {
		var row adapter.Row
		if err := json.Unmarshal([]byte(record.Payload), &row); err != nil {
			return nil, storageError(fmt.Sprintf("decode record %d of %s", record.RecordID, kind), err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// NextID returns max(existing ids)+1, or 1 when the collection is empty.
func (s *SQLite) NextID(ctx context.Context, kind adapter.Kind) (int64, error) {
	var max int64
	row := s.db.WithContext(ctx).
		Model(&recordModel{}).
		Where("kind = ?", string(kind)).
		Select("COALESCE(MAX(record_id), 0)").
		Row()
	if err := row.Scan(&max); err != nil {
		return 0, storageError("read max id of "+string(kind), err)
	}
	return max + 1, nil
}

// AppendRow appends one row to the collection.
func (s *SQLite) AppendRow(ctx context.Context, kind adapter.Kind, row adapter.Row) error {
	record, err := newRecord(kind, row)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return storageError("append to collection "+string(kind), result.Error)
	}
	return nil
}

// OverwriteAll replaces the whole collection inside one transaction.
func (s *SQLite) OverwriteAll(ctx context.Context, kind adapter.Kind, rows []adapter.Row) error {
	records := make([]*recordModel, 0, len(rows))
	for _, row := range rows {
		record, err := newRecord(kind, row)
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kind = ?", string(kind)).Delete(&recordModel{}).Error; err != nil {
			return err
		}
		for _, record := range records {
			if err := tx.Create(record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storageError("overwrite collection "+string(kind), err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return storageError("close sqlite store", err)
	}
	if err := sqlDB.Close(); err != nil {
		return storageError("close sqlite store", err)
	}
	return nil
}

func newRecord(kind adapter.Kind, row adapter.Row) (*recordModel, error) {
	id, err := strconv.ParseInt(row[adapter.IDColumn], 10, 64)
	if err != nil {
		return nil, storageError("row has no readable id", err)
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return nil, storageError("encode row", err)
	}
	return &recordModel{
		Kind:     string(kind),
		RecordID: id,
		Payload:  string(payload),
	}, nil
}
