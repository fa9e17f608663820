package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sysu-ecnc-dev/dtr-payroll/backend/internal/database"
)

// SQLStore 把文档保存在 dtr_documents 表中，postgres 与 sqlite 共用同一套语句
type SQLStore struct {
	db *database.DB
}

func NewSQLStore(db *database.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM dtr_documents WHERE doc_key = ?`

	var value string
	if err := s.db.QueryRowContext(ctx, s.db.Rebind(query), key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *SQLStore) Put(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO dtr_documents (doc_key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (doc_key) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`

	_, err := s.db.ExecContext(ctx, s.db.Rebind(query), key, value)
	return err
}

func (s *SQLStore) Delete(ctx context.Context, keys ...string) error {
	query := `DELETE FROM dtr_documents WHERE doc_key = ?`

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, s.db.Rebind(query), key); err != nil {
			return err
		}
	}

	return tx.Commit()
}
