package kvstore

import (
	"context"
	"database/sql"
	"errors"
)

// MySQL stores values in the app_storage table created by internal/db.
type MySQL struct {
	db *sql.DB
}

func NewMySQL(db *sql.DB) *MySQL {
	return &MySQL{db: db}
}

func (s *MySQL) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT v FROM app_storage WHERE k = ? LIMIT 1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (s *MySQL) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_storage (k, v)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v), updated_at = NOW()
	`, key, value)
	return err
}

func (s *MySQL) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM app_storage WHERE k = ?", key)
	return err
}
