package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無資料，或條件式寫入影響零筆
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 唯一鍵衝突 (SQLSTATE 23505)
	ErrDuplicate = errors.New("duplicate record")
)

// mapError 將 pgx 錯誤轉成 store 的 sentinel，讓 handler 不必認識 SQLSTATE
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
