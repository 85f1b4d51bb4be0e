package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"clinica-pet-feliz/internal/platform/logger"

	"github.com/google/uuid"
)

// runInTx corre fn dentro de una transacción: rollback si fn devuelve error
// o hace panic, commit solo si termina bien. Cada tx se loguea con un tx_id.
func runInTx(ctx context.Context, db *sql.DB, log logger.Logger, fn func(tx *sql.Tx) error) error {
	log = log.With(map[string]any{"tx_id": uuid.NewString()})

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("begin transaction failed", map[string]any{"error": err})
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("rollback after panic failed", map[string]any{"error": rbErr, "panic": fmt.Sprint(p)})
			} else {
				log.Error("transaction rolled back after panic", map[string]any{"panic": fmt.Sprint(p)})
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("rollback failed", map[string]any{"error": rbErr, "cause": err})
			return fmt.Errorf("rollback transaction: %v (cause: %w)", rbErr, err)
		}
		log.Debug("transaction rolled back", map[string]any{"cause": err})
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("commit failed", map[string]any{"error": err})
		return fmt.Errorf("commit transaction: %w", mapError(err))
	}

	log.Debug("transaction committed", nil)
	return nil
}
