package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/osse101/PotionCraft_Go/internal/logger"
)

// ErrMsgTxClosed is the message pgx uses for a transaction that already ended
const ErrMsgTxClosed = "tx is closed"

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Check for common "closed" errors to avoid noise
		if errors.Is(err, sql.ErrTxDone) || err.Error() == ErrMsgTxClosed {
			return
		}
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
