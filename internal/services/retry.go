package services

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "vendstock/internal/errors"
	"vendstock/internal/logger"
)

// maxTxAttempts bounds how often a conflicted transaction is retried
// before the failure is surfaced to the caller.
const maxTxAttempts = 3

// runInTx executes fn inside a database transaction. Transactions that
// fail because of a detected concurrent-write conflict are retried up to
// maxTxAttempts times; any other failure rolls back and propagates
// unchanged. A transaction that still conflicts after the last attempt is
// reported as ErrTransactionFailure.
func runInTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 1; ; attempt++ {
		err = db.Transaction(fn)
		if err == nil || !isRetryableTxError(err) {
			return err
		}
		if attempt == maxTxAttempts {
			break
		}
		logger.Get().Warnw("retrying transaction after write conflict",
			"attempt", attempt,
			"error", err.Error(),
		)
		time.Sleep(time.Duration(attempt) * 10 * time.Millisecond)
	}
	return apperrors.Wrap(apperrors.ErrTransactionFailure, err)
}

// isRetryableTxError reports whether err indicates a transient
// concurrent-write conflict rather than a persistent failure.
func isRetryableTxError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure / deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}

	// SQLite reports write contention as a locked database.
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}
