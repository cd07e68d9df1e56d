package hydra

import (
	"errors"
	"fmt"
)

var (
	// ErrConfirmationTimeout means the head sent no verdict in time. The
	// transaction may still be applied later.
	ErrConfirmationTimeout = errors.New("confirmation timeout")
	// ErrTxRejected matches any *RejectedError.
	ErrTxRejected = errors.New("transaction rejected by head")

	ErrIngestionStopped = errors.New("ingestion already terminated")
	ErrOutcomesClosed   = errors.New("outcome subscription closed")
)

// RejectedError carries the head's reason for refusing a transaction.
type RejectedError struct {
	TxID   string
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("transaction %s rejected by head: %s", e.TxID, e.Reason)
}

// Is makes errors.Is(err, ErrTxRejected) hold for rejections.
func (e *RejectedError) Is(target error) bool {
	return target == ErrTxRejected
}
