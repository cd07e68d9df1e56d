package hydra

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/hydra-trp/internal/cardano"
	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
)

// Submission outcomes reported to metrics.
const (
	OutcomeSent      = "sent"
	OutcomeConfirmed = "confirmed"
	OutcomeRejected  = "rejected"
	OutcomeTimeout   = "timeout"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// Submitter sends transactions to the head and optionally waits for the verdict.
type Submitter struct {
	logger   *zap.Logger
	sender   TxSender
	outcomes OutcomeSubscriber
	metrics  SubmitterMetrics
	timeout  time.Duration
}

// NewSubmitter builds a Submitter. A non-positive timeout selects DefaultConfirmTimeout.
func NewSubmitter(
	sender TxSender,
	outcomes OutcomeSubscriber,
	metrics SubmitterMetrics,
	timeout time.Duration,
	logger *zap.Logger,
) (*Submitter, error) {
	if sender == nil {
		return nil, errors.New("tx sender is required")
	}
	if outcomes == nil {
		return nil, errors.New("outcome subscriber is required")
	}
	if metrics == nil {
		return nil, errors.New("submitter metrics is required")
	}
	if timeout <= 0 {
		timeout = DefaultConfirmTimeout
	}
	return &Submitter{
		logger:   logger,
		sender:   sender,
		outcomes: outcomes,
		metrics:  metrics,
		timeout:  timeout,
	}, nil
}

// Submit validates raw transaction bytes, writes them to the head and, when
// confirm is set, waits for the matching TxValid or TxInvalid event. The
// returned hash is set whenever the bytes decoded, even on failure.
func (s *Submitter) Submit(ctx context.Context, raw []byte, confirm bool) (string, error) {
	started := time.Now()

	tx, err := cardano.DecodeTx(raw)
	if err != nil {
		s.metrics.ObserveSubmit(OutcomeInvalid, started)
		return "", err
	}
	hash := tx.HashHex()
	logger := s.logger.With(zap.String("tx", hash))

	// subscribe before writing so a fast verdict is not missed
	var events <-chan model.Event
	if confirm {
		sub := s.outcomes.Subscribe()
		defer sub.Close()
		events = sub.C
	}

	if err := s.sender.Send(ctx, model.NewTx(raw)); err != nil {
		s.metrics.ObserveSubmit(OutcomeError, started)
		return hash, fmt.Errorf("submit %s: %w", hash, err)
	}
	logger.Debug("transaction sent to head")

	if !confirm {
		s.metrics.ObserveSubmit(OutcomeSent, started)
		return hash, nil
	}

	err = s.await(ctx, hash, events)
	s.metrics.ObserveSubmit(outcomeOf(err), started)
	if err != nil {
		logger.Info("transaction not confirmed", zap.Error(err))
		return hash, err
	}
	logger.Debug("transaction confirmed")
	return hash, nil
}

func (s *Submitter) await(ctx context.Context, hash string, events <-chan model.Event) error {
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return fmt.Errorf("%w: no verdict for %s within %s", ErrConfirmationTimeout, hash, s.timeout)
		case event, ok := <-events:
			if !ok {
				return ErrOutcomesClosed
			}
			switch e := event.(type) {
			case model.TxValid:
				if strings.EqualFold(e.ID(), hash) {
					return nil
				}
			case model.TxInvalid:
				if strings.EqualFold(e.ID(), hash) {
					return &RejectedError{TxID: hash, Reason: e.ValidationError.Reason}
				}
			}
		}
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeConfirmed
	case errors.Is(err, ErrTxRejected):
		return OutcomeRejected
	case errors.Is(err, ErrConfirmationTimeout):
		return OutcomeTimeout
	default:
		return OutcomeError
	}
}
