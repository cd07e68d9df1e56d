package hydra

import (
	"context"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// Ingestion states.
const (
	StateRunning          = "running"
	StateDrainingOnClose  = "draining_on_close"
	StateDrainingOnCancel = "draining_on_cancel"
	StateTerminated       = "terminated"
)

const (
	eventClose     = "close"
	eventCancel    = "cancel"
	eventFail      = "fail"
	eventTerminate = "terminate"
)

// newIngestionFSM builds the read-side state machine:
// running -> draining_on_close | draining_on_cancel -> terminated, and
// running -> terminated on a transport failure.
func newIngestionFSM(logger *zap.Logger) *fsm.FSM {
	return fsm.NewFSM(
		StateRunning,
		fsm.Events{
			{Name: eventClose, Src: []string{StateRunning}, Dst: StateDrainingOnClose},
			{Name: eventCancel, Src: []string{StateRunning}, Dst: StateDrainingOnCancel},
			{Name: eventFail, Src: []string{StateRunning}, Dst: StateTerminated},
			{
				Name: eventTerminate,
				Src:  []string{StateDrainingOnClose, StateDrainingOnCancel},
				Dst:  StateTerminated,
			},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Debug("ingestion state changed", zap.String("from", e.Src), zap.String("to", e.Dst))
			},
		},
	)
}
