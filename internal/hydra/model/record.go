package model

import "time"

// OutcomeStatus describes the head's verdict on a transaction.
type OutcomeStatus string

var (
	// OutcomeValid marks a transaction applied by the head.
	OutcomeValid OutcomeStatus = "valid"
	// OutcomeInvalid marks a transaction rejected by the head.
	OutcomeInvalid OutcomeStatus = "invalid"
)

// SnapshotRecord is a journal row describing a confirmed snapshot.
type SnapshotRecord struct {
	Seq        uint64
	Timestamp  string
	HeadStatus HeadStatus
	UtxoCount  uint32
	ObservedAt time.Time
}

// TxOutcomeRecord is a journal row describing a validation verdict.
type TxOutcomeRecord struct {
	TxID       string
	Status     OutcomeStatus
	Reason     string
	ObservedAt time.Time
}
