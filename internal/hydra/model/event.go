package model

import (
	"errors"
	"fmt"
)

// Event tags sent by the head that the adapter understands.
const (
	TagGreetings         = "Greetings"
	TagSnapshotConfirmed = "SnapshotConfirmed"
	TagHeadIsOpen        = "HeadIsOpen"
	TagTxValid           = "TxValid"
	TagTxInvalid         = "TxInvalid"
)

// ErrMissingTag is returned for messages without a discriminator.
var ErrMissingTag = errors.New("event tag missing")

// Event is an inbound head message.
type Event interface {
	Tag() string
}

// Greetings is sent on connect with the current head status and UTXO set.
type Greetings struct {
	HeadStatus   HeadStatus    `json:"headStatus"`
	SnapshotUtxo map[TxID]Utxo `json:"snapshotUtxo"`
	Utxo         map[TxID]Utxo `json:"utxo"`
}

// Snapshot carries the confirmed UTXO set.
type Snapshot struct {
	Number uint64        `json:"number"`
	Utxo   map[TxID]Utxo `json:"utxo"`
}

// SnapshotConfirmed replaces the UTXO set and advances progress.
type SnapshotConfirmed struct {
	Snapshot  Snapshot `json:"snapshot"`
	Seq       uint64   `json:"seq"`
	Timestamp string   `json:"timestamp"`
}

// HeadIsOpen carries the initial UTXO set of an opened head.
type HeadIsOpen struct {
	Utxo      map[TxID]Utxo `json:"utxo"`
	Seq       uint64        `json:"seq"`
	Timestamp string        `json:"timestamp"`
}

// TxValid reports a transaction applied by the head.
type TxValid struct {
	TransactionID string           `json:"transactionId"`
	TxIDField     string           `json:"txId"`
	Transaction   *TransactionInfo `json:"transaction,omitempty"`
}

// TxInvalid reports a transaction rejected by the head.
type TxInvalid struct {
	Transaction     TransactionInfo `json:"transaction"`
	ValidationError ValidationError `json:"validationError"`
}

// TransactionInfo identifies a transaction inside an event.
type TransactionInfo struct {
	TxID string `json:"txId"`
}

// ValidationError holds the head's rejection reason.
type ValidationError struct {
	Reason string `json:"reason"`
}

// UnknownEvent is any well-formed message with a tag the adapter ignores.
type UnknownEvent struct {
	Name string
}

func (Greetings) Tag() string { return TagGreetings }
func (SnapshotConfirmed) Tag() string { return TagSnapshotConfirmed }
func (HeadIsOpen) Tag() string { return TagHeadIsOpen }
func (TxValid) Tag() string { return TagTxValid }
func (TxInvalid) Tag() string { return TagTxInvalid }
func (e UnknownEvent) Tag() string { return e.Name }

// UTXOs returns the snapshot carried by the greeting, whichever key was used.
func (g Greetings) UTXOs() map[TxID]Utxo {
	if g.SnapshotUtxo != nil {
		return g.SnapshotUtxo
	}
	if g.Utxo != nil {
		return g.Utxo
	}
	return map[TxID]Utxo{}
}

// ID returns the validated transaction id, whichever key was used.
func (e TxValid) ID() string {
	switch {
	case e.TransactionID != "":
		return e.TransactionID
	case e.TxIDField != "":
		return e.TxIDField
	case e.Transaction != nil:
		return e.Transaction.TxID
	default:
		return ""
	}
}

// ID returns the rejected transaction id.
func (e TxInvalid) ID() string {
	return e.Transaction.TxID
}

type envelope struct {
	Tag string `json:"tag"`
}

// ParseEvent decodes a head message by its tag. Unknown tags yield an
// UnknownEvent and no error; malformed payloads yield an error.
func ParseEvent(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode event envelope: %w", err)
	}

	var (
		event Event
		err   error
	)
	switch env.Tag {
	case "":
		return nil, ErrMissingTag
	case TagGreetings:
		var e Greetings
		err = json.Unmarshal(data, &e)
		event = e
	case TagSnapshotConfirmed:
		var e SnapshotConfirmed
		err = json.Unmarshal(data, &e)
		event = e
	case TagHeadIsOpen:
		var e HeadIsOpen
		err = json.Unmarshal(data, &e)
		event = e
	case TagTxValid:
		var e TxValid
		err = json.Unmarshal(data, &e)
		event = e
	case TagTxInvalid:
		var e TxInvalid
		err = json.Unmarshal(data, &e)
		event = e
	default:
		return UnknownEvent{Name: env.Tag}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s event: %w", env.Tag, err)
	}
	return event, nil
}
