// Package cardano converts head wire data into resolver inputs.
package cardano

import "errors"

var (
	// ErrDatumHashOnly is returned when a UTXO carries a datum hash without the datum itself.
	ErrDatumHashOnly = errors.New("datum hash without datum value")
	// ErrIntegerOverflow is returned for datum integers outside the signed 128-bit range.
	ErrIntegerOverflow = errors.New("datum integer exceeds 128 bits")
	// ErrInvalidTx is returned for bytes that are not a well-formed transaction.
	ErrInvalidTx = errors.New("invalid transaction")

	ErrInvalidRef      = errors.New("invalid utxo reference")
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidValue    = errors.New("invalid value")
	ErrUnsupportedData = errors.New("unsupported plutus data")
)
