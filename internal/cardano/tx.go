package cardano

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// Tx is the part of a decoded transaction the submitter needs.
type Tx struct {
	Hash [blake2b.Size256]byte
	Raw  []byte
}

// HashHex returns the transaction id in hex.
func (t Tx) HashHex() string {
	return hex.EncodeToString(t.Hash[:])
}

// DecodeTx checks the outer transaction structure and hashes its body. The
// id is the blake2b-256 digest of the body bytes exactly as encoded.
func DecodeTx(raw []byte) (Tx, error) {
	var items []cbor.RawMessage
	if err := cbor.Unmarshal(raw, &items); err != nil {
		return Tx{}, fmt.Errorf("%w: %v", ErrInvalidTx, err)
	}
	if len(items) != 3 && len(items) != 4 {
		return Tx{}, fmt.Errorf("%w: expected 3 or 4 elements, got %d", ErrInvalidTx, len(items))
	}

	body, witnesses := items[0], items[1]
	if len(body) == 0 || body[0]>>5 != majorMap {
		return Tx{}, fmt.Errorf("%w: body is not a map", ErrInvalidTx)
	}
	if len(witnesses) == 0 || witnesses[0]>>5 != majorMap {
		return Tx{}, fmt.Errorf("%w: witness set is not a map", ErrInvalidTx)
	}

	isValid := true
	if len(items) == 4 {
		if err := cbor.Unmarshal(items[2], &isValid); err != nil {
			return Tx{}, fmt.Errorf("%w: validity flag: %v", ErrInvalidTx, err)
		}
	}
	if !isValid {
		return Tx{}, fmt.Errorf("%w: transaction is flagged invalid", ErrInvalidTx)
	}

	return Tx{
		Hash: blake2b.Sum256(body),
		Raw:  raw,
	}, nil
}
