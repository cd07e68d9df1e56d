package cardano

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

const txHashSize = 32

// ParseUtxoRef parses a "<64 hex>#<index>" key.
func ParseUtxoRef(id model.TxID) (tx3.UtxoRef, error) {
	hash, index, ok := strings.Cut(id, "#")
	if !ok {
		return tx3.UtxoRef{}, fmt.Errorf("%w: %q has no index", ErrInvalidRef, id)
	}
	txID, err := hex.DecodeString(hash)
	if err != nil || len(txID) != txHashSize {
		return tx3.UtxoRef{}, fmt.Errorf("%w: %q has a malformed hash", ErrInvalidRef, id)
	}
	idx, err := strconv.ParseUint(index, 10, 32)
	if err != nil {
		return tx3.UtxoRef{}, fmt.Errorf("%w: %q: %v", ErrInvalidRef, id, err)
	}
	return tx3.UtxoRef{TxID: txID, Index: uint32(idx)}, nil
}

// FormatUtxoRef renders a ref as a UTXO set key.
func FormatUtxoRef(ref tx3.UtxoRef) model.TxID {
	return ref.String()
}
