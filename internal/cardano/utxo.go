package cardano

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

// IntoUtxo converts a head UTXO entry into the form handed to the compiler.
func IntoUtxo(id model.TxID, utxo model.Utxo) (tx3.Utxo, error) {
	ref, err := ParseUtxoRef(id)
	if err != nil {
		return tx3.Utxo{}, err
	}
	address, err := DecodeAddress(utxo.Address)
	if err != nil {
		return tx3.Utxo{}, fmt.Errorf("utxo %s: %w", id, err)
	}
	datum, err := DecodeDatum(utxo)
	if err != nil {
		return tx3.Utxo{}, fmt.Errorf("utxo %s: %w", id, err)
	}
	assets, err := DecodeAssets(utxo.Value)
	if err != nil {
		return tx3.Utxo{}, fmt.Errorf("utxo %s: %w", id, err)
	}

	var script []byte
	if utxo.ReferenceScript != nil {
		if script, err = hex.DecodeString(utxo.ReferenceScript.CBORHex); err != nil {
			return tx3.Utxo{}, fmt.Errorf("utxo %s: decode reference script: %w", id, err)
		}
	}

	return tx3.Utxo{
		Ref:     ref,
		Address: address,
		Datum:   datum,
		Assets:  assets,
		Script:  script,
	}, nil
}
