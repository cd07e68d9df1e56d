package cardano

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

const policyIDSize = 28

// DecodeAssets sums a wire value map into canonical asset totals. The
// "lovelace" key holds the native amount; every other key is a policy id.
func DecodeAssets(value model.Value) (tx3.CanonicalAssets, error) {
	total := tx3.EmptyAssets()

	for unit, entry := range value {
		if unit == model.LovelaceUnit {
			if !entry.IsLovelace() {
				return nil, fmt.Errorf("%w: lovelace entry is not an amount", ErrInvalidValue)
			}
			total = total.Add(tx3.NakedAmount(new(big.Int).SetUint64(entry.Lovelace)))
			continue
		}

		policy, err := hex.DecodeString(unit)
		if err != nil || len(policy) != policyIDSize {
			return nil, fmt.Errorf("%w: policy id %q", ErrInvalidValue, unit)
		}
		if entry.IsLovelace() {
			return nil, fmt.Errorf("%w: policy %s is not an asset map", ErrInvalidValue, unit)
		}

		for name, quantity := range entry.Assets {
			assetName, err := hex.DecodeString(name)
			if err != nil {
				return nil, fmt.Errorf("%w: asset name %q: %v", ErrInvalidValue, name, err)
			}
			total = total.Add(tx3.DefinedAsset(policy, assetName, new(big.Int).SetUint64(quantity)))
		}
	}

	return total, nil
}
