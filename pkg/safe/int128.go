package safe

import (
	"fmt"
	"math/big"
)

var (
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// Int128 reports an error when v does not fit a signed 128-bit integer.
func Int128(v *big.Int) error {
	if v == nil {
		return fmt.Errorf("nil integer")
	}
	if v.Cmp(minInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return fmt.Errorf("value %s out of int128 range", v.String())
	}
	return nil
}
