package tx3

import (
	"encoding/hex"
	"math/big"
)

// AssetClass identifies an asset unit. The zero value is the native (lovelace) unit.
type AssetClass struct {
	Policy string
	Name   string
}

// Naked reports whether the class is the native unit.
func (c AssetClass) Naked() bool {
	return c.Policy == ""
}

// NewAssetClass builds a class from raw policy and asset name bytes.
func NewAssetClass(policy, name []byte) AssetClass {
	if len(policy) == 0 {
		return AssetClass{}
	}
	return AssetClass{Policy: hex.EncodeToString(policy), Name: hex.EncodeToString(name)}
}

// CanonicalAssets is a normalized bag of asset amounts keyed by class.
type CanonicalAssets map[AssetClass]*big.Int

// EmptyAssets returns the identity element for Add.
func EmptyAssets() CanonicalAssets {
	return CanonicalAssets{}
}

// NakedAmount returns assets holding only the native unit.
func NakedAmount(amount *big.Int) CanonicalAssets {
	return CanonicalAssets{AssetClass{}: new(big.Int).Set(amount)}
}

// DefinedAsset returns assets holding a single policy/name unit.
func DefinedAsset(policy, name []byte, amount *big.Int) CanonicalAssets {
	return CanonicalAssets{NewAssetClass(policy, name): new(big.Int).Set(amount)}
}

// Add returns the sum of both bags. Neither operand is modified.
func (c CanonicalAssets) Add(other CanonicalAssets) CanonicalAssets {
	out := make(CanonicalAssets, len(c)+len(other))
	for class, amount := range c {
		out[class] = new(big.Int).Set(amount)
	}
	for class, amount := range other {
		if cur, ok := out[class]; ok {
			cur.Add(cur, amount)
			continue
		}
		out[class] = new(big.Int).Set(amount)
	}
	return out
}

// Amount returns the quantity held for a class, zero when absent.
func (c CanonicalAssets) Amount(class AssetClass) *big.Int {
	if amount, ok := c[class]; ok {
		return new(big.Int).Set(amount)
	}
	return new(big.Int)
}
