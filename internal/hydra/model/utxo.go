// Package model defines the wire models exchanged with a Hydra head.
package model

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TxID is a UTXO key of the form "<64 hex chars>#<index>". It is parsed lazily.
type TxID = string

// LovelaceUnit is the value map key holding the native amount.
const LovelaceUnit = "lovelace"

// HeadStatus is reported by the head and accepted verbatim.
type HeadStatus string

var (
	HeadIdle           HeadStatus = "Idle"
	HeadInitializing   HeadStatus = "Initializing"
	HeadOpen           HeadStatus = "Open"
	HeadClosed         HeadStatus = "Closed"
	HeadFanoutPossible HeadStatus = "FanoutPossible"
	HeadFinal          HeadStatus = "Final"
)

// Utxo is an unspent output as reported in head snapshots.
type Utxo struct {
	// Address is bech32 encoded.
	Address string `json:"address"`
	// Datum is hex-encoded CBOR.
	Datum     *string `json:"datum,omitempty"`
	DatumHash *string `json:"datumhash,omitempty"`
	// InlineDatum uses the cardano-node detailed JSON schema.
	InlineDatum     jsoniter.RawMessage `json:"inlineDatum,omitempty"`
	InlineDatumHash *string             `json:"inlineDatumhash,omitempty"`
	// InlineDatumRaw is hex-encoded CBOR.
	InlineDatumRaw  *string          `json:"inlineDatumRaw,omitempty"`
	ReferenceScript *ReferenceScript `json:"referenceScript,omitempty"`
	Value           Value            `json:"value"`
}

// HasInlineDatum reports whether a structured inline datum is present.
func (u Utxo) HasInlineDatum() bool {
	trimmed := bytes.TrimSpace(u.InlineDatum)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// ReferenceScript is carried through but ignored for resolution.
type ReferenceScript struct {
	CBORHex     string `json:"cborHex"`
	Description string `json:"description"`
	// Type is one of SimpleScript, PlutusScriptV1, PlutusScriptV2, PlutusScriptV3.
	Type string `json:"type"`
}

// Value maps a unit key to either a lovelace amount or a policy asset map.
type Value map[string]AssetValue

// AssetValue holds either the lovelace amount or the assets of one policy.
type AssetValue struct {
	Lovelace uint64
	Assets   map[string]uint64
}

// IsLovelace reports whether the entry is a plain amount.
func (v AssetValue) IsLovelace() bool {
	return v.Assets == nil
}

// UnmarshalJSON accepts a number or an object of asset name to quantity.
func (v *AssetValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty asset value")
	}
	if trimmed[0] == '{' {
		assets := make(map[string]uint64)
		if err := json.Unmarshal(trimmed, &assets); err != nil {
			return fmt.Errorf("decode policy assets: %w", err)
		}
		*v = AssetValue{Assets: assets}
		return nil
	}
	var amount uint64
	if err := json.Unmarshal(trimmed, &amount); err != nil {
		return fmt.Errorf("decode lovelace amount: %w", err)
	}
	*v = AssetValue{Lovelace: amount}
	return nil
}

// MarshalJSON mirrors UnmarshalJSON.
func (v AssetValue) MarshalJSON() ([]byte, error) {
	if v.IsLovelace() {
		return json.Marshal(v.Lovelace)
	}
	return json.Marshal(v.Assets)
}

// Coin returns the lovelace amount, zero when absent.
func (v Value) Coin() uint64 {
	entry, ok := v[LovelaceUnit]
	if !ok || !entry.IsLovelace() {
		return 0
	}
	return entry.Lovelace
}

// AssetsByPolicy returns the assets held under a policy id.
func (v Value) AssetsByPolicy(policyHex string) map[string]uint64 {
	entry, ok := v[policyHex]
	if !ok || entry.IsLovelace() {
		return map[string]uint64{}
	}
	return entry.Assets
}

// UtxoEntry pairs a UTXO with its key.
type UtxoEntry struct {
	ID   TxID
	Utxo Utxo
}
