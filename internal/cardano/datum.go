package cardano

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"

	jsoniter "github.com/json-iterator/go"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
	"github.com/goodnatureofminers/hydra-trp/pkg/safe"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeDatum returns the datum of a UTXO as an expression tree, or nil when
// the output has no datum. A structured inline datum wins over raw CBOR; an
// output that only carries a hash is an error.
func DecodeDatum(utxo model.Utxo) (tx3.Expression, error) {
	switch {
	case utxo.HasInlineDatum():
		expr, err := DecodeDatumJSON(utxo.InlineDatum)
		if err != nil {
			return nil, fmt.Errorf("inline datum: %w", err)
		}
		return expr, nil
	case utxo.InlineDatumRaw != nil:
		return decodeDatumHex(*utxo.InlineDatumRaw)
	case utxo.Datum != nil:
		return decodeDatumHex(*utxo.Datum)
	case utxo.DatumHash != nil || utxo.InlineDatumHash != nil:
		return nil, ErrDatumHashOnly
	default:
		return nil, nil
	}
}

func decodeDatumHex(raw string) (tx3.Expression, error) {
	data, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode datum hex: %w", err)
	}
	expr, err := DecodePlutusData(data)
	if err != nil {
		return nil, fmt.Errorf("decode datum cbor: %w", err)
	}
	return expr, nil
}

// DecodeDatumJSON parses the detailed JSON schema used by cardano-node:
// {"constructor","fields"}, {"int"}, {"bytes"}, {"list"} and {"map":[{"k","v"}]}.
func DecodeDatumJSON(raw []byte) (tx3.Expression, error) {
	var node map[string]jsoniter.RawMessage
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("decode datum json: %w", err)
	}

	if value, ok := node["int"]; ok {
		n, ok := new(big.Int).SetString(string(bytes.TrimSpace(value)), 10)
		if !ok {
			return nil, fmt.Errorf("%w: int %s", ErrUnsupportedData, value)
		}
		if err := safe.Int128(n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIntegerOverflow, err)
		}
		return tx3.Int{Value: n}, nil
	}

	if value, ok := node["bytes"]; ok {
		var encoded string
		if err := json.Unmarshal(value, &encoded); err != nil {
			return nil, fmt.Errorf("decode bytes field: %w", err)
		}
		b, err := hex.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("decode bytes hex: %w", err)
		}
		return tx3.Bytes(b), nil
	}

	if value, ok := node["list"]; ok {
		items, err := decodeJSONList(value)
		if err != nil {
			return nil, err
		}
		return tx3.List(items), nil
	}

	if value, ok := node["map"]; ok {
		var entries []struct {
			K jsoniter.RawMessage `json:"k"`
			V jsoniter.RawMessage `json:"v"`
		}
		if err := json.Unmarshal(value, &entries); err != nil {
			return nil, fmt.Errorf("decode map field: %w", err)
		}
		out := make(tx3.Map, 0, len(entries))
		for i, entry := range entries {
			k, err := DecodeDatumJSON(entry.K)
			if err != nil {
				return nil, fmt.Errorf("map key %d: %w", i, err)
			}
			v, err := DecodeDatumJSON(entry.V)
			if err != nil {
				return nil, fmt.Errorf("map value %d: %w", i, err)
			}
			out = append(out, tx3.Pair{Key: k, Value: v})
		}
		return out, nil
	}

	if value, ok := node["constructor"]; ok {
		var constructor uint64
		if err := json.Unmarshal(value, &constructor); err != nil {
			return nil, fmt.Errorf("decode constructor: %w", err)
		}
		fields, err := decodeJSONList(node["fields"])
		if err != nil {
			return nil, fmt.Errorf("constructor %d: %w", constructor, err)
		}
		return tx3.Struct{Constructor: constructor, Fields: fields}, nil
	}

	return nil, fmt.Errorf("%w: unrecognized datum json %s", ErrUnsupportedData, raw)
}

func decodeJSONList(raw jsoniter.RawMessage) ([]tx3.Expression, error) {
	var items []jsoniter.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
	}
	out := make([]tx3.Expression, 0, len(items))
	for i, item := range items {
		expr, err := DecodeDatumJSON(item)
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		out = append(out, expr)
	}
	return out, nil
}
