package cardano

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
	"github.com/goodnatureofminers/hydra-trp/pkg/safe"
)

// CBOR major types used by plutus data.
const (
	majorUnsigned = 0
	majorNegative = 1
	majorBytes    = 2
	majorArray    = 4
	majorMap      = 5
	majorTag      = 6
)

// Constructor tag ranges of plutus data.
const (
	tagConstrGeneral = 102
	tagConstrSmall   = 121 // constructors 0..6
	tagConstrLarge   = 1280
	tagBignumPos     = 2
	tagBignumNeg     = 3

	smallConstrCount = 7
	largeConstrLast  = 127
)

const (
	cborBreak      = 0xff
	bytesChunkSize = 64
)

// DecodePlutusData parses CBOR encoded plutus data into an expression tree.
func DecodePlutusData(data []byte) (tx3.Expression, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnsupportedData)
	}

	switch major := data[0] >> 5; major {
	case majorUnsigned, majorNegative:
		return decodeInt(data)
	case majorBytes:
		var b []byte
		if err := cbor.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("decode bytes: %w", err)
		}
		return tx3.Bytes(b), nil
	case majorArray:
		items, err := decodeList(data)
		if err != nil {
			return nil, err
		}
		return tx3.List(items), nil
	case majorMap:
		return decodeMap(data)
	case majorTag:
		return decodeTagged(data)
	default:
		return nil, fmt.Errorf("%w: major type %d", ErrUnsupportedData, major)
	}
}

func decodeInt(data []byte) (tx3.Expression, error) {
	n := new(big.Int)
	if err := cbor.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("decode integer: %w", err)
	}
	if err := safe.Int128(n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIntegerOverflow, err)
	}
	return tx3.Int{Value: n}, nil
}

func decodeList(data []byte) ([]tx3.Expression, error) {
	var raw []cbor.RawMessage
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	items := make([]tx3.Expression, 0, len(raw))
	for i, item := range raw {
		expr, err := DecodePlutusData(item)
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		items = append(items, expr)
	}
	return items, nil
}

// decodeMap walks the entries one by one so that key order is preserved.
func decodeMap(data []byte) (tx3.Expression, error) {
	count, indefinite, rest, err := readHead(data)
	if err != nil {
		return nil, err
	}

	out := tx3.Map{}
	for i := uint64(0); indefinite || i < count; i++ {
		if indefinite {
			if len(rest) == 0 {
				return nil, fmt.Errorf("%w: unterminated map", ErrUnsupportedData)
			}
			if rest[0] == cborBreak {
				rest = rest[1:]
				break
			}
		}

		var key, value cbor.RawMessage
		if rest, err = cbor.UnmarshalFirst(rest, &key); err != nil {
			return nil, fmt.Errorf("decode map key %d: %w", i, err)
		}
		if rest, err = cbor.UnmarshalFirst(rest, &value); err != nil {
			return nil, fmt.Errorf("decode map value %d: %w", i, err)
		}

		k, err := DecodePlutusData(key)
		if err != nil {
			return nil, fmt.Errorf("map key %d: %w", i, err)
		}
		v, err := DecodePlutusData(value)
		if err != nil {
			return nil, fmt.Errorf("map value %d: %w", i, err)
		}
		out = append(out, tx3.Pair{Key: k, Value: v})
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after map", ErrUnsupportedData, len(rest))
	}
	return out, nil
}

func decodeTagged(data []byte) (tx3.Expression, error) {
	var tag cbor.RawTag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("decode tag: %w", err)
	}

	switch {
	case tag.Number == tagBignumPos || tag.Number == tagBignumNeg:
		return decodeInt(data)
	case tag.Number >= tagConstrSmall && tag.Number < tagConstrSmall+smallConstrCount:
		return decodeConstr(tag.Number-tagConstrSmall, tag.Content)
	case tag.Number >= tagConstrLarge && tag.Number <= tagConstrLarge+largeConstrLast-smallConstrCount:
		return decodeConstr(tag.Number-tagConstrLarge+smallConstrCount, tag.Content)
	case tag.Number == tagConstrGeneral:
		var general struct {
			_           struct{} `cbor:",toarray"`
			Constructor uint64
			Fields      cbor.RawMessage
		}
		if err := cbor.Unmarshal(tag.Content, &general); err != nil {
			return nil, fmt.Errorf("decode general constructor: %w", err)
		}
		return decodeConstr(general.Constructor, general.Fields)
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnsupportedData, tag.Number)
	}
}

func decodeConstr(constructor uint64, fields []byte) (tx3.Expression, error) {
	if len(fields) == 0 || fields[0]>>5 != majorArray {
		return nil, fmt.Errorf("%w: constructor %d fields are not a list", ErrUnsupportedData, constructor)
	}
	items, err := decodeList(fields)
	if err != nil {
		return nil, fmt.Errorf("constructor %d: %w", constructor, err)
	}
	return tx3.Struct{Constructor: constructor, Fields: items}, nil
}

// readHead returns the length argument of a map or array head and the bytes after it.
func readHead(data []byte) (uint64, bool, []byte, error) {
	info := data[0] & 0x1f
	rest := data[1:]

	switch {
	case info < 24:
		return uint64(info), false, rest, nil
	case info == 31:
		return 0, true, rest, nil
	case info > 27:
		return 0, false, nil, fmt.Errorf("%w: additional info %d", ErrUnsupportedData, info)
	}

	size := 1 << (info - 24)
	if len(rest) < size {
		return 0, false, nil, fmt.Errorf("%w: truncated head", ErrUnsupportedData)
	}
	var n uint64
	switch size {
	case 1:
		n = uint64(rest[0])
	case 2:
		n = uint64(binary.BigEndian.Uint16(rest))
	case 4:
		n = uint64(binary.BigEndian.Uint32(rest))
	case 8:
		n = binary.BigEndian.Uint64(rest)
	}
	return n, false, rest[size:], nil
}

// EncodePlutusData serializes an expression tree as CBOR plutus data.
func EncodePlutusData(expr tx3.Expression) ([]byte, error) {
	switch e := expr.(type) {
	case tx3.Int:
		if err := safe.Int128(e.Value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIntegerOverflow, err)
		}
		return cbor.Marshal(e.Value)
	case tx3.Bytes:
		return encodeBytes(e)
	case tx3.List:
		return encodeList(e)
	case tx3.Struct:
		return encodeConstr(e)
	case tx3.Map:
		return encodeMap(e)
	default:
		return nil, fmt.Errorf("%w: expression %T", ErrUnsupportedData, expr)
	}
}

// encodeBytes splits strings longer than 64 bytes into an indefinite chunk sequence.
func encodeBytes(b []byte) ([]byte, error) {
	if len(b) <= bytesChunkSize {
		return cbor.Marshal(b)
	}
	out := []byte{majorBytes<<5 | 31}
	for start := 0; start < len(b); start += bytesChunkSize {
		end := min(start+bytesChunkSize, len(b))
		chunk, err := cbor.Marshal(b[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return append(out, cborBreak), nil
}

func encodeList(items []tx3.Expression) ([]byte, error) {
	raw := make([]cbor.RawMessage, 0, len(items))
	for i, item := range items {
		encoded, err := EncodePlutusData(item)
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		raw = append(raw, encoded)
	}
	return cbor.Marshal(raw)
}

func encodeConstr(s tx3.Struct) ([]byte, error) {
	fields, err := encodeList(s.Fields)
	if err != nil {
		return nil, fmt.Errorf("constructor %d: %w", s.Constructor, err)
	}

	switch {
	case s.Constructor < smallConstrCount:
		return cbor.Marshal(cbor.Tag{Number: tagConstrSmall + s.Constructor, Content: cbor.RawMessage(fields)})
	case s.Constructor <= largeConstrLast:
		return cbor.Marshal(cbor.Tag{Number: tagConstrLarge + s.Constructor - smallConstrCount, Content: cbor.RawMessage(fields)})
	default:
		return cbor.Marshal(cbor.Tag{
			Number:  tagConstrGeneral,
			Content: []interface{}{s.Constructor, cbor.RawMessage(fields)},
		})
	}
}

func encodeMap(m tx3.Map) ([]byte, error) {
	out := appendHead(nil, majorMap, uint64(len(m)))
	for i, pair := range m {
		key, err := EncodePlutusData(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("map key %d: %w", i, err)
		}
		value, err := EncodePlutusData(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("map value %d: %w", i, err)
		}
		out = append(out, key...)
		out = append(out, value...)
	}
	return out, nil
}

func appendHead(dst []byte, major byte, n uint64) []byte {
	lead := major << 5
	switch {
	case n < 24:
		return append(dst, lead|byte(n))
	case n <= 0xff:
		return append(dst, lead|24, byte(n))
	case n <= 0xffff:
		return binary.BigEndian.AppendUint16(append(dst, lead|25), uint16(n))
	case n <= 0xffffffff:
		return binary.BigEndian.AppendUint32(append(dst, lead|26), uint32(n))
	default:
		return binary.BigEndian.AppendUint64(append(dst, lead|27), n)
	}
}
