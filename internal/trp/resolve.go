package trp

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

type irEnvelope struct {
	Version  string   `json:"version"`
	Bytecode string   `json:"bytecode"`
	Encoding Encoding `json:"encoding"`
}

type resolveParams struct {
	Tir  *irEnvelope         `json:"tir"`
	Args jsoniter.RawMessage `json:"args"`
}

type bytesPayload struct {
	Content  *string  `json:"content"`
	Encoding Encoding `json:"encoding"`
}

type resolveResult struct {
	Tx string `json:"tx"`
}

func (s *Server) resolve(ctx context.Context, raw jsoniter.RawMessage) (interface{}, error) {
	tx, err := decodeResolveParams(raw)
	if err != nil {
		return nil, err
	}
	if s.compiler == nil {
		return nil, tx3.ErrCompilerUnavailable
	}

	cbor, err := s.compiler.Resolve(ctx, tx, s.ledger, s.maxOptimizeRounds)
	if err != nil {
		return nil, resolveError(err)
	}

	return resolveResult{Tx: hex.EncodeToString(cbor)}, nil
}

// decodeResolveParams validates the IR envelope and binds every argument.
func decodeResolveParams(raw jsoniter.RawMessage) (tx3.ProtoTx, error) {
	var params resolveParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return tx3.ProtoTx{}, invalidParams("invalid params", err.Error())
	}
	if params.Tir == nil {
		return tx3.ProtoTx{}, invalidParams("invalid params", "missing field tir")
	}
	if params.Tir.Version != tx3.IRVersion {
		return tx3.ProtoTx{}, invalidParams(
			fmt.Sprintf("unsupported IR version, expected %s", tx3.IRVersion),
			params.Tir.Version,
		)
	}
	if !params.Tir.Encoding.valid() {
		return tx3.ProtoTx{}, invalidParams("invalid params", fmt.Sprintf("unknown IR encoding %q", params.Tir.Encoding))
	}

	ir, err := params.Tir.Encoding.decode(params.Tir.Bytecode)
	if err != nil {
		return tx3.ProtoTx{}, invalidParams(
			fmt.Sprintf("failed to decode IR using %s encoding", params.Tir.Encoding),
			err.Error(),
		)
	}
	if len(ir) == 0 {
		return tx3.ProtoTx{}, invalidParams("failed to decode IR bytes", "empty bytecode")
	}

	tx := tx3.NewProtoTx(ir)
	if err := bindArgs(&tx, params.Args); err != nil {
		return tx3.ProtoTx{}, err
	}
	return tx, nil
}

func bindArgs(tx *tx3.ProtoTx, raw jsoniter.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return invalidParams("failed to parse arguments as object", nil)
	}

	var args map[string]jsoniter.RawMessage
	if err := json.Unmarshal(trimmed, &args); err != nil {
		return invalidParams("failed to parse arguments as object", err.Error())
	}

	for key, value := range args {
		arg, err := decodeArg(key, bytes.TrimSpace(value))
		if err != nil {
			return err
		}
		tx.SetArg(key, arg)
	}
	return nil
}

func decodeArg(key string, value []byte) (tx3.ArgValue, error) {
	if len(value) == 0 {
		return nil, argError("invalid argument", key, value)
	}

	switch c := value[0]; {
	case c == 't' || c == 'f':
		var b bool
		if err := json.Unmarshal(value, &b); err != nil {
			return nil, argError("invalid argument", key, value)
		}
		return tx3.BoolArg(b), nil

	case c == '-' || (c >= '0' && c <= '9'):
		i, err := strconv.ParseInt(string(value), 10, 64)
		if err != nil {
			return nil, argError("argument cannot be cast as int64", key, value)
		}
		return tx3.IntArg(i), nil

	case c == '"':
		var str string
		if err := json.Unmarshal(value, &str); err != nil {
			return nil, argError("invalid argument", key, value)
		}
		if hexStr, ok := strings.CutPrefix(str, "0x"); ok {
			b, err := hex.DecodeString(hexStr)
			if err != nil {
				return nil, argError("invalid hex string", key, value)
			}
			return tx3.BytesArg(b), nil
		}
		return tx3.StringArg(str), nil

	case c == '{':
		var payload bytesPayload
		if err := json.Unmarshal(value, &payload); err != nil || payload.Content == nil || !payload.Encoding.valid() {
			return nil, argError("invalid object type", key, value)
		}
		b, err := payload.Encoding.decode(*payload.Content)
		if err != nil {
			return nil, argError(fmt.Sprintf("invalid %s content", payload.Encoding), key, value)
		}
		return tx3.BytesArg(b), nil

	default:
		return nil, argError("invalid argument", key, value)
	}
}
