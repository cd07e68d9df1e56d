package trp

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/goodnatureofminers/hydra-trp/internal/cardano"
	"github.com/goodnatureofminers/hydra-trp/internal/hydra"
)

type submitTx struct {
	Encoding Encoding `json:"encoding"`
	Payload  string   `json:"payload"`
}

type submitParams struct {
	Tx      *submitTx `json:"tx"`
	Confirm bool      `json:"confirm"`
}

type submitResult struct {
	Hash string `json:"hash"`
}

func (s *Server) submit(ctx context.Context, raw jsoniter.RawMessage) (interface{}, error) {
	var params submitParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, invalidParams("invalid params", err.Error())
	}
	if params.Tx == nil {
		return nil, invalidParams("invalid params", "missing field tx")
	}
	if !params.Tx.Encoding.valid() {
		return nil, invalidParams("invalid params", fmt.Sprintf("unknown tx encoding %q", params.Tx.Encoding))
	}

	tx, err := params.Tx.Encoding.decode(params.Tx.Payload)
	if err != nil {
		return nil, parseError(fmt.Sprintf("invalid tx %s encoding", params.Tx.Encoding), err.Error())
	}

	hash, err := s.submitter.Submit(ctx, tx, params.Confirm)
	switch {
	case err == nil:
		return submitResult{Hash: hash}, nil
	case errors.Is(err, cardano.ErrInvalidTx):
		return nil, invalidParams("failed to decode tx", err.Error())
	case errors.Is(err, hydra.ErrTxRejected), errors.Is(err, context.Canceled):
		return nil, toError(err)
	case errors.Is(err, hydra.ErrConfirmationTimeout):
		return nil, newError(CodeConfirmationTimeout, "transaction confirmation timed out", map[string]string{
			"hash": hash,
		})
	default:
		return nil, newError(CodeSubmitFailed, "failed sending tx to hydra", err.Error())
	}
}

func (s *Server) health(ctx context.Context, _ jsoniter.RawMessage) (interface{}, error) {
	return s.healthChecker.CheckHealth(ctx), nil
}
