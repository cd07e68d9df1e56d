package trp

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/hydra-trp/internal/cardano"
	"github.com/goodnatureofminers/hydra-trp/internal/hydra"
	"github.com/goodnatureofminers/hydra-trp/internal/selector"
	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

// Application error codes, outside the range reserved by JSON-RPC 2.0.
const (
	CodeResolveFailed       btcjson.RPCErrorCode = -32000
	CodeQueryTooBroad       btcjson.RPCErrorCode = -32001
	CodeUtxoNotFound        btcjson.RPCErrorCode = -32002
	CodeTxRejected          btcjson.RPCErrorCode = -32003
	CodeConfirmationTimeout btcjson.RPCErrorCode = -32004
	CodeCompilerUnavailable btcjson.RPCErrorCode = -32005
	CodeSubmitFailed        btcjson.RPCErrorCode = -32006
)

// Error is a JSON-RPC error object.
type Error struct {
	Code    btcjson.RPCErrorCode `json:"code"`
	Message string               `json:"message"`
	Data    interface{}          `json:"data,omitempty"`
}

func (e *Error) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("%d: %s (%v)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func newError(code btcjson.RPCErrorCode, message string, data interface{}) *Error {
	return &Error{Code: code, Message: message, Data: data}
}

func parseError(message string, data interface{}) *Error {
	return newError(btcjson.ErrRPCParse.Code, message, data)
}

func invalidRequest(message string) *Error {
	return newError(btcjson.ErrRPCInvalidRequest.Code, message, nil)
}

func methodNotFound(method string) *Error {
	return newError(btcjson.ErrRPCMethodNotFound.Code, "method not found", method)
}

func invalidParams(message string, data interface{}) *Error {
	return newError(btcjson.ErrRPCInvalidParams.Code, message, data)
}

func internalError(message string, data interface{}) *Error {
	return newError(btcjson.ErrRPCInternal.Code, message, data)
}

// argError carries the offending argument as structured detail.
func argError(message, key string, value []byte) *Error {
	return invalidParams(message, map[string]interface{}{
		"key":   key,
		"value": string(value),
	})
}

// toError maps domain errors onto stable error codes.
func toError(err error) *Error {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	switch {
	case errors.Is(err, tx3.ErrCompilerUnavailable):
		return newError(CodeCompilerUnavailable, "transaction compiler unavailable", nil)
	case errors.Is(err, selector.ErrQueryTooBroad):
		return newError(CodeQueryTooBroad, "input query too broad", err.Error())
	case errors.Is(err, selector.ErrUtxoNotFound):
		return newError(CodeUtxoNotFound, "utxo not found", err.Error())
	case errors.Is(err, cardano.ErrInvalidTx):
		return invalidParams("invalid tx", err.Error())
	case errors.Is(err, hydra.ErrTxRejected):
		var rejected *hydra.RejectedError
		if errors.As(err, &rejected) {
			return newError(CodeTxRejected, "transaction rejected", map[string]string{
				"hash":   rejected.TxID,
				"reason": rejected.Reason,
			})
		}
		return newError(CodeTxRejected, "transaction rejected", err.Error())
	case errors.Is(err, hydra.ErrConfirmationTimeout):
		return newError(CodeConfirmationTimeout, "transaction confirmation timed out", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return internalError("request canceled", err.Error())
	default:
		return internalError("internal error", err.Error())
	}
}

// resolveError reports compiler failures that carry no domain error as
// resolution failures rather than internal errors.
func resolveError(err error) *Error {
	mapped := toError(err)
	if mapped.Code == btcjson.ErrRPCInternal.Code {
		return newError(CodeResolveFailed, "failed to resolve transaction", err.Error())
	}
	return mapped
}
