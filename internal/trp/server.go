// Package trp serves the Transaction Resolve Protocol over JSON-RPC 2.0.
package trp

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
	"github.com/goodnatureofminers/hydra-trp/pkg/workerpool"
)

type handlerFunc func(ctx context.Context, params jsoniter.RawMessage) (interface{}, error)

type request struct {
	JSONRPC string              `json:"jsonrpc"`
	ID      jsoniter.RawMessage `json:"id"`
	Method  string              `json:"method"`
	Params  jsoniter.RawMessage `json:"params"`
}

type response struct {
	JSONRPC string              `json:"jsonrpc"`
	ID      jsoniter.RawMessage `json:"id"`
	Result  interface{}         `json:"result,omitempty"`
	Error   *Error              `json:"error,omitempty"`
}

var nullID = jsoniter.RawMessage("null")

// Server dispatches JSON-RPC requests to the TRP methods.
type Server struct {
	compiler          tx3.Compiler
	ledger            tx3.Ledger
	submitter         Submitter
	healthChecker     HealthChecker
	metrics           RequestMetrics
	logger            *zap.Logger
	maxOptimizeRounds int

	methods map[string]handlerFunc
}

// NewServer builds the handler. compiler may be nil, in which case
// trp.resolve reports the compiler as unavailable.
func NewServer(
	compiler tx3.Compiler,
	ledger tx3.Ledger,
	submitter Submitter,
	healthChecker HealthChecker,
	metrics RequestMetrics,
	maxOptimizeRounds int,
	logger *zap.Logger,
) (*Server, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if submitter == nil {
		return nil, errors.New("submitter is required")
	}
	if healthChecker == nil {
		return nil, errors.New("health checker is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxOptimizeRounds <= 0 {
		maxOptimizeRounds = DefaultMaxOptimizeRounds
	}

	s := &Server{
		compiler:          compiler,
		ledger:            ledger,
		submitter:         submitter,
		healthChecker:     healthChecker,
		metrics:           metrics,
		logger:            logger,
		maxOptimizeRounds: maxOptimizeRounds,
	}
	s.methods = map[string]handlerFunc{
		MethodResolve: s.resolve,
		MethodSubmit:  s.submit,
		MethodHealth:  s.health,
	}
	return s, nil
}

// ServeHTTP handles single and batch JSON-RPC requests posted as JSON. Batch
// entries run concurrently; responses keep the request order.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		s.write(w, response{JSONRPC: jsonrpcVersion, ID: nullID, Error: parseError("failed to read request body", err.Error())})
		return
	}

	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		s.write(w, response{JSONRPC: jsonrpcVersion, ID: nullID, Error: parseError("parse error", nil)})
		return
	}

	if body[0] != '[' {
		resp, ok := s.handle(r.Context(), body)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.write(w, resp)
		return
	}

	var batch []jsoniter.RawMessage
	if err := json.Unmarshal(body, &batch); err != nil || len(batch) == 0 {
		s.write(w, response{JSONRPC: jsonrpcVersion, ID: nullID, Error: invalidRequest("empty batch")})
		return
	}

	slots := make([]response, len(batch))
	answered := make([]bool, len(batch))
	indexes := make([]int, len(batch))
	for i := range indexes {
		indexes[i] = i
	}
	err = workerpool.Process(r.Context(), batchWorkers, indexes, func(ctx context.Context, i int) error {
		slots[i], answered[i] = s.handle(ctx, batch[i])
		return nil
	})
	if err != nil {
		s.logger.Debug("batch abandoned", zap.Int("size", len(batch)), zap.Error(err))
		return
	}

	responses := make([]response, 0, len(batch))
	for i, resp := range slots {
		if answered[i] {
			responses = append(responses, resp)
		}
	}
	if len(responses) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.write(w, responses)
}

// handle runs one request. It reports false for notifications, which get no response.
func (s *Server) handle(ctx context.Context, raw jsoniter.RawMessage) (response, bool) {
	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		return response{JSONRPC: jsonrpcVersion, ID: nullID, Error: invalidRequest("invalid request")}, true
	}

	id := req.ID
	notification := len(id) == 0
	if notification {
		id = nullID
	}
	if req.JSONRPC != jsonrpcVersion || req.Method == "" {
		return response{JSONRPC: jsonrpcVersion, ID: id, Error: invalidRequest("invalid request")}, true
	}

	started := time.Now()
	result, rpcErr := s.call(ctx, req)

	label := req.Method
	if _, ok := s.methods[label]; !ok {
		label = unknownMethod
	}
	var observed error
	if rpcErr != nil {
		observed = rpcErr
	}
	s.metrics.ObserveRequest(label, observed, started)

	if notification {
		return response{}, false
	}
	if rpcErr != nil {
		return response{JSONRPC: jsonrpcVersion, ID: id, Error: rpcErr}, true
	}
	return response{JSONRPC: jsonrpcVersion, ID: id, Result: result}, true
}

func (s *Server) call(ctx context.Context, req request) (interface{}, *Error) {
	method, ok := s.methods[req.Method]
	if !ok {
		return nil, methodNotFound(req.Method)
	}

	result, err := method(ctx, req.Params)
	if err == nil {
		return result, nil
	}

	rpcErr := toError(err)
	logger := s.logger.With(zap.String("method", req.Method), zap.Int("code", int(rpcErr.Code)))
	if rpcErr.Code == btcjson.ErrRPCInternal.Code {
		logger.Error("request failed", zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.Error(err))
	}
	return nil, rpcErr
}

func (s *Server) write(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}
