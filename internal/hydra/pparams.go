package hydra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/hydra-trp/internal/hydra/model"
	"github.com/goodnatureofminers/hydra-trp/internal/tx3"
)

// ParamsClient reads protocol parameters from the head HTTP API. Nothing is
// cached: every call issues a request.
type ParamsClient struct {
	client  *http.Client
	url     string
	network uint8
	metrics ProtocolParamsMetrics
}

// NewParamsClient builds a ParamsClient for the head base URL.
func NewParamsClient(baseURL string, network uint8, client *http.Client, metrics ProtocolParamsMetrics) (*ParamsClient, error) {
	if baseURL == "" {
		return nil, errors.New("head http url is required")
	}
	if metrics == nil {
		return nil, errors.New("protocol params metrics is required")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ParamsClient{
		client:  client,
		url:     strings.TrimRight(baseURL, "/") + protocolParametersPath,
		network: network,
		metrics: metrics,
	}, nil
}

// ProtocolParams fetches and converts the current protocol parameters.
func (c *ParamsClient) ProtocolParams(ctx context.Context) (_ tx3.PParams, err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveFetch(err, started)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return tx3.PParams{}, fmt.Errorf("build protocol parameters request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return tx3.PParams{}, fmt.Errorf("fetch protocol parameters: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxParamsBodySize))
	if err != nil {
		return tx3.PParams{}, fmt.Errorf("read protocol parameters: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return tx3.PParams{}, fmt.Errorf("fetch protocol parameters: unexpected status %d", resp.StatusCode)
	}

	params, err := model.DecodeProtocolParameters(body)
	if err != nil {
		return tx3.PParams{}, err
	}
	return params.ToPParams(c.network)
}
