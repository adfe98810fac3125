// Package jsonrpc reaches wallet providers over JSON-RPC 2.0 on HTTP.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tipcloud/internal/wallet"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// CodeUserRejected is the error code wallets use when the user declines a prompt.
const CodeUserRejected = 4001

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Client implements wallet.Requester against one provider endpoint.
type Client struct {
	name     string
	endpoint string
	http     HTTPClient
	limiter  *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c HTTPClient) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables the limit.
func WithRateLimit(perSecond float64) Option {
	return func(cl *Client) {
		if perSecond <= 0 {
			cl.limiter = nil
			return
		}
		cl.limiter = rate.NewLimiter(rate.Limit(perSecond), 5)
	}
}

// NewClient creates a client for the provider named name at endpoint.
// The default HTTP client has no timeout: wallet prompts wait on a human,
// so requests are bounded by the caller's context only.
func NewClient(name, endpoint string, opts ...Option) *Client {
	c := &Client{
		name:     name,
		endpoint: endpoint,
		http:     &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request sends method with params and returns the raw result.
func (c *Client) Request(ctx context.Context, method string, params any) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      uuid.New().String(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &wallet.ProviderError{Provider: c.name, Message: "wallet unreachable", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &wallet.ProviderError{
			Provider: c.name,
			Message:  fmt.Sprintf("wallet responded with HTTP %d", resp.StatusCode),
		}
	}

	var rpcResp response
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, &wallet.ProviderError{Provider: c.name, Message: "malformed JSON-RPC response", Err: err}
	}
	if rpcResp.Error != nil {
		if rpcResp.Error.Code == CodeUserRejected {
			return nil, wallet.ErrUserCancelled
		}
		return nil, &wallet.ProviderError{Provider: c.name, Message: rpcResp.Error.Message}
	}
	if len(rpcResp.Result) == 0 {
		return nil, &wallet.ProviderError{Provider: c.name, Message: "empty JSON-RPC result"}
	}

	return rpcResp.Result, nil
}

// Ping checks that the provider endpoint answers at all. It is a liveness
// check on the transport, not a wallet call, and never prompts.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodOptions, c.endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Name returns the provider name.
func (c *Client) Name() string {
	return "wallet:" + c.name
}

// Optional marks wallet providers as non-critical for health reporting.
func (c *Client) Optional() bool {
	return true
}
