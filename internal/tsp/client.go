// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package tsp implements a typed HTTP client for the Trace Server Protocol.
// It covers the trace, experiment, output, tree, XY, virtual-table and
// configuration endpoint families, decoding every response body into a typed
// model. Transport failures and non-2xx statuses are mapped to the error
// kinds the command layer reports on.
package tsp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tracectl/cli/internal/errs"
)

// Client performs requests against one trace server.
// It is constructed once per invocation and passed explicitly to every
// component that needs the network.
type Client struct {
	// baseURL is the API root, e.g. "http://127.0.0.1:8080/tsp/api"
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// NewClient creates a client for the trace server at ip:port.
// It configures a 10-second timeout for all requests.
func NewClient(ip string, port int) *Client {
	return &Client{
		baseURL: "http://" + net.JoinHostPort(ip, strconv.Itoa(port)) + "/tsp/api",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// BaseURL returns the API root this client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// parameters wraps a payload map the way every TSP POST/PUT body expects.
type parameters struct {
	Parameters map[string]any `json:"parameters"`
}

// Body builds the standard request body around an assembled parameter map.
// A nil map marshals as an empty object, which the server accepts for
// operations that take no parameters.
func Body(m map[string]any) any {
	if m == nil {
		m = map[string]any{}
	}
	return parameters{Parameters: m}
}

// do performs one request and decodes the response into out when non-nil.
// Connectivity failures come back as TransportError, non-2xx statuses as
// ProtocolFailure carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(errs.TransportError, "cannot reach trace server at "+c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		msg := strings.TrimSpace(string(b))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return errs.New(errs.ProtocolFailure,
			fmt.Sprintf("%s %s failed: %d %s", method, path, resp.StatusCode, msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(errs.ProtocolFailure, "decoding response from "+path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}
