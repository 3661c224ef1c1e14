// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tsp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracectl/cli/internal/errs"
)

// testClient points a Client at an httptest server.
func testClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return NewClient(u.Hostname(), port)
}

func TestOpenTraceRequestShape(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		require.NoError(t, json.NewEncoder(w).Encode(Trace{UUID: "t-1", Name: "kernel"}))
	}))

	tr, err := c.OpenTrace(context.Background(), "kernel", "/traces/kernel")
	require.NoError(t, err)

	assert.Equal(t, "/tsp/api/traces", gotPath)
	assert.Equal(t, map[string]any{
		"parameters": map[string]any{"name": "kernel", "uri": "/traces/kernel"},
	}, gotBody)
	assert.Equal(t, "t-1", tr.UUID)
}

func TestTreeEndpointFamilies(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *Client) (*Envelope[Tree], error)
		wantPath string
	}{
		{
			name:     "data tree",
			call:     func(c *Client) (*Envelope[Tree], error) { return c.DataTree(context.Background(), "e1", "o1") },
			wantPath: "/tsp/api/experiments/e1/outputs/data/o1/tree",
		},
		{
			name:     "time graph tree",
			call:     func(c *Client) (*Envelope[Tree], error) { return c.TimeGraphTree(context.Background(), "e1", "o1") },
			wantPath: "/tsp/api/experiments/e1/outputs/timeGraph/o1/tree",
		},
		{
			name:     "xy tree",
			call:     func(c *Client) (*Envelope[Tree], error) { return c.XYTree(context.Background(), "e1", "o1") },
			wantPath: "/tsp/api/experiments/e1/outputs/XY/o1/tree",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				require.NoError(t, json.NewEncoder(w).Encode(Envelope[Tree]{
					Model:  &Tree{Entries: []TreeEntry{{ID: 0, ParentID: -1}}},
					Status: StatusCompleted,
				}))
			}))

			env, err := tt.call(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPath, gotPath)
			assert.True(t, env.Completed())
			require.NotNil(t, env.Model)
			assert.Len(t, env.Model.Entries, 1)
		})
	}
}

func TestEnvelopeStatusIsNotAnHTTPError(t *testing.T) {
	// The server answers 200 with a FAILED status; the transport layer must
	// surface the envelope untouched so callers can drive the fallback.
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(Envelope[Tree]{
			Status: StatusFailed, StatusMessage: "analysis failed",
		}))
	}))

	env, err := c.DataTree(context.Background(), "e1", "o1")
	require.NoError(t, err)
	assert.False(t, env.Completed())
	assert.Equal(t, "analysis failed", env.StatusMessage)
}

func TestNon2xxIsProtocolFailure(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such trace", http.StatusNotFound)
	}))

	_, err := c.Trace(context.Background(), "t-unknown")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ProtocolFailure), "error = %v", err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "no such trace")
}

func TestConnectionRefusedIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	ts.Close() // nothing listens on the port anymore

	c := NewClient(u.Hostname(), port)
	_, err = c.Traces(context.Background())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.TransportError), "error = %v", err)
}

func TestTableLinesPayloadForwarding(t *testing.T) {
	var gotBody map[string]any
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		require.NoError(t, json.NewEncoder(w).Encode(Envelope[TableLines]{
			Model:  &TableLines{Size: 100},
			Status: StatusCompleted,
		}))
	}))

	payload := map[string]any{"requestedLineCount": 50, "requestedLineIndex": 5}
	env, err := c.TableLines(context.Background(), "e1", "o1", payload)
	require.NoError(t, err)

	params, ok := gotBody["parameters"].(map[string]any)
	require.True(t, ok, "body = %v", gotBody)
	assert.Equal(t, float64(50), params["requestedLineCount"])
	assert.Equal(t, float64(5), params["requestedLineIndex"])
	assert.Equal(t, int64(100), env.Model.Size)
}

func TestModelUnwrap(t *testing.T) {
	t.Run("completed with payload", func(t *testing.T) {
		env := &Envelope[Tree]{Model: &Tree{}, Status: StatusCompleted}
		m, err := Model(env, "tree fetch")
		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("failed status", func(t *testing.T) {
		env := &Envelope[Tree]{Status: StatusFailed, StatusMessage: "boom"}
		_, err := Model(env, "tree fetch")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ProtocolFailure))
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("completed without payload", func(t *testing.T) {
		env := &Envelope[Tree]{Status: StatusCompleted}
		_, err := Model(env, "tree fetch")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.EmptyModel))
	})
}

func TestHealth(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tsp/api/health", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(Health{Status: "UP"}))
	}))

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, h.Up())
}
