// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tsp

import "context"

// Traces lists every trace currently open on the server.
func (c *Client) Traces(ctx context.Context) ([]Trace, error) {
	var out []Trace
	if err := c.get(ctx, "/traces", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Trace fetches one open trace by UUID.
func (c *Client) Trace(ctx context.Context, uuid string) (*Trace, error) {
	var out Trace
	if err := c.get(ctx, "/traces/"+uuid, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenTrace opens the trace at path under the given display name and returns
// the server-issued trace.
func (c *Client) OpenTrace(ctx context.Context, name, path string) (*Trace, error) {
	var out Trace
	body := Body(map[string]any{"name": name, "uri": path})
	if err := c.post(ctx, "/traces", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTrace removes an open trace and returns its final state.
func (c *Client) DeleteTrace(ctx context.Context, uuid string) (*Trace, error) {
	var out Trace
	if err := c.delete(ctx, "/traces/"+uuid, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
