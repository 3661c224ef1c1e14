// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tsp

import "context"

// Health probes server liveness. No authentication required; this is the
// cheapest way to check connectivity to the trace server.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.get(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Up reports whether the health payload signals a ready server.
func (h *Health) Up() bool { return h.Status == "UP" }
