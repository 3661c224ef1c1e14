// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tsp

import "context"

// fetchTree posts a tree request against one endpoint family and returns the
// enveloped model. Requesting the full tree means an empty parameter body.
func (c *Client) fetchTree(ctx context.Context, expUUID, family, outputID string) (*Envelope[Tree], error) {
	var out Envelope[Tree]
	path := "/experiments/" + expUUID + "/outputs/" + family + "/" + outputID + "/tree"
	if err := c.post(ctx, path, Body(nil), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DataTree fetches the entry tree of a data-tree output. Older servers do
// not expose this endpoint family and answer with an error status; callers
// that need compatibility fall back to TimeGraphTree.
func (c *Client) DataTree(ctx context.Context, expUUID, outputID string) (*Envelope[Tree], error) {
	return c.fetchTree(ctx, expUUID, "data", outputID)
}

// TimeGraphTree fetches the entry tree of a time-graph output.
func (c *Client) TimeGraphTree(ctx context.Context, expUUID, outputID string) (*Envelope[Tree], error) {
	return c.fetchTree(ctx, expUUID, "timeGraph", outputID)
}

// XYTree fetches the entry tree of an XY output.
func (c *Client) XYTree(ctx context.Context, expUUID, outputID string) (*Envelope[Tree], error) {
	return c.fetchTree(ctx, expUUID, "XY", outputID)
}

// XY fetches sampled series for an XY output from an assembled query payload.
func (c *Client) XY(ctx context.Context, expUUID, outputID string, params map[string]any) (*Envelope[XYModel], error) {
	var out Envelope[XYModel]
	path := "/experiments/" + expUUID + "/outputs/XY/" + outputID + "/xy"
	if err := c.post(ctx, path, Body(params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
