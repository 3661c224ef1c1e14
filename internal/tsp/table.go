// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tsp

import "context"

// TableColumns fetches the column descriptors of a virtual table output.
func (c *Client) TableColumns(ctx context.Context, expUUID, outputID string) (*Envelope[[]TableColumn], error) {
	var out Envelope[[]TableColumn]
	path := "/experiments/" + expUUID + "/outputs/table/" + outputID + "/columns"
	if err := c.post(ctx, path, Body(nil), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TableLines fetches one page of a virtual table from an assembled page query.
func (c *Client) TableLines(ctx context.Context, expUUID, outputID string, params map[string]any) (*Envelope[TableLines], error) {
	var out Envelope[TableLines]
	path := "/experiments/" + expUUID + "/outputs/table/" + outputID + "/lines"
	if err := c.post(ctx, path, Body(params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
