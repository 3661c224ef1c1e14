// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tsp

import "context"

// ExperimentOutputs lists the analysis outputs available for an experiment.
func (c *Client) ExperimentOutputs(ctx context.Context, expUUID string) ([]OutputDescriptor, error) {
	var out []OutputDescriptor
	if err := c.get(ctx, "/experiments/"+expUUID+"/outputs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Output fetches one output descriptor.
func (c *Client) Output(ctx context.Context, expUUID, outputID string) (*OutputDescriptor, error) {
	var out OutputDescriptor
	if err := c.get(ctx, "/experiments/"+expUUID+"/outputs/"+outputID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDerivedOutput instantiates a derived output under the given parent
// output from an assembled configuration body.
func (c *Client) CreateDerivedOutput(ctx context.Context, expUUID, outputID string, params map[string]any) (*OutputDescriptor, error) {
	var out OutputDescriptor
	path := "/experiments/" + expUUID + "/outputs/" + outputID
	if err := c.post(ctx, path, Body(params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDerivedOutput removes a derived output previously created under outputID.
func (c *Client) DeleteDerivedOutput(ctx context.Context, expUUID, outputID, derivedID string) (*OutputDescriptor, error) {
	var out OutputDescriptor
	path := "/experiments/" + expUUID + "/outputs/" + outputID + "/" + derivedID
	if err := c.delete(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
