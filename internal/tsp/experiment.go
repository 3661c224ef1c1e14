// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tsp

import "context"

// Experiments lists every experiment on the server.
func (c *Client) Experiments(ctx context.Context) ([]Experiment, error) {
	var out []Experiment
	if err := c.get(ctx, "/experiments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Experiment fetches one experiment by UUID.
func (c *Client) Experiment(ctx context.Context, uuid string) (*Experiment, error) {
	var out Experiment
	if err := c.get(ctx, "/experiments/"+uuid, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenExperiment creates an experiment over already-open traces.
func (c *Client) OpenExperiment(ctx context.Context, name string, traceUUIDs []string) (*Experiment, error) {
	var out Experiment
	body := Body(map[string]any{"name": name, "traces": traceUUIDs})
	if err := c.post(ctx, "/experiments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteExperiment removes an experiment and returns its final state,
// including the traces that belonged to it. The traces themselves stay open.
func (c *Client) DeleteExperiment(ctx context.Context, uuid string) (*Experiment, error) {
	var out Experiment
	if err := c.delete(ctx, "/experiments/"+uuid, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
