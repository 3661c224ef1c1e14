// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tsp

import "context"

// ConfigSources lists the configuration source types registered on the server.
func (c *Client) ConfigSources(ctx context.Context) ([]ConfigSource, error) {
	var out []ConfigSource
	if err := c.get(ctx, "/config/types", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfigSource fetches one configuration source type.
func (c *Client) ConfigSource(ctx context.Context, typeID string) (*ConfigSource, error) {
	var out ConfigSource
	if err := c.get(ctx, "/config/types/"+typeID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Configs lists the configurations instantiated from one source type.
func (c *Client) Configs(ctx context.Context, typeID string) ([]Configuration, error) {
	var out []Configuration
	if err := c.get(ctx, "/config/types/"+typeID+"/configs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Config fetches one configuration.
func (c *Client) Config(ctx context.Context, typeID, configID string) (*Configuration, error) {
	var out Configuration
	if err := c.get(ctx, "/config/types/"+typeID+"/configs/"+configID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateConfig instantiates a configuration from a decoded parameter map.
func (c *Client) CreateConfig(ctx context.Context, typeID string, params map[string]any) (*Configuration, error) {
	var out Configuration
	if err := c.post(ctx, "/config/types/"+typeID+"/configs", Body(params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConfig replaces the parameter set of an existing configuration.
func (c *Client) UpdateConfig(ctx context.Context, typeID, configID string, params map[string]any) (*Configuration, error) {
	var out Configuration
	if err := c.put(ctx, "/config/types/"+typeID+"/configs/"+configID, Body(params), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConfig removes a configuration and returns its final state.
func (c *Client) DeleteConfig(ctx context.Context, typeID, configID string) (*Configuration, error) {
	var out Configuration
	if err := c.delete(ctx, "/config/types/"+typeID+"/configs/"+configID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
