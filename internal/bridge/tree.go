// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package bridge sequences the multi-step protocol interactions behind a
// single user intent: resolving an output's tree with its compatibility
// fallback, opening an experiment from trace paths, and cascade-deleting an
// experiment's traces. Commands stay thin; this package owns the branching.
package bridge

import (
	"context"
	"fmt"

	"tracectl/cli/internal/errs"
	"tracectl/cli/internal/tsp"
)

// TreeKind selects which tree endpoint family an output is fetched from.
type TreeKind int

const (
	// DataTree outputs carry a plain entry tree. Servers predating the
	// data endpoint family serve the same tree from the time-graph one.
	DataTree TreeKind = iota
	// TimeGraph outputs carry a time-graph entry tree.
	TimeGraph
	// TreeTimeXY outputs carry the entry tree of an XY view.
	TreeTimeXY
)

func (k TreeKind) String() string {
	switch k {
	case DataTree:
		return "data tree"
	case TimeGraph:
		return "time graph"
	case TreeTimeXY:
		return "xy tree"
	default:
		return "unknown"
	}
}

// TreeClient is the slice of the transport client tree resolution needs.
type TreeClient interface {
	Output(ctx context.Context, expUUID, outputID string) (*tsp.OutputDescriptor, error)
	DataTree(ctx context.Context, expUUID, outputID string) (*tsp.Envelope[tsp.Tree], error)
	TimeGraphTree(ctx context.Context, expUUID, outputID string) (*tsp.Envelope[tsp.Tree], error)
	XYTree(ctx context.Context, expUUID, outputID string) (*tsp.Envelope[tsp.Tree], error)
}

// ResolveTree fetches the entry tree of one output. It first resolves the
// output descriptor, then issues the tree fetch matching kind. A DataTree
// fetch that fails at the protocol level is retried exactly once against
// the time-graph endpoint; transport failures propagate unretried and the
// other kinds never fall back. At most three network calls happen.
func ResolveTree(ctx context.Context, c TreeClient, expUUID, outputID string, kind TreeKind) (*tsp.Tree, *tsp.OutputDescriptor, error) {
	desc, err := c.Output(ctx, expUUID, outputID)
	if err != nil {
		return nil, nil, fmt.Errorf("no output descriptor for %s on experiment %s: %w", outputID, expUUID, err)
	}

	var env *tsp.Envelope[tsp.Tree]
	switch kind {
	case TimeGraph:
		env, err = c.TimeGraphTree(ctx, expUUID, outputID)
	case TreeTimeXY:
		env, err = c.XYTree(ctx, expUUID, outputID)
	case DataTree:
		env, err = c.DataTree(ctx, expUUID, outputID)
		// One-shot compatibility fallback, DataTree only. Transport
		// failures propagate as-is and are never retried.
		if errs.Is(err, errs.ProtocolFailure) || (err == nil && !env.Completed()) {
			env, err = c.TimeGraphTree(ctx, expUUID, outputID)
		}
	default:
		return nil, nil, errs.New(errs.MissingArgument, "unknown tree kind")
	}
	if err != nil {
		return nil, nil, err
	}
	if !env.Completed() {
		msg := fmt.Sprintf("%s fetch for %s ended with status %s", kind, desc.Name, env.Status)
		if env.StatusMessage != "" {
			msg += ": " + env.StatusMessage
		}
		return nil, nil, errs.New(errs.ProtocolFailure, msg)
	}
	if env.Model == nil {
		return nil, nil, errs.New(errs.EmptyModel,
			fmt.Sprintf("%s for %s had no model; retry?", kind, desc.Name))
	}
	return env.Model, desc, nil
}
