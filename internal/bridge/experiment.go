// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package bridge

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"tracectl/cli/internal/errs"
	"tracectl/cli/internal/tsp"
)

// ExperimentClient is the slice of the transport client experiment
// orchestration needs.
type ExperimentClient interface {
	OpenTrace(ctx context.Context, name, path string) (*tsp.Trace, error)
	OpenExperiment(ctx context.Context, name string, traceUUIDs []string) (*tsp.Experiment, error)
	DeleteExperiment(ctx context.Context, uuid string) (*tsp.Experiment, error)
	DeleteTrace(ctx context.Context, uuid string) (*tsp.Trace, error)
}

// OpenExperiment opens an experiment over traces given either as filesystem
// paths or as UUIDs of already-open traces; exactly one of the two must be
// supplied. Paths are opened one by one first, each trace named after its
// final path segment. The first trace that fails to open aborts the whole
// intent; no partial experiment is ever created. progress, when non-nil,
// receives a line per step for UI feedback.
func OpenExperiment(ctx context.Context, c ExperimentClient, name string, paths, uuids []string, progress func(string)) (*tsp.Experiment, error) {
	if len(paths) == 0 && len(uuids) == 0 {
		return nil, errs.New(errs.MissingArgument, "experiment open needs --paths or --uuids")
	}
	if len(paths) > 0 && len(uuids) > 0 {
		return nil, errs.New(errs.MissingArgument, "--paths and --uuids are mutually exclusive")
	}

	traceUUIDs := uuids
	if len(paths) > 0 {
		traceUUIDs = make([]string, 0, len(paths))
		for _, p := range paths {
			if progress != nil {
				progress("opening trace " + p)
			}
			t, err := c.OpenTrace(ctx, traceName(p), p)
			if err != nil {
				return nil, fmt.Errorf("opening trace %s: %w", p, err)
			}
			traceUUIDs = append(traceUUIDs, t.UUID)
		}
	}

	if progress != nil {
		progress("opening experiment " + name)
	}
	return c.OpenExperiment(ctx, name, traceUUIDs)
}

// traceName derives a trace display name from the final path segment.
func traceName(path string) string {
	return filepath.Base(strings.TrimRight(path, "/"))
}

// DeleteExperiment deletes an experiment and, when cascade is set, each
// trace that belonged to it. The experiment deletion decides the outcome:
// a trace that fails to delete afterwards is reported through warn but
// neither aborts the loop nor turns the intent into a failure.
func DeleteExperiment(ctx context.Context, c ExperimentClient, uuid string, cascade bool, warn func(string)) (*tsp.Experiment, error) {
	exp, err := c.DeleteExperiment(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if cascade {
		for _, t := range exp.Traces {
			if _, err := c.DeleteTrace(ctx, t.UUID); err != nil && warn != nil {
				warn(fmt.Sprintf("could not delete trace %s (%s): %v", t.Name, t.UUID, err))
			}
		}
	}
	return exp, nil
}
