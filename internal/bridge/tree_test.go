// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package bridge

import (
	"context"
	"testing"

	"tracectl/cli/internal/errs"
	"tracectl/cli/internal/tsp"
)

type treeResult struct {
	env *tsp.Envelope[tsp.Tree]
	err error
}

type stubTreeClient struct {
	descErr error

	data      treeResult
	timeGraph treeResult
	xy        treeResult

	dataCalls      int
	timeGraphCalls int
	xyCalls        int
}

func (s *stubTreeClient) Output(ctx context.Context, expUUID, outputID string) (*tsp.OutputDescriptor, error) {
	if s.descErr != nil {
		return nil, s.descErr
	}
	return &tsp.OutputDescriptor{ID: outputID, Name: "CPU Usage"}, nil
}

func (s *stubTreeClient) DataTree(ctx context.Context, expUUID, outputID string) (*tsp.Envelope[tsp.Tree], error) {
	s.dataCalls++
	return s.data.env, s.data.err
}

func (s *stubTreeClient) TimeGraphTree(ctx context.Context, expUUID, outputID string) (*tsp.Envelope[tsp.Tree], error) {
	s.timeGraphCalls++
	return s.timeGraph.env, s.timeGraph.err
}

func (s *stubTreeClient) XYTree(ctx context.Context, expUUID, outputID string) (*tsp.Envelope[tsp.Tree], error) {
	s.xyCalls++
	return s.xy.env, s.xy.err
}

func completedTree() *tsp.Envelope[tsp.Tree] {
	return &tsp.Envelope[tsp.Tree]{
		Model:  &tsp.Tree{Entries: []tsp.TreeEntry{{ID: 0, ParentID: -1, Labels: []string{"root"}}}},
		Status: tsp.StatusCompleted,
	}
}

func failedTree() *tsp.Envelope[tsp.Tree] {
	return &tsp.Envelope[tsp.Tree]{Status: tsp.StatusFailed, StatusMessage: "unsupported endpoint"}
}

func TestResolveTreeDataTreeFallback(t *testing.T) {
	tests := []struct {
		name               string
		data               treeResult
		timeGraph          treeResult
		wantTimeGraphCalls int
		expectError        bool
	}{
		{
			name:               "primary success, no fallback",
			data:               treeResult{env: completedTree()},
			timeGraph:          treeResult{env: completedTree()},
			wantTimeGraphCalls: 0,
		},
		{
			name:               "failed status falls back once",
			data:               treeResult{env: failedTree()},
			timeGraph:          treeResult{env: completedTree()},
			wantTimeGraphCalls: 1,
		},
		{
			name:               "protocol error falls back once",
			data:               treeResult{err: errs.New(errs.ProtocolFailure, "405 method not allowed")},
			timeGraph:          treeResult{env: completedTree()},
			wantTimeGraphCalls: 1,
		},
		{
			name:               "fallback also fails, no second retry",
			data:               treeResult{env: failedTree()},
			timeGraph:          treeResult{env: failedTree()},
			wantTimeGraphCalls: 1,
			expectError:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &stubTreeClient{data: tt.data, timeGraph: tt.timeGraph}

			tree, _, err := ResolveTree(context.Background(), c, "exp-1", "out-1", DataTree)

			if c.dataCalls != 1 {
				t.Errorf("data tree calls = %d, want 1", c.dataCalls)
			}
			if c.timeGraphCalls != tt.wantTimeGraphCalls {
				t.Errorf("time graph calls = %d, want %d", c.timeGraphCalls, tt.wantTimeGraphCalls)
			}
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tree == nil || len(tree.Entries) == 0 {
				t.Error("expected a populated tree")
			}
		})
	}
}

func TestResolveTreeTransportFailureIsNotRetried(t *testing.T) {
	c := &stubTreeClient{
		data:      treeResult{err: errs.New(errs.TransportError, "dial tcp: connection refused")},
		timeGraph: treeResult{env: completedTree()},
	}

	tree, _, err := ResolveTree(context.Background(), c, "exp-1", "out-1", DataTree)
	if c.timeGraphCalls != 0 {
		t.Errorf("time graph calls = %d, want 0", c.timeGraphCalls)
	}
	if tree != nil {
		t.Errorf("got tree %+v, want none", tree)
	}
	if !errs.Is(err, errs.TransportError) {
		t.Errorf("error = %v, want transport_error", err)
	}
}

func TestResolveTreeOtherKindsNeverFallBack(t *testing.T) {
	for _, kind := range []TreeKind{TimeGraph, TreeTimeXY} {
		t.Run(kind.String(), func(t *testing.T) {
			c := &stubTreeClient{
				timeGraph: treeResult{env: failedTree()},
				xy:        treeResult{env: failedTree()},
			}

			_, _, err := ResolveTree(context.Background(), c, "exp-1", "out-1", kind)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !errs.Is(err, errs.ProtocolFailure) {
				t.Errorf("error = %v, want protocol_failure", err)
			}
			if c.dataCalls != 0 {
				t.Errorf("data tree calls = %d, want 0", c.dataCalls)
			}
			if c.timeGraphCalls+c.xyCalls != 1 {
				t.Errorf("tree calls = %d, want exactly one", c.timeGraphCalls+c.xyCalls)
			}
		})
	}
}

func TestResolveTreeMissingDescriptor(t *testing.T) {
	c := &stubTreeClient{descErr: errs.New(errs.ProtocolFailure, "404 not found")}

	_, _, err := ResolveTree(context.Background(), c, "exp-1", "out-1", TimeGraph)
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if c.dataCalls+c.timeGraphCalls+c.xyCalls != 0 {
		t.Error("no tree fetch may happen without a descriptor")
	}
}

func TestResolveTreeEmptyModel(t *testing.T) {
	c := &stubTreeClient{
		timeGraph: treeResult{env: &tsp.Envelope[tsp.Tree]{Status: tsp.StatusCompleted}},
	}

	_, _, err := ResolveTree(context.Background(), c, "exp-1", "out-1", TimeGraph)
	if !errs.Is(err, errs.EmptyModel) {
		t.Errorf("error = %v, want empty_model", err)
	}
}
