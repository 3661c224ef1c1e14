// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tsp

import (
	"fmt"

	"tracectl/cli/internal/errs"
)

// ResponseStatus is the completion state the server reports for computed models.
type ResponseStatus string

const (
	StatusCompleted ResponseStatus = "COMPLETED"
	StatusRunning   ResponseStatus = "RUNNING"
	StatusFailed    ResponseStatus = "FAILED"
	StatusCancelled ResponseStatus = "CANCELLED"
)

// Envelope wraps computed models (trees, XY series, table lines). The model
// may be absent even on a COMPLETED status; callers must check both.
type Envelope[M any] struct {
	Model         *M             `json:"model"`
	Status        ResponseStatus `json:"status"`
	StatusMessage string         `json:"statusMessage"`
}

// Completed reports whether the server finished computing the model.
func (e *Envelope[M]) Completed() bool { return e.Status == StatusCompleted }

// Model unwraps an envelope. A non-success status maps to ProtocolFailure,
// a success status without a payload to EmptyModel; the two are reported
// with different text but terminate the invocation the same way.
func Model[M any](env *Envelope[M], what string) (*M, error) {
	if !env.Completed() {
		msg := fmt.Sprintf("%s ended with status %s", what, env.Status)
		if env.StatusMessage != "" {
			msg += ": " + env.StatusMessage
		}
		return nil, errs.New(errs.ProtocolFailure, msg)
	}
	if env.Model == nil {
		return nil, errs.New(errs.EmptyModel, what+" had no model; retry?")
	}
	return env.Model, nil
}

// Trace is an open trace on the server.
type Trace struct {
	UUID           string `json:"UUID"`
	Name           string `json:"name"`
	Path           string `json:"path"`
	Start          int64  `json:"start"`
	End            int64  `json:"end"`
	NbEvents       int64  `json:"nbEvents"`
	IndexingStatus string `json:"indexingStatus"`
}

// Experiment groups open traces analyzed together.
type Experiment struct {
	UUID           string  `json:"UUID"`
	Name           string  `json:"name"`
	Start          int64   `json:"start"`
	End            int64   `json:"end"`
	NbEvents       int64   `json:"nbEvents"`
	IndexingStatus string  `json:"indexingStatus"`
	Traces         []Trace `json:"traces"`
}

// OutputDescriptor describes one analysis output an experiment provides.
type OutputDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	ParentID    string `json:"parentId,omitempty"`
}

// TreeHeader is one column header of a tree model.
type TreeHeader struct {
	Name    string `json:"name"`
	Tooltip string `json:"tooltip"`
}

// TreeEntry is one row of a tree model; ParentID -1 marks a root.
type TreeEntry struct {
	ID       int64    `json:"id"`
	ParentID int64    `json:"parentId"`
	Labels   []string `json:"labels"`
}

// Tree is the generic entry tree shared by data-tree, time-graph and XY outputs.
type Tree struct {
	Headers []TreeHeader `json:"headers"`
	Entries []TreeEntry  `json:"entries"`
}

// XYSeries is one series of sampled points.
type XYSeries struct {
	SeriesID   int64     `json:"seriesId"`
	SeriesName string    `json:"seriesName"`
	XValues    []int64   `json:"xValues"`
	YValues    []float64 `json:"yValues"`
}

// XYModel is the computed XY view for the requested items and time range.
type XYModel struct {
	Title  string     `json:"title"`
	Series []XYSeries `json:"series"`
}

// TableColumn describes one column of a virtual table output.
type TableColumn struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// TableCell is one rendered cell of a virtual table line.
type TableCell struct {
	Content string `json:"content"`
}

// TableLine is one row of a virtual table page.
type TableLine struct {
	Index int64       `json:"index"`
	Cells []TableCell `json:"cells"`
}

// TableLines is one page of a virtual table.
type TableLines struct {
	LowIndex  int64       `json:"lowIndex"`
	Size      int64       `json:"size"`
	ColumnIDs []int64     `json:"columnIds"`
	Lines     []TableLine `json:"lines"`
}

// ConfigParamDescriptor documents one parameter a configuration source accepts.
type ConfigParamDescriptor struct {
	KeyName     string `json:"keyName"`
	Description string `json:"description"`
	DataType    string `json:"dataType"`
	IsRequired  bool   `json:"isRequired"`
}

// ConfigSource is a server-registered configuration template.
type ConfigSource struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Parameters  []ConfigParamDescriptor `json:"parameterDescriptors"`
}

// Configuration is an instantiated configuration source.
type Configuration struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	SourceTypeID string         `json:"sourceTypeId"`
	Parameters   map[string]any `json:"parameters"`
}

// Health is the server liveness report.
type Health struct {
	Status string `json:"status"`
}
