// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package query assembles operation-ready request payloads from validated
// CLI input. Every builder is pure: same inputs, same payload, no I/O. A
// payload that cannot be assembled fails with a typed error naming the
// missing or malformed piece, before any network call happens.
package query

import (
	"strconv"
	"strings"

	"tracectl/cli/internal/errs"
)

// TimeRange is a sampled query window. All three fields travel together;
// a partially supplied range never reaches this package.
type TimeRange struct {
	Start    int64
	End      int64
	NumTimes int64
}

// XY builds the payload for an XY model fetch.
func XY(items []int64, tr *TimeRange) (map[string]any, error) {
	if len(items) == 0 {
		return nil, errs.New(errs.MissingArgument, "XY query needs at least one item id (--items)")
	}
	if tr == nil {
		return nil, errs.New(errs.MissingArgument, "XY query needs a time range (--start, --end, --num-times)")
	}
	return map[string]any{
		"requestedItems": items,
		"requestedTimeRange": map[string]any{
			"start":    tr.Start,
			"end":      tr.End,
			"numTimes": tr.NumTimes,
		},
	}, nil
}

// Search directions for virtual table paging.
const (
	DirectionNext     = "NEXT"
	DirectionPrevious = "PREVIOUS"
)

// SearchExpression filters one virtual table column.
type SearchExpression struct {
	ColumnID   int64
	Expression string
}

// ParseSearchExpression parses the "COLUMN=EXPR" flag form.
func ParseSearchExpression(s string) (SearchExpression, error) {
	col, expr, ok := strings.Cut(s, "=")
	if !ok {
		return SearchExpression{}, errs.New(errs.MalformedParameter,
			"search expression "+s+" is not of form COLUMN=EXPR")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(col), 10, 64)
	if err != nil {
		return SearchExpression{}, errs.New(errs.MalformedParameter,
			"search expression column "+col+" is not an integer")
	}
	return SearchExpression{ColumnID: id, Expression: expr}, nil
}

// TablePage carries the raw inputs of a virtual table page request.
// Pointer fields distinguish "absent" from a legitimate zero.
type TablePage struct {
	LineCount         *int64
	LineIndex         *int64
	Times             []int64
	ColumnIDs         []int64
	SearchDirection   string
	SearchExpressions []SearchExpression
}

// TableLines builds the payload for one virtual table page. The anchor is
// requestedTimes when times were supplied, requestedLineIndex otherwise;
// when both are present, times wins. Column ids default to an empty list
// and the search direction to NEXT. Search expressions fold into a single
// column-id-keyed map, last one wins on duplicates.
func TableLines(p TablePage) (map[string]any, error) {
	if p.LineCount == nil {
		return nil, errs.New(errs.MissingArgument, "table query needs --line-count")
	}
	if *p.LineCount < 0 {
		return nil, errs.New(errs.MalformedParameter, "line count must not be negative")
	}

	m := map[string]any{"requestedLineCount": *p.LineCount}
	switch {
	case len(p.Times) > 0:
		m["requestedTimes"] = p.Times
	case p.LineIndex != nil:
		m["requestedLineIndex"] = *p.LineIndex
	default:
		return nil, errs.New(errs.MissingArgument, "table query needs an anchor (--line-index or --times)")
	}

	cols := p.ColumnIDs
	if cols == nil {
		cols = []int64{}
	}
	m["requestedColumnIds"] = cols

	dir := p.SearchDirection
	if dir == "" {
		dir = DirectionNext
	}
	if dir != DirectionNext && dir != DirectionPrevious {
		return nil, errs.New(errs.MalformedParameter,
			"search direction must be "+DirectionNext+" or "+DirectionPrevious)
	}
	m["searchDirection"] = dir

	if len(p.SearchExpressions) > 0 {
		exprs := make(map[string]string, len(p.SearchExpressions))
		for _, se := range p.SearchExpressions {
			exprs[strconv.FormatInt(se.ColumnID, 10)] = se.Expression
		}
		m["searchExpressions"] = exprs
	}
	return m, nil
}

// Config forwards a decoded parameter map as a configuration creation body,
// requiring the source type to be named first.
func Config(typeID string, params map[string]any) (map[string]any, error) {
	if typeID == "" {
		return nil, errs.New(errs.MissingArgument, "configuration needs --type-id")
	}
	return params, nil
}

// ConfigUpdate forwards a decoded parameter map as a configuration update
// body, requiring both the source type and the configuration id.
func ConfigUpdate(typeID, configID string, params map[string]any) (map[string]any, error) {
	if typeID == "" {
		return nil, errs.New(errs.MissingArgument, "configuration update needs --type-id")
	}
	if configID == "" {
		return nil, errs.New(errs.MissingArgument, "configuration update needs --config-id")
	}
	return params, nil
}
