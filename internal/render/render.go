// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package render turns typed protocol models into terminal output. It is a
// thin consumer of the model types: trees render as trees, tabular models
// as tables, everything else as an indented JSON dump. One summary line per
// successful intent.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"tracectl/cli/internal/tsp"
)

// Summary prints the single success line of an intent.
func Summary(format string, args ...any) {
	pterm.Success.Printfln(format, args...)
}

// Warn prints a non-fatal per-item failure line.
func Warn(msg string) {
	pterm.Warning.Println(msg)
}

// JSON dumps any model as an indented document.
func JSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		pterm.Println(fmt.Sprintf("%+v", v))
		return
	}
	pterm.Println(string(b))
}

// Tree renders an entry tree under a titled root. Entries with parent -1
// (or an unknown parent) become children of the root.
func Tree(t *tsp.Tree, title string) {
	known := make(map[int64]bool, len(t.Entries))
	for _, e := range t.Entries {
		known[e.ID] = true
	}
	children := map[int64][]tsp.TreeEntry{}
	var roots []tsp.TreeEntry
	for _, e := range t.Entries {
		if !known[e.ParentID] || e.ParentID == e.ID {
			roots = append(roots, e)
			continue
		}
		children[e.ParentID] = append(children[e.ParentID], e)
	}
	var build func(e tsp.TreeEntry) pterm.TreeNode
	build = func(e tsp.TreeEntry) pterm.TreeNode {
		n := pterm.TreeNode{Text: entryText(e)}
		for _, c := range children[e.ID] {
			n.Children = append(n.Children, build(c))
		}
		return n
	}
	root := pterm.TreeNode{Text: pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(title)}
	for _, r := range roots {
		root.Children = append(root.Children, build(r))
	}
	_ = pterm.DefaultTree.WithRoot(root).Render()
}

func entryText(e tsp.TreeEntry) string {
	if len(e.Labels) == 0 {
		return strconv.FormatInt(e.ID, 10)
	}
	text := e.Labels[0]
	for _, l := range e.Labels[1:] {
		if l != "" {
			text += "  " + l
		}
	}
	return text
}

// Traces renders the trace list as a table.
func Traces(traces []tsp.Trace) {
	data := pterm.TableData{{"UUID", "Name", "Events", "Status", "Path"}}
	for _, t := range traces {
		data = append(data, []string{
			t.UUID, t.Name, strconv.FormatInt(t.NbEvents, 10), t.IndexingStatus, t.Path,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// Experiments renders the experiment list as a table.
func Experiments(exps []tsp.Experiment) {
	data := pterm.TableData{{"UUID", "Name", "Traces", "Events", "Status"}}
	for _, e := range exps {
		data = append(data, []string{
			e.UUID, e.Name, strconv.Itoa(len(e.Traces)),
			strconv.FormatInt(e.NbEvents, 10), e.IndexingStatus,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// Outputs renders output descriptors as a table.
func Outputs(outputs []tsp.OutputDescriptor) {
	data := pterm.TableData{{"ID", "Name", "Type"}}
	for _, o := range outputs {
		data = append(data, []string{o.ID, o.Name, o.Type})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// TableColumns renders virtual table column descriptors.
func TableColumns(cols []tsp.TableColumn) {
	data := pterm.TableData{{"ID", "Name", "Type", "Description"}}
	for _, c := range cols {
		data = append(data, []string{
			strconv.FormatInt(c.ID, 10), c.Name, c.Type, c.Description,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// TableLines renders one virtual table page. The first column is the
// absolute line index, the rest are the returned cells.
func TableLines(lines *tsp.TableLines) {
	header := []string{"Line"}
	for _, id := range lines.ColumnIDs {
		header = append(header, "Col "+strconv.FormatInt(id, 10))
	}
	data := pterm.TableData{header}
	for _, l := range lines.Lines {
		row := []string{strconv.FormatInt(l.Index, 10)}
		for _, c := range l.Cells {
			row = append(row, c.Content)
		}
		data = append(data, row)
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// ConfigSources renders configuration source types as a table.
func ConfigSources(sources []tsp.ConfigSource) {
	data := pterm.TableData{{"ID", "Name", "Description"}}
	for _, s := range sources {
		data = append(data, []string{s.ID, s.Name, s.Description})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// Configs renders configurations as a table.
func Configs(configs []tsp.Configuration) {
	data := pterm.TableData{{"ID", "Name", "Source type"}}
	for _, c := range configs {
		data = append(data, []string{c.ID, c.Name, c.SourceTypeID})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
