// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"tracectl/cli/internal/query"
	"tracectl/cli/internal/render"
	"tracectl/cli/internal/tsp"
)

var (
	tableExpUUID     string
	tableLineCount   int64
	tableLineIndex   int64
	tableTimes       []int64
	tableColumnIDs   []int64
	tableSearchDir   string
	tableSearchExprs []string
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Page through a virtual table output",
}

var tableColumnsCmd = &cobra.Command{
	Use:   "columns OUTPUT_ID",
	Short: "List the columns of a virtual table output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(tableExpUUID, "experiment"); err != nil {
			return err
		}
		env, err := client.TableColumns(cmd.Context(), tableExpUUID, args[0])
		if err != nil {
			return presentErr(err)
		}
		cols, err := tsp.Model(env, "column fetch for "+args[0])
		if err != nil {
			return err
		}
		render.TableColumns(*cols)
		render.Summary("%d column(s)", len(*cols))
		return nil
	},
}

var tableLinesCmd = &cobra.Command{
	Use:   "lines OUTPUT_ID",
	Short: "Fetch one page of a virtual table output",
	Long: `Fetches --line-count lines of a virtual table, anchored either at an
absolute line index (--line-index) or at the lines matching a list of
timestamps (--times). When both anchors are given, --times takes
precedence. Columns can be restricted with --column-ids and filtered with
repeatable --search-expression COLUMN=EXPR flags; --search-direction
selects where matching continues (NEXT, the default, or PREVIOUS).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUUID(tableExpUUID, "experiment"); err != nil {
			return err
		}
		page := query.TablePage{
			Times:           tableTimes,
			ColumnIDs:       tableColumnIDs,
			SearchDirection: tableSearchDir,
		}
		if cmd.Flags().Changed("line-count") {
			page.LineCount = &tableLineCount
		}
		if cmd.Flags().Changed("line-index") {
			page.LineIndex = &tableLineIndex
		}
		for _, raw := range tableSearchExprs {
			se, err := query.ParseSearchExpression(raw)
			if err != nil {
				return err
			}
			page.SearchExpressions = append(page.SearchExpressions, se)
		}
		payload, err := query.TableLines(page)
		if err != nil {
			return err
		}
		env, err := client.TableLines(cmd.Context(), tableExpUUID, args[0], payload)
		if err != nil {
			return presentErr(err)
		}
		lines, err := tsp.Model(env, "line fetch for "+args[0])
		if err != nil {
			return err
		}
		render.TableLines(lines)
		render.Summary("%d line(s) from index %d of %d", len(lines.Lines), lines.LowIndex, lines.Size)
		return nil
	},
}

func init() {
	tableCmd.PersistentFlags().StringVar(&tableExpUUID, "uuid", "", "Experiment UUID")
	tableLinesCmd.Flags().Int64Var(&tableLineCount, "line-count", 0, "Number of lines to fetch")
	tableLinesCmd.Flags().Int64Var(&tableLineIndex, "line-index", 0, "Absolute index of the first line")
	tableLinesCmd.Flags().Int64SliceVar(&tableTimes, "times", nil, "Timestamps to anchor the page at")
	tableLinesCmd.Flags().Int64SliceVar(&tableColumnIDs, "column-ids", nil, "Column ids to return (default all)")
	tableLinesCmd.Flags().StringVar(&tableSearchDir, "search-direction", query.DirectionNext, "Search direction (NEXT or PREVIOUS)")
	tableLinesCmd.Flags().StringArrayVar(&tableSearchExprs, "search-expression", nil, "Column filter as COLUMN=EXPR (repeatable)")
	tableCmd.AddCommand(tableColumnsCmd, tableLinesCmd)
	rootCmd.AddCommand(tableCmd)
}
