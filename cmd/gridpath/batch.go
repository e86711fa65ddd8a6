package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/batch"
	"github.com/katalvlaran/gridpath/tilemap"
)

// answerJSON is one element of the batch command's output array.
type answerJSON struct {
	ID       string   `json:"id"`
	Found    bool     `json:"found"`
	Steps    int      `json:"steps"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch MAP.json QUERIES.json",
		Short: "Answer a JSON array of route queries against one map",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Batch.Workers = workers
			}
			return a.runBatch(cmd.Context(), args[0], args[1])
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent searches (0 = every CPU)")
	return cmd
}

func (a *app) runBatch(ctx context.Context, mapFile, queryFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m, err := tilemap.Load(mapFile)
	if err != nil {
		return err
	}
	f, err := os.Open(queryFile)
	if err != nil {
		return err
	}
	queries, err := batch.DecodeQueries(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", queryFile, err)
	}

	pf, err := astar.New(m.Grid)
	if err != nil {
		return err
	}
	answers, err := batch.Solve(ctx, pf, queries, a.cfg.Batch.Workers, a.logger)
	if err != nil {
		return err
	}

	out := make([]answerJSON, len(answers))
	for i, ans := range answers {
		out[i] = answerJSON{
			ID:       ans.Query.ID,
			Found:    ans.Found,
			Steps:    ans.Steps(),
			Expanded: ans.Expanded,
		}
		for _, c := range ans.Path {
			out[i].Path = append(out[i].Path, [2]int{c.Row, c.Col})
		}
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
