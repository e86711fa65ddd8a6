// Package batch answers many independent route queries against one shared
// grid, running searches concurrently.
//
// Each query is a separate astar.FindPath call; searches never mutate the
// grid, so workers share a single PathFinder. A context bounds the whole
// batch: once it is cancelled no further query is started, while searches
// already running complete normally.
package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrNilFinder indicates Solve was called without a PathFinder.
var ErrNilFinder = errors.New("batch: path finder is nil")

// Query asks for a route between two cells.
type Query struct {
	ID     string    `json:"id"`
	Start  grid.Cell `json:"-"`
	Target grid.Cell `json:"-"`
}

// queryJSON is the wire form of Query with [row, col] pairs.
type queryJSON struct {
	ID     string `json:"id"`
	Start  [2]int `json:"start"`
	Target [2]int `json:"target"`
}

// UnmarshalJSON reads {"id", "start": [r, c], "target": [r, c]}.
func (q *Query) UnmarshalJSON(b []byte) error {
	var w queryJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	q.ID = w.ID
	q.Start = grid.Cell{Row: w.Start[0], Col: w.Start[1]}
	q.Target = grid.Cell{Row: w.Target[0], Col: w.Target[1]}
	return nil
}

// MarshalJSON writes the same shape UnmarshalJSON reads.
func (q Query) MarshalJSON() ([]byte, error) {
	return json.Marshal(queryJSON{
		ID:     q.ID,
		Start:  [2]int{q.Start.Row, q.Start.Col},
		Target: [2]int{q.Target.Row, q.Target.Col},
	})
}

// Answer is the outcome of one Query. Ran is false for queries skipped
// because the context was cancelled first.
type Answer struct {
	Query    Query
	Path     []grid.Cell
	Found    bool
	Expanded int
	Ran      bool
}

// Steps returns the number of moves, or 0 when no path was found.
func (a Answer) Steps() int {
	if len(a.Path) == 0 {
		return 0
	}
	return len(a.Path) - 1
}

// DecodeQueries reads a JSON array of queries.
func DecodeQueries(r io.Reader) ([]Query, error) {
	var qs []Query
	if err := json.NewDecoder(r).Decode(&qs); err != nil {
		return nil, fmt.Errorf("batch: decode queries: %w", err)
	}
	return qs, nil
}

// Solve runs every query with at most `workers` concurrent searches
// (runtime.NumCPU() when workers ≤ 0). Answers are returned in query
// order. The only error is ctx's, returned when cancellation prevented
// some queries from running; the answers are still returned, every one
// carrying its Query, with Ran unset where the search never started.
func Solve(ctx context.Context, pf *astar.PathFinder, queries []Query, workers int, logger *slog.Logger) ([]Answer, error) {
	if pf == nil {
		return nil, ErrNilFinder
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	answers := make([]Answer, len(queries))
	for i, q := range queries {
		answers[i].Query = q
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	began := time.Now()
	for i, q := range queries {
		if egCtx.Err() != nil {
			break
		}
		i, q := i, q
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res := pf.Search(q.Start, q.Target)
			answers[i] = Answer{Query: q, Path: res.Path, Found: res.Found, Expanded: res.Expanded, Ran: true}
			logger.Debug("query solved",
				slog.String("id", q.ID),
				slog.Bool("found", res.Found),
				slog.Int("steps", res.Steps()),
				slog.Int("expanded", res.Expanded),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return answers, err
	}
	if err := ctx.Err(); err != nil {
		return answers, err
	}

	logger.Info("batch complete",
		slog.Int("queries", len(queries)),
		slog.Int("workers", workers),
		slog.Duration("elapsed", time.Since(began)),
	)
	return answers, nil
}
