package core

import (
	"github.com/pkg/errors"

	"github.com/Jx2f/seedrandom/internal/config"
	"github.com/Jx2f/seedrandom/pkg/crypto/seedrandom"
	"github.com/Jx2f/seedrandom/pkg/tiles"
)

type Result struct {
	Name    string         `json:"name"`
	Kind    config.JobKind `json:"kind"`
	Seed    string         `json:"seed"`
	Doubles []float64      `json:"doubles,omitempty"`
	Items   []string       `json:"items,omitempty"`
	Perm    []int          `json:"perm,omitempty"`
	Moves   []tiles.Move   `json:"moves,omitempty"`
}

// Run executes job on a generator of its own.
func Run(job *config.Job) (*Result, error) {
	r := &Result{Name: job.Name, Kind: job.Kind, Seed: job.Seed}
	switch job.Kind {
	case config.JobKindDoubles:
		g := seedrandom.New(job.Seed)
		r.Doubles = make([]float64, job.Count)
		for i := range r.Doubles {
			r.Doubles[i] = g.Float64()
		}
	case config.JobKindShuffle:
		r.Items = seedrandom.Shuffle(seedrandom.New(job.Seed), job.Items)
	case config.JobKindPerm:
		r.Perm = seedrandom.New(job.Seed).Perm(job.Count)
	case config.JobKindTiles:
		grid := tiles.Grid{Columns: job.Columns, Rows: job.Rows}
		order, err := tiles.Order(job.Seed, grid)
		if err != nil {
			return nil, err
		}
		r.Perm = order
		if job.Width > 0 || job.Height > 0 {
			if r.Moves, err = tiles.Moves(job.Seed, grid, job.Width, job.Height); err != nil {
				return nil, err
			}
		}
	default:
		return nil, errors.Errorf("unknown job kind %q", job.Kind)
	}
	return r, nil
}
