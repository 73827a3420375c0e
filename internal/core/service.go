package core

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Jx2f/seedrandom/internal/config"
	"github.com/Jx2f/seedrandom/pkg/logger"
)

type Service struct {
	config *config.Config

	mu      sync.Mutex
	results []*Result // by job index

	ctx       context.Context
	ctxCancel context.CancelFunc
}

func NewService(c *config.Config) *Service {
	s := new(Service)
	s.config = c
	s.results = make([]*Result, len(c.Jobs))
	s.ctx, s.ctxCancel = context.WithCancel(context.Background())
	return s
}

// Start runs every job, at most Workers at a time, and returns the first
// failure. Jobs never share a generator.
func (s *Service) Start() error {
	eg, ctx := errgroup.WithContext(s.ctx)
	eg.SetLimit(max(s.config.Workers, 1))
	for i, job := range s.config.Jobs {
		i, job := i, job
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Debug().Str("job", job.Name).Str("kind", string(job.Kind)).Msg("Running job")
			r, err := Run(job)
			if err != nil {
				return errors.Wrapf(err, "job %s", job.Name)
			}
			s.mu.Lock()
			s.results[i] = r
			s.mu.Unlock()
			logger.Info().Str("job", job.Name).Msg("Job finished")
			return nil
		})
	}
	return eg.Wait()
}

func (s *Service) Stop() error {
	s.ctxCancel()
	return nil
}

// Results returns finished jobs in the order they were configured.
func (s *Service) Results() []*Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Result, 0, len(s.results))
	for _, r := range s.results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (s *Service) WriteResults(w io.Writer) error {
	e := json.NewEncoder(w)
	if s.config.Output == nil || !s.config.Output.Compact {
		e.SetIndent("", "  ")
	}
	return e.Encode(s.Results())
}

// Output writes the results to the configured file, or stdout.
func (s *Service) Output() error {
	if s.config.Output == nil || s.config.Output.File == "" {
		return s.WriteResults(os.Stdout)
	}
	f, err := os.Create(s.config.Output.File)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := s.WriteResults(f); err != nil {
		f.Close()
		return errors.Wrap(err, "write output")
	}
	logger.Info().Msgf("Results saved to %s", s.config.Output.File)
	return f.Close()
}
