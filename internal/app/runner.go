// Package app contains the pipeline orchestration: the sequential batch
// loop and the per-batch retry scheduler.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/satzlabs/satzgen/internal/domain"
	"github.com/satzlabs/satzgen/internal/extract"
	"github.com/satzlabs/satzgen/internal/ports"
	"github.com/satzlabs/satzgen/internal/prompt"
	"github.com/satzlabs/satzgen/internal/validate"
)

// Runner drives the whole run: batches are processed strictly sequentially,
// each wrapped by the retry scheduler, with the sink persisted after every
// batch whether it succeeded or not.
type Runner struct {
	builder   *prompt.Builder
	completer ports.Completer
	sink      ports.ResultSink
	scheduler *Scheduler
	logger    zerolog.Logger

	// cleanup removes the cache directory after a fully successful run.
	// Optional; a partial run always keeps its cache for resumption.
	cleanup func() error
}

// NewRunner wires the pipeline components together.
func NewRunner(
	builder *prompt.Builder,
	completer ports.Completer,
	sink ports.ResultSink,
	scheduler *Scheduler,
	logger zerolog.Logger,
	cleanup func() error,
) *Runner {
	return &Runner{
		builder:   builder,
		completer: completer,
		sink:      sink,
		scheduler: scheduler,
		logger:    logger,
		cleanup:   cleanup,
	}
}

// Summary reports what a run accomplished.
type Summary struct {
	// Items is the total number of verb pairs requested.
	Items int

	// Entries is the number of validated entries produced.
	Entries int

	// Batches is the total number of batches in the run.
	Batches int

	// Cached is the number of batches served from the cache store.
	Cached int

	// Exhausted lists the sequence numbers of batches that spent their
	// whole retry budget without succeeding.
	Exhausted []int
}

// Run processes every batch and returns a summary. Per-batch failures are
// contained; the only error returned is context cancellation. Whatever was
// accumulated before cancellation has already been flushed to the sink.
func (r *Runner) Run(ctx context.Context, batches []domain.Batch) (Summary, error) {
	summary := Summary{Batches: len(batches)}
	for _, b := range batches {
		summary.Items += b.Size()
	}

	for _, b := range batches {
		r.logger.Info().
			Int("batch", b.Seq).
			Int("total", len(batches)).
			Int("verbs", b.Size()).
			Msg("processing batch")

		result := r.scheduler.Run(ctx, b, r.attemptFor(b))

		switch {
		case result.Success():
			r.sink.Append(b.Seq, result.Entries)
			summary.Entries += len(result.Entries)
			if result.FromCache {
				summary.Cached++
			}
		default:
			summary.Exhausted = append(summary.Exhausted, b.Seq)
			r.logger.Error().
				Err(result.Err).
				Int("batch", b.Seq).
				Msg("batch failed, continuing with next")
		}

		// Persist progress after every batch, success or not.
		if err := r.sink.Flush(ctx); err != nil {
			r.logger.Error().Err(err).Msg("failed to save results")
		}

		if ctx.Err() != nil {
			return summary, ctx.Err()
		}
	}

	r.logger.Info().
		Int("items", summary.Items).
		Int("entries", summary.Entries).
		Int("batches", summary.Batches).
		Int("cached", summary.Cached).
		Int("exhausted", len(summary.Exhausted)).
		Msg("run complete")

	if len(summary.Exhausted) == 0 && r.cleanup != nil {
		if err := r.cleanup(); err != nil {
			r.logger.Warn().Err(err).Msg("failed to clean up cache directory")
		}
	}

	return summary, nil
}

// attemptFor builds the call/extract/validate chain for one batch.
func (r *Runner) attemptFor(b domain.Batch) AttemptFunc {
	return func(ctx context.Context) ([]domain.Entry, error) {
		content, err := r.completer.Complete(ctx, r.builder.Render(b))
		if err != nil {
			return nil, err
		}

		raws, err := extract.Entries(content)
		if err != nil {
			return nil, err
		}

		entries, missing := validate.Batch(raws, b)
		for _, verb := range missing {
			r.logger.Warn().
				Str("verb", verb).
				Int("batch", b.Seq).
				Msg("verb missing from response")
		}

		return entries, nil
	}
}
