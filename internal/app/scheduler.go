package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/satzlabs/satzgen/internal/domain"
	"github.com/satzlabs/satzgen/internal/ports"
)

// State enumerates the per-batch retry state machine.
type State int

const (
	StateIdle State = iota
	StateAttempting
	StateAwaitingBackoff
	StateSuccess
	StateExhausted
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAttempting:
		return "attempting"
	case StateAwaitingBackoff:
		return "awaiting_backoff"
	case StateSuccess:
		return "success"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// AttemptFunc runs one full call/extract/validate chain for a batch.
type AttemptFunc func(ctx context.Context) ([]domain.Entry, error)

// DefaultJitterMax bounds the uniform random jitter added to each backoff
// delay, to avoid synchronized retry storms.
const DefaultJitterMax = time.Second

// Scheduler drives repeated attempts per batch with exponential backoff and
// jitter, bounded by a maximum attempt count. A cache hit before the first
// attempt bypasses the remote chain entirely.
type Scheduler struct {
	cache       ports.CacheStore
	maxAttempts int
	baseDelay   time.Duration
	jitterMax   time.Duration
	rng         *rand.Rand
	logger      zerolog.Logger
}

// NewScheduler creates a scheduler. maxAttempts is the total attempt budget
// per batch; baseDelay is the backoff base.
func NewScheduler(cache ports.CacheStore, maxAttempts int, baseDelay time.Duration, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cache:       cache,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		jitterMax:   DefaultJitterMax,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:      logger,
	}
}

// Run processes one batch to a terminal state. It returns a successful
// result (entries saved to the cache store) or an exhausted one carrying
// the last attempt's error. Failures never propagate past the batch; the
// caller moves on to the next one.
func (s *Scheduler) Run(ctx context.Context, batch domain.Batch, attempt AttemptFunc) domain.BatchResult {
	state := StateIdle

	if entries, ok := s.cache.Load(ctx, batch.Seq); ok {
		state = StateSuccess
		s.logger.Info().
			Int("batch", batch.Seq).
			Int("entries", len(entries)).
			Str("state", state.String()).
			Msg("cache hit, skipping remote call")
		return domain.BatchResult{Seq: batch.Seq, Entries: entries, FromCache: true}
	}

	var lastErr error
	for n := 1; ; n++ {
		state = StateAttempting
		s.logger.Info().
			Int("batch", batch.Seq).
			Int("attempt", n).
			Int("max_attempts", s.maxAttempts).
			Str("state", state.String()).
			Msg("calling remote endpoint")

		entries, err := attempt(ctx)
		if err == nil {
			// The cache write must be durable before the batch is
			// reported complete.
			if saveErr := s.cache.Save(ctx, batch.Seq, entries); saveErr != nil {
				err = fmt.Errorf("cache save: %w", saveErr)
			} else {
				state = StateSuccess
				s.logger.Info().
					Int("batch", batch.Seq).
					Int("entries", len(entries)).
					Int("attempt", n).
					Str("state", state.String()).
					Msg("batch complete")
				return domain.BatchResult{Seq: batch.Seq, Entries: entries, Attempts: n}
			}
		}

		lastErr = err
		s.logger.Error().
			Err(err).
			Int("batch", batch.Seq).
			Int("attempt", n).
			Msg("attempt failed")

		if ctx.Err() != nil {
			state = StateExhausted
			s.logger.Warn().
				Int("batch", batch.Seq).
				Int("attempts", n).
				Str("state", state.String()).
				Msg("run canceled")
			return domain.BatchResult{Seq: batch.Seq, Attempts: n, Err: ctx.Err()}
		}

		if n >= s.maxAttempts {
			state = StateExhausted
			s.logger.Warn().
				Int("batch", batch.Seq).
				Int("attempts", n).
				Str("state", state.String()).
				Msg("retry budget spent, moving on")
			return domain.BatchResult{Seq: batch.Seq, Attempts: n, Err: lastErr}
		}

		state = StateAwaitingBackoff
		delay := s.delay(n)
		s.logger.Info().
			Int("batch", batch.Seq).
			Dur("delay", delay).
			Str("state", state.String()).
			Msg("retrying after backoff")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return domain.BatchResult{Seq: batch.Seq, Attempts: n, Err: ctx.Err()}
		}
	}
}

// delay computes base * 2^(attempt-1) plus uniform jitter in [0, jitterMax].
func (s *Scheduler) delay(attempt int) time.Duration {
	backoff := s.baseDelay << (attempt - 1)
	jitter := time.Duration(0)
	if s.jitterMax > 0 {
		jitter = time.Duration(s.rng.Int63n(int64(s.jitterMax) + 1))
	}
	return backoff + jitter
}
