package analyzer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nao1215/passaudit/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchAnalyzer handles concurrent analysis of multiple passwords.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchAnalyzer rather than adding batch
// functionality to Analyzer because:
// 1. It keeps the Analyzer focused on single-password analysis
// 2. It allows different batch strategies (e.g., progress streaming)
// 3. It provides cleaner separation of concerns
type BatchAnalyzer struct {
	// analyzer performs the individual analyses. Analyzer is safe for
	// concurrent use, so one instance serves all workers.
	analyzer *Analyzer

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed reports in input order.
	// Access is synchronized via mutex.
	results []*model.AnalysisReport
	mu      sync.Mutex
}

// BatchOption configures a BatchAnalyzer.
type BatchOption func(*BatchAnalyzer)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchAnalyzer) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Default is 10 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchAnalyzer) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchAnalyzer creates a new BatchAnalyzer around the given Analyzer.
// A nil analyzer gets the default Analyzer.
func NewBatchAnalyzer(analyzer *Analyzer, opts ...BatchOption) *BatchAnalyzer {
	ba := &BatchAnalyzer{
		analyzer:    analyzer,
		concurrency: 10,
		logger:      slog.Default(),
	}

	if ba.analyzer == nil {
		ba.analyzer = NewAnalyzer()
	}

	for _, opt := range opts {
		opt(ba)
	}

	return ba
}

// ProcessBatch analyzes multiple passwords concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each password gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// The returned slice preserves input order. Entries whose analysis failed
// are nil and logged; one bad line must not abort an audit of thousands.
// The error return indicates cancellation, not per-item failures.
func (b *BatchAnalyzer) ProcessBatch(ctx context.Context, passwords []string, userInputs []string) ([]*model.AnalysisReport, error) {
	b.logger.Info("starting batch analysis",
		"total", len(passwords),
		"concurrency", b.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	b.results = make([]*model.AnalysisReport, len(passwords))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, password := range passwords {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := b.analyzer.Analyze(ctx, password, userInputs)
			if err != nil {
				b.logger.Warn("analysis failed",
					"index", i+1,
					"total", len(passwords),
					"error", err,
				)
				// Don't return the error to errgroup - the rest of the
				// batch should still be analyzed.
				return nil
			}

			b.mu.Lock()
			b.results[i] = report
			b.mu.Unlock()

			return nil
		})
	}

	err := g.Wait()

	elapsed := time.Since(startTime)
	b.logger.Info("batch analysis complete",
		"total", len(passwords),
		"elapsed", elapsed,
	)

	return b.results, err
}

// ProcessBatchWithCallback analyzes multiple passwords and calls a callback
// for each completed analysis. This is useful for streaming progress.
//
// The callback receives the report (nil on per-item failure) and the index
// of the password in the original slice. The callback is called from the
// goroutine that completed the analysis, so it should be thread-safe if it
// accesses shared state.
func (b *BatchAnalyzer) ProcessBatchWithCallback(
	ctx context.Context,
	passwords []string,
	userInputs []string,
	callback func(report *model.AnalysisReport, index int),
) error {
	b.logger.Info("starting batch analysis with callback",
		"total", len(passwords),
		"concurrency", b.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, password := range passwords {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := b.analyzer.Analyze(ctx, password, userInputs)
			if err != nil {
				b.logger.Warn("analysis failed",
					"index", i+1,
					"error", err,
				)
			}

			callback(report, i)
			return nil
		})
	}

	return g.Wait()
}
