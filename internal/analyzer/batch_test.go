package analyzer

import (
	"context"
	"sync"
	"testing"

	"github.com/nao1215/passaudit/internal/model"
)

// TestBatchAnalyzerProcessBatch tests order-preserving batch analysis.
func TestBatchAnalyzerProcessBatch(t *testing.T) {
	t.Parallel()

	passwords := []string{"alpha-one", "bravo-two", "charlie-three", "delta-four"}
	a := NewAnalyzer(WithLogger(discardLogger()))
	ba := NewBatchAnalyzer(a, WithBatchLogger(discardLogger()))

	reports, err := ba.ProcessBatch(context.Background(), passwords, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reports) != len(passwords) {
		t.Fatalf("len(reports) = %d, expected %d", len(reports), len(passwords))
	}
	for i, report := range reports {
		if report == nil {
			t.Fatalf("reports[%d] is nil", i)
		}
		if report.Fingerprint != Fingerprint(passwords[i]) {
			t.Errorf("reports[%d] is out of order", i)
		}
	}
}

// TestBatchAnalyzerSkipsFailedItems tests that one bad password does not
// abort the batch.
func TestBatchAnalyzerSkipsFailedItems(t *testing.T) {
	t.Parallel()

	passwords := []string{"alpha-one", "", "charlie-three"}
	a := NewAnalyzer(WithLogger(discardLogger()))
	ba := NewBatchAnalyzer(a, WithBatchLogger(discardLogger()))

	reports, err := ba.ProcessBatch(context.Background(), passwords, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reports[0] == nil || reports[2] == nil {
		t.Error("expected valid passwords to be analyzed")
	}
	if reports[1] != nil {
		t.Error("expected the empty password slot to stay nil")
	}
}

// TestBatchAnalyzerConcurrencyLimit tests batch analysis with a single worker.
func TestBatchAnalyzerConcurrencyLimit(t *testing.T) {
	t.Parallel()

	passwords := []string{"alpha-one", "bravo-two", "charlie-three"}
	a := NewAnalyzer(WithLogger(discardLogger()))
	ba := NewBatchAnalyzer(a, WithBatchLogger(discardLogger()), WithConcurrency(1))

	reports, err := ba.ProcessBatch(context.Background(), passwords, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, report := range reports {
		if report == nil {
			t.Errorf("reports[%d] is nil", i)
		}
	}
}

// TestBatchAnalyzerNilAnalyzer tests that a nil Analyzer gets a default.
func TestBatchAnalyzerNilAnalyzer(t *testing.T) {
	t.Parallel()

	ba := NewBatchAnalyzer(nil, WithBatchLogger(discardLogger()))
	reports, err := ba.ProcessBatch(context.Background(), []string{"alpha-one"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 1 || reports[0] == nil {
		t.Fatal("expected one report from the default analyzer")
	}
}

// TestBatchAnalyzerCancelledContext tests that cancellation aborts the batch.
func TestBatchAnalyzerCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := NewAnalyzer(WithLogger(discardLogger()))
	ba := NewBatchAnalyzer(a, WithBatchLogger(discardLogger()))

	_, err := ba.ProcessBatch(ctx, []string{"alpha-one", "bravo-two"}, nil)
	if err == nil {
		t.Error("expected an error from a cancelled context")
	}
}

// TestBatchAnalyzerCallback tests streaming batch analysis.
func TestBatchAnalyzerCallback(t *testing.T) {
	t.Parallel()

	passwords := []string{"alpha-one", "bravo-two", "charlie-three"}
	a := NewAnalyzer(WithLogger(discardLogger()))
	ba := NewBatchAnalyzer(a, WithBatchLogger(discardLogger()))

	var mu sync.Mutex
	seen := make(map[int]*model.AnalysisReport)

	err := ba.ProcessBatchWithCallback(context.Background(), passwords, nil,
		func(report *model.AnalysisReport, index int) {
			mu.Lock()
			defer mu.Unlock()
			seen[index] = report
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seen) != len(passwords) {
		t.Fatalf("callback fired %d times, expected %d", len(seen), len(passwords))
	}
	for i := range passwords {
		report, ok := seen[i]
		if !ok {
			t.Errorf("callback never fired for index %d", i)
			continue
		}
		if report == nil {
			t.Errorf("callback received nil report for index %d", i)
			continue
		}
		if report.Fingerprint != Fingerprint(passwords[i]) {
			t.Errorf("callback report for index %d does not match its password", i)
		}
	}
}
