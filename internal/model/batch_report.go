package model

import "time"

// BatchReport aggregates the results of analyzing a list of passwords.
// It extracts the distribution and the weakest entries from the individual
// reports for quick review.
//
// Design decision: We keep both the aggregate counts and the embedded
// per-password reports rather than counts alone because:
// 1. The JSON form stays self-contained for downstream tooling
// 2. Report writers can render detail sections without a second pass
// 3. The weakest-entry selection stays reproducible from the same document
type BatchReport struct {
	// Source describes where the passwords came from (file path or "args").
	Source string `json:"source"`

	// DateAnalyzed is when the batch run was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Total is the number of passwords analyzed.
	Total int `json:"total"`

	// === Score Distribution ===

	// VeryWeakCount is the number of passwords at level VERY WEAK.
	VeryWeakCount int `json:"very_weak_count"`

	// WeakCount is the number of passwords at level WEAK.
	WeakCount int `json:"weak_count"`

	// FairCount is the number of passwords at level FAIR.
	FairCount int `json:"fair_count"`

	// StrongCount is the number of passwords at level STRONG.
	StrongCount int `json:"strong_count"`

	// VeryStrongCount is the number of passwords at level VERY STRONG.
	VeryStrongCount int `json:"very_strong_count"`

	// === Detail ===

	// Reports holds the individual analyses in input order.
	Reports []*AnalysisReport `json:"reports,omitempty"`
}

// NewBatchReport creates an empty batch report for the given source.
func NewBatchReport(source string) *BatchReport {
	return &BatchReport{
		Source:       source,
		DateAnalyzed: time.Now(),
	}
}

// Add appends an analysis result and updates the distribution counts.
// Nil reports are ignored so callers can pass through skipped entries.
func (b *BatchReport) Add(r *AnalysisReport) {
	if r == nil {
		return
	}
	b.Reports = append(b.Reports, r)
	b.Total++
	switch r.Level {
	case LevelVeryWeak:
		b.VeryWeakCount++
	case LevelWeak:
		b.WeakCount++
	case LevelFair:
		b.FairCount++
	case LevelStrong:
		b.StrongCount++
	case LevelVeryStrong:
		b.VeryStrongCount++
	}
}

// CountByLevel returns the number of passwords at the given level.
func (b *BatchReport) CountByLevel(level StrengthLevel) int {
	switch level {
	case LevelVeryWeak:
		return b.VeryWeakCount
	case LevelWeak:
		return b.WeakCount
	case LevelFair:
		return b.FairCount
	case LevelStrong:
		return b.StrongCount
	case LevelVeryStrong:
		return b.VeryStrongCount
	default:
		return 0
	}
}

// WeakTotal returns the number of passwords at WEAK or below.
func (b *BatchReport) WeakTotal() int {
	return b.VeryWeakCount + b.WeakCount
}

// Weakest returns up to n reports with the lowest scores, ties broken by
// input order. n <= 0 returns nil.
func (b *BatchReport) Weakest(n int) []*AnalysisReport {
	if n <= 0 {
		return nil
	}
	var result []*AnalysisReport
	for level := LevelVeryWeak; level <= LevelVeryStrong; level++ {
		for _, r := range b.Reports {
			if r.Level != level {
				continue
			}
			result = append(result, r)
			if len(result) == n {
				return result
			}
		}
	}
	return result
}
