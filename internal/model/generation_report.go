package model

import "time"

// GenerationReport records the outcome of one wordlist generation run.
// It carries everything needed to reproduce the run except the produced
// candidates themselves, which live only in the output file.
type GenerationReport struct {
	// DateGenerated is when the run was performed.
	DateGenerated time.Time `json:"date_generated"`

	// Keywords are the seed inputs after flag parsing, before tokenization.
	Keywords []string `json:"keywords"`

	// BaseTokens is the number of distinct tokens after tokenization.
	BaseTokens int `json:"base_tokens"`

	// Candidates is the number of candidates written.
	Candidates int `json:"candidates"`

	// Truncated is true when the size cap stopped the expansion early.
	Truncated bool `json:"truncated"`

	// MaxSize is the size cap the run was performed under.
	MaxSize int `json:"max_size"`

	// === Expansion Settings ===

	// Years are the decoration years after parsing the year spec.
	Years []int `json:"years"`

	// Separators are the joiner strings used for token combination.
	Separators []string `json:"separators"`

	// LeetEnabled is true when leetspeak substitution was applied.
	LeetEnabled bool `json:"leet_enabled"`

	// LeetMax is the per-token leet variant budget.
	LeetMax int `json:"leet_max"`

	// === Output ===

	// OutputPath is where the wordlist was written. Empty for dry runs.
	OutputPath string `json:"output_path,omitempty"`

	// Checksum is the SHA3-256 digest (hex) of the written file.
	Checksum string `json:"checksum,omitempty"`

	// Duration is how long the expansion took.
	Duration time.Duration `json:"duration_ns"`
}

// NewGenerationReport creates a report for the given seed keywords with the
// generation timestamp set.
func NewGenerationReport(keywords []string) *GenerationReport {
	return &GenerationReport{
		DateGenerated: time.Now(),
		Keywords:      keywords,
	}
}

// KeywordSummary returns the keywords joined for compact listings.
func (g *GenerationReport) KeywordSummary() string {
	const sep = ", "
	summary := ""
	for i, k := range g.Keywords {
		if i > 0 {
			summary += sep
		}
		summary += k
	}
	return summary
}
