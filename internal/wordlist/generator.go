package wordlist

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
)

// Generator errors.
var (
	// ErrNoTokens is returned when the keywords tokenize to nothing.
	ErrNoTokens = errors.New("keywords produced no tokens")
)

const (
	// DefaultMaxSize is the default cap on produced candidates.
	DefaultMaxSize = 50000

	// DefaultLeetBudget is the default per-expansion bound on leetspeak
	// variants.
	DefaultLeetBudget = 128
)

// DefaultSeparators returns the default joiner strings used between token
// pairs. The empty separator produces plain concatenations.
func DefaultSeparators() []string {
	return []string{"", "_", "-", "."}
}

// Result holds the outcome of a generation run.
type Result struct {
	// BaseTokens are the deduplicated tokens the keywords expanded from,
	// including lemma variants.
	BaseTokens []string

	// Candidates are the produced candidate passwords in generation order.
	Candidates []string

	// Truncated reports whether the size cap cut generation short.
	Truncated bool
}

// Generator expands personal keywords into password candidates. Create one
// with NewGenerator and options; the zero value is not usable.
//
// Expansion runs in fixed stages (case forms, leetspeak, separator joins,
// year decoration) over a shared candidate set, so the output for a given
// configuration and input is deterministic.
type Generator struct {
	// tokenizer splits and lemmatizes the raw keywords.
	tokenizer *Tokenizer

	// years decorate candidates as suffixes and prefixes. Empty means no
	// year decoration.
	years []int

	// separators join candidate pairs. Empty means no pair joining.
	separators []string

	// leet enables leetspeak expansion.
	leet bool

	// leetBudget bounds the variants per leetspeak expansion.
	leetBudget int

	// maxSize caps the total number of candidates.
	maxSize int

	// logger is used for stage-level debug logging.
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithTokenizer sets the tokenizer. Useful to share one dictionary load
// across runs.
func WithTokenizer(t *Tokenizer) Option {
	return func(g *Generator) {
		if t != nil {
			g.tokenizer = t
		}
	}
}

// WithYears sets the years used for decoration. Use ParseYears to build
// the slice from a spec string.
func WithYears(years []int) Option {
	return func(g *Generator) {
		g.years = years
	}
}

// WithSeparators sets the joiner strings for pair combination. Passing nil
// keeps the default set.
func WithSeparators(separators []string) Option {
	return func(g *Generator) {
		if separators != nil {
			g.separators = separators
		}
	}
}

// WithLeet enables or disables leetspeak expansion.
func WithLeet(enabled bool) Option {
	return func(g *Generator) {
		g.leet = enabled
	}
}

// WithLeetBudget bounds the number of variants per leetspeak expansion.
func WithLeetBudget(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.leetBudget = n
		}
	}
}

// WithMaxSize caps the total number of produced candidates.
func WithMaxSize(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxSize = n
		}
	}
}

// WithLogger sets a custom logger for generation logging.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator with the given options. Defaults match
// the classic targeted-wordlist setup: leetspeak on with a budget of 128,
// separators ["", "_", "-", "."], cap 50000, no years.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		separators: DefaultSeparators(),
		leet:       true,
		leetBudget: DefaultLeetBudget,
		maxSize:    DefaultMaxSize,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.tokenizer == nil {
		g.tokenizer = NewTokenizer()
	}

	return g
}

// Generate expands the keywords into a candidate list. It returns
// ErrNoTokens when the keywords tokenize to nothing, and the context error
// when cancelled between or inside stages.
func (g *Generator) Generate(ctx context.Context, keywords []string) (*Result, error) {
	base := g.tokenizer.Tokenize(keywords)
	if len(base) == 0 {
		return nil, ErrNoTokens
	}

	set := newCandidateSet(g.maxSize)
	stages := []struct {
		name string
		run  func(context.Context, *candidateSet) error
	}{
		{"expand", func(ctx context.Context, s *candidateSet) error {
			return g.expandTokens(ctx, s, base)
		}},
		{"join", g.joinPairs},
		{"decorate", g.decorateYears},
	}

	for _, stage := range stages {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		before := set.size()
		if err := stage.run(ctx, set); err != nil {
			return nil, err
		}
		g.logger.Debug("expansion stage complete",
			"stage", stage.name,
			"added", set.size()-before,
			"candidates", set.size(),
			"truncated", set.truncated,
		)
	}

	return &Result{
		BaseTokens: base,
		Candidates: set.items,
		Truncated:  set.truncated,
	}, nil
}

// expandTokens adds the case forms of every base token, plus the leetspeak
// variants of each case form when enabled.
func (g *Generator) expandTokens(ctx context.Context, set *candidateSet, base []string) error {
	for _, token := range base {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		variants := CaseVariants(token)
		for _, v := range variants {
			if !set.add(v) {
				return nil
			}
		}

		if !g.leet {
			continue
		}
		for _, v := range variants {
			for _, leet := range LeetVariants(v, g.leetBudget) {
				if !set.add(leet) {
					return nil
				}
			}
		}
	}

	return nil
}

// joinPairs adds every ordered pair of current candidates joined with each
// separator. Pairs are built from a snapshot, so joins are never re-joined.
func (g *Generator) joinPairs(ctx context.Context, set *candidateSet) error {
	if len(g.separators) == 0 {
		return nil
	}

	snapshot := set.snapshot()
	for i, a := range snapshot {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for j, b := range snapshot {
			if i == j {
				continue
			}
			for _, sep := range g.separators {
				if !set.add(a + sep + b) {
					return nil
				}
			}
		}
	}

	return nil
}

// decorateYears adds year-decorated forms of every current candidate: full
// year appended, two-digit year appended, full year prepended.
func (g *Generator) decorateYears(ctx context.Context, set *candidateSet) error {
	if len(g.years) == 0 {
		return nil
	}

	type yearForm struct {
		full  string
		short string
	}
	forms := make([]yearForm, 0, len(g.years))
	for _, year := range g.years {
		full := strconv.Itoa(year)
		short := full
		if len(full) > 2 {
			short = full[len(full)-2:]
		}
		forms = append(forms, yearForm{full: full, short: short})
	}

	snapshot := set.snapshot()
	for _, candidate := range snapshot {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		for _, form := range forms {
			if !set.add(candidate + form.full) {
				return nil
			}
			if !set.add(candidate + form.short) {
				return nil
			}
			if !set.add(form.full + candidate) {
				return nil
			}
		}
	}

	return nil
}

// candidateSet accumulates candidates with set semantics while preserving
// insertion order. Inserts beyond the limit are refused and mark the set
// truncated.
type candidateSet struct {
	seen      map[string]struct{}
	items     []string
	limit     int
	truncated bool
}

// newCandidateSet creates a candidateSet holding at most limit items.
func newCandidateSet(limit int) *candidateSet {
	return &candidateSet{
		seen:  make(map[string]struct{}),
		items: make([]string, 0, min(limit, 1024)),
		limit: limit,
	}
}

// add inserts a candidate and reports whether the set can accept more.
// Duplicates are swallowed and report true, so callers only stop on a full
// set.
func (s *candidateSet) add(candidate string) bool {
	if _, ok := s.seen[candidate]; ok {
		return true
	}
	if len(s.items) >= s.limit {
		s.truncated = true
		return false
	}

	s.seen[candidate] = struct{}{}
	s.items = append(s.items, candidate)
	return true
}

// size returns the number of accepted candidates.
func (s *candidateSet) size() int {
	return len(s.items)
}

// snapshot returns a copy of the current candidates, so a stage can iterate
// while adding.
func (s *candidateSet) snapshot() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
