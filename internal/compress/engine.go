package compress

import "github.com/yildizm/LogPress/internal/tokenize"

// Engine runs the two-phase mining pipeline. Column classification needs
// full-bucket visibility, so every line is buffered and bucketed before
// any skeleton is derived; the second phase folds lines into clusters in
// input order.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with the pinned defaults.
func NewEngine() *Engine {
	return &Engine{opts: DefaultOptions()}
}

// NewEngineWithOptions creates an engine with custom tunables. A
// non-positive exemplar cap falls back to the default.
func NewEngineWithOptions(opts Options) *Engine {
	if opts.ExemplarCap <= 0 {
		opts.ExemplarCap = DefaultOptions().ExemplarCap
	}
	return &Engine{opts: opts}
}

// Compress mines the given lines and returns the clustered summary. It is
// total: unmatched token shapes stay raw, single-line buckets render as
// themselves, and empty input yields an empty summary.
func (e *Engine) Compress(lines []string) *Summary {
	summary := &Summary{TotalLines: len(lines)}

	regular, sections := splitImages(lines)
	summary.Sections = sections

	// Phase 1: tokenize and bucket by token count.
	rows := make([]*row, len(regular))
	buckets := make(map[int]*bucket)
	for i, line := range regular {
		r := &row{ordinal: i, tokens: tokenize.Tokenize(line)}
		rows[i] = r
		width := len(r.tokens)
		b, ok := buckets[width]
		if !ok {
			b = &bucket{width: width}
			buckets[width] = b
		}
		b.rows = append(b.rows, r)
	}

	// Phase 2: classify columns per bucket, then cluster in input order.
	variables := make(map[int][]bool, len(buckets))
	for width, b := range buckets {
		variables[width] = b.classifyColumns(e.opts.EntropyThreshold)
	}

	store := newClusterStore(e.opts.ExemplarCap)
	for _, r := range rows {
		skeleton, values := buildSkeleton(r.tokens, variables[len(r.tokens)])
		store.upsert(skeleton, values)
	}
	summary.Clusters = store.clusters()

	return summary
}
