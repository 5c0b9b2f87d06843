// Package compress implements the line-pattern mining engine. Input lines
// are tokenized and normalized, grouped into buckets by token count,
// classified column-by-column with Shannon entropy, and collapsed into
// clusters keyed by their structural skeleton.
package compress

// Options holds the engine tunables.
type Options struct {
	// EntropyThreshold is the per-column entropy (bits) above which a
	// column counts as variable.
	EntropyThreshold float64
	// ExemplarCap bounds the sample values kept per placeholder.
	ExemplarCap int
}

// DefaultOptions returns the pinned engine defaults.
func DefaultOptions() Options {
	return Options{
		EntropyThreshold: 1.5,
		ExemplarCap:      5,
	}
}

// Placeholder holds the sample values observed at one variable column.
// Values are deduplicated in first-seen order and capped.
type Placeholder struct {
	Index  int      `json:"index"`
	Values []string `json:"values"`
}

// Cluster aggregates every line that produced the same skeleton.
type Cluster struct {
	Skeleton     string        `json:"skeleton"`
	Count        int           `json:"count"`
	FirstSeen    int           `json:"first_seen"`
	Placeholders []Placeholder `json:"placeholders,omitempty"`
}

// ImageSection records one Binary Images section found in the input.
type ImageSection struct {
	SystemOmitted int `json:"system_omitted"`
}

// Summary is the result of one compression run. Clusters are ordered by
// the first appearance of their skeleton in the input, matching the
// reading order of the original log.
type Summary struct {
	TotalLines int            `json:"total_lines"`
	Clusters   []*Cluster     `json:"clusters"`
	Sections   []ImageSection `json:"binary_images,omitempty"`
}

// ClusterCount returns the number of distinct skeletons mined.
func (s *Summary) ClusterCount() int {
	return len(s.Clusters)
}

// Reduction returns the percentage of input lines saved by compression,
// counting one record per cluster and one line per section summary.
func (s *Summary) Reduction() float64 {
	if s.TotalLines == 0 {
		return 0
	}
	rendered := len(s.Clusters) + len(s.Sections)
	saved := s.TotalLines - rendered
	if saved < 0 {
		saved = 0
	}
	return float64(saved) / float64(s.TotalLines) * 100
}
