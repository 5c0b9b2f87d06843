package formatter

import (
	"encoding/json"

	"github.com/yildizm/LogPress/internal/compress"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

// JSONOutput wraps the summary with derived totals for programmatic use.
type JSONOutput struct {
	Summary  *SummaryOutput          `json:"summary"`
	Clusters []*compress.Cluster     `json:"clusters"`
	Images   []compress.ImageSection `json:"binary_images,omitempty"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	TotalLines   int     `json:"total_lines"`
	ClusterCount int     `json:"cluster_count"`
	ReductionPct float64 `json:"reduction_pct"`
}

func (f *jsonFormatter) Format(summary *compress.Summary) ([]byte, error) {
	output := &JSONOutput{
		Summary: &SummaryOutput{
			TotalLines:   summary.TotalLines,
			ClusterCount: summary.ClusterCount(),
			ReductionPct: summary.Reduction(),
		},
		Clusters: summary.Clusters,
		Images:   summary.Sections,
	}
	return json.MarshalIndent(output, "", "  ")
}
