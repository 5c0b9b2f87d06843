package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/LogPress/internal/compress"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(summary *compress.Summary) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Log Compression Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	f.writeSummaryTable(&b, summary)
	f.writeClusterSection(&b, summary)
	f.writeImagesSection(&b, summary)

	return []byte(b.String()), nil
}

func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, summary *compress.Summary) {
	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Input Lines | %d |\n", summary.TotalLines)
	fmt.Fprintf(b, "| Clusters | %d |\n", summary.ClusterCount())
	fmt.Fprintf(b, "| Reduction | %.1f%% |\n\n", summary.Reduction())
}

func (f *markdownFormatter) writeClusterSection(b *strings.Builder, summary *compress.Summary) {
	if len(summary.Clusters) == 0 {
		return
	}
	b.WriteString("## Clusters\n\n")
	for _, c := range summary.Clusters {
		skeleton := c.Skeleton
		if skeleton == "" {
			skeleton = "(blank line)"
		}
		fmt.Fprintf(b, "- **%dx** `%s`\n", c.Count, skeleton)
		for _, p := range c.Placeholders {
			fmt.Fprintf(b, "  - `<%d>`: %s\n", p.Index, strings.Join(p.Values, ", "))
		}
	}
	b.WriteString("\n")
}

func (f *markdownFormatter) writeImagesSection(b *strings.Builder, summary *compress.Summary) {
	total := 0
	for _, sec := range summary.Sections {
		total += sec.SystemOmitted
	}
	if total == 0 {
		return
	}
	b.WriteString("## Binary Images\n\n")
	fmt.Fprintf(b, "%d system libraries omitted\n", total)
}
