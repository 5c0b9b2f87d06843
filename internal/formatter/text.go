package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/LogPress/internal/compress"
)

// textFormatter emits the canonical compact format: one header line per
// cluster in first-seen order, an exemplar line whenever the skeleton has
// placeholders, and one trailing line per Binary Images section.
type textFormatter struct{}

// NewText creates the plain text formatter.
func NewText() Formatter {
	return &textFormatter{}
}

func (f *textFormatter) Format(summary *compress.Summary) ([]byte, error) {
	var b strings.Builder

	for _, c := range summary.Clusters {
		if c.Skeleton == "" {
			fmt.Fprintf(&b, "[%dx]\n", c.Count)
		} else {
			fmt.Fprintf(&b, "[%dx] %s\n", c.Count, c.Skeleton)
		}
		if len(c.Placeholders) > 0 {
			parts := make([]string, len(c.Placeholders))
			for i, p := range c.Placeholders {
				parts[i] = fmt.Sprintf("<%d>: %s", p.Index, strings.Join(p.Values, ", "))
			}
			fmt.Fprintf(&b, "    %s\n", strings.Join(parts, " | "))
		}
	}

	for _, sec := range summary.Sections {
		if sec.SystemOmitted > 0 {
			fmt.Fprintf(&b, "[%d system libraries omitted]\n", sec.SystemOmitted)
		}
	}

	return []byte(b.String()), nil
}
