package compress

import (
	"fmt"
	"strings"

	"github.com/yildizm/LogPress/internal/tokenize"
)

// buildSkeleton renders the clustering key for one line: structural columns
// keep their normalized literal, variable columns become positional
// placeholders numbered by first occurrence within this skeleton. The raw
// value observed at each placeholder is returned alongside, in placeholder
// order. A blank line yields the empty skeleton.
func buildSkeleton(tokens []tokenize.Token, variable []bool) (string, []string) {
	if len(tokens) == 0 {
		return "", nil
	}
	parts := make([]string, len(tokens))
	var values []string
	next := 0
	for i, tok := range tokens {
		if variable[i] {
			parts[i] = fmt.Sprintf("<%d>", next)
			values = append(values, tok.Raw)
			next++
		} else {
			parts[i] = tok.Norm
		}
	}
	return strings.Join(parts, " "), values
}
