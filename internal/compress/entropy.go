package compress

import (
	"math"

	"github.com/yildizm/LogPress/internal/tokenize"
)

// row is one routed input line after tokenization, tagged with its input
// ordinal so clusters keep first-seen order.
type row struct {
	ordinal int
	tokens  []tokenize.Token
}

// bucket groups rows sharing one token count. Column statistics assume
// fixed arity, so rows with different token counts never share a bucket.
type bucket struct {
	width int
	rows  []*row
}

// classifyColumns decides per column whether the bucket's lines vary
// there. A column is variable when any of:
//   - its normalized values carry more than threshold bits of entropy
//   - every normalized value is distinct (entropy is too coarse to
//     separate small buckets)
//   - the normalizer collapsed differing raw values into one placeholder,
//     so the variability is hidden from the entropy measure
//
// A single-row bucket has nothing to compare and stays fully structural.
func (b *bucket) classifyColumns(threshold float64) []bool {
	variable := make([]bool, b.width)
	size := len(b.rows)
	if size < 2 {
		return variable
	}
	for col := 0; col < b.width; col++ {
		normCounts := make(map[string]int, size)
		rawCounts := make(map[string]int, size)
		collapsed := false
		for _, r := range b.rows {
			tok := r.tokens[col]
			normCounts[tok.Norm]++
			rawCounts[tok.Raw]++
			if tok.Norm != tok.Raw {
				collapsed = true
			}
		}
		switch {
		case shannonEntropy(normCounts, size) > threshold:
			variable[col] = true
		case len(normCounts) == size:
			variable[col] = true
		case len(normCounts) == 1 && collapsed && len(rawCounts) > 1:
			variable[col] = true
		}
	}
	return variable
}

// shannonEntropy computes H = -sum p(v)*log2(p(v)) over a value multiset.
func shannonEntropy(counts map[string]int, total int) float64 {
	var h float64
	for _, c := range counts {
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}
