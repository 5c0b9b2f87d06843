package tokenize

import "regexp"

// Shape classifies the syntactic form of a whole token.
type Shape int

const (
	ShapeRaw Shape = iota
	ShapeAddr
	ShapeHex
	ShapeUUID
	ShapeThreadID
	ShapeTime
	ShapeNum
)

// shapeRule rewrites one token shape to its placeholder. Rules run in
// priority order because shapes overlap: a bracketed address also contains
// a bare hex literal, and a hex literal can satisfy the long-digit-run rule.
type shapeRule struct {
	shape       Shape
	pattern     *regexp.Regexp
	placeholder string
}

var shapeRules = []shapeRule{
	// Bracketed addresses like [0x106111f74]
	{ShapeAddr, regexp.MustCompile(`\[0x[0-9a-fA-F]+\]`), "<addr>"},
	// Hex literals like 0x104fc4000
	{ShapeHex, regexp.MustCompile(`0x[0-9a-fA-F]+`), "<hex>"},
	// UUIDs like <4B0BCBB4-2271-376E-B5C3-CC18D418FC11>, delimiters optional
	{ShapeUUID, regexp.MustCompile(`<?[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}>?`), "<uuid>"},
	// Thread identifiers like Thread_4243153; the prefix is kept
	{ShapeThreadID, regexp.MustCompile(`\bThread_\d+\b`), "Thread_<id>"},
	// Time of day like 07:28:03 or 22:18:29.360
	{ShapeTime, regexp.MustCompile(`\b\d{2}:\d{2}:\d{2}(?:\.\d+)?`), "<time>"},
	// Digit runs of 5+ are identifiers; short ones (frame counts, offsets) stay
	{ShapeNum, regexp.MustCompile(`\b\d{5,}\b`), "<num>"},
}

// Normalize rewrites every recognized shape inside the token with its
// placeholder, in rule priority order. Shapes embedded in a larger token
// are rewritten in place, so "sshd[24245]:" becomes "sshd[<num>]:".
// Tokens without a recognized shape pass through unchanged. Normalize is
// idempotent: no placeholder contains a digit run or hex prefix, so a
// second pass matches nothing.
func Normalize(token string) string {
	out := token
	for _, rule := range shapeRules {
		out = rule.pattern.ReplaceAllString(out, rule.placeholder)
	}
	return out
}

// Classify reports the shape that matches the token in its entirety, or
// ShapeRaw when no rule covers the whole token.
func Classify(token string) Shape {
	for _, rule := range shapeRules {
		if m := rule.pattern.FindString(token); m == token {
			return rule.shape
		}
	}
	return ShapeRaw
}
