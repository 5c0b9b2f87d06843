// Package tokenize splits raw log lines into ordered tokens and rewrites
// value-shaped tokens (hex addresses, uuids, thread ids, timestamps, large
// numbers) into canonical placeholders.
package tokenize

import "strings"

// indentGlyphs is the character set treated as indentation when it forms a
// leading run: whitespace plus the tree-drawing glyphs that sample reports
// use for call depth. Stripping it keeps indentation out of alignment.
const indentGlyphs = " \t+!|:"

// Token is one whitespace-delimited token together with its normalized form.
type Token struct {
	Raw  string
	Norm string
}

// Tokenize strips the leading indentation run and splits the line on
// whitespace runs. A blank line yields no tokens.
func Tokenize(line string) []Token {
	fields := strings.Fields(strings.TrimLeft(line, indentGlyphs))
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Raw: f, Norm: Normalize(f)}
	}
	return tokens
}
