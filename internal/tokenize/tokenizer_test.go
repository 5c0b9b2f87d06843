package tokenize

import "testing"

func TestTokenizeStripsIndentation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain line",
			input: "load address done",
			want:  []string{"load", "address", "done"},
		},
		{
			name:  "leading spaces",
			input: "    frame one",
			want:  []string{"frame", "one"},
		},
		{
			name:  "sample report tree glyphs",
			input: "+   1744 ???  (in Live)",
			want:  []string{"1744", "???", "(in", "Live)"},
		},
		{
			name:  "mixed glyph run",
			input: "  ! : | + deep frame",
			want:  []string{"deep", "frame"},
		},
		{
			name:  "glyphs inside the line survive",
			input: "a + b",
			want:  []string{"a", "+", "b"},
		},
		{
			name:  "tabs",
			input: "\t\tindented",
			want:  []string{"indented"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) returned %d tokens, want %d", tt.input, len(got), len(tt.want))
			}
			for i, tok := range got {
				if tok.Raw != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, tok.Raw, tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeBlankLine(t *testing.T) {
	for _, input := range []string{"", "   ", "\t", "+ | !"} {
		if got := Tokenize(input); len(got) != 0 {
			t.Errorf("Tokenize(%q) = %d tokens, want 0", input, len(got))
		}
	}
}

func TestTokenizeNormalizesEachToken(t *testing.T) {
	tokens := Tokenize("+   1744 Thread_4243153 at 0x104fc4000")
	want := []struct{ raw, norm string }{
		{"1744", "1744"},
		{"Thread_4243153", "Thread_<id>"},
		{"at", "at"},
		{"0x104fc4000", "<hex>"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Raw != w.raw || tokens[i].Norm != w.norm {
			t.Errorf("token %d = {%q %q}, want {%q %q}", i, tokens[i].Raw, tokens[i].Norm, w.raw, w.norm)
		}
	}
}
