package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/LogPress/internal/compress"
)

func TestTextFormatClusterWithPlaceholders(t *testing.T) {
	summary := &compress.Summary{
		TotalLines: 3,
		Clusters: []*compress.Cluster{
			{
				Skeleton: "Failed password for root from 112.95.230.3 port <0> ssh2",
				Count:    3,
				Placeholders: []compress.Placeholder{
					{Index: 0, Values: []string{"54087", "55618", "57138"}},
				},
			},
		},
	}

	out, err := NewText().Format(summary)
	require.NoError(t, err)

	want := "[3x] Failed password for root from 112.95.230.3 port <0> ssh2\n" +
		"    <0>: 54087, 55618, 57138\n"
	assert.Equal(t, want, string(out))
}

func TestTextFormatMultiplePlaceholders(t *testing.T) {
	summary := &compress.Summary{
		TotalLines: 2,
		Clusters: []*compress.Cluster{
			{
				Skeleton: "load address <hex> + <0> <1>",
				Count:    2,
				Placeholders: []compress.Placeholder{
					{Index: 0, Values: []string{"0x115bc98", "0x115c9c0"}},
					{Index: 1, Values: []string{"[0x115bc984]", "[0x115c9c04]"}},
				},
			},
		},
	}

	out, err := NewText().Format(summary)
	require.NoError(t, err)

	want := "[2x] load address <hex> + <0> <1>\n" +
		"    <0>: 0x115bc98, 0x115c9c0 | <1>: [0x115bc984], [0x115c9c04]\n"
	assert.Equal(t, want, string(out))
}

func TestTextFormatLiteralClusterHasNoExemplarLine(t *testing.T) {
	summary := &compress.Summary{
		TotalLines: 4,
		Clusters: []*compress.Cluster{
			{Skeleton: "server started", Count: 4},
		},
	}

	out, err := NewText().Format(summary)
	require.NoError(t, err)
	assert.Equal(t, "[4x] server started\n", string(out))
}

func TestTextFormatBlankCluster(t *testing.T) {
	summary := &compress.Summary{
		TotalLines: 2,
		Clusters: []*compress.Cluster{
			{Skeleton: "", Count: 2},
		},
	}

	out, err := NewText().Format(summary)
	require.NoError(t, err)
	// Bare count, no trailing space.
	assert.Equal(t, "[2x]\n", string(out))
}

func TestTextFormatImageSections(t *testing.T) {
	summary := &compress.Summary{
		TotalLines: 1007,
		Clusters: []*compress.Cluster{
			{Skeleton: "app frame", Count: 7},
		},
		Sections: []compress.ImageSection{
			{SystemOmitted: 1000},
		},
	}

	out, err := NewText().Format(summary)
	require.NoError(t, err)

	want := "[7x] app frame\n" +
		"[1000 system libraries omitted]\n"
	assert.Equal(t, want, string(out))
}

func TestTextFormatEmptySectionOmitted(t *testing.T) {
	summary := &compress.Summary{
		TotalLines: 1,
		Clusters: []*compress.Cluster{
			{Skeleton: "only line", Count: 1},
		},
		Sections: []compress.ImageSection{
			{SystemOmitted: 0},
		},
	}

	out, err := NewText().Format(summary)
	require.NoError(t, err)
	assert.Equal(t, "[1x] only line\n", string(out))
}

func TestTextFormatEmptySummary(t *testing.T) {
	out, err := NewText().Format(&compress.Summary{})
	require.NoError(t, err)
	assert.Empty(t, out)
}
