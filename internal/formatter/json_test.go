package formatter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/LogPress/internal/compress"
)

func TestJSONFormat(t *testing.T) {
	summary := &compress.Summary{
		TotalLines: 10,
		Clusters: []*compress.Cluster{
			{
				Skeleton:  "req id <0>",
				Count:     8,
				FirstSeen: 0,
				Placeholders: []compress.Placeholder{
					{Index: 0, Values: []string{"10001", "10002"}},
				},
			},
			{Skeleton: "server started", Count: 1, FirstSeen: 1},
		},
		Sections: []compress.ImageSection{{SystemOmitted: 42}},
	}

	out, err := NewJSON().Format(summary)
	require.NoError(t, err)

	var decoded JSONOutput
	require.NoError(t, json.Unmarshal(out, &decoded))

	require.NotNil(t, decoded.Summary)
	assert.Equal(t, 10, decoded.Summary.TotalLines)
	assert.Equal(t, 2, decoded.Summary.ClusterCount)
	assert.InDelta(t, 70.0, decoded.Summary.ReductionPct, 1e-9)

	require.Len(t, decoded.Clusters, 2)
	assert.Equal(t, "req id <0>", decoded.Clusters[0].Skeleton)
	assert.Equal(t, 8, decoded.Clusters[0].Count)
	require.Len(t, decoded.Clusters[0].Placeholders, 1)
	assert.Equal(t, []string{"10001", "10002"}, decoded.Clusters[0].Placeholders[0].Values)

	require.Len(t, decoded.Images, 1)
	assert.Equal(t, 42, decoded.Images[0].SystemOmitted)
}

func TestJSONFormatOmitsEmptyImages(t *testing.T) {
	out, err := NewJSON().Format(&compress.Summary{
		TotalLines: 1,
		Clusters:   []*compress.Cluster{{Skeleton: "x", Count: 1}},
	})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "binary_images")
}

func TestJSONFormatEmptySummary(t *testing.T) {
	out, err := NewJSON().Format(&compress.Summary{})
	require.NoError(t, err)

	var decoded JSONOutput
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, 0, decoded.Summary.TotalLines)
	assert.Equal(t, 0.0, decoded.Summary.ReductionPct)
	assert.Empty(t, decoded.Clusters)
}
