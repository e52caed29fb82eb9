package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaderboardDataset() Dataset {
	return Dataset{
		Headers: []string{"Rank", "Player", "Shifts"},
		Rows: []map[string]string{
			{"Rank": "1", "Player": "Matti", "Shifts": "2"},
			{"Rank": "2", "Player": "Äijälä", "Shifts": "1"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(leaderboardDataset())
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(out, utf8BOM))
	assert.Equal(t, "Rank;Player;Shifts\n1;Matti;2\n2;Äijälä;1\n", string(out[len(utf8BOM):]))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter(20, 0, 30).Render(leaderboardDataset(), "Toimitsijavuorot")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFExporterWidths(t *testing.T) {
	widths := NewPDFExporter(20, 0, 30).widths(3, 190)
	assert.Equal(t, []float64{20, 140, 30}, widths)
}
