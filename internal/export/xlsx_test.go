package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/JointCut/internal/layout"
)

func TestWriteCutListBox(t *testing.T) {
	req := boxRequest()
	path := filepath.Join(t.TempDir(), "cutlist.xlsx")
	require.NoError(t, WriteCutList(path, req, layout.PlanFor(req)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Cut List")
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	assert.Equal(t, "Joint Template Cut List", rows[0][0])

	// 10 span rows: alternating Finger/Gap.
	var fingers, gaps int
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		switch row[1] {
		case "Finger":
			fingers++
		case "Gap":
			gaps++
		}
	}
	assert.Equal(t, 5, fingers)
	assert.Equal(t, 5, gaps)
}

func TestWriteCutListDovetail(t *testing.T) {
	req := dovetailRequest()
	path := filepath.Join(t.TempDir(), "cutlist.xlsx")
	require.NoError(t, WriteCutList(path, req, layout.PlanFor(req)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Cut List")
	require.NoError(t, err)

	var sawPinWidth bool
	for _, row := range rows {
		if len(row) >= 2 && row[0] == "Pin width (mm)" {
			sawPinWidth = true
			assert.Equal(t, "10", row[1])
		}
	}
	assert.True(t, sawPinWidth, "pin width row missing")
}
