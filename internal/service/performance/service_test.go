package performance

import (
	"bytes"
	"errors"
	"testing"

	"github.com/csaops/shrinkage-backend-go/internal/domain/performance"
	"github.com/csaops/shrinkage-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, header []string, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParsePerformanceWorkbook(t *testing.T) {
	header := []string{"username", "week", "metric1", "metric2"}
	rows := [][]string{
		{"csa1", "1", "80.5", "12"},
		{"csa1", "2", "82", "11.5"},
		{"", "3", "90", "10"},
		{"csa2", "bad", "90", "10"},
	}

	metrics, err := parsePerformanceWorkbook(buildWorkbook(t, header, rows))
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	assert.Equal(t, "csa1", metrics[0].Username)
	assert.Equal(t, 1, metrics[0].Week)
	assert.Equal(t, 80.5, metrics[0].Metric1)
	assert.Equal(t, 12.0, metrics[0].Metric2)
}

func TestParsePerformanceWorkbookMissingColumns(t *testing.T) {
	header := []string{"username", "week"}
	rows := [][]string{{"csa1", "1"}}

	_, err := parsePerformanceWorkbook(buildWorkbook(t, header, rows))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schedule.ErrImportColumnsMissing))
	assert.Contains(t, err.Error(), "metric1")
	assert.Contains(t, err.Error(), "metric2")
}

func TestBuildTrendDeltas(t *testing.T) {
	metrics := []performance.Metric{
		{Username: "csa1", Week: 3, Metric1: 85, Metric2: 9},
		{Username: "csa1", Week: 1, Metric1: 80, Metric2: 12},
		{Username: "csa1", Week: 2, Metric1: 82.5, Metric2: 11},
	}

	trend := buildTrend("csa1", metrics)
	require.Len(t, trend.Rows, 3)

	// weeks come back ascending regardless of input order
	assert.Equal(t, 1, trend.Rows[0].Week)
	assert.Equal(t, 2, trend.Rows[1].Week)
	assert.Equal(t, 3, trend.Rows[2].Week)

	assert.Nil(t, trend.Rows[0].Metric1Delta)
	assert.Nil(t, trend.Rows[0].Metric2Delta)

	require.NotNil(t, trend.Rows[1].Metric1Delta)
	assert.Equal(t, 2.5, *trend.Rows[1].Metric1Delta)
	require.NotNil(t, trend.Rows[1].Metric2Delta)
	assert.Equal(t, -1.0, *trend.Rows[1].Metric2Delta)

	require.NotNil(t, trend.Rows[2].Metric1Delta)
	assert.Equal(t, 2.5, *trend.Rows[2].Metric1Delta)
}

func TestRenderTrendCSV(t *testing.T) {
	metrics := []performance.Metric{
		{Username: "csa1", Week: 1, Metric1: 80, Metric2: 12},
		{Username: "csa1", Week: 2, Metric1: 82.5, Metric2: 11},
	}

	data, err := renderTrendCSV(buildTrend("csa1", metrics))
	require.NoError(t, err)

	want := "username,week,metric1,metric1_delta,metric2,metric2_delta\n" +
		"csa1,1,80.00,,12.00,\n" +
		"csa1,2,82.50,2.50,11.00,-1.00\n"
	assert.Equal(t, want, string(data))
}
