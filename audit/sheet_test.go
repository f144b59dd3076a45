package audit

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/straddleshift/configapi/api/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testConfig() *strategy.ConfigModel {
	return &strategy.ConfigModel{
		ClientID:    "CL001",
		StrategyID:  "CST0005",
		Start:       true,
		CallEntry:   true,
		OTMPoints:   50,
		HedgePoints: 20,
		ShiftPoints: 10,
		Symbol:      "NIFTY",
		ExpiryNo:    0,
		OrderLot:    1,
		StartTime:   "09:15:00",
		EndTime:     "15:15:00",
	}
}

func newTestSheet(t *testing.T) *Sheet {
	t.Helper()
	sheet, err := NewSheet(filepath.Join(t.TempDir(), "audit.xlsx"), "Saves")
	require.NoError(t, err)
	sheet.now = func() time.Time {
		return time.Date(2025, 8, 26, 10, 30, 0, 0, time.UTC)
	}
	return sheet
}

func readRows(t *testing.T, sheet *Sheet) [][]string {
	t.Helper()
	fx, err := excelize.OpenFile(sheet.path)
	require.NoError(t, err)
	defer fx.Close()

	rows, err := fx.GetRows(sheet.sheet)
	require.NoError(t, err)
	return rows
}

func TestAppend_WritesHeaderAndRow(t *testing.T) {
	sheet := newTestSheet(t)

	require.NoError(t, sheet.Append("CL001", testConfig()))

	rows := readRows(t, sheet)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])

	row := rows[1]
	require.Len(t, row, len(Header))
	// 10:30 UTC is 16:00 IST
	assert.Equal(t, "2025-08-26 16:00:00", row[0])
	assert.Equal(t, "2025-08-26 10:30:00", row[1])
	assert.Equal(t, "CL001", row[2])
	assert.Equal(t, "CST0005", row[3])
	assert.Equal(t, "true", row[4])   // Start
	assert.Equal(t, "false", row[5])  // Pause
	assert.Equal(t, "false", row[6])  // Stop
	assert.Equal(t, "true", row[7])   // CallEntry
	assert.Equal(t, "false", row[8])  // PutEntry
	assert.Equal(t, "false", row[9])  // ShiftHedge
	assert.Equal(t, "false", row[10]) // FirstEntry
	assert.Equal(t, "10", row[11])    // ShiftPoints
	assert.Equal(t, "20", row[12])    // HedgePoints
	assert.Equal(t, "50", row[13])    // OTMPoints
	assert.Equal(t, "NIFTY", row[14])
	assert.Equal(t, "0", row[15]) // ExpiryNo
	assert.Equal(t, "1", row[16]) // OrderLot
	assert.Equal(t, "09:15:00", row[17])
	assert.Equal(t, "15:15:00", row[18])
}

func TestAppend_HeaderWrittenOnlyOnce(t *testing.T) {
	sheet := newTestSheet(t)

	require.NoError(t, sheet.Append("CL001", testConfig()))
	require.NoError(t, sheet.Append("CL001", testConfig()))
	require.NoError(t, sheet.Append("CL002", testConfig()))

	rows := readRows(t, sheet)
	require.Len(t, rows, 4)
	assert.Equal(t, Header, rows[0])
	for _, row := range rows[1:] {
		assert.NotEqual(t, Header, row)
	}
	// Rows land in save order, after all pre-existing rows
	assert.Equal(t, "CL001", rows[1][2])
	assert.Equal(t, "CL001", rows[2][2])
	assert.Equal(t, "CL002", rows[3][2])
}

func TestEnsureHeader_Idempotent(t *testing.T) {
	sheet := newTestSheet(t)

	require.NoError(t, sheet.EnsureHeader())
	require.NoError(t, sheet.EnsureHeader())

	rows := readRows(t, sheet)
	require.Len(t, rows, 1)
	assert.Equal(t, Header, rows[0])
}

func TestAppend_AfterEnsureHeader(t *testing.T) {
	sheet := newTestSheet(t)

	require.NoError(t, sheet.EnsureHeader())
	require.NoError(t, sheet.Append("CL001", testConfig()))

	rows := readRows(t, sheet)
	require.Len(t, rows, 2)
	assert.Equal(t, "CL001", rows[1][2])
}

func TestAppend_CreatesMissingWorksheet(t *testing.T) {
	sheet := newTestSheet(t)

	// Workbook exists, but under a different worksheet name
	fx := excelize.NewFile()
	require.NoError(t, fx.SaveAs(sheet.path))
	require.NoError(t, fx.Close())

	require.NoError(t, sheet.Append("CL001", testConfig()))

	rows := readRows(t, sheet)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
}
