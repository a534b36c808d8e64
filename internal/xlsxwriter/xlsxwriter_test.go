package xlsxwriter

import (
	"path/filepath"
	"testing"
	"time"

	"tribute-xlsx/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testSummary() models.QuarterSummary {
	return models.QuarterSummary{
		Lines: []models.SummaryLine{
			{Label: models.LineDonations, Count: 1, Sum: decimal.RequireFromString("100.00")},
			{Label: models.LineSubscriptions, Count: 1, Sum: decimal.RequireFromString("500.00")},
			{Label: models.LineTax, Count: 0, Sum: decimal.RequireFromString("30.00")},
			{Label: models.LineTotal, Count: 2, Sum: decimal.RequireFromString("600.00")},
		},
	}
}

func testRecords() []models.PaymentRecord {
	return []models.PaymentRecord{
		{
			Date:     time.Date(2024, time.February, 10, 12, 30, 0, 0, time.UTC),
			Sender:   "@alice",
			Amount:   decimal.RequireFromString("500.00"),
			Category: models.CategoryNewSubscription,
		},
		{
			Date:     time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
			Sender:   "Bob (id7)",
			Amount:   decimal.RequireFromString("100.00"),
			Category: models.CategoryDonation,
		},
	}
}

func TestWriteQuarterFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteQuarterFile(dir, models.Q1, testSummary(), testRecords())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Квартал_Q1_янв_фев_мар.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Квартал Q1_янв_фев_мар"
	assert.Equal(t, []string{sheet}, f.GetSheetList())

	// Summary block: header row then the four lines.
	cell := func(ref string) string {
		value, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "Категория", cell("A1"))
	assert.Equal(t, "Количество", cell("B1"))
	assert.Equal(t, "Сумма", cell("C1"))

	assert.Equal(t, models.LineDonations, cell("A2"))
	assert.Equal(t, "1", cell("B2"))
	assert.Equal(t, models.LineSubscriptions, cell("A3"))
	assert.Equal(t, models.LineTax, cell("A4"))
	assert.Equal(t, "0", cell("B4"))
	assert.Equal(t, models.LineTotal, cell("A5"))
	assert.Equal(t, "2", cell("B5"))

	// Row 6 is the spacer between summary and data.
	assert.Equal(t, "", cell("A6"))

	// Data table header and records in extraction order.
	assert.Equal(t, "Дата и время", cell("A7"))
	assert.Equal(t, "Пользователь", cell("B7"))
	assert.Equal(t, "Сумма", cell("C7"))
	assert.Equal(t, "Категория", cell("D7"))

	assert.Equal(t, "@alice", cell("B8"))
	assert.Equal(t, string(models.CategoryNewSubscription), cell("D8"))
	assert.Equal(t, "Bob (id7)", cell("B9"))
	assert.Equal(t, string(models.CategoryDonation), cell("D9"))
}

func TestWriteQuarterFilePerQuarterNaming(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		quarter  models.Quarter
		expected string
	}{
		{models.Q1, "Квартал_Q1_янв_фев_мар.xlsx"},
		{models.Q2, "Квартал_Q2_апр_май_июн.xlsx"},
		{models.Q3, "Квартал_Q3_июл_авг_сен.xlsx"},
		{models.Q4, "Квартал_Q4_окт_ноя_дек.xlsx"},
	}

	for _, tc := range tests {
		t.Run(string(tc.quarter), func(t *testing.T) {
			path, err := WriteQuarterFile(dir, tc.quarter, testSummary(), testRecords())
			require.NoError(t, err)
			assert.Equal(t, tc.expected, filepath.Base(path))
		})
	}
}

func TestWriteQuarterFileColumnWidths(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteQuarterFile(dir, models.Q2, testSummary(), testRecords())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Квартал Q2_апр_май_июн"
	for col, expected := range columnWidths {
		width, err := f.GetColWidth(sheet, col)
		require.NoError(t, err)
		assert.InDelta(t, expected, width, 0.01, "column %s", col)
	}
}
