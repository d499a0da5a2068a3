package services

import (
	"testing"

	"github.com/ahmed-elbehidy/bill-management-system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
		ok   bool
	}{
		{"plain", "2", 2, true},
		{"padded", "  3 ", 3, true},
		{"leading zeros", "007", 7, true},
		{"blank", "", 0, false},
		{"spaces only", "   ", 0, false},
		{"zero", "0", 0, false},
		{"negative", "-1", 0, false},
		{"plus sign", "+2", 0, false},
		{"decimal", "2.5", 0, false},
		{"letters", "two", 0, false},
		{"inner space", "1 2", 0, false},
		{"overflow", "99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuantity(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputePizzaOnly(t *testing.T) {
	menu := models.NewMenu([]models.MenuItem{{Name: "Pizza", UnitPrice: 8.50}, {Name: "Burger", UnitPrice: 5.00}})
	bill := NewBillService().Compute(menu, map[string]string{"Pizza": "2", "Burger": ""}, "2024-05-01 12:00:00")

	require.Len(t, bill.Lines, 1)
	assert.Equal(t, BillLine{Item: "Pizza", Quantity: 2, UnitPrice: 8.50, Total: 17.00}, bill.Lines[0])
	assert.Equal(t, 17.00, bill.GrandTotal)
}

func TestComputeAllBlank(t *testing.T) {
	bill := NewBillService().Compute(models.NewMenu(models.DefaultMenu()), map[string]string{}, "2024-05-01 12:00:00")
	assert.Empty(t, bill.Lines)
	assert.Zero(t, bill.GrandTotal)
	assert.Empty(t, bill.OrderLines())
}

func TestComputeSkipsInvalidAndKeepsMenuOrder(t *testing.T) {
	menu := models.NewMenu(models.DefaultMenu())
	entries := map[string]string{
		"Tea":       "4",
		"Pizza":     "1",
		"Burger":    "abc",
		"Pasta":     "0",
		"Salad":     "-2",
		"Ice Cream": "3",
	}
	bill := NewBillService().Compute(menu, entries, "2024-05-01 12:00:00")

	require.Len(t, bill.Lines, 3)
	assert.Equal(t, "Pizza", bill.Lines[0].Item)
	assert.Equal(t, "Tea", bill.Lines[1].Item)
	assert.Equal(t, "Ice Cream", bill.Lines[2].Item)

	var sum float64
	for _, l := range bill.Lines {
		assert.InDelta(t, float64(l.Quantity)*l.UnitPrice, l.Total, 1e-9)
		sum += l.Total
	}
	assert.InDelta(t, sum, bill.GrandTotal, 1e-9)
	assert.InDelta(t, 8.50+4.00+7.50, bill.GrandTotal, 1e-9)
}

func TestOrderLinesShareTimestamp(t *testing.T) {
	menu := models.NewMenu(models.DefaultMenu())
	bill := NewBillService().Compute(menu, map[string]string{"Coffee": "2", "Juice": "1"}, "2024-05-01 12:00:00")

	rows := bill.OrderLines()
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, models.Timestamp("2024-05-01 12:00:00"), r.Date)
		assert.InDelta(t, float64(r.Quantity)*r.Price, r.Total, 1e-9)
	}
}
