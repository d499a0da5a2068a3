package services

import (
	"strconv"
	"strings"

	"github.com/ahmed-elbehidy/bill-management-system/internal/models"
)

// BillLine is one included menu item of a computed bill.
type BillLine struct {
	Item      string  `json:"item"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Bill is the in-memory result of pressing Total.
type Bill struct {
	Lines      []BillLine       `json:"lines"`
	GrandTotal float64          `json:"grand_total"`
	Timestamp  models.Timestamp `json:"timestamp"`
}

// OrderLines converts the bill into rows sharing the bill timestamp.
func (b *Bill) OrderLines() []models.OrderLine {
	out := make([]models.OrderLine, 0, len(b.Lines))
	for _, l := range b.Lines {
		out = append(out, models.OrderLine{
			Item:     l.Item,
			Quantity: l.Quantity,
			Price:    l.UnitPrice,
			Total:    l.Total,
			Date:     b.Timestamp,
		})
	}
	return out
}

// BillService computes bills from free-text quantity entries.
// It holds no state and never touches storage.
type BillService struct{}

func NewBillService() *BillService { return &BillService{} }

// ParseQuantity accepts only a run of ASCII digits (surrounding spaces
// trimmed) with a value above zero. Anything else, including signs,
// decimals and zero, is reported as not ok and is skipped by Compute.
func ParseQuantity(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Compute builds the bill in menu order. entries maps item name to the raw
// field text; missing or invalid entries are left out silently.
func (s *BillService) Compute(menu *models.Menu, entries map[string]string, ts models.Timestamp) *Bill {
	bill := &Bill{Timestamp: ts, Lines: []BillLine{}}
	for _, it := range menu.Items() {
		qty, ok := ParseQuantity(entries[it.Name])
		if !ok {
			continue
		}
		total := float64(qty) * it.UnitPrice
		bill.Lines = append(bill.Lines, BillLine{Item: it.Name, Quantity: qty, UnitPrice: it.UnitPrice, Total: total})
		bill.GrandTotal += total
	}
	return bill
}
