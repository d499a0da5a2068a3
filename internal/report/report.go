// Package report renders bills and the order history as fixed-width text,
// the layout shown in the bill pane and in the history window.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ahmed-elbehidy/bill-management-system/i18n"
	"github.com/ahmed-elbehidy/bill-management-system/internal/models"
	"github.com/ahmed-elbehidy/bill-management-system/internal/services"
)

// Labels holds the translatable words of both reports.
type Labels struct {
	Item        string
	Qty         string
	Price       string
	Total       string
	TotalAmount string
	TotalBill   string
	Date        string
	Thanks      string
	NoOrders    string
}

// DefaultLabels are the English labels.
func DefaultLabels() Labels {
	return Labels{
		Item:        "Item",
		Qty:         "Qty",
		Price:       "Price",
		Total:       "Total",
		TotalAmount: "Total Amount:",
		TotalBill:   "Total Bill:",
		Date:        "Date:",
		Thanks:      "Thank you for visiting us!",
		NoOrders:    "No orders found in the database.",
	}
}

const (
	billRuleWidth    = 55
	historyRuleWidth = 52
	dateRuleWidth    = 70
)

// Bill renders a computed bill. A nil bill renders nothing.
func Bill(bill *services.Bill, l Labels) string {
	if bill == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-15s%-10s%-15s%-10s\n", l.Item, l.Qty, l.Price, l.Total)
	b.WriteString(strings.Repeat("-", billRuleWidth) + "\n")
	for _, line := range bill.Lines {
		fmt.Fprintf(&b, "%-15s%-10d%-15.2f%-10.2f\n", line.Item, line.Quantity, line.UnitPrice, line.Total)
	}
	b.WriteString(strings.Repeat("-", billRuleWidth) + "\n")
	fmt.Fprintf(&b, "%-40s$%.2f\n\n", l.TotalAmount, bill.GrandTotal)
	b.WriteString(l.Thanks)
	return b.String()
}

// History renders the grouped order history, newest bill first. An empty
// history renders the explicit no-orders message instead of a blank report.
func History(groups []models.DateGroup, l Labels) string {
	if len(groups) == 0 {
		return l.NoOrders
	}
	var b strings.Builder
	for _, g := range groups {
		b.WriteString("\n" + strings.Repeat("=", dateRuleWidth) + "\n")
		fmt.Fprintf(&b, "%s %s\n", l.Date, g.Date)
		b.WriteString(strings.Repeat("=", dateRuleWidth) + "\n\n")
		fmt.Fprintf(&b, "%-20s%-8s%-12s%-12s\n", l.Item, l.Qty, l.Price, l.Total)
		b.WriteString(strings.Repeat("-", historyRuleWidth) + "\n")
		for _, line := range g.Lines {
			fmt.Fprintf(&b, "%-20s%-8d%-12.2f%-12.2f\n", line.Item, line.Quantity, line.Price, line.Total)
		}
		b.WriteString(strings.Repeat("-", historyRuleWidth) + "\n")
		fmt.Fprintf(&b, "%-32s$%.2f\n\n", l.TotalBill, g.Subtotal)
		b.WriteString(l.Thanks + "\n\n")
	}
	return b.String()
}

// WriteHistory writes History(groups, l) to w.
func WriteHistory(w io.Writer, groups []models.DateGroup, l Labels) error {
	_, err := io.WriteString(w, History(groups, l))
	return err
}

// LabelsFor returns the labels translated for lang.
func LabelsFor(lang string) Labels {
	return Labels{
		Item:        i18n.T(lang, "item"),
		Qty:         i18n.T(lang, "qty"),
		Price:       i18n.T(lang, "price"),
		Total:       i18n.T(lang, "line_total"),
		TotalAmount: i18n.T(lang, "total_amount"),
		TotalBill:   i18n.T(lang, "total_bill"),
		Date:        i18n.T(lang, "date"),
		Thanks:      i18n.T(lang, "thanks"),
		NoOrders:    i18n.T(lang, "orders.none"),
	}
}
