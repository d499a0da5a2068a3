// Package ui holds the ordering screen state and the actions bound to its
// buttons (Total, Reset, Show Orders).
package ui

import (
	"context"
	"sync"
	"time"

	"github.com/ahmed-elbehidy/bill-management-system/internal/logger"
	"github.com/ahmed-elbehidy/bill-management-system/internal/models"
	"github.com/ahmed-elbehidy/bill-management-system/internal/services"
)

// Phase is the position in the per-bill interaction.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEditing
	PhaseComputed
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseComputed:
		return "computed"
	default:
		return "idle"
	}
}

// State is everything the ordering screen displays.
type State struct {
	Entries map[string]string
	Bill    *services.Bill
	Phase   Phase
}

// OrderStore is the subset of the store used by the screen.
type OrderStore interface {
	AddOrderLine(ctx context.Context, line *models.OrderLine) error
	ListDistinctDates(ctx context.Context) ([]models.Timestamp, error)
	ListItemsForDate(ctx context.Context, ts models.Timestamp) ([]models.OrderLine, error)
}

// Controller owns the screen state. Every action holds one lock for its
// whole duration, so actions run one at a time like events on a UI thread.
type Controller struct {
	mu    sync.Mutex
	menu  *models.Menu
	store OrderStore
	bills *services.BillService
	now   func() time.Time
	state State
}

func NewController(menu *models.Menu, store OrderStore, bills *services.BillService) *Controller {
	return &Controller{
		menu:  menu,
		store: store,
		bills: bills,
		now:   time.Now,
		state: State{Entries: map[string]string{}},
	}
}

// SetClock replaces the time source used for bill timestamps.
func (c *Controller) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Menu returns the static menu.
func (c *Controller) Menu() *models.Menu { return c.menu }

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := make(map[string]string, len(c.state.Entries))
	for k, v := range c.state.Entries {
		entries[k] = v
	}
	return State{Entries: entries, Bill: c.state.Bill, Phase: c.state.Phase}
}

// SetEntries replaces the quantity fields. Names not on the menu are ignored.
func (c *Controller) SetEntries(entries map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make(map[string]string, c.menu.Len())
	for _, it := range c.menu.Items() {
		if v, ok := entries[it.Name]; ok {
			next[it.Name] = v
		}
	}
	c.state.Entries = next
	c.state.Phase = PhaseEditing
}

// ComputeBill is the Total action. It computes the bill from the current
// entries, then writes one row per included item, all sharing a timestamp
// captured once. On a storage error the displayed bill is left unchanged and
// the error is returned; rows written before the failure stay written.
func (c *Controller) ComputeBill(ctx context.Context) (*services.Bill, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := models.NewTimestamp(c.now())
	bill := c.bills.Compute(c.menu, c.state.Entries, ts)
	for _, line := range bill.OrderLines() {
		if err := c.store.AddOrderLine(ctx, &line); err != nil {
			logger.GetLogger().Errorw("failed to persist order line", "item", line.Item, "date", ts, "error", err)
			return nil, err
		}
	}
	c.state.Bill = bill
	c.state.Phase = PhaseComputed
	logger.GetLogger().Infow("bill computed", "date", ts, "lines", len(bill.Lines), "grand_total", bill.GrandTotal)
	return bill, nil
}

// Total sets the entries and computes the bill in one step.
func (c *Controller) Total(ctx context.Context, entries map[string]string) (*services.Bill, error) {
	c.SetEntries(entries)
	return c.ComputeBill(ctx)
}

// Reset clears the fields and the displayed bill. Stored orders are untouched.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{Entries: map[string]string{}, Phase: PhaseIdle}
}

// History is the Show Orders action: every bill, newest first, with the
// subtotal of its lines. An empty result means there is nothing to show.
func (c *Controller) History(ctx context.Context) ([]models.DateGroup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dates, err := c.store.ListDistinctDates(ctx)
	if err != nil {
		return nil, err
	}
	groups := make([]models.DateGroup, 0, len(dates))
	for _, d := range dates {
		lines, err := c.store.ListItemsForDate(ctx, d)
		if err != nil {
			return nil, err
		}
		g := models.DateGroup{Date: d, Lines: lines}
		for _, l := range lines {
			g.Subtotal += l.Total
		}
		groups = append(groups, g)
	}
	return groups, nil
}
