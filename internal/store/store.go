// Package store persists bill line items in the local sqlite file.
//
// The on-disk layout is a single orders table; its schema below is the
// compatibility contract with other tools reading bills.db.
package store

import (
	"context"
	"sync"

	"github.com/ahmed-elbehidy/bill-management-system/internal/db"
	"github.com/ahmed-elbehidy/bill-management-system/internal/models"
	"gorm.io/gorm"
)

// DefaultPath is the database file used when none is configured.
const DefaultPath = "bills.db"

const createOrdersSQL = `CREATE TABLE IF NOT EXISTS orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	item TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price REAL NOT NULL,
	total REAL NOT NULL,
	date DATETIME NOT NULL
)`

// Store owns the database handle. Writes are not validated here: callers
// guarantee quantity > 0 and total == quantity * price.
type Store struct {
	db *gorm.DB

	closeOnce sync.Once
	closeErr  error
}

// New wraps an already opened connection. Call Initialize before use.
func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// Open connects to path and ensures the schema exists.
func Open(ctx context.Context, path string, debug bool) (*Store, error) {
	gdb, err := db.Connect(path, debug)
	if err != nil {
		return nil, classify("open "+path, err)
	}
	s := New(gdb)
	if err := s.Initialize(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Initialize creates the orders table if it is absent. Safe to call repeatedly.
func (s *Store) Initialize(ctx context.Context) error {
	return classify("initialize schema", s.db.WithContext(ctx).Exec(createOrdersSQL).Error)
}

// AddOrderLine inserts one row and commits it immediately. line.ID is set
// from the generated key on success.
func (s *Store) AddOrderLine(ctx context.Context, line *models.OrderLine) error {
	line.ID = 0
	return classify("add order line", s.db.WithContext(ctx).Create(line).Error)
}

// ListDistinctDates returns every bill timestamp, most recent first.
func (s *Store) ListDistinctDates(ctx context.Context) ([]models.Timestamp, error) {
	rows, err := s.db.WithContext(ctx).Raw("SELECT DISTINCT date FROM orders ORDER BY date DESC").Rows()
	if err != nil {
		return nil, classify("list dates", err)
	}
	defer rows.Close()

	dates := []models.Timestamp{}
	for rows.Next() {
		var ts models.Timestamp
		if err := rows.Scan(&ts); err != nil {
			return nil, classify("list dates", err)
		}
		dates = append(dates, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list dates", err)
	}
	return dates, nil
}

// ListItemsForDate returns the rows of one bill in insertion order.
func (s *Store) ListItemsForDate(ctx context.Context, ts models.Timestamp) ([]models.OrderLine, error) {
	lines := []models.OrderLine{}
	err := s.db.WithContext(ctx).
		Where("date = ?", string(ts)).
		Order("id").
		Find(&lines).Error
	if err != nil {
		return nil, classify("list items for "+string(ts), err)
	}
	return lines, nil
}

// Ping checks that the handle is usable.
func (s *Store) Ping(ctx context.Context) error {
	return classify("ping", s.db.WithContext(ctx).Exec("SELECT 1").Error)
}

// Close releases the handle. Statements autocommit, so nothing is pending;
// the close is attempted regardless of earlier failures and only once.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		sqlDB, err := s.db.DB()
		if err != nil {
			s.closeErr = classify("close", err)
			return
		}
		s.closeErr = classify("close", sqlDB.Close())
	})
	return s.closeErr
}
