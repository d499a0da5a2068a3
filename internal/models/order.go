package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimestampLayout is the fixed-width text format of the orders.date column.
// Fixed width keeps lexicographic and chronological order identical.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a bill timestamp kept in its text form.
// The sqlite driver parses DATETIME columns into time.Time on read, so Scan
// folds every representation back into TimestampLayout.
type Timestamp string

// NewTimestamp formats t with TimestampLayout.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Format(TimestampLayout))
}

func (ts Timestamp) String() string { return string(ts) }

// Value implements driver.Valuer; the column always receives TEXT.
func (ts Timestamp) Value() (driver.Value, error) {
	return string(ts), nil
}

// Scan implements sql.Scanner.
func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
	case string:
		*ts = Timestamp(v)
	case []byte:
		*ts = Timestamp(string(v))
	case time.Time:
		*ts = NewTimestamp(v)
	default:
		return fmt.Errorf("unsupported timestamp value %T", src)
	}
	return nil
}

// OrderLine is one persisted line item of a bill.
type OrderLine struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Item     string    `gorm:"column:item;not null" json:"item"`
	Quantity int       `gorm:"column:quantity;not null" json:"quantity"`
	Price    float64   `gorm:"column:price;not null" json:"price"`
	Total    float64   `gorm:"column:total;not null" json:"total"`
	Date     Timestamp `gorm:"column:date;type:DATETIME;not null" json:"date"`
}

// TableName pins the table name to the on-disk contract.
func (OrderLine) TableName() string { return "orders" }

// DateGroup is the set of lines sharing one bill timestamp.
type DateGroup struct {
	Date     Timestamp   `json:"date"`
	Lines    []OrderLine `json:"items"`
	Subtotal float64     `json:"subtotal"`
}
