package core

import (
	"errors"
	"time"
)

// DateLayout is the only accepted wire and display format for dates:
// zero-padded year/month/day, e.g. 2025/01/01.
const DateLayout = "2006/01/02"

const (
	Food          Category = "食費"
	Transport     Category = "交通費"
	DailyGoods    Category = "日用品"
	Entertainment Category = "趣味/交際費"
	Other         Category = "その他"
)

type (
	// Category is one label from the fixed set classifying a
	// transaction's purpose. It is a closed enumeration; arbitrary text
	// never passes a Transaction's Validate.
	Category string

	// Date is a calendar date with no time component (midnight UTC).
	Date struct {
		time.Time
	}

	// Money is an amount in whole yen. There are no fractional
	// subunits; fractional input is truncated toward zero at entry.
	Money struct {
		Yen int64
	}

	// Transaction is a single ledger record. Immutable once created.
	Transaction struct {
		Date     Date
		Category Category
		Amount   Money
	}
)

var (
	ErrInvalidDateFormat  = errors.New("invalid date format")
	ErrNotANumber         = errors.New("not a number")
	ErrCategoryOutOfRange = errors.New("category selection out of range")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrZeroDate           = errors.New("date cannot be zero")
)

// FieldLabels returns the display labels for the three record fields
// in column order: date, category, amount. They are a presentation
// concern shared by the CSV header, the spreadsheet header and the
// table view; the storage schema itself is positional.
func FieldLabels() []string {
	return []string{"日付", "カテゴリ", "金額"}
}

// Categories returns the fixed category set in menu order.
func Categories() []Category {
	return []Category{Food, Transport, DailyGoods, Entertainment, Other}
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// String formats the date in the fixed YYYY/MM/DD layout.
func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrZeroDate
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if !t.Category.Valid() {
		return ErrUnknownCategory
	}
	return nil
}
