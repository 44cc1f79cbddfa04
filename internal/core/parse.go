// Package core provides the ledger's domain types and input parsing.
//
// This file contains the parsers for the three user-entered fields.
// Parsers only classify input; re-prompting on failure is the caller's
// concern.
package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseDate parses a date in the strict YYYY/MM/DD layout. Anything
// else, including unpadded components and impossible calendar dates,
// fails with ErrInvalidDateFormat.
//
// Examples:
//
//	ParseDate("2025/01/01") -> 2025-01-01, nil
//	ParseDate("2025/1/1")   -> ErrInvalidDateFormat
//	ParseDate("2025/02/30") -> ErrInvalidDateFormat
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return Date{Time: t}, nil
}

// SelectCategory resolves a 1-based menu selection against the ordered
// category list. Non-numeric input fails with ErrNotANumber; a number
// outside [1, len(categories)] fails with ErrCategoryOutOfRange.
func SelectCategory(s string, categories []Category) (Category, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return "", ErrNotANumber
	}
	if n < 1 || n > len(categories) {
		return "", ErrCategoryOutOfRange
	}
	return categories[n-1], nil
}

// ParseAmount parses a decimal amount and truncates any fractional part
// toward zero. Truncation rather than rounding is deliberate, matching
// the ledger's observable behavior since its first release.
//
// Examples:
//
//	ParseAmount("123.9")  -> 123, nil
//	ParseAmount("-45.7")  -> -45, nil
//	ParseAmount("abc")    -> ErrNotANumber
func ParseAmount(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, ErrNotANumber
	}
	return Money{Yen: d.Truncate(0).IntPart()}, nil
}
