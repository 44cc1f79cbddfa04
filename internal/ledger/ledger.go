// Package ledger owns the in-memory record sequence for one run and
// couples every insertion with a full rewrite of the backing store.
package ledger

import (
	"fmt"

	"kakeibo/internal/core"
	"kakeibo/internal/log"
)

// Store is the port to the backing file. Load seeds the ledger once at
// startup; Save must rewrite the whole file from the given sequence.
type Store interface {
	Load() ([]core.Transaction, error)
	Save(records []core.Transaction) error
}

// Ledger holds the ordered record sequence for the current session.
// It is owned by a single goroutine; there is no concurrent mutation.
type Ledger struct {
	store   Store
	records []core.Transaction
	logger  *log.Logger
}

// Open loads the persisted records and returns a ledger seeded with
// them. A missing backing file yields an empty ledger.
func Open(store Store, logger *log.Logger) (*Ledger, error) {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	records, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	return &Ledger{
		store:   store,
		records: records,
		logger:  logger.WithComponent("ledger"),
	}, nil
}

// Add validates the record, appends it and immediately rewrites the
// backing store with the full sequence. On a save failure the record is
// kept in memory so a later save can still persist it.
func (l *Ledger) Add(tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	l.records = append(l.records, tx)
	if err := l.store.Save(l.records); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	l.logger.Info("Transaction registered",
		"date", tx.Date.String(),
		"category", tx.Category.String(),
		"amount_yen", tx.Amount.Yen,
		"total_records", len(l.records))
	return nil
}

// Records returns a copy of the current record sequence in insertion
// order.
func (l *Ledger) Records() []core.Transaction {
	return append([]core.Transaction(nil), l.records...)
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Totals aggregates amounts by category, ordered by first appearance.
func (l *Ledger) Totals() []core.CategoryTotal {
	return core.SummarizeByCategory(l.records)
}

// Close performs the final full save at shutdown.
func (l *Ledger) Close() error {
	if err := l.store.Save(l.records); err != nil {
		return fmt.Errorf("final save: %w", err)
	}
	l.logger.Info("Ledger closed", "records", len(l.records))
	return nil
}
