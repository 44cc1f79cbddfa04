// Package storage persists the ledger to its CSV backing store.
//
// The store holds no state of its own: Load returns the seed sequence
// for a run, and Save rewrites the whole file from the caller's current
// sequence. There is no append path on disk.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"kakeibo/internal/core"
	"kakeibo/internal/log"
)

// CSVStore reads and rewrites the flat CSV file backing the ledger.
type CSVStore struct {
	path   string
	logger *log.Logger
}

func NewCSVStore(path string, logger *log.Logger) *CSVStore {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &CSVStore{path: path, logger: logger.WithComponent("storage")}
}

// Path returns the backing file path.
func (s *CSVStore) Path() string {
	return s.path
}

// Load reads all records from the backing file. A missing file is not
// an error; it is the empty-ledger start state. The date of each row
// is parsed and the amount is coerced to a whole number, but category
// membership is not checked: the file trusts its prior writer.
func (s *CSVStore) Load() ([]core.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info("No backing file, starting with an empty ledger", "path", s.path)
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	// Header row
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header from %s: %w", s.path, err)
	}

	var records []core.Transaction
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", s.path, line, err)
		}
		date, err := core.ParseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("parse date %q at %s line %d: %w", row[0], s.path, line, err)
		}
		amount, err := core.ParseAmount(row[2])
		if err != nil {
			return nil, fmt.Errorf("parse amount %q at %s line %d: %w", row[2], s.path, line, err)
		}
		records = append(records, core.Transaction{
			Date:     date,
			Category: core.Category(row[1]),
			Amount:   amount,
		})
	}

	s.logger.Info("Ledger loaded", "path", s.path, "records", len(records))
	return records, nil
}

// Save rewrites the backing file with the full record sequence: a
// header row followed by one row per record. The caller must pass the
// complete current ledger every time.
func (s *CSVStore) Save(records []core.Transaction) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(core.FieldLabels()); err != nil {
		f.Close()
		return fmt.Errorf("write header to %s: %w", s.path, err)
	}
	for _, r := range records {
		row := []string{r.Date.String(), r.Category.String(), strconv.FormatInt(r.Amount.Yen, 10)}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write record to %s: %w", s.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}

	s.logger.Debug("Ledger saved", "path", s.path, "records", len(records))
	return nil
}
