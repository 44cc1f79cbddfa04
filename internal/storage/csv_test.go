package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kakeibo/internal/core"
)

func testRecords() []core.Transaction {
	return []core.Transaction{
		{Date: core.NewDate(2025, 1, 1), Category: core.Food, Amount: core.Money{Yen: 1200}},
		{Date: core.NewDate(2025, 1, 3), Category: core.Transport, Amount: core.Money{Yen: 460}},
		{Date: core.NewDate(2025, 2, 14), Category: core.Food, Amount: core.Money{Yen: 3980}},
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewCSVStore(filepath.Join(t.TempDir(), "wallet_data.csv"), nil)
	records, err := store.Load()
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty ledger, got %d records", len(records))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet_data.csv")
	store := NewCSVStore(path, nil)

	want := testRecords()
	if err := store.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Date.String() != want[i].Date.String() ||
			got[i].Category != want[i].Category ||
			got[i].Amount.Yen != want[i].Amount.Yen {
			t.Fatalf("record %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestSaveWritesHeaderAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet_data.csv")
	store := NewCSVStore(path, nil)

	if err := store.Save(testRecords()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// A second save with fewer records must fully replace the file.
	if err := store.Save(testRecords()[:1]); err != nil {
		t.Fatalf("second save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if lines[0] != "日付,カテゴリ,金額" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row after rewrite, got %d lines", len(lines))
	}
	if lines[1] != "2025/01/01,食費,1200" {
		t.Fatalf("unexpected data row: %q", lines[1])
	}
}

func TestSaveEmptyLedgerKeepsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet_data.csv")
	store := NewCSVStore(path, nil)

	if err := store.Save(nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	records, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty ledger, got %d records", len(records))
	}
}

func TestLoadTrustsCategoryButCoercesAmount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet_data.csv")
	raw := "日付,カテゴリ,金額\n2025/01/01,カスタム,100.0\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewCSVStore(path, nil)
	records, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	// Category membership is not checked on load.
	if records[0].Category != "カスタム" {
		t.Fatalf("expected category kept as written, got %s", records[0].Category)
	}
	if records[0].Amount.Yen != 100 {
		t.Fatalf("expected amount coerced to 100, got %d", records[0].Amount.Yen)
	}
}

func TestLoadCorruptDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet_data.csv")
	raw := "日付,カテゴリ,金額\nnot-a-date,食費,100\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewCSVStore(path, nil)
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for corrupt date row")
	}
}
