package core

import "testing"

func TestSummarizeByCategoryEmpty(t *testing.T) {
	if totals := SummarizeByCategory(nil); len(totals) != 0 {
		t.Fatalf("expected empty result, got %v", totals)
	}
}

func TestSummarizeByCategorySingle(t *testing.T) {
	records := []Transaction{
		{Date: NewDate(2025, 1, 1), Category: Food, Amount: Money{Yen: 100}},
		{Date: NewDate(2025, 1, 2), Category: Food, Amount: Money{Yen: 50}},
	}
	totals := SummarizeByCategory(records)
	if len(totals) != 1 {
		t.Fatalf("expected one total, got %d", len(totals))
	}
	if totals[0].Category != Food || totals[0].Total.Yen != 150 {
		t.Fatalf("expected 食費=150, got %s=%d", totals[0].Category, totals[0].Total.Yen)
	}
}

func TestSummarizeByCategoryIndependentTotals(t *testing.T) {
	records := []Transaction{
		{Date: NewDate(2025, 1, 1), Category: Transport, Amount: Money{Yen: 300}},
		{Date: NewDate(2025, 1, 2), Category: Food, Amount: Money{Yen: 100}},
		{Date: NewDate(2025, 1, 3), Category: Transport, Amount: Money{Yen: 200}},
		{Date: NewDate(2025, 1, 4), Category: Food, Amount: Money{Yen: 50}},
	}
	totals := SummarizeByCategory(records)
	if len(totals) != 2 {
		t.Fatalf("expected two totals, got %d", len(totals))
	}
	// First-appearance order: 交通費 before 食費.
	if totals[0].Category != Transport || totals[0].Total.Yen != 500 {
		t.Fatalf("expected 交通費=500 first, got %s=%d", totals[0].Category, totals[0].Total.Yen)
	}
	if totals[1].Category != Food || totals[1].Total.Yen != 150 {
		t.Fatalf("expected 食費=150 second, got %s=%d", totals[1].Category, totals[1].Total.Yen)
	}
}

func TestSummarizeByCategoryNegativeAmounts(t *testing.T) {
	records := []Transaction{
		{Date: NewDate(2025, 1, 1), Category: Other, Amount: Money{Yen: -500}},
		{Date: NewDate(2025, 1, 2), Category: Other, Amount: Money{Yen: 200}},
	}
	totals := SummarizeByCategory(records)
	if len(totals) != 1 || totals[0].Total.Yen != -300 {
		t.Fatalf("expected その他=-300, got %v", totals)
	}
}
