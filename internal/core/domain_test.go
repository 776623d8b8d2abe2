package core

import (
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Description: "UBER TRIP HELP.UBER.COM",
		Amount:      14.50,
		Category:    "Transport",
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Description: "", Amount: 10},
		{Description: "   ", Amount: 10},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestBudgetValidate(t *testing.T) {
	if err := (Budget{Category: "Food", Limit: 500}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Budget{Category: "Food", Limit: 0}).Validate(); err != nil {
		t.Fatalf("zero limit should be valid, got %v", err)
	}
	if err := (Budget{Category: "", Limit: 10}).Validate(); err == nil {
		t.Fatalf("expected error for empty category")
	}
	if err := (Budget{Category: "Food", Limit: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative limit")
	}
}

func TestTransactionHasDate(t *testing.T) {
	if (Transaction{}).HasDate() {
		t.Fatalf("zero date should report no date")
	}
	tx := Transaction{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	if !tx.HasDate() {
		t.Fatalf("expected HasDate true")
	}
}
