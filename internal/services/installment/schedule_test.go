package installment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"ahlan_office/internal/models"
)

func TestSchedule_ReferencePlan(t *testing.T) {
	entries, reason := Schedule(terms(12000, 2000, 10))
	if reason != "" {
		t.Fatalf("unexpected reason %q", reason)
	}
	if len(entries) != 10 {
		t.Fatalf("got %d entries, want 10", len(entries))
	}

	first := entries[0]
	if !first.DueDate.Equal(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first due date = %s, want 2024-02-15", first.DueDate.Format("2006-01-02"))
	}
	if !first.Amount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("first amount = %s, want 1000", first.Amount)
	}

	last := entries[9]
	if !last.DueDate.Equal(time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last due date = %s, want 2024-11-15", last.DueDate.Format("2006-01-02"))
	}
}

func TestSchedule_DatesStrictlyIncreaseOnePerMonth(t *testing.T) {
	entries, reason := Schedule(terms(36000, 0, 36))
	if reason != "" {
		t.Fatalf("unexpected reason %q", reason)
	}
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1].DueDate, entries[i].DueDate
		if !cur.After(prev) {
			t.Fatalf("entry %d (%s) not after entry %d (%s)", i+1, cur, i, prev)
		}
		wantMonth := time.Month((int(entries[0].DueDate.Month())-1+i)%12 + 1)
		if cur.Month() != wantMonth {
			t.Fatalf("entry %d in month %s, want %s", i+1, cur.Month(), wantMonth)
		}
	}
}

func TestSchedule_FebruaryClampsNotRolls(t *testing.T) {
	tt := terms(12000, 0, 12)
	tt.DueDayOfMonth = 31
	tt.StartDate = time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)

	entries, reason := Schedule(tt)
	if reason != "" {
		t.Fatalf("unexpected reason %q", reason)
	}

	// 2023 is not a leap year: February entry must land on the 28th
	feb := entries[0]
	if feb.DueDate.Month() != time.February || feb.DueDate.Day() != 28 {
		t.Fatalf("february entry = %s, want 2023-02-28", feb.DueDate.Format("2006-01-02"))
	}

	// 30-day months clamp to the 30th
	apr := entries[2]
	if apr.DueDate.Month() != time.April || apr.DueDate.Day() != 30 {
		t.Fatalf("april entry = %s, want 2023-04-30", apr.DueDate.Format("2006-01-02"))
	}

	// 31-day months keep the requested day
	mar := entries[1]
	if mar.DueDate.Day() != 31 {
		t.Fatalf("march entry = %s, want day 31", mar.DueDate.Format("2006-01-02"))
	}
}

func TestSchedule_LeapFebruary(t *testing.T) {
	tt := terms(12000, 0, 2)
	tt.DueDayOfMonth = 31
	tt.StartDate = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	entries, reason := Schedule(tt)
	if reason != "" {
		t.Fatalf("unexpected reason %q", reason)
	}
	if entries[0].DueDate.Day() != 29 {
		t.Fatalf("leap february entry = %s, want day 29", entries[0].DueDate.Format("2006-01-02"))
	}
}

func TestSchedule_YearRollover(t *testing.T) {
	tt := terms(6000, 0, 6)
	tt.StartDate = time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC)

	entries, reason := Schedule(tt)
	if reason != "" {
		t.Fatalf("unexpected reason %q", reason)
	}
	last := entries[5]
	if last.DueDate.Year() != 2025 || last.DueDate.Month() != time.April {
		t.Fatalf("last entry = %s, want 2025-04-15", last.DueDate.Format("2006-01-02"))
	}
}

func TestSchedule_EmptyWithReason(t *testing.T) {
	entries, reason := Schedule(terms(5000, 5000, 10))
	if len(entries) != 0 || reason != ReasonFullyPrepaid {
		t.Fatalf("got %d entries / %q", len(entries), reason)
	}

	bad := terms(5000, 1000, 10)
	bad.DueDayOfMonth = 0
	entries, reason = Schedule(bad)
	if len(entries) != 0 || reason != ReasonComputationError {
		t.Fatalf("got %d entries / %q", len(entries), reason)
	}

	cash := terms(5000, 1000, 10)
	cash.PaymentType = models.PaymentCash
	entries, reason = Schedule(cash)
	if len(entries) != 0 || reason != ReasonNotInstallment {
		t.Fatalf("got %d entries / %q", len(entries), reason)
	}
}
