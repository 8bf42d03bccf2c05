package installment

import (
	"time"

	"ahlan_office/internal/models"
)

// Schedule produces the ordered per-month payment plan for installment
// terms. When preconditions fail it returns an empty slice plus the reason.
//
// The first due month is the calendar month after the start date (the date
// the initial payment was made). When the due day exceeds the length of a
// month the date is clamped to that month's last day, never rolled forward
// into the next month.
func Schedule(t models.SaleTerms) ([]models.ScheduleEntry, string) {
	if t.PaymentType != models.PaymentInstallment {
		return nil, ReasonNotInstallment
	}
	if t.DurationMonths < 1 || t.DueDayOfMonth < 1 || t.DueDayOfMonth > 31 {
		return nil, ReasonComputationError
	}

	monthly, reason := MonthlyPayment(t)
	if monthly.Sign() <= 0 {
		return nil, reason
	}

	entries := make([]models.ScheduleEntry, 0, t.DurationMonths)
	for i := 1; i <= t.DurationMonths; i++ {
		entries = append(entries, models.ScheduleEntry{
			MonthIndex: i,
			DueDate:    dueDate(t.StartDate, i, t.DueDayOfMonth),
			Amount:     monthly,
		})
	}
	return entries, ""
}

// dueDate places payment i (1-based) in the i-th month after start,
// clamping the requested day to the month length.
func dueDate(start time.Time, i, day int) time.Time {
	// normalize to the first of the target month so the offset cannot
	// itself spill into the following month
	anchor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	target := anchor.AddDate(0, i, 0)

	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
