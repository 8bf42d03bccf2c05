package models

import "strings"

// ValidationResult is the outcome of checking a form object before any
// computation or network call happens. A failed result blocks submission.
type ValidationResult struct {
	Reasons []string
}

func (v ValidationResult) OK() bool { return len(v.Reasons) == 0 }

func (v ValidationResult) Error() string {
	if v.OK() {
		return ""
	}
	return strings.Join(v.Reasons, "; ")
}

func (v *ValidationResult) add(reason string) { v.Reasons = append(v.Reasons, reason) }

// ValidateSaleTerms enforces the SaleTerms invariants:
// initial payment never exceeds the total for cash/installment/mortgage,
// installments need a positive duration and a due day within 1..31,
// reservations need a deadline.
func ValidateSaleTerms(t SaleTerms) ValidationResult {
	var res ValidationResult

	if !t.PaymentType.Valid() {
		res.add("to'lov turi noto'g'ri: " + string(t.PaymentType))
		return res
	}

	if t.TotalAmount.Sign() <= 0 {
		res.add("umumiy summa musbat bo'lishi kerak")
	}
	if t.InitialPayment.Sign() < 0 {
		res.add("boshlang'ich to'lov manfiy bo'lishi mumkin emas")
	}
	if t.StartDate.IsZero() {
		res.add("boshlanish sanasi ko'rsatilmagan")
	}

	switch t.PaymentType {
	case PaymentCash, PaymentInstallment, PaymentMortgage:
		if t.InitialPayment.GreaterThan(t.TotalAmount) {
			res.add("boshlang'ich to'lov umumiy summadan oshmasligi kerak")
		}
	}

	if t.PaymentType == PaymentInstallment {
		if t.DurationMonths < 1 {
			res.add("muddat kamida 1 oy bo'lishi kerak")
		}
		if t.DueDayOfMonth < 1 || t.DueDayOfMonth > 31 {
			res.add("to'lov kuni 1 dan 31 gacha bo'lishi kerak")
		}
	}

	if t.PaymentType == PaymentReservation && t.ReservationDeadline == nil {
		res.add("band qilish muddati ko'rsatilmagan")
	}

	return res
}

// ValidateClient checks the fields a contract cannot be generated without.
func ValidateClient(c Client) ValidationResult {
	var res ValidationResult
	if strings.TrimSpace(c.FullName) == "" {
		res.add("mijozning F.I.Sh. ko'rsatilmagan")
	}
	if strings.TrimSpace(c.Phone) == "" {
		res.add("mijozning telefon raqami ko'rsatilmagan")
	}
	return res
}
