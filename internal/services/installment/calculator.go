package installment

import (
	"github.com/shopspring/decimal"

	"ahlan_office/internal/models"
)

// Reason codes carried next to sentinel zero results. Callers surface them
// as warnings; nothing in this package panics or returns an error.
const (
	ReasonFullyPrepaid     = "fully prepaid"
	ReasonComputationError = "computation error"
	ReasonNotInstallment   = "not an installment sale"
)

var (
	hundred = decimal.NewFromInt(100)

	// amounts beyond this are treated as input garbage, not money
	maxAmount = decimal.New(1, 15)
)

// MonthlyPayment returns the equal monthly payment for installment terms
// and a reason code when the result is a sentinel zero. For non-installment
// payment types the payment is zero with ReasonNotInstallment.
func MonthlyPayment(t models.SaleTerms) (decimal.Decimal, string) {
	if t.PaymentType != models.PaymentInstallment {
		return decimal.Zero, ReasonNotInstallment
	}
	if t.DurationMonths <= 0 || t.TotalAmount.Sign() <= 0 {
		return decimal.Zero, ReasonComputationError
	}
	if t.TotalAmount.GreaterThan(maxAmount) || t.InitialPayment.GreaterThan(maxAmount) {
		return decimal.Zero, ReasonComputationError
	}
	if t.InitialPayment.GreaterThanOrEqual(t.TotalAmount) {
		return decimal.Zero, ReasonFullyPrepaid
	}

	monthly := t.TotalAmount.Sub(t.InitialPayment).
		Div(decimal.NewFromInt(int64(t.DurationMonths)))
	return monthly, ""
}

// RemainingPercentage is the share of the total still owed after the
// initial payment, rounded half away from zero to one decimal place.
func RemainingPercentage(t models.SaleTerms) decimal.Decimal {
	if t.TotalAmount.Sign() <= 0 || t.InitialPayment.GreaterThanOrEqual(t.TotalAmount) {
		return decimal.Zero
	}
	return t.TotalAmount.Sub(t.InitialPayment).
		Div(t.TotalAmount).
		Mul(hundred).
		Round(1)
}

// DiscountPercentage flags a markdown of the negotiated amount against the
// apartment's list price. Never negative: a price above list is 0.
func DiscountPercentage(originalPrice, negotiatedAmount decimal.Decimal) decimal.Decimal {
	if originalPrice.Sign() <= 0 || negotiatedAmount.GreaterThanOrEqual(originalPrice) {
		return decimal.Zero
	}
	return originalPrice.Sub(negotiatedAmount).
		Div(originalPrice).
		Mul(hundred).
		Round(1)
}
