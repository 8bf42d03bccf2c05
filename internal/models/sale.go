package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType mirrors the payment_type values of the CRM API.
type PaymentType string

const (
	PaymentCash        PaymentType = "naqd"
	PaymentReservation PaymentType = "band"
	PaymentInstallment PaymentType = "muddatli"
	PaymentMortgage    PaymentType = "ipoteka"
)

var paymentTypeLabels = map[PaymentType]string{
	PaymentCash:        "Naqd to'lov",
	PaymentReservation: "Band qilish",
	PaymentInstallment: "Muddatli to'lov",
	PaymentMortgage:    "Ipoteka",
}

func (p PaymentType) Valid() bool {
	_, ok := paymentTypeLabels[p]
	return ok
}

func (p PaymentType) Label() string {
	if l, ok := paymentTypeLabels[p]; ok {
		return l
	}
	return UnknownLabel
}

// SaleTerms is the negotiated financial side of a sale or reservation.
// Amounts keep full precision; rendering layers decide formatting.
type SaleTerms struct {
	TotalAmount         decimal.Decimal `json:"total_amount"`
	InitialPayment      decimal.Decimal `json:"initial_payment"`
	DurationMonths      int             `json:"duration_months"`
	DueDayOfMonth       int             `json:"due_day_of_month"`
	PaymentType         PaymentType     `json:"payment_type"`
	StartDate           time.Time       `json:"start_date"`
	ReservationDeadline *time.Time      `json:"reservation_deadline,omitempty"`
	BankName            string          `json:"bank_name,omitempty"`
}

// ScheduleEntry is one row of an installment schedule. Entries are derived
// from SaleTerms and never persisted here; the CRM API owns payment records.
type ScheduleEntry struct {
	MonthIndex int             `json:"month_index"`
	DueDate    time.Time       `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
}
