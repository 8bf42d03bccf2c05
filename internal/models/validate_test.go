package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validInstallmentTerms() SaleTerms {
	return SaleTerms{
		TotalAmount:    decimal.NewFromInt(12000),
		InitialPayment: decimal.NewFromInt(2000),
		DurationMonths: 10,
		DueDayOfMonth:  15,
		PaymentType:    PaymentInstallment,
		StartDate:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateSaleTerms_OK(t *testing.T) {
	res := ValidateSaleTerms(validInstallmentTerms())
	if !res.OK() {
		t.Fatalf("expected valid terms, got: %s", res.Error())
	}
}

func TestValidateSaleTerms_InitialExceedsTotal(t *testing.T) {
	terms := validInstallmentTerms()
	terms.InitialPayment = decimal.NewFromInt(13000)
	res := ValidateSaleTerms(terms)
	if res.OK() {
		t.Fatalf("expected failure when initial payment exceeds total")
	}
}

func TestValidateSaleTerms_InstallmentNeedsDuration(t *testing.T) {
	terms := validInstallmentTerms()
	terms.DurationMonths = 0
	if res := ValidateSaleTerms(terms); res.OK() {
		t.Fatalf("expected failure for zero duration")
	}

	terms = validInstallmentTerms()
	terms.DueDayOfMonth = 32
	if res := ValidateSaleTerms(terms); res.OK() {
		t.Fatalf("expected failure for due day out of range")
	}
}

func TestValidateSaleTerms_ReservationNeedsDeadline(t *testing.T) {
	terms := validInstallmentTerms()
	terms.PaymentType = PaymentReservation
	if res := ValidateSaleTerms(terms); res.OK() {
		t.Fatalf("expected failure for reservation without deadline")
	}

	deadline := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	terms.ReservationDeadline = &deadline
	if res := ValidateSaleTerms(terms); !res.OK() {
		t.Fatalf("unexpected failure: %s", res.Error())
	}
}

func TestValidateSaleTerms_UnknownPaymentType(t *testing.T) {
	terms := validInstallmentTerms()
	terms.PaymentType = "kredit"
	if res := ValidateSaleTerms(terms); res.OK() {
		t.Fatalf("expected failure for unknown payment type")
	}
}

func TestStatusLabelFallsBackToUnknown(t *testing.T) {
	if got := ApartmentStatus("remont").Label(); got != UnknownLabel {
		t.Fatalf("expected %q, got %q", UnknownLabel, got)
	}
	if got := StatusReserved.Label(); got != "Band qilingan" {
		t.Fatalf("unexpected label %q", got)
	}
}
