package crmapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"ahlan_office/internal/models"
)

// AdditionalInfo is the free-form JSON blob the CRM API stores next to a
// payment record: operator comments, mortgage bank, negotiated discount.
type AdditionalInfo struct {
	Comment         string `json:"comment,omitempty"`
	BankName        string `json:"bank_name,omitempty"`
	DiscountPercent string `json:"discount_percent,omitempty"`
}

// PaymentCreate mirrors the POST /payments/ body.
type PaymentCreate struct {
	ApartmentID         int64              `json:"apartment"`
	ClientID            int64              `json:"client"`
	TotalAmount         decimal.Decimal    `json:"total_amount"`
	InitialPayment      decimal.Decimal    `json:"initial_payment"`
	DurationMonths      int                `json:"duration_months"`
	MonthlyPayment      decimal.Decimal    `json:"monthly_payment"`
	DueDate             int                `json:"due_date"`
	PaymentType         models.PaymentType `json:"payment_type"`
	ReservationDeadline *string            `json:"reservation_deadline,omitempty"`
	AdditionalInfo      AdditionalInfo     `json:"additional_info"`
}

type PaymentRecord struct {
	ID          int64              `json:"id"`
	ApartmentID int64              `json:"apartment"`
	ClientID    int64              `json:"client"`
	PaymentType models.PaymentType `json:"payment_type"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
}

// CreatePayment creates the SaleTerms-backed payment record and returns it
// with its server-assigned id, which becomes the contract reference.
func (c *Client) CreatePayment(ctx context.Context, req PaymentCreate) (PaymentRecord, error) {
	var rec PaymentRecord
	if err := c.do(ctx, http.MethodPost, "/payments/", req, &rec); err != nil {
		return PaymentRecord{}, err
	}
	return rec, nil
}

// ProcessPayment records the initial payment amount against a just-created
// payment record.
func (c *Client) ProcessPayment(ctx context.Context, paymentID int64, amount decimal.Decimal) error {
	body := map[string]decimal.Decimal{"amount": amount}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/payments/%d/process_payment/", paymentID), body, nil)
}
