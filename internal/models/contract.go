package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is the buyer record, optionally with a guarantor (kafil).
type Client struct {
	ID               int64  `json:"id"`
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	GuarantorName    string `json:"guarantor_name,omitempty"`
	GuarantorPhone   string `json:"guarantor_phone,omitempty"`
	GuarantorAddress string `json:"guarantor_address,omitempty"`
}

// ContractDraft is the frozen result of one sale/reservation submission.
// Re-submitting produces a new draft with a new reference id.
type ContractDraft struct {
	ReferenceID   int64           `json:"reference_id"`
	Client        Client          `json:"client"`
	Terms         SaleTerms       `json:"terms"`
	Schedule      []ScheduleEntry `json:"schedule,omitempty"`
	GeneratedText string          `json:"generated_text"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// UserPayment is an ad hoc balance top-up, distinct from the installment
// schedule. It only exists here long enough to be printed as a receipt.
type UserPayment struct {
	ID            int64           `json:"id"`
	ObjectName    string          `json:"object_name"`
	ApartmentInfo string          `json:"apartment_info"`
	ClientName    string          `json:"client_name"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Method        string          `json:"method"`
	Note          string          `json:"note,omitempty"`
}

var paymentMethodLabels = map[string]string{
	"naqd":   "Naqd pul",
	"karta":  "Plastik karta",
	"bank":   "Bank o'tkazmasi",
	"boshqa": "Boshqa",
}

// PaymentMethodLabel maps a CRM payment method code to its display name.
func PaymentMethodLabel(method string) string {
	if l, ok := paymentMethodLabels[method]; ok {
		return l
	}
	return UnknownLabel
}
