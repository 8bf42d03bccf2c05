package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"ahlan_office/internal/models"
	"ahlan_office/internal/services/installment"
	"ahlan_office/internal/utils"
)

type quoteRequest struct {
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	InitialPayment decimal.Decimal    `json:"initial_payment"`
	DurationMonths int                `json:"duration_months"`
	DueDayOfMonth  int                `json:"due_day_of_month"`
	PaymentType    models.PaymentType `json:"payment_type"`
	StartDate      string             `json:"start_date"`
	OriginalPrice  decimal.Decimal    `json:"original_price,omitempty"`
}

type quoteEntry struct {
	MonthIndex int    `json:"month_index"`
	DueDate    string `json:"due_date"`
	Amount     string `json:"amount"`
}

type quoteResponse struct {
	MonthlyPayment   string       `json:"monthly_payment"`
	RemainingPercent string       `json:"remaining_percent"`
	DiscountPercent  string       `json:"discount_percent,omitempty"`
	Schedule         []quoteEntry `json:"schedule,omitempty"`
	Warning          string       `json:"warning,omitempty"`
}

// Quote is the side-effect-free preview used while the operator is still
// filling the sale form. Nothing is submitted anywhere.
func (h *Handlers) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "bad JSON: " + err.Error()})
		return
	}

	start, ok := parseDate(req.StartDate)
	if !ok {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "start_date noto'g'ri formatda"})
		return
	}

	terms := models.SaleTerms{
		TotalAmount:    req.TotalAmount,
		InitialPayment: req.InitialPayment,
		DurationMonths: req.DurationMonths,
		DueDayOfMonth:  req.DueDayOfMonth,
		PaymentType:    req.PaymentType,
		StartDate:      start,
	}
	if res := models.ValidateSaleTerms(terms); !res.OK() {
		h.JSON(w, http.StatusBadRequest, map[string]any{"error": res.Error(), "reasons": res.Reasons})
		return
	}

	monthly, reason := installment.MonthlyPayment(terms)
	schedule, _ := installment.Schedule(terms)

	resp := quoteResponse{
		MonthlyPayment:   monthly.StringFixed(2),
		RemainingPercent: installment.RemainingPercentage(terms).StringFixed(1),
	}
	if terms.PaymentType == models.PaymentInstallment && reason != "" {
		resp.Warning = reason
	}
	if req.OriginalPrice.Sign() > 0 {
		resp.DiscountPercent = installment.DiscountPercentage(req.OriginalPrice, req.TotalAmount).StringFixed(1)
	}
	for _, e := range schedule {
		resp.Schedule = append(resp.Schedule, quoteEntry{
			MonthIndex: e.MonthIndex,
			DueDate:    utils.FormatDate(e.DueDate),
			Amount:     utils.FormatAmount(e.Amount),
		})
	}

	h.JSON(w, http.StatusOK, resp)
}
