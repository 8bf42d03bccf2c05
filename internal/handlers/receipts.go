package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"ahlan_office/internal/models"
	"ahlan_office/internal/services/contract"
)

type receiptRequest struct {
	PaymentID     int64           `json:"payment_id"`
	ObjectName    string          `json:"object_name"`
	ApartmentInfo string          `json:"apartment_info"`
	ClientName    string          `json:"client_name"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Method        string          `json:"method"`
	Note          string          `json:"note,omitempty"`
	Format        string          `json:"format,omitempty"` // "text" (default) or "pdf"
}

// Receipt renders an ad hoc payment as a printable receipt. Text goes back
// as JSON for the print dialog; pdf streams as a download and is archived
// best effort.
func (h *Handlers) Receipt(w http.ResponseWriter, r *http.Request) {
	var req receiptRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "bad JSON: " + err.Error()})
		return
	}

	if req.Amount.Sign() <= 0 {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "to'lov summasi musbat bo'lishi kerak"})
		return
	}
	date, ok := parseDate(req.Date)
	if !ok {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "date noto'g'ri formatda"})
		return
	}

	payment := models.UserPayment{
		ID:            req.PaymentID,
		ObjectName:    req.ObjectName,
		ApartmentInfo: req.ApartmentInfo,
		ClientName:    req.ClientName,
		Amount:        req.Amount,
		Date:          date,
		Method:        req.Method,
		Note:          req.Note,
	}

	if req.Format != "pdf" {
		h.JSON(w, http.StatusOK, map[string]string{"text": contract.ReceiptText(payment)})
		return
	}

	blob, err := contract.ReceiptPDF(payment)
	if err != nil {
		h.Logger.Printf("[RECEIPT][ERR] render pdf payment=%d: %v", req.PaymentID, err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.Artifacts != nil {
		key := fmt.Sprintf("receipts/%d-%d.pdf", time.Now().UnixNano(), req.PaymentID)
		if _, err := h.Artifacts.Put(r.Context(), key, blob, "application/pdf"); err != nil {
			h.Logger.Printf("[RECEIPT][WARN] store pdf key=%q: %v", key, err)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		`attachment; filename="kvitansiya-`+strconv.FormatInt(req.PaymentID, 10)+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob)))
	_, _ = w.Write(blob)
}
