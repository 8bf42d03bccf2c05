package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"ahlan_office/internal/models"
	"ahlan_office/internal/services/sale"
)

type saleRequest struct {
	ApartmentID int64 `json:"apartment_id"`
	ClientID    int64 `json:"client_id"`

	TotalAmount         decimal.Decimal    `json:"total_amount"`
	InitialPayment      decimal.Decimal    `json:"initial_payment"`
	DurationMonths      int                `json:"duration_months"`
	DueDayOfMonth       int                `json:"due_day_of_month"`
	PaymentType         models.PaymentType `json:"payment_type"`
	StartDate           string             `json:"start_date"`
	ReservationDeadline string             `json:"reservation_deadline,omitempty"`
	BankName            string             `json:"bank_name,omitempty"`
	Comment             string             `json:"comment,omitempty"`
}

// SubmitSale runs the full sale/reservation flow. The apartment and client
// records are fetched from the CRM by id; their absence is a hard error,
// the object-name enrichment is not.
func (h *Handlers) SubmitSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
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
		BankName:       req.BankName,
	}
	if req.ReservationDeadline != "" {
		deadline, ok := parseDate(req.ReservationDeadline)
		if !ok {
			h.JSON(w, http.StatusBadRequest, map[string]string{"error": "reservation_deadline noto'g'ri formatda"})
			return
		}
		terms.ReservationDeadline = &deadline
	}

	ctx := r.Context()

	apartment, err := h.Directory.Apartment(ctx, req.ApartmentID)
	if err != nil {
		h.Logger.Printf("[SALE][ERR] fetch apartment=%d: %v", req.ApartmentID, err)
		h.Fail(w, err)
		return
	}
	client, err := h.Directory.ClientRecord(ctx, req.ClientID)
	if err != nil {
		h.Logger.Printf("[SALE][ERR] fetch client=%d: %v", req.ClientID, err)
		h.Fail(w, err)
		return
	}

	// secondary enrichment; a failure degrades to the placeholder
	if apartment.ObjectName == "" {
		if objects, err := h.Directory.Objects(ctx); err == nil {
			apartment.ObjectName = objects[apartment.ObjectID]
		} else {
			h.Logger.Printf("[SALE][WARN] fetch objects: %v", err)
		}
	}

	res, err := h.Sales.Submit(ctx, sale.Request{
		Apartment: apartment,
		Client:    client,
		Terms:     terms,
		Comment:   req.Comment,
	})
	if err != nil {
		h.Fail(w, err)
		return
	}

	h.JSON(w, http.StatusCreated, res)
}

// DownloadContract streams a previously generated contract workbook.
func (h *Handlers) DownloadContract(w http.ResponseWriter, r *http.Request) {
	ref, err := strconv.ParseInt(r.PathValue("ref"), 10, 64)
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "reference id raqam bo'lishi kerak"})
		return
	}

	draft, artifact, err := h.Drafts.FindByReference(r.Context(), ref)
	if err != nil {
		h.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if artifact.Key == "" {
		h.JSON(w, http.StatusNotFound, map[string]string{"error": "bu shartnoma uchun hujjat saqlanmagan"})
		return
	}

	blob, contentType, err := h.Artifacts.Get(r.Context(), artifact.Key)
	if err != nil {
		h.Logger.Printf("[CONTRACT][ERR] get artifact key=%q: %v", artifact.Key, err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		`attachment; filename="shartnoma-`+strconv.FormatInt(draft.ReferenceID, 10)+`.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(blob)))
	_, _ = w.Write(blob)
}

// ListDrafts is the audit view over the local archive of generated drafts.
func (h *Handlers) ListDrafts(w http.ResponseWriter, r *http.Request) {
	limit := int64(50)
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	recs, err := h.DraftList.List(ctx, limit)
	if err != nil {
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.JSON(w, http.StatusOK, map[string]any{"count": len(recs), "results": recs})
}
