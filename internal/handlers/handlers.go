package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"ahlan_office/internal/adapters/crmapi"
	"ahlan_office/internal/models"
	"ahlan_office/internal/ports"
	"ahlan_office/internal/repository/drafts"
	"ahlan_office/internal/services/sale"
)

// Directory is the read side of the CRM API used by listings and
// enrichment lookups.
type Directory interface {
	Apartment(ctx context.Context, apartmentID int64) (models.Apartment, error)
	Apartments(ctx context.Context) ([]models.Apartment, error)
	ClientRecord(ctx context.Context, clientID int64) (models.Client, error)
	Clients(ctx context.Context) ([]models.Client, error)
	Objects(ctx context.Context) (map[int64]string, error)
}

// DraftLister is the audit-view side of the draft archive.
type DraftLister interface {
	List(ctx context.Context, limit int64) ([]drafts.Record, error)
}

type Handlers struct {
	Sales     *sale.Service
	Directory Directory
	Drafts    ports.DraftStore
	DraftList DraftLister
	Artifacts ports.ArtifactStore
	Cache     ports.PageCache

	Logger *log.Logger
}

func New(sales *sale.Service, dir Directory, draftRepo *drafts.Repo, artifacts ports.ArtifactStore, cache ports.PageCache) *Handlers {
	return &Handlers{
		Sales:     sales,
		Directory: dir,
		Drafts:    draftRepo,
		DraftList: draftRepo,
		Artifacts: artifacts,
		Cache:     cache,
		Logger:    log.Default(),
	}
}

func (h *Handlers) JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Fail maps the error taxonomy onto HTTP codes: validation -> 400,
// an expired CRM token -> 401 (the frontend drops its session), any other
// CRM failure -> 502 carrying the server detail when there is one.
func (h *Handlers) Fail(w http.ResponseWriter, err error) {
	var verr *sale.ValidationError
	if errors.As(err, &verr) {
		h.JSON(w, http.StatusBadRequest, map[string]any{"error": verr.Error(), "reasons": verr.Reasons})
		return
	}
	if errors.Is(err, crmapi.ErrUnauthorized) {
		h.JSON(w, http.StatusUnauthorized, map[string]any{"error": "CRM token eskirgan, qaytadan kiring"})
		return
	}
	var apiErr *crmapi.APIError
	if errors.As(err, &apiErr) {
		h.JSON(w, http.StatusBadGateway, map[string]any{"error": apiErr.Error()})
		return
	}
	h.JSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	return dec.Decode(v)
}

// parseDate accepts the two date forms the frontend sends.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
