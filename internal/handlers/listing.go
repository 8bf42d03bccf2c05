package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ahlan_office/internal/models"
)

const (
	apartmentsCacheKey = "listing:apartments"
	clientsCacheKey    = "listing:clients"
)

type apartmentView struct {
	ID          int64  `json:"id"`
	ObjectName  string `json:"object_name"`
	RoomNumber  string `json:"room_number"`
	Rooms       int    `json:"rooms"`
	Floor       int    `json:"floor"`
	Area        string `json:"area"`
	Price       string `json:"price"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

// Apartments lists the CRM apartment directory with object names filled
// in. The object lookup is best effort: when it fails every row shows
// "Noma'lum" instead of failing the listing.
func (h *Handlers) Apartments(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r, apartmentsCacheKey) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	apartments, err := h.Directory.Apartments(ctx)
	if err != nil {
		h.Fail(w, err)
		return
	}

	objects, err := h.Directory.Objects(ctx)
	if err != nil {
		h.Logger.Printf("[LISTING][WARN] objects lookup failed, rows get %q: %v", models.UnknownLabel, err)
		objects = nil
	}

	views := make([]apartmentView, 0, len(apartments))
	for _, a := range apartments {
		name := a.ObjectName
		if name == "" {
			name = objects[a.ObjectID]
		}
		if name == "" {
			name = models.UnknownLabel
		}
		views = append(views, apartmentView{
			ID:          a.ID,
			ObjectName:  name,
			RoomNumber:  a.RoomNumber,
			Rooms:       a.Rooms,
			Floor:       a.Floor,
			Area:        a.Area.StringFixed(2),
			Price:       a.Price.String(),
			Status:      string(a.Status),
			StatusLabel: a.Status.Label(),
		})
	}

	h.respondAndCache(w, r, apartmentsCacheKey, map[string]any{"count": len(views), "results": views})
}

// Clients lists the CRM client directory.
func (h *Handlers) Clients(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r, clientsCacheKey) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	clients, err := h.Directory.Clients(ctx)
	if err != nil {
		h.Fail(w, err)
		return
	}

	h.respondAndCache(w, r, clientsCacheKey, map[string]any{"count": len(clients), "results": clients})
}

func (h *Handlers) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	if h.Cache == nil {
		return false
	}
	blob, ok := h.Cache.Get(r.Context(), key)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Cache", "hit")
	_, _ = w.Write(blob)
	return true
}

func (h *Handlers) respondAndCache(w http.ResponseWriter, r *http.Request, key string, v any) {
	blob, err := json.Marshal(v)
	if err != nil {
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if h.Cache != nil {
		if err := h.Cache.Set(r.Context(), key, blob); err != nil {
			h.Logger.Printf("[LISTING][WARN] cache set key=%q: %v", key, err)
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(blob)
}
