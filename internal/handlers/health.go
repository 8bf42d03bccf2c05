package handlers

import (
	"context"
	"net/http"
	"time"

	"ahlan_office/internal/config"
)

type healthResp struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors,omitempty"`
}

// Health reports whether the backing stores are reachable. The CRM API is
// deliberately not probed here: it being down must not flap our health.
func (h *Handlers) HealthFor(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var errs []string
		if cfg == nil {
			errs = append(errs, "config not initialized")
		} else if err := cfg.CheckConnections(ctx); err != nil {
			errs = append(errs, err.Error())
		}

		resp := healthResp{OK: len(errs) == 0}
		code := http.StatusOK
		if len(errs) > 0 {
			resp.Errors = errs
			code = http.StatusInternalServerError
		}
		h.JSON(w, code, resp)
	}
}
