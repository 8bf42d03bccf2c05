package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ahlan_office/internal/config"
	"ahlan_office/internal/handlers"
	"ahlan_office/internal/transport/auth"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg *config.Config, h *handlers.Handlers) *Server {
	mux := http.NewServeMux()

	if h != nil {
		// Health stays open for the load balancer; everything else sits
		// behind the office token.
		mux.HandleFunc("GET /health", h.HealthFor(cfg))

		api := http.NewServeMux()
		api.HandleFunc("POST /installments/quote", h.Quote)
		api.HandleFunc("POST /sales", h.SubmitSale)
		api.HandleFunc("GET /sales/{ref}/contract", h.DownloadContract)
		api.HandleFunc("GET /drafts", h.ListDrafts)
		api.HandleFunc("POST /receipts", h.Receipt)
		api.HandleFunc("GET /apartments", h.Apartments)
		api.HandleFunc("GET /clients", h.Clients)

		mux.Handle("/", auth.OfficeTokenMiddleware(cfg.OfficeToken)(api))
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Port),
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shCtx)
	case err := <-errCh:
		return err
	}
}
