package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ahlan_office/internal/adapters/artifacts"
	"ahlan_office/internal/adapters/cache"
	"ahlan_office/internal/adapters/crmapi"
	"ahlan_office/internal/config"
	"ahlan_office/internal/handlers"
	"ahlan_office/internal/repository/drafts"
	"ahlan_office/internal/server"
	"ahlan_office/internal/services/sale"
)

func main() {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Init(setupCtx)
	fmt.Println("✅ All connections successfully established!")

	if err := cfg.CheckConnections(setupCtx); err != nil {
		log.Fatalf("❌ Connection check failed: %v", err)
	}
	fmt.Println("🟢 All connections OK")

	crm := crmapi.New(crmapi.Config{
		BaseURL: cfg.CRM.BaseURL,
		Token:   cfg.CRM.Token,
		Timeout: cfg.CRM.Timeout,
	})
	store := artifacts.NewStore(cfg.S3.Client, cfg.S3.Bucket)
	draftRepo := drafts.NewRepo(cfg.Mongo)
	pageCache := cache.NewPageCache(cfg.Redis.Client, cfg.CacheTTL)

	sales := sale.NewService(crm, store, draftRepo)
	h := handlers.New(sales, crm, draftRepo, store, pageCache)
	srv := server.NewServer(cfg, h)

	if err := srv.Run(runCtx); err != nil {
		log.Fatal(err)
	}
}
