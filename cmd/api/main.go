package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/storefront/internal/api"
	"github.com/example/storefront/internal/apiclient"
	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/availability"
	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/email"
	"github.com/example/storefront/internal/featureflags"
	"github.com/example/storefront/internal/localstore"
	"github.com/example/storefront/internal/service"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("[API] JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[API] JWT_SECRET must be at least 32 characters long")
	}
	if cfg.AdminPasswordHash == "" {
		log.Fatal("[API] ADMIN_PASSWORD_HASH environment variable is required")
	}

	log.Println("[API] ========================================")
	log.Println("[API] Storefront - fallback data layer")
	log.Println("[API] ========================================")
	log.Printf("[API] Remote backend: %s (enabled=%v)", cfg.APIBaseURL, cfg.BackendEnabled)
	log.Printf("[API] Probe timeout:  %s", cfg.ProbeTimeout)
	log.Printf("[API] Cart file:      %s", cfg.CartFile)

	// Feature flags (non-fatal when Rollout is unreachable)
	flagCtx, flagCancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer flagCancel()
	if err := featureflags.Init(flagCtx, cfg.RolloutAPIKey, cfg.BackendEnabled, cfg.DebugLog); err != nil {
		log.Printf("[API] feature flags init warning: %v", err)
	}
	defer featureflags.Shutdown()

	// Local mock store, seeded from fixtures
	store, err := localstore.New(cfg.CartFile)
	if err != nil {
		log.Fatalf("[API] Failed to initialize local store: %v", err)
	}
	log.Printf("[API] Local store seeded with %d products", len(store.GetProducts()))

	// Remote client and availability prober
	client := apiclient.New(cfg.APIBaseURL)
	prober := availability.NewProber(client, cfg.ProbeTimeout, cfg.DebugLog)

	router := service.NewRouter(
		func() bool { return featureflags.Values().BackendEnabled.IsEnabled(nil) },
		prober,
		func() bool { return featureflags.Values().DebugLog.IsEnabled(nil) },
	)

	mailer := email.NewService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom)

	// Domain services
	productSvc := service.NewProductService(client, store, router)
	cartSvc := service.NewCartService(client, store, router)
	orderSvc := service.NewOrderService(client, store, router, mailer)
	newsletterSvc := service.NewNewsletterService(client, store, router, mailer)
	contactSvc := service.NewContactService(client, store, router, mailer)
	paymentSvc := service.NewPaymentService(client, router)

	jwtService := auth.NewJWTService(cfg.JWTSecret, 12*time.Hour)

	handlers := api.NewHandlers(api.Config{
		Products:   productSvc,
		Cart:       cartSvc,
		Orders:     orderSvc,
		Newsletter: newsletterSvc,
		Contact:    contactSvc,
		Payment:    paymentSvc,
		JWTService: jwtService,
		AdminEmail: cfg.AdminEmail,
		AdminHash:  cfg.AdminPasswordHash,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(handlers, jwtService),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("[API] Server started on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[API] Server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[API] Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)
}
