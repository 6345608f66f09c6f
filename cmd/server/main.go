package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/application/services"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/application/usecases"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/config"
	domainservices "github.com/JosueEspinoza19/barber-ia-functions/internal/domain/services"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/infrastructure/api"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/infrastructure/external"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/infrastructure/logging"
	infraservices "github.com/JosueEspinoza19/barber-ia-functions/internal/infrastructure/services"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if _, err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stdout); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	params, err := cfg.GenerationParameters()
	if err != nil {
		log.Fatalf("Invalid generation parameters: %v", err)
	}

	// Initialize infrastructure layer
	clientPool := infraservices.NewClientPoolService(cfg.AIClientConfig())
	defer clientPool.Close()

	gateway, err := external.NewModelGateway(cfg.Gateway.Backend, clientPool, params)
	if err != nil {
		log.Fatalf("Failed to create model gateway: %v", err)
	}

	opts, err := clientPool.ClientOptions(ctx)
	if err != nil {
		slog.Warn("No Google credentials found; ID tokens are verified with the project id only", "error", err)
		opts = nil
	}
	authenticator, err := external.NewFirebaseAuthService(ctx, cfg.Google.ProjectID, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firebase auth service: %v", err)
	}

	// Initialize domain layer
	hairstyleDomainService := domainservices.NewHairstyleDomainService(gateway)

	// Initialize application layer
	analyzeFaceUseCase := usecases.NewAnalyzeFaceUseCase(hairstyleDomainService)
	requestService := services.NewRequestService()

	// Initialize API layer
	handler := api.NewAnalyzeFaceHandler(analyzeFaceUseCase, requestService, authenticator, cfg.Server.MaxBodyBytes)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Starting server",
		"port", cfg.Server.Port,
		"backend", cfg.Gateway.Backend,
		"model", params.Model(),
		"project", cfg.Google.ProjectID,
		"location", cfg.Google.Location,
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
