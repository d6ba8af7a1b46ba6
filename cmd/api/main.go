package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"

	"github.com/ewilliams-labs/spotify-insights/internal/adapters/charts"
	"github.com/ewilliams-labs/spotify-insights/internal/adapters/rest"
	"github.com/ewilliams-labs/spotify-insights/internal/app"
	"github.com/ewilliams-labs/spotify-insights/internal/config"
	"github.com/ewilliams-labs/spotify-insights/internal/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	flag.Parse()

	// 1. Configuration (file, .env, environment)
	cfg, resolved, exists, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("FATAL: load config: %v", err)
	}
	if exists {
		log.Printf("DEBUG config loaded from %s", resolved)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Adapters and core services
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
	defer a.Close()

	var auth rest.Authenticator
	if a.Auth != nil {
		auth = a.Auth
	}
	handler := rest.NewHandler(a.Insights, charts.NewRenderer(), auth, metrics.New())

	// 3. Start the Server
	log.Println("------------------------------------------------")
	log.Printf("spotify insights is running on http://%s", cfg.Server.Bind)
	log.Println("------------------------------------------------")

	srv := &http.Server{
		Addr:              cfg.Server.Bind,
		Handler:           handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, handler)),
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
