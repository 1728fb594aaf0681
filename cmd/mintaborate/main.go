// Mintaborate server: evaluates how well documentation sites support
// autonomous agents. Serves the run API, drives run orchestration, and
// streams run events over WebSocket.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dhiyaancnirmal/mintaborate/pkg/api"
	"github.com/dhiyaancnirmal/mintaborate/pkg/config"
	"github.com/dhiyaancnirmal/mintaborate/pkg/costing"
	"github.com/dhiyaancnirmal/mintaborate/pkg/database"
	"github.com/dhiyaancnirmal/mintaborate/pkg/events"
	"github.com/dhiyaancnirmal/mintaborate/pkg/ingest"
	"github.com/dhiyaancnirmal/mintaborate/pkg/llm"
	"github.com/dhiyaancnirmal/mintaborate/pkg/metrics"
	"github.com/dhiyaancnirmal/mintaborate/pkg/orchestrator"
	"github.com/dhiyaancnirmal/mintaborate/pkg/store"
	"github.com/dhiyaancnirmal/mintaborate/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// buildLLMClient registers a provider adapter for every API key present.
func buildLLMClient() (llm.Client, error) {
	providers := make(map[string]llm.TextCompleter)
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		providers["openai"] = llm.NewOpenAIProvider(key)
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		providers["anthropic"] = llm.NewAnthropicProvider(key)
	}
	if len(providers) == 0 {
		return nil, errNoProviders
	}
	return llm.NewMultiProviderClient(providers), nil
}

var errNoProviders = &config.ValidationError{
	Field:   "environment",
	Message: "set OPENAI_API_KEY and/or ANTHROPIC_API_KEY",
}

// dbOf unwraps the raw *sql.DB, tolerating a nil client in memory mode.
func dbOf(client *database.Client) *sql.DB {
	if client == nil {
		return nil
	}
	return client.DB()
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, using process environment", "error", err)
	}

	slog.Info("Starting mintaborate", "version", version.Full())

	serverCfg, err := config.LoadServerConfigFromEnv()
	if err != nil {
		slog.Error("Invalid server configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	rawClient, err := buildLLMClient()
	if err != nil {
		slog.Error("Failed to build model client", "error", err)
		os.Exit(1)
	}
	client := metrics.InstrumentClient(rawClient, m)

	// Store backend: PostgreSQL by default, in-memory for local trials.
	var (
		st       store.Store
		dbClient *database.Client
		listener *events.NotifyListener
	)
	hub := events.NewHub()

	if getEnv("STORE_BACKEND", "postgres") == "memory" {
		st = store.NewMemoryStore()
		slog.Warn("Running on the in-memory store; run state is not persisted")
	} else {
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			slog.Error("Failed to load database config", "error", err)
			os.Exit(1)
		}
		dbClient, err = database.NewClient(ctx, dbConfig)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		st = store.NewEntStore(dbClient.Client)
		slog.Info("Connected to PostgreSQL database", "host", dbConfig.Host, "database", dbConfig.Database)

		// Cross-replica event fan-in over LISTEN/NOTIFY.
		listener = events.NewNotifyListener(dbConfig.DSN(), st, hub)
		if err := listener.Start(ctx); err != nil {
			slog.Error("Failed to start notify listener", "error", err)
			os.Exit(1)
		}
		defer listener.Stop(ctx)
	}

	publisher := events.NewPublisher(st, hub, dbOf(dbClient))
	publisher.OnAppend(m.EventsAppended.Inc)

	pricer := costing.TablePricer{Fallback: costing.Default()}
	orch := orchestrator.New(st, publisher, client, ingest.NewHTTPIngestor(), pricer, m)

	server := api.NewServer(orch, events.NewStreamer(st, hub), dbOf(dbClient), registry)
	httpServer := &http.Server{
		Addr:              serverCfg.Addr(),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", serverCfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Let in-flight run drivers finish their current writes, then stop HTTP.
	done := make(chan struct{})
	go func() {
		orch.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Run drivers drained")
	case <-time.After(30 * time.Second):
		slog.Warn("Shutdown timeout exceeded, abandoning in-flight runs")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	slog.Info("Shutdown complete")
}
