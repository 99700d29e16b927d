package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio/pkg/api"
	"github.com/foliokit/folio/pkg/auth"
	"github.com/foliokit/folio/pkg/config"
	"github.com/foliokit/folio/pkg/defaults"
	"github.com/foliokit/folio/pkg/log"
	"github.com/foliokit/folio/pkg/metrics"
	"github.com/foliokit/folio/pkg/notify"
	"github.com/foliokit/folio/pkg/snapshot"
	"github.com/foliokit/folio/pkg/storage"
	"github.com/foliokit/folio/pkg/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Folio content server",
	Long: `Run the Folio content server: open the durable store, reconcile it
against the current schema defaults and serve the HTTP API.

Examples:
  # Serve with defaults (:8080, ./data)
  folio serve

  # Serve a specific data directory on another port
  folio serve --listen :9090 --data-dir /var/lib/folio`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("config", "", "Path to YAML config file")
	serveCmd.Flags().String("listen", "", "Listen address (overrides config)")
	serveCmd.Flags().String("data-dir", "", "Data directory (overrides config)")
	serveCmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")
	serveCmd.Flags().Bool("log-json", false, "Log as JSON")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// flags win over file and environment
	if v, _ := cmd.Flags().GetString("listen"); v != "" {
		cfg.Listen = v
	}
	if v, _ := cmd.Flags().GetString("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if changed := cmd.Flags().Changed("log-json"); changed {
		cfg.LogJSON, _ = cmd.Flags().GetBool("log-json")
	}

	log.Init(log.Config{Level: log.Level(cfg.LogLevel), JSONOutput: cfg.LogJSON})
	metrics.SetVersion(Version)

	if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	backing, err := storage.Open(cfg.DataDir)
	if err != nil {
		metrics.RegisterComponent("store", false, err.Error())
		return err
	}
	defer backing.Close()
	metrics.RegisterComponent("store", true, "open")

	st := store.New(backing, defaults.New())
	bus := notify.NewBus()
	gate := auth.NewGate(st, bus)
	snapshots := snapshot.NewManager(st, bus)

	server, err := api.NewServer(st, gate, snapshots, bus, cfg.SessionTTL)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.Listen)
	}()

	fmt.Printf("Folio serving on %s (data: %s)\n", cfg.Listen, backing.Path())
	fmt.Println("Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		fmt.Println("\nShutting down...")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}

	fmt.Println("✓ Shutdown complete")
	return nil
}
