package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/podwatch/watchlist-api/api"
	"github.com/podwatch/watchlist-api/api/types"
	"github.com/podwatch/watchlist-api/internal/database"
	"github.com/podwatch/watchlist-api/internal/models"
	"github.com/podwatch/watchlist-api/internal/services/pinguard"
	"github.com/podwatch/watchlist-api/internal/services/podcasts"
	"github.com/podwatch/watchlist-api/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Podcast Watchlist API server with the configured settings.

Example:
  watchlist-api serve
  watchlist-api serve --port 9090
  watchlist-api serve --host 0.0.0.0 --port 3005`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	// Database is required; failing to open it is a fatal startup error
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("[WARN] Failed to close database: %v", closeErr)
		}
	}()

	if err := db.AutoMigrate(&models.Podcast{}); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	repo := podcasts.NewRepository(db.DB)
	guard := pinguard.NewGuard(repo, cfg.Auth.AdminPIN)
	service := podcasts.NewService(repo, guard)

	deps := &types.Dependencies{
		DB:             db,
		PodcastService: service,
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("[INFO] Podcast Watchlist API listening on %s", address)

	select {
	case <-stop:
		log.Println("[INFO] Shutting down server...")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
		log.Println("[INFO] Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] Server forced to shutdown: %v", err)
		return err
	}

	log.Println("[INFO] Server gracefully stopped")
	return nil
}
