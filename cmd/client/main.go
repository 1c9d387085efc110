package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-shop-sync/internal/client"
	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	serverAddress  string
	bearerToken    string
	cacheDSN       string
	jsonConfigPath string

	app *client.App
)

var rootCmd = &cobra.Command{
	Use:   "shop-sync",
	Short: "Offline-first shopping lists",
	Long: `shop-sync keeps shopping lists in a local cache and synchronizes them
with a remote file server.

Without a bearer token every change is staged locally. Once a token is
configured the staged lists are merged into the remote store.`,
	SilenceUsage:      true,
	PersistentPreRunE: openApp,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	// no app needed
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		printBuildInfo()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVarP(&serverAddress, "server", "s", "",
		"Remote file server address (e.g. http://localhost:8080)")
	rootCmd.PersistentFlags().StringVarP(&bearerToken, "token", "t", "",
		"Bearer token; empty keeps the client in local staging mode")
	rootCmd.PersistentFlags().StringVar(&cacheDSN, "db", "",
		"Path of the local SQLite cache")
	rootCmd.PersistentFlags().StringVarP(&jsonConfigPath, "config", "c", "",
		"JSON config file path")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if app != nil {
		if stopErr := app.Stop(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "close client: %v\n", stopErr)
		}
	}
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func openApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetClientConfig(&config.StructuredConfig{
		Adapter: config.Adapter{
			HTTPAddress: serverAddress,
			Token:       bearerToken,
		},
		Storage: config.Storage{
			Local: config.Local{DSN: cacheDSN},
		},
		JSONFilePath: jsonConfigPath,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger("go-shop-client", logger.FileOptions{
		Path:       cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	app, err = client.NewApp(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("open client: %w", err)
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
