package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio - Self-hosted personal content site backend",
	Long: `Folio keeps the editable content of a personal site (profile,
publications, timeline, projects and more) in a single durable local
store, reconciles old data against the current schema on load, and
serves it over an HTTP/JSON API with owner authentication and
merge-safe backup/restore.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Folio version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))
}
