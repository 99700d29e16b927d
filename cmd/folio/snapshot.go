package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/foliokit/folio/pkg/defaults"
	"github.com/foliokit/folio/pkg/notify"
	"github.com/foliokit/folio/pkg/snapshot"
	"github.com/foliokit/folio/pkg/storage"
	"github.com/foliokit/folio/pkg/store"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export, import or reset the content store",
	Long: `Operate on the durable content store directly, without a running
server. All commands open the data directory exclusively; stop the
server first.`,
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a backup of every entity to a JSON file",
	RunE:  runSnapshotExport,
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore entities from a backup file",
	Long: `Restore entities from a backup file. Only entities present in the
file are replaced; the profile is merged block by block against the
current one. A file that fails to parse leaves the store untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshotImport,
}

var snapshotResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore every entity to its built-in defaults",
	RunE:  runSnapshotReset,
}

func init() {
	snapshotCmd.PersistentFlags().String("data-dir", "./data", "Data directory")
	snapshotExportCmd.Flags().StringP("output", "o", "", "Output file (default folio-backup-<date>.json)")
	snapshotResetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotImportCmd)
	snapshotCmd.AddCommand(snapshotResetCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// openStore opens the backing in the configured data directory and
// builds a store over it. The caller must Close the returned backing.
func openStore(cmd *cobra.Command) (*storage.Backing, *store.Store, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	backing, err := storage.Open(dataDir)
	if err != nil {
		return nil, nil, err
	}
	return backing, store.New(backing, defaults.New()), nil
}

func runSnapshotExport(cmd *cobra.Command, args []string) error {
	backing, st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer backing.Close()

	manager := snapshot.NewManager(st, notify.NewBus())
	doc := manager.Export()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = fmt.Sprintf("folio-backup-%s.json", time.Now().Format("2006-01-02"))
	}
	if err := os.WriteFile(output, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Printf("✓ Exported snapshot to %s\n", output)
	return nil
}

func runSnapshotImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	backing, st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer backing.Close()

	manager := snapshot.NewManager(st, notify.NewBus())
	if err := manager.Import(raw); err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}

	fmt.Printf("✓ Restored snapshot from %s\n", args[0])
	return nil
}

func runSnapshotReset(cmd *cobra.Command, args []string) error {
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Print("This replaces every entity with its defaults. Continue? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	backing, st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer backing.Close()

	if err := st.Reset(defaults.New()); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}

	fmt.Println("✓ Store reset to defaults")
	return nil
}
