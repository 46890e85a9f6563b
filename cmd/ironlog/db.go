// ABOUTME: CLI commands for database export, import, and inspection.
// ABOUTME: Supports JSON/YAML export, snapshot import, and vault info.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/ironlog/internal/config"
	"github.com/spf13/cobra"
)

var sqliteMagic = []byte("SQLite format 3\x00")

var (
	dbExportOutput string
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database export, import, and inspection",
	Long: `Manage the underlying database.

The working SQLite file is a scratch copy; the durable truth is the
snapshot held in the local vault, refreshed shortly after every mutation.

COMMANDS:

  export   Dump all data as JSON, YAML, or a raw SQLite snapshot
  import   Replace the vault snapshot with a SQLite database file
  info     Show storage paths and the latest snapshot metadata

EXAMPLES:

  ironlog db export json -o backup.json
  ironlog db export yaml
  ironlog db export sqlite -o backup.db
  ironlog db import backup.db
  ironlog db info`,
}

var dbExportCmd = &cobra.Command{
	Use:       "export <format>",
	Short:     "Export all data",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "sqlite"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		switch args[0] {
		case "json":
			data, err = session.Store.ExportJSON()
		case "yaml":
			data, err = session.Store.ExportYAML()
		case "sqlite":
			if dbExportOutput == "" {
				return fmt.Errorf("sqlite export is binary; use --output")
			}
			// Make sure the vault and the bytes we hand out agree.
			if err := session.Flush(); err != nil {
				return fmt.Errorf("failed to flush: %w", err)
			}
			data, err = session.Store.Snapshot()
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or sqlite)", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if dbExportOutput != "" {
			if err := os.WriteFile(dbExportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", dbExportOutput, err)
			}
			color.Green("✓ Exported to %s", dbExportOutput)
			return nil
		}

		fmt.Print(string(data))
		return nil
	},
}

var dbImportCmd = &cobra.Command{
	Use:   "import <sqlite-file>",
	Short: "Replace the vault snapshot with a database file",
	Long: `Replace the vault snapshot with a SQLite database file.

The file must be a raw SQLite database (for example one produced by
copying the working file, or an ironlog database from another machine).
The imported snapshot becomes the durable copy and is restored on the
next command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		if len(data) < len(sqliteMagic) || !bytes.HasPrefix(data, sqliteMagic) {
			return fmt.Errorf("%s is not a SQLite database", args[0])
		}

		if err := session.Vault.Save(data); err != nil {
			return fmt.Errorf("failed to store snapshot: %w", err)
		}

		// Drop the working copy so the next open restores from the
		// imported snapshot rather than checkpointing over it.
		cfg, err := config.Load()
		if err == nil {
			_ = os.Remove(cfg.DBPath())
			_ = os.Remove(cfg.DBPath() + "-wal")
			_ = os.Remove(cfg.DBPath() + "-shm")
		}

		color.Green("✓ Imported %s (%d bytes)", args[0], len(data))
		fmt.Println("  the snapshot takes effect on the next command")
		return nil
	},
}

var dbInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show storage paths and snapshot metadata",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("config:   %s\n", config.GetConfigPath())
		fmt.Printf("database: %s\n", cfg.DBPath())
		fmt.Printf("vault:    %s\n", cfg.VaultDir())

		meta, err := session.Vault.Meta()
		if err != nil {
			return fmt.Errorf("failed to read snapshot metadata: %w", err)
		}
		if meta == nil {
			fmt.Println("snapshot: none")
			return nil
		}
		fmt.Printf("snapshot: %d bytes, saved %s %s\n",
			meta.SizeBytes,
			meta.SavedAt.Format("2006-01-02 15:04:05"),
			faint.Sprintf("(revision %s)", meta.Revision))
		return nil
	},
}

func init() {
	dbExportCmd.Flags().StringVarP(&dbExportOutput, "output", "o", "", "write to file instead of stdout")

	dbCmd.AddCommand(dbExportCmd)
	dbCmd.AddCommand(dbImportCmd)
	dbCmd.AddCommand(dbInfoCmd)
	rootCmd.AddCommand(dbCmd)
}
