package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/SYLESH-1125/SIH/internal/knowledge"
)

// newKBCmd creates the kb subcommand group.
func newKBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Inspect and manage the knowledge base",
	}
	cmd.AddCommand(newKBListCmd())
	cmd.AddCommand(newKBShowCmd())
	cmd.AddCommand(newKBImportCmd())
	return cmd
}

// newKBListCmd creates the kb list subcommand.
func newKBListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge-base entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := NewUI(outputJSON, noColor)
			store := knowledge.Load(cfg.Knowledge, logger)

			var keys []knowledge.Key
			for _, e := range store.Entries() {
				if category != "" && e.Category != category {
					continue
				}
				keys = append(keys, e.Key())
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(keys)
			}

			ui.Heading(fmt.Sprintf("Knowledge base (%d entries)", len(keys)))
			for _, k := range keys {
				fmt.Printf("  %s/%s\n", k.Category, k.Item)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	return cmd
}

// newKBShowCmd creates the kb show subcommand.
func newKBShowCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "show [category] [item]",
		Short: "Show a knowledge-base entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := NewUI(outputJSON, noColor)
			store := knowledge.Load(cfg.Knowledge, logger)

			entry, ok := store.Get(args[0], args[1])
			if !ok {
				return fmt.Errorf("entry %s/%s not found", args[0], args[1])
			}

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(entry)
			}

			ui.Heading(fmt.Sprintf("%s/%s", entry.Category, entry.Item))
			if language != "" {
				fmt.Println(entry.Content(language))
				return nil
			}
			for lang, text := range entry.Translations {
				ui.Info("%s: %s", lang, text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "show a single language")
	return cmd
}

// newKBImportCmd creates the kb import subcommand.
func newKBImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the knowledge base into the configured SQL database",
		Long: `Import loads the knowledge base from the configured source (builtin by
default) and writes it to the SQL database named in the config, creating
the schema if needed. Useful for seeding a database-backed deployment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := NewUI(outputJSON, noColor)
			store := knowledge.Load(cfg.Knowledge, logger)

			db, err := knowledge.OpenDB(cfg.Knowledge.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := knowledge.EnsureSchema(db); err != nil {
				return err
			}

			entries := store.Entries()
			bar := progressbar.NewOptions(len(entries),
				progressbar.OptionSetDescription("importing"),
				progressbar.OptionSetVisibility(!outputJSON),
			)

			total := 0
			for _, e := range entries {
				n, err := knowledge.InsertEntries(db, cfg.Knowledge.Database.Driver, []knowledge.Entry{e})
				if err != nil {
					return fmt.Errorf("import %s/%s: %w", e.Category, e.Item, err)
				}
				total += n
				_ = bar.Add(1)
			}
			fmt.Println()

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(map[string]int{
					"entries": len(entries),
					"rows":    total,
				})
			}

			ui.Success("imported %d entries (%d rows)", len(entries), total)
			return nil
		},
	}
	return cmd
}
