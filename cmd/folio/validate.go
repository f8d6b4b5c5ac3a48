package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/portfolio"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the page document",
	Long: `Loads the page document, reports every problem found, and prints a
short summary when it is valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := portfolio.Load(settings.ConfigPath)
		if err != nil {
			return err
		}
		printSummary(cfg)
		return nil
	},
}

func printSummary(cfg *portfolio.Config) {
	fmt.Fprintf(out, "%s: ok\n", settings.ConfigPath)
	fmt.Fprintf(out, "  title:    %s\n", cfg.Page.Title)
	fmt.Fprintf(out, "  contact:  %s\n", cfg.Contact.Email)
	fmt.Fprintf(out, "  projects: %d\n", len(cfg.Projects))
	for _, p := range cfg.Projects {
		fmt.Fprintf(out, "    %3d  %-24s %s\n", p.ID, p.Title, p.Category)
	}
}
