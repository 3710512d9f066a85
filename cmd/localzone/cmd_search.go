package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-localzone/components/timezones"
	"github.com/goliatone/go-localzone/pkg/winzones"
)

func newSearchCommand() *cobra.Command {
	var (
		limit     int
		zonesFile string
	)
	command := &cobra.Command{
		Use:   "search [query]",
		Short: "List zones matching query with their Windows names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zones, err := loadCatalog(zonesFile)
			if err != nil {
				return err
			}
			table, err := winzones.Default()
			if err != nil {
				return err
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			opts := timezones.NewOptions(timezones.WithEmptySearchMode(timezones.EmptySearchTop))
			for _, option := range timezones.SearchOptions(zones, query, limit, opts, table) {
				line := []string{option.Zone}
				if option.Windows != "" {
					line = append(line, option.Windows, option.Territory)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(line, "\t"))
			}
			return nil
		},
	}
	command.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results (default 50, at most 200)")
	command.Flags().StringVar(&zonesFile, "zones-file", "", "newline separated zone list to search instead of the built-in catalog")
	return command
}

func loadCatalog(path string) ([]string, error) {
	if path == "" {
		return timezones.DefaultZones()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open zones file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return timezones.LoadZones(f)
}
