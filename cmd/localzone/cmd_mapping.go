package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	localzone "github.com/goliatone/go-localzone"
)

func newIANACommand() *cobra.Command {
	var territory string
	command := &cobra.Command{
		Use:   "iana <windows-zone>",
		Short: "Map a Windows time zone name to its IANA zone",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			var (
				zone string
				ok   bool
			)
			if cmd.Flags().Changed("territory") {
				zone, ok = localzone.WinZoneToIANAInTerritory(name, territory)
			} else {
				zone, ok = localzone.WinZoneToIANA(name)
			}
			if !ok {
				return fmt.Errorf("no IANA zone for %q", name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), zone)
			return nil
		},
	}
	command.Flags().StringVarP(&territory, "territory", "t", "", "CLDR territory code, e.g. CA or 001")
	return command
}

func newWindowsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "windows <iana-zone>",
		Short: "Map an IANA zone to its Windows time zone name and territory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			windows, territory, ok := localzone.IANAToWinZone(args[0])
			if !ok {
				return fmt.Errorf("no Windows zone for %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", windows, territory)
			return nil
		},
	}
}
