package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	localzone "github.com/goliatone/go-localzone"
	"github.com/goliatone/go-localzone/pkg/probe"
)

var errUnknownZone = errors.New("unknown")

// cliConfig carries what tests need to swap out.
type cliConfig struct {
	options  []localzone.Option
	prompter zonePrompter
}

type detectFlags struct {
	noValidate  bool
	explain     bool
	verbose     bool
	interactive bool
	query       string
}

func newRootCommand(cfg cliConfig) *cobra.Command {
	var flags detectFlags
	command := &cobra.Command{
		Use:           "localzone",
		Short:         "Print the IANA time zone of this machine",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, cfg, flags)
		},
	}
	command.Flags().BoolVar(&flags.noValidate, "no-validate", false, "accept any plausible zone name instead of checking the tz database")
	command.Flags().BoolVar(&flags.explain, "explain", false, "print which source answered and why the others were skipped")
	command.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log each probe stage to stderr")
	command.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "ask for a zone when none can be detected")
	command.Flags().StringVarP(&flags.query, "query", "q", "", "initial filter for the interactive picker")

	command.AddCommand(newIANACommand())
	command.AddCommand(newWindowsCommand())
	command.AddCommand(newSearchCommand())
	return command
}

func runDetect(cmd *cobra.Command, cfg cliConfig, flags detectFlags) error {
	logger := zap.NewNop()
	if flags.verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer func() { _ = dev.Sync() }()
		logger = dev
	}

	options := append([]localzone.Option{}, cfg.options...)
	options = append(options, localzone.WithLogger(logger))
	if flags.noValidate {
		options = append(options, localzone.WithValidator(probe.AcceptAll))
	}

	res := localzone.New(options...).Detect()
	out := cmd.OutOrStdout()
	if flags.explain {
		explain(out, res)
	}
	if res.Found() {
		fmt.Fprintln(out, res.Zone)
		return nil
	}

	if flags.interactive && cfg.prompter != nil {
		zone, err := pickZone(cfg.prompter, flags.query)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, zone)
		return nil
	}

	fmt.Fprintln(out, "unknown")
	return errUnknownZone
}

func explain(w io.Writer, res localzone.Result) {
	fmt.Fprintf(w, "backend: %s\n", res.Backend)
	if res.Found() {
		fmt.Fprintf(w, "stage:   %s\n", res.Stage)
	}
	if res.Err == nil {
		return
	}
	var merr *multierror.Error
	if errors.As(res.Err, &merr) {
		for _, err := range merr.Errors {
			fmt.Fprintf(w, "skipped: %v\n", err)
		}
		return
	}
	fmt.Fprintf(w, "skipped: %v\n", res.Err)
}
