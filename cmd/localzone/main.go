package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	command := newRootCommand(cliConfig{prompter: surveyPrompter{}})
	if err := command.Execute(); err != nil {
		if !errors.Is(err, errUnknownZone) {
			fmt.Fprintln(os.Stderr, "localzone:", err)
		}
		os.Exit(1)
	}
}
