package main

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-localzone/components/timezones"
)

var (
	errAborted   = errors.New("aborted")
	errNoMatches = errors.New("no zones match")
)

// zonePrompter abstracts the terminal so the picker can be tested without one.
type zonePrompter interface {
	Input(message, def string) (string, error)
	Select(message string, options []string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{
		Message: message,
		Default: def,
		Help:    "Part of a zone name, e.g. \"berlin\" or \"america/\". Leave empty to list everything.",
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var out string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

func pickZone(prompter zonePrompter, query string) (string, error) {
	zones, err := timezones.DefaultZones()
	if err != nil {
		return "", err
	}

	query, err = prompter.Input("Could not detect the time zone. Filter zones:", query)
	if err != nil {
		return "", err
	}
	opts := timezones.NewOptions(timezones.WithEmptySearchMode(timezones.EmptySearchTop))
	matches := timezones.Search(zones, query, opts.MaxLimit, opts)
	if len(matches) == 0 {
		return "", fmt.Errorf("%w %q", errNoMatches, query)
	}
	return prompter.Select("Select your time zone:", matches)
}
