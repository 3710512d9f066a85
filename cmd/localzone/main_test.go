package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	localzone "github.com/goliatone/go-localzone"
	"github.com/goliatone/go-localzone/pkg/probe/posix"
)

type fakePrompter struct {
	input     string
	inputErr  error
	selectErr error
	offered   []string
}

func (p *fakePrompter) Input(message, def string) (string, error) {
	if p.inputErr != nil {
		return "", p.inputErr
	}
	return p.input, nil
}

func (p *fakePrompter) Select(message string, options []string) (string, error) {
	p.offered = append([]string{}, options...)
	if p.selectErr != nil {
		return "", p.selectErr
	}
	return options[0], nil
}

func hostConfig(env map[string]string, prompter zonePrompter) cliConfig {
	prober := posix.New(posix.WithFs(afero.NewMemMapFs()), posix.WithEnv(env))
	return cliConfig{
		options:  []localzone.Option{localzone.WithProber(prober)},
		prompter: prompter,
	}
}

func execute(t *testing.T, cfg cliConfig, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	command := newRootCommand(cfg)
	command.SetOut(&out)
	command.SetErr(&out)
	command.SetArgs(args)
	err := command.Execute()
	return out.String(), err
}

func TestDetect_PrintsZone(t *testing.T) {
	out, err := execute(t, hostConfig(map[string]string{"TZ": "Europe/Berlin"}, nil))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != "Europe/Berlin\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDetect_UnknownExitsWithError(t *testing.T) {
	out, err := execute(t, hostConfig(nil, nil))
	if !errors.Is(err, errUnknownZone) {
		t.Fatalf("expected errUnknownZone, got %v", err)
	}
	if out != "unknown\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDetect_NoValidateAcceptsPlausibleNames(t *testing.T) {
	cfg := hostConfig(map[string]string{"TZ": "Mars/Olympus_Mons"}, nil)

	if _, err := execute(t, cfg); localzone.AutoValidation && !errors.Is(err, errUnknownZone) {
		t.Fatalf("expected unknown zone to be rejected, got %v", err)
	}
	out, err := execute(t, cfg, "--no-validate")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != "Mars/Olympus_Mons\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDetect_Explain(t *testing.T) {
	out, err := execute(t, hostConfig(map[string]string{"TZ": "Asia/Tokyo"}, nil), "--explain")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"backend: posix", "stage:   env:TZ", "Asia/Tokyo"}
	if diff := cmp.Diff(want, strings.Split(strings.TrimSpace(out), "\n")); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}

	out, _ = execute(t, hostConfig(nil, nil), "--explain")
	if !strings.Contains(out, "skipped: ") {
		t.Fatalf("expected skipped stages to be listed, got %q", out)
	}
}

func TestDetect_InteractivePicksZone(t *testing.T) {
	prompter := &fakePrompter{input: "vienna"}
	out, err := execute(t, hostConfig(nil, prompter), "--interactive")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != "Europe/Vienna\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if diff := cmp.Diff([]string{"Europe/Vienna"}, prompter.offered); diff != "" {
		t.Fatalf("unexpected choices (-want +got):\n%s", diff)
	}
}

func TestDetect_InteractiveErrors(t *testing.T) {
	_, err := execute(t, hostConfig(nil, &fakePrompter{inputErr: errAborted}), "-i")
	if !errors.Is(err, errAborted) {
		t.Fatalf("expected errAborted, got %v", err)
	}

	_, err = execute(t, hostConfig(nil, &fakePrompter{input: "no-such-place"}), "-i")
	if !errors.Is(err, errNoMatches) {
		t.Fatalf("expected errNoMatches, got %v", err)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, errAborted) {
		t.Fatalf("expected errAborted, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("expected error passed through, got %v", err)
	}
}

func TestIANACommand(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{args: []string{"iana", "US Mountain Standard Time"}, want: "America/Phoenix\n"},
		{args: []string{"iana", "US", "Mountain", "Standard", "Time"}, want: "America/Phoenix\n"},
		{args: []string{"iana", "--territory", "CA", "US Mountain Standard Time"}, want: "America/Creston\n"},
		{args: []string{"iana", "-t", "ZZ", "US Mountain Standard Time"}, want: "Etc/GMT+7\n"},
	}
	for _, tc := range cases {
		out, err := execute(t, cliConfig{}, tc.args...)
		if err != nil {
			t.Fatalf("%v: expected no error, got %v", tc.args, err)
		}
		if out != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.args, tc.want, out)
		}
	}

	if _, err := execute(t, cliConfig{}, "iana", "--territory", "FR", "US Mountain Standard Time"); err == nil {
		t.Fatalf("expected error for unmapped territory")
	}
}

func TestWindowsCommand(t *testing.T) {
	out, err := execute(t, cliConfig{}, "windows", "Europe/Vienna")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != "W. Europe Standard Time\tAT\n" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := execute(t, cliConfig{}, "windows", "Mars/Olympus_Mons"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}

func TestSearchCommand(t *testing.T) {
	out, err := execute(t, cliConfig{}, "search", "vienna")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != "Europe/Vienna\tW. Europe Standard Time\tAT\n" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = execute(t, cliConfig{}, "search", "--limit", "3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 3 {
		t.Fatalf("expected 3 results, got %d: %q", len(lines), out)
	}
}

func TestSearchCommand_ZonesFile(t *testing.T) {
	path := t.TempDir() + "/zones.txt"
	if err := afero.WriteFile(afero.NewOsFs(), path, []byte("# custom\nLocal/Office\nEurope/Vienna\n"), 0o644); err != nil {
		t.Fatalf("write zones file: %v", err)
	}

	out, err := execute(t, cliConfig{}, "search", "--zones-file", path, "o")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "Europe/Vienna\tW. Europe Standard Time\tAT\nLocal/Office\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}

	if _, err := execute(t, cliConfig{}, "search", "--zones-file", path+".missing"); err == nil {
		t.Fatalf("expected error for missing zones file")
	}
}
