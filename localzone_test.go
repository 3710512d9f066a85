package localzone_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	localzone "github.com/goliatone/go-localzone"
	"github.com/goliatone/go-localzone/pkg/probe"
	"github.com/goliatone/go-localzone/pkg/probe/posix"
)

type recordingProber struct {
	result probe.Result
	calls  int
	valid  probe.Validator
}

func (p *recordingProber) Name() string { return "recording" }

func (p *recordingProber) Probe(valid probe.Validator) probe.Result {
	p.calls++
	p.valid = valid
	if p.result.Zone != "" && !valid(p.result.Zone) {
		return probe.Result{Backend: "recording", Err: probe.ErrRejected}
	}
	return p.result
}

func hostProber(t *testing.T, env map[string]string, files map[string]string) probe.Prober {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, contents := range files {
		if err := afero.WriteFile(fs, path, []byte(contents), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return posix.New(posix.WithFs(fs), posix.WithEnv(env))
}

func TestLocalZone_FromEnvironment(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "js" {
		t.Skip("TZ is only consulted by the unix backend")
	}
	t.Setenv("TZ", "Europe/Dublin")

	zone, ok := localzone.LocalZone()
	if !ok || zone != "Europe/Dublin" {
		t.Fatalf("expected Europe/Dublin, got %q (ok=%v)", zone, ok)
	}

	again, _ := localzone.LocalZone()
	if again != zone {
		t.Fatalf("expected repeated lookups to agree, got %q then %q", zone, again)
	}
}

func TestLocalZoneWithValidation_RejectAll(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "js" {
		t.Skip("TZ is only consulted by the unix backend")
	}
	t.Setenv("TZ", "Europe/Dublin")

	if zone, ok := localzone.LocalZoneWithValidation(func(string) bool { return false }); ok {
		t.Fatalf("expected no zone, got %q", zone)
	}
}

func TestDetector_EnvBeatsFiles(t *testing.T) {
	d := localzone.New(localzone.WithProber(hostProber(t,
		map[string]string{"TZ": "Asia/Tokyo"},
		map[string]string{"/etc/timezone": "Europe/Berlin"},
	)))

	zone, ok := d.LocalZone()
	if !ok || zone != "Asia/Tokyo" {
		t.Fatalf("expected Asia/Tokyo, got %q (ok=%v)", zone, ok)
	}
}

func TestDetector_DefaultValidatorSkipsUnknownZones(t *testing.T) {
	if !localzone.AutoValidation {
		t.Skip("built without auto validation")
	}
	d := localzone.New(localzone.WithProber(hostProber(t,
		map[string]string{"TZ": "Mars/Olympus_Mons"},
		map[string]string{"/etc/timezone": "Europe/Berlin"},
	)))

	res := d.Detect()
	if res.Zone != "Europe/Berlin" || res.Stage != "file:/etc/timezone" {
		t.Fatalf("expected unknown env zone to be skipped, got %#v", res)
	}
}

func TestDetector_RejectAllReturnsNothing(t *testing.T) {
	d := localzone.New(
		localzone.WithProber(hostProber(t,
			map[string]string{"TZ": "Asia/Tokyo"},
			map[string]string{"/etc/timezone": "Europe/Berlin", "/var/db/zoneinfo": "America/Chicago"},
		)),
		localzone.WithValidator(func(string) bool { return false }),
	)

	res := d.Detect()
	if res.Found() {
		t.Fatalf("expected nothing, got %#v", res)
	}
	if !errors.Is(res.Err, probe.ErrRejected) {
		t.Fatalf("expected rejection in trace, got %v", res.Err)
	}
}

func TestDetector_NilValidatorAcceptsAll(t *testing.T) {
	p := &recordingProber{result: probe.Result{Backend: "recording", Stage: "fake", Zone: "Not/A_Real_Zone"}}
	d := localzone.New(localzone.WithProber(p), localzone.WithValidator(nil))

	zone, ok := d.LocalZone()
	if !ok || zone != "Not/A_Real_Zone" {
		t.Fatalf("expected zone accepted, got %q (ok=%v)", zone, ok)
	}
	if p.calls != 1 || p.valid == nil {
		t.Fatalf("expected one probe with a validator, got calls=%d", p.calls)
	}
}

func TestDetector_LogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := &recordingProber{result: probe.Result{Backend: "recording", Stage: "fake", Zone: "Europe/Berlin"}}
	d := localzone.New(localzone.WithProber(p), localzone.WithLogger(zap.New(core)))

	if _, ok := d.LocalZone(); !ok {
		t.Fatalf("expected a zone")
	}
	entries := logs.FilterMessage("local zone detected").All()
	if len(entries) != 1 {
		t.Fatalf("expected one detection log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["zone"]; got != "Europe/Berlin" {
		t.Fatalf("unexpected logged zone %v", got)
	}
}

func TestMappingHelpers(t *testing.T) {
	if zone, ok := localzone.WinZoneToIANAInTerritory("US Mountain Standard Time", "CA"); !ok || zone != "America/Creston" {
		t.Fatalf("unexpected territory mapping %q", zone)
	}
	if zone, ok := localzone.WinZoneToIANA("US Mountain Standard Time"); !ok || zone != "America/Phoenix" {
		t.Fatalf("unexpected default mapping %q", zone)
	}
	windows, territory, ok := localzone.IANAToWinZone("Europe/Vienna")
	if !ok || windows != "W. Europe Standard Time" || territory != "AT" {
		t.Fatalf("unexpected reverse mapping %q %q", windows, territory)
	}
}
