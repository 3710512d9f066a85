//go:build windows

package winprobe

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	timeZoneKey     = `SYSTEM\CurrentControlSet\Control\TimeZoneInformation`
	timeZoneKeyName = "TimeZoneKeyName"
)

// DefaultSources reads the standard name reported by GetTimeZoneInformation,
// then the registry key name. The registry value is not localized, so it still
// resolves on non-English installs.
func DefaultSources() []Source {
	return []Source{
		{Name: "standard-name", Query: standardName},
		{Name: "registry", Query: registryKeyName},
	}
}

func standardName() (string, error) {
	var tzi windows.Timezoneinformation
	rc, err := windows.GetTimeZoneInformation(&tzi)
	if err != nil {
		return "", fmt.Errorf("winprobe: GetTimeZoneInformation: %w", err)
	}
	switch rc {
	case 0, 1, 2: // TIME_ZONE_ID_UNKNOWN, _STANDARD, _DAYLIGHT
	default:
		return "", fmt.Errorf("winprobe: GetTimeZoneInformation returned %d", rc)
	}
	return DecodeName(tzi.StandardName[:]), nil
}

func registryKeyName() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, timeZoneKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("winprobe: open %s: %w", timeZoneKey, err)
	}
	defer k.Close()

	name, _, err := k.GetStringValue(timeZoneKeyName)
	if err != nil {
		return "", fmt.Errorf("winprobe: read %s: %w", timeZoneKeyName, err)
	}
	return strings.TrimSpace(name), nil
}
