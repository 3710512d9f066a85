package timezones

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-localzone/pkg/winzones"
)

var (
	defaultOnce  sync.Once
	defaultZones []string
	defaultErr   error
)

func DefaultZones() ([]string, error) {
	defaultOnce.Do(func() {
		table, err := winzones.Default()
		if err != nil {
			defaultErr = err
			return
		}
		defaultZones = zonesFromTable(table)
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultZones...), nil
}

func zonesFromTable(table *winzones.Table) []string {
	seen := map[string]struct{}{"UTC": {}}
	zones := []string{"UTC"}
	for _, m := range table.Mappings() {
		for _, zone := range m.IANA {
			if _, ok := seen[zone]; ok {
				continue
			}
			seen[zone] = struct{}{}
			if !Known(zone) {
				continue
			}
			zones = append(zones, zone)
		}
	}
	sort.Strings(zones)
	return zones
}

func LoadZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 512)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		zones = append(zones, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Strings(zones)
	return zones, nil
}
