package timezones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-localzone/pkg/winzones"
)

// Option is a search hit annotated with its Windows mapping, when the zone
// has one.
type Option struct {
	Zone      string `json:"zone"`
	Windows   string `json:"windows,omitempty"`
	Territory string `json:"territory,omitempty"`
}

// Search returns zones containing query, case-insensitively. Zones starting
// with query sort first; ties sort by name.
func Search(zones []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(zones) <= limit {
				return append([]string{}, zones...)
			}
			return append([]string{}, zones[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		lowerZone := strings.ToLower(zone)
		if !strings.Contains(lowerZone, q) {
			continue
		}
		matches = append(matches, matchedZone{
			name:     zone,
			isPrefix: strings.HasPrefix(lowerZone, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

// SearchOptions runs Search and annotates each hit using table. A nil table
// leaves the Windows fields empty.
func SearchOptions(zones []string, query string, limit int, opts Options, table *winzones.Table) []Option {
	results := Search(zones, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, zone := range results {
		option := Option{Zone: zone}
		if windows, territory, ok := table.ToWindows(zone); ok {
			option.Windows = windows
			option.Territory = territory
		}
		out = append(out, option)
	}
	return out
}

type matchedZone struct {
	name     string
	isPrefix bool
}
