package winzones

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/windows_zones.yaml
var dataFS embed.FS

const defaultTablePath = "data/windows_zones.yaml"

// ZoneMapping is a single CLDR mapZone record. IANA is never empty and its
// first element is the preferred zone for the (Windows, Territory) pair.
type ZoneMapping struct {
	Windows   string   `yaml:"windows"`
	Territory string   `yaml:"territory"`
	IANA      []string `yaml:"iana"`
}

// Table is an immutable, ordered list of mappings. It is safe for concurrent
// use.
type Table struct {
	version  string
	mappings []ZoneMapping
}

type tableDocument struct {
	CLDR  string        `yaml:"cldr"`
	Zones []ZoneMapping `yaml:"zones"`
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded table. It is decoded once on first use.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultTablePath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		table, err := Load(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultTable = table
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultTable, nil
}

// Load decodes a table document. Record order is preserved because lookups
// depend on it.
func Load(r io.Reader) (*Table, error) {
	if r == nil {
		return nil, fmt.Errorf("winzones: missing reader")
	}

	var doc tableDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("winzones: decode table: %w", err)
	}

	mappings := make([]ZoneMapping, 0, len(doc.Zones))
	for i, zone := range doc.Zones {
		if err := checkRecord(zone); err != nil {
			return nil, fmt.Errorf("winzones: record %d: %w", i, err)
		}
		mappings = append(mappings, ZoneMapping{
			Windows:   zone.Windows,
			Territory: zone.Territory,
			IANA:      append([]string{}, zone.IANA...),
		})
	}

	return &Table{version: doc.CLDR, mappings: mappings}, nil
}

// New builds a table from in-memory records, mostly for tests and callers
// shipping their own CLDR snapshot. Records Load would reject are skipped.
func New(version string, mappings []ZoneMapping) *Table {
	out := make([]ZoneMapping, 0, len(mappings))
	for _, m := range mappings {
		if checkRecord(m) != nil {
			continue
		}
		m.IANA = append([]string{}, m.IANA...)
		out = append(out, m)
	}
	return &Table{version: version, mappings: out}
}

func checkRecord(m ZoneMapping) error {
	if strings.TrimSpace(m.Windows) == "" {
		return fmt.Errorf("no windows name")
	}
	if len(m.IANA) == 0 {
		return fmt.Errorf("%s/%s has no iana zones", m.Windows, m.Territory)
	}
	return nil
}

// Version reports the CLDR release the table was generated from.
func (t *Table) Version() string {
	if t == nil {
		return ""
	}
	return t.version
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.mappings)
}

// Mappings returns a copy of the records in table order.
func (t *Table) Mappings() []ZoneMapping {
	if t == nil {
		return nil
	}
	out := make([]ZoneMapping, 0, len(t.mappings))
	for _, m := range t.mappings {
		m.IANA = append([]string{}, m.IANA...)
		out = append(out, m)
	}
	return out
}
