// Command generate-windows-zones converts CLDR's supplemental windowsZones.xml
// into the table embedded by pkg/winzones.
//
//	go run ./scripts/generate-windows-zones -input windowsZones.xml -cldr 44
package main

import (
	"bytes"
	"encoding/xml"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-localzone/pkg/winzones"
)

const header = "Windows zone mapping derived from CLDR supplemental/windowsZones.xml.\n" +
	"Regenerated out-of-band; do not edit by hand."

type supplementalData struct {
	MapZones []mapZone `xml:"windowsZones>mapTimezones>mapZone"`
}

type mapZone struct {
	Other     string `xml:"other,attr"`
	Territory string `xml:"territory,attr"`
	Type      string `xml:"type,attr"`
}

type tableDocument struct {
	CLDR  string                 `yaml:"cldr"`
	Zones []winzones.ZoneMapping `yaml:"zones"`
}

func main() {
	var (
		inputPath  = flag.String("input", "windowsZones.xml", "CLDR windowsZones.xml path")
		outputPath = flag.String("output", "pkg/winzones/data/windows_zones.yaml", "output path for the YAML table")
		version    = flag.String("cldr", "", "CLDR release the input was taken from")
	)
	flag.Parse()

	in, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open input: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = in.Close() }()

	var out bytes.Buffer
	if err := convert(in, *version, &out); err != nil {
		fmt.Fprintf(os.Stderr, "failed to convert: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputPath, out.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *outputPath)
}

// convert keeps records in document order and checks the result loads.
func convert(r io.Reader, version string, w io.Writer) error {
	var data supplementalData
	if err := xml.NewDecoder(r).Decode(&data); err != nil {
		return fmt.Errorf("decode xml: %w", err)
	}

	doc := tableDocument{CLDR: version}
	for _, zone := range data.MapZones {
		iana := strings.Fields(zone.Type)
		if zone.Other == "" || len(iana) == 0 {
			continue
		}
		doc.Zones = append(doc.Zones, winzones.ZoneMapping{
			Windows:   zone.Other,
			Territory: zone.Territory,
			IANA:      iana,
		})
	}
	if len(doc.Zones) == 0 {
		return fmt.Errorf("no mapZone records found")
	}

	var root yaml.Node
	if err := root.Encode(doc); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	root.HeadComment = header
	styleTable(&root)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if _, err := winzones.Load(bytes.NewReader(buf.Bytes())); err != nil {
		return fmt.Errorf("generated table does not load: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// styleTable writes one flow mapping per record and quotes every scalar so
// territories such as "001" or "NO" stay strings.
func styleTable(node *yaml.Node) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "cldr":
			value.Style = yaml.DoubleQuotedStyle
		case "zones":
			for _, record := range value.Content {
				record.Style = yaml.FlowStyle
				quoteScalars(record)
			}
		}
	}
}

func quoteScalars(node *yaml.Node) {
	for i, child := range node.Content {
		switch child.Kind {
		case yaml.ScalarNode:
			if node.Kind == yaml.MappingNode && i%2 == 0 {
				continue
			}
			child.Style = yaml.DoubleQuotedStyle
		case yaml.SequenceNode:
			child.Style = yaml.FlowStyle
			quoteScalars(child)
		}
	}
}
