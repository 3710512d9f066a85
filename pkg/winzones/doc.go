// Package winzones maps between Windows time zone names and IANA zone names
// using the CLDR windowsZones table embedded under data/windows_zones.yaml.
//
// Lookups scan the table in order and return the first match. A Windows name
// usually appears once per territory: the "001" record carries the canonical
// zone for the name and later records narrow it to a region. Passing no
// territory therefore yields the "001" answer:
//
//	winzones.WinZoneToIANA("US Mountain Standard Time")                 // America/Phoenix
//	winzones.WinZoneToIANAInTerritory("US Mountain Standard Time", "CA") // America/Creston
//
// The mapping is not invertible. An IANA zone listed as an alias maps back to
// the first record that names it, which need not be the record it came from.
package winzones
