// Package timezones is the zone catalog used around local zone detection.
//
// Known checks a name against the tz database compiled into the binary
// (time/tzdata), which makes it the default validator for detection.
// DefaultZones lists the IANA zones of the embedded Windows mapping table that
// the database knows, and Search filters such a list for pickers and CLIs.
package timezones
