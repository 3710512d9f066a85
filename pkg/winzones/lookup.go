package winzones

// ToIANA returns the preferred IANA zone of the first record named windows,
// whatever its territory.
func (t *Table) ToIANA(windows string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, m := range t.mappings {
		if m.Windows == windows {
			return m.IANA[0], true
		}
	}
	return "", false
}

// ToIANAInTerritory is ToIANA restricted to records of the given territory.
// Territory codes are compared verbatim; "001" and "ZZ" are ordinary values.
func (t *Table) ToIANAInTerritory(windows, territory string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, m := range t.mappings {
		if m.Windows == windows && m.Territory == territory {
			return m.IANA[0], true
		}
	}
	return "", false
}

// ToWindows returns the Windows name and territory of the first record
// listing iana among its zones, canonical or not.
func (t *Table) ToWindows(iana string) (windows, territory string, ok bool) {
	if t == nil {
		return "", "", false
	}
	for _, m := range t.mappings {
		for _, name := range m.IANA {
			if name == iana {
				return m.Windows, m.Territory, true
			}
		}
	}
	return "", "", false
}

// WinZoneToIANA looks windows up in the embedded table.
func WinZoneToIANA(windows string) (string, bool) {
	table, err := Default()
	if err != nil {
		return "", false
	}
	return table.ToIANA(windows)
}

// WinZoneToIANAInTerritory looks windows up in the embedded table, restricted
// to territory.
func WinZoneToIANAInTerritory(windows, territory string) (string, bool) {
	table, err := Default()
	if err != nil {
		return "", false
	}
	return table.ToIANAInTerritory(windows, territory)
}

// IANAToWinZone returns the (windows name, territory) pair for iana from the
// embedded table.
func IANAToWinZone(iana string) (windows, territory string, ok bool) {
	table, err := Default()
	if err != nil {
		return "", "", false
	}
	return table.ToWindows(iana)
}
