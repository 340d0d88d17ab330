package service

import (
	"fmt"
	"time"

	// Embed the IANA timezone database so zone resolution does not depend on
	// the host system having one installed.
	_ "time/tzdata"
)

// defaultZone is both an alias-table key and the fallback for any
// unrecognized timezone name. Falling back is never an error.
const defaultZone = "UTC"

// zoneAliases maps every supported symbolic timezone name to its canonical
// IANA zone identifier. Lookups are case-sensitive. The table is read-only
// after startup.
var zoneAliases = map[string]string{
	"UTC":           "UTC",
	"EST":           "US/Eastern",
	"US/Eastern":    "US/Eastern",
	"PST":           "US/Pacific",
	"US/Pacific":    "US/Pacific",
	"CET":           "Europe/Berlin",
	"Europe/Berlin": "Europe/Berlin",
}

// loadZones resolves every alias-table entry to a *time.Location. It is
// called once at service construction so a missing zone fails the process at
// startup instead of the first request.
func loadZones() (map[string]*time.Location, error) {
	zones := make(map[string]*time.Location, len(zoneAliases))
	for alias, canonical := range zoneAliases {
		loc, err := time.LoadLocation(canonical)
		if err != nil {
			return nil, fmt.Errorf("load zone %q: %w", canonical, err)
		}
		zones[alias] = loc
	}

	return zones, nil
}
