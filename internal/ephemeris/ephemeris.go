// Package ephemeris adapts an astronomical data source into normalized
// chart-ready positions. The source is treated as an oracle: given an
// instant and location it reports each body's ecliptic longitude, house
// and retrograde flag. This package never computes orbital mechanics.
package ephemeris

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sametklc/mystic/internal/astro"
	"github.com/sametklc/mystic/logger"
)

// Event is a fully specified observation instant: who, when and where.
type Event struct {
	Name      string
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	Latitude  float64
	Longitude float64
	Timezone  string
}

// ParseBirthData splits "YYYY-MM-DD" and "HH:MM" strings into calendar
// components. The minute part is optional; malformed input is an error,
// never silently defaulted.
func ParseBirthData(dateStr, timeStr string) (year, month, day, hour, minute int, err error) {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return 0, 0, 0, 0, 0, fmt.Errorf("invalid birth date %q: %w", dateStr, err)
	}

	parts := strings.Split(timeStr, ":")
	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, 0, 0, 0, fmt.Errorf("invalid birth time %q", timeStr)
	}
	if len(parts) > 1 {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || minute < 0 || minute > 59 {
			return 0, 0, 0, 0, 0, fmt.Errorf("invalid birth time %q", timeStr)
		}
	}

	return d.Year(), int(d.Month()), d.Day(), hour, minute, nil
}

// BirthEvent builds an Event from the wire-level birth data strings.
func BirthEvent(dateStr, timeStr string, lat, lon float64, tz, name string) (Event, error) {
	year, month, day, hour, minute, err := ParseBirthData(dateStr, timeStr)
	if err != nil {
		return Event{}, err
	}
	if tz == "" {
		tz = "UTC"
	}
	return Event{
		Name:      name,
		Year:      year,
		Month:     month,
		Day:       day,
		Hour:      hour,
		Minute:    minute,
		Latitude:  lat,
		Longitude: lon,
		Timezone:  tz,
	}, nil
}

// SkyEvent is the observation instant used for current-sky lookups: noon
// UTC at the equator, where houses are irrelevant.
func SkyEvent(t time.Time) Event {
	t = t.UTC()
	return Event{
		Name:     "Current Sky",
		Year:     t.Year(),
		Month:    int(t.Month()),
		Day:      t.Day(),
		Hour:     12,
		Timezone: "UTC",
	}
}

// RawPosition is what the underlying data source reports for one body.
// House may be a house name ("Tenth_House"), a bare number, or empty.
// Retrograde is a pointer because some sources omit the flag entirely.
type RawPosition struct {
	Longitude  float64
	House      string
	Retrograde *bool
}

// Source is the oracle contract. Implementations report one body per
// call so that a failure for an optional outer planet does not poison
// the rest of the chart.
type Source interface {
	Body(ev Event, p astro.Planet) (RawPosition, error)
}

// Position is a normalized body placement ready for chart assembly.
type Position struct {
	Planet     astro.Planet
	Longitude  float64 // [0, 360)
	House      int     // 1..12
	Retrograde bool
}

var houseNames = map[string]int{
	"First_House": 1, "Second_House": 2, "Third_House": 3,
	"Fourth_House": 4, "Fifth_House": 5, "Sixth_House": 6,
	"Seventh_House": 7, "Eighth_House": 8, "Ninth_House": 9,
	"Tenth_House": 10, "Eleventh_House": 11, "Twelfth_House": 12,
}

// HouseNumber normalizes a raw house identifier to 1..12. Sources emit
// either house names or bare numbers; anything unrecognized defaults to
// the first house.
func HouseNumber(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, ok := houseNames[raw]; ok {
		return n
	}
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 12 {
		return n
	}
	return 1
}

// Adapter wraps a Source and applies the normalization rules.
type Adapter struct {
	src Source
	log *logger.Log
}

func NewAdapter(src Source) *Adapter {
	return &Adapter{src: src, log: logger.GetLogger()}
}

// Position fetches and normalizes one body. A source failure yields nil
// so that callers can degrade gracefully (e.g. omit outer planets).
func (a *Adapter) Position(ev Event, p astro.Planet) *Position {
	raw, err := a.src.Body(ev, p)
	if err != nil {
		a.log.WithComponent("ephemeris").WithError(err).WithFields(logger.Fields{
			"body": p.Name(),
		}).Warn("body lookup failed, omitting from chart")
		return nil
	}

	retro := false
	if raw.Retrograde != nil {
		retro = *raw.Retrograde
	}

	return &Position{
		Planet:     p,
		Longitude:  astro.NormalizeLongitude(raw.Longitude),
		House:      HouseNumber(raw.House),
		Retrograde: retro,
	}
}

// Positions fetches every requested body, preserving order. Entries are
// nil where the source failed.
func (a *Adapter) Positions(ev Event, bodies []astro.Planet) []*Position {
	out := make([]*Position, len(bodies))
	for i, p := range bodies {
		out[i] = a.Position(ev, p)
	}
	return out
}
