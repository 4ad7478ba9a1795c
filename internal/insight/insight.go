// Package insight builds the daily cosmic reading: moon phase, moon
// sign, Mercury status and a deterministic piece of advice derived from
// the phase and the Moon's element.
package insight

import (
	"time"

	"github.com/sametklc/mystic/internal/astro"
	"github.com/sametklc/mystic/internal/ephemeris"
	"github.com/sametklc/mystic/internal/moonphase"
)

// Daily is the complete insight for one calendar day.
type Daily struct {
	Date              string  `json:"date"`
	MoonPhase         string  `json:"moon_phase"`
	MoonPhaseIcon     string  `json:"moon_phase_icon"`
	MoonIllumination  float64 `json:"moon_illumination"`
	MoonSign          string  `json:"moon_sign"`
	MoonSignSymbol    string  `json:"moon_sign_symbol"`
	MoonElement       string  `json:"moon_element"`
	MercuryRetrograde bool    `json:"mercury_retrograde"`
	MercuryStatus     string  `json:"mercury_status"`
	MercuryMessage    string  `json:"mercury_message"`
	Advice            string  `json:"advice"`
	SunSign           string  `json:"sun_sign"`
}

var phaseAdvice = map[string]string{
	"New Moon":        "Seeds planted in darkness grow strongest toward the light.",
	"Waxing Crescent": "Small steps taken now ripple into great journeys ahead.",
	"First Quarter":   "Face the tension—growth awaits on the other side of resistance.",
	"Waxing Gibbous":  "Refine your intentions; the cosmos rewards precision.",
	"Full Moon":       "What was hidden now stands illuminated—embrace the revelation.",
	"Waning Gibbous":  "Share your wisdom; teaching deepens understanding.",
	"Last Quarter":    "Release what no longer serves; make room for what is to come.",
	"Waning Crescent": "Rest in the quiet darkness; renewal approaches with the dawn.",
}

var elementModifier = map[string]string{
	"Fire":  "Let passion guide but not consume.",
	"Earth": "Ground yourself in what is real and lasting.",
	"Air":   "Let your thoughts flow like the wind—free but purposeful.",
	"Water": "Trust the currents of intuition today.",
}

const defaultAdvice = "The stars whisper secrets to those who listen."

// Advice composes the day's counsel from the moon phase and the Moon's
// element. Unknown inputs fall back to the generic line.
func Advice(moonPhase, moonElement string) string {
	base, ok := phaseAdvice[moonPhase]
	if !ok {
		base = defaultAdvice
	}
	if modifier, ok := elementModifier[moonElement]; ok {
		return base + " " + modifier
	}
	return base
}

// MercuryStatus describes Mercury's apparent motion.
func MercuryStatus(retrograde bool) (status, message string) {
	if retrograde {
		return "Retrograde", "Mercury is retrograde - take care with communications and travel."
	}
	return "Direct", "Mercury is direct - clear skies for communication."
}

// Service computes daily insights from the current sky.
type Service struct {
	adapter *ephemeris.Adapter
}

func NewService(adapter *ephemeris.Adapter) *Service {
	return &Service{adapter: adapter}
}

// Daily builds the insight for the given day. Bodies the source cannot
// supply degrade to "Unknown" rather than failing the whole reading.
func (s *Service) Daily(day time.Time) *Daily {
	sky := ephemeris.SkyEvent(day)

	sun := s.adapter.Position(sky, astro.Sun)
	moon := s.adapter.Position(sky, astro.Moon)
	mercury := s.adapter.Position(sky, astro.Mercury)

	var sunLon, moonLon float64
	sunSign, moonSign, moonSymbol, moonElement := "Unknown", "Unknown", "☽", "Unknown"
	if sun != nil {
		sunLon = sun.Longitude
		sunSign = astro.SignFromLongitude(sun.Longitude).Name()
	}
	if moon != nil {
		moonLon = moon.Longitude
		sign := astro.SignFromLongitude(moon.Longitude)
		moonSign = sign.Name()
		moonSymbol = sign.Symbol()
		moonElement = sign.Element().Name()
	}

	phase := moonphase.Calculate(sunLon, moonLon)

	retrograde := mercury != nil && mercury.Retrograde
	status, message := MercuryStatus(retrograde)

	return &Daily{
		Date:              day.UTC().Format("2006-01-02"),
		MoonPhase:         phase.Name,
		MoonPhaseIcon:     phase.Icon,
		MoonIllumination:  phase.Illumination,
		MoonSign:          moonSign,
		MoonSignSymbol:    moonSymbol,
		MoonElement:       moonElement,
		MercuryRetrograde: retrograde,
		MercuryStatus:     status,
		MercuryMessage:    message,
		Advice:            Advice(phase.Name, moonElement),
		SunSign:           sunSign,
	}
}
