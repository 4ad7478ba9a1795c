// Package transit compares the current sky against a stored natal chart
// and summarizes the active influences.
package transit

import (
	"sort"
	"time"

	"github.com/sametklc/mystic/internal/aspect"
	"github.com/sametklc/mystic/internal/astro"
	"github.com/sametklc/mystic/internal/chart"
	"github.com/sametklc/mystic/internal/ephemeris"
	"github.com/sametklc/mystic/logger"
)

// Aspect is one transiting body's angular relationship to a natal planet.
type Aspect struct {
	TransitPlanet  string  `json:"transit_planet"`
	NatalPlanet    string  `json:"natal_planet"`
	AspectType     string  `json:"aspect_type"`
	AspectSymbol   string  `json:"aspect_symbol"`
	Orb            float64 `json:"orb"`
	HarmonyScore   int     `json:"harmony_score"`
	Interpretation string  `json:"interpretation,omitempty"`
}

// Summary is the transit report for one chart on one day.
type Summary struct {
	Date          string   `json:"date"`
	Aspects       []Aspect `json:"aspects"`
	FocusAreas    []string `json:"focus_areas"`
	OverallEnergy string   `json:"overall_energy"`
}

// transitingBodies are the fast movers whose current positions matter
// day to day.
var transitingBodies = []astro.Planet{
	astro.Sun, astro.Moon, astro.Mercury, astro.Venus, astro.Mars,
}

// natalBodies are the chart planets transits are measured against.
var natalBodies = []astro.Planet{
	astro.Sun, astro.Moon, astro.Mercury, astro.Venus,
	astro.Mars, astro.Jupiter, astro.Saturn,
}

// natalThemes maps a natal planet to its life-area keywords.
var natalThemes = map[string][]string{
	"Sun":     {"identity", "vitality"},
	"Moon":    {"emotions", "home"},
	"Mercury": {"communication", "ideas"},
	"Venus":   {"love", "values"},
	"Mars":    {"action", "desire"},
	"Jupiter": {"growth", "luck"},
	"Saturn":  {"discipline", "structure"},
}

// Engine computes transits against natal charts using an ephemeris
// adapter for the current sky.
type Engine struct {
	adapter *ephemeris.Adapter
	log     *logger.Log
}

func NewEngine(adapter *ephemeris.Adapter) *Engine {
	return &Engine{adapter: adapter, log: logger.GetLogger()}
}

// Summarize detects aspects between the sky at the given instant and the
// natal chart. Aspects come back tightest orb first, capped by the
// transit policy limit.
func (e *Engine) Summarize(natal *chart.NatalChart, at time.Time) *Summary {
	sky := ephemeris.SkyEvent(at)
	policy := aspect.TransitPolicy

	var aspects []Aspect
	for _, tp := range transitingBodies {
		pos := e.adapter.Position(sky, tp)
		if pos == nil {
			continue
		}
		if err := aspect.Validate(pos.Longitude); err != nil {
			e.log.WithComponent("transit").WithError(err).
				Warn("skipping transiting body with invalid longitude")
			continue
		}
		for _, np := range natalBodies {
			natalPos := natal.Position(np)
			if natalPos == nil {
				continue
			}
			m, ok := policy.Classify(pos.Longitude, natalPos.Degree)
			if !ok {
				continue
			}
			aspects = append(aspects, Aspect{
				TransitPlanet:  pos.Planet.Name(),
				NatalPlanet:    natalPos.PlanetName,
				AspectType:     m.Type.Name(),
				AspectSymbol:   m.Type.Symbol(),
				Orb:            round2(m.Orb),
				HarmonyScore:   m.Type.Harmony(),
				Interpretation: interpret(pos.Planet.Name(), natalPos.PlanetName, m.Type),
			})
		}
	}

	sort.SliceStable(aspects, func(i, j int) bool {
		return aspects[i].Orb < aspects[j].Orb
	})
	if len(aspects) > policy.Limit {
		aspects = aspects[:policy.Limit]
	}

	return &Summary{
		Date:          at.UTC().Format("2006-01-02"),
		Aspects:       aspects,
		FocusAreas:    focusAreas(aspects),
		OverallEnergy: overallEnergy(aspects),
	}
}

// focusAreas maps the five tightest aspects' natal planets to theme
// keywords, deduplicated and capped at five.
func focusAreas(aspects []Aspect) []string {
	seen := make(map[string]bool)
	areas := make([]string, 0, 5)
	for i, a := range aspects {
		if i >= 5 || len(areas) >= 5 {
			break
		}
		for _, theme := range natalThemes[a.NatalPlanet] {
			if seen[theme] || len(areas) >= 5 {
				continue
			}
			seen[theme] = true
			areas = append(areas, theme)
		}
	}
	return areas
}

// overallEnergy is the sign of the mean harmony score.
func overallEnergy(aspects []Aspect) string {
	if len(aspects) == 0 {
		return "neutral"
	}
	var total int
	for _, a := range aspects {
		total += a.HarmonyScore
	}
	switch {
	case total > 0:
		return "harmonious"
	case total < 0:
		return "challenging"
	default:
		return "neutral"
	}
}

var transitVerbs = map[aspect.Type]string{
	aspect.Conjunction: "energizes",
	aspect.Sextile:     "gently supports",
	aspect.Square:      "pressures",
	aspect.Trine:       "flows with",
	aspect.Opposition:  "pulls against",
}

func interpret(transiting, natal string, t aspect.Type) string {
	verb, ok := transitVerbs[t]
	if !ok {
		verb = "touches"
	}
	return "Transiting " + transiting + " " + verb + " your natal " + natal + "."
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
