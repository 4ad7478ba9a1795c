// Package chart assembles normalized ephemeris positions into natal
// charts: per-planet placements, intra-chart aspects and the Big Three
// summary. Charts are plain data, built once and never mutated.
package chart

import (
	"fmt"

	"github.com/sametklc/mystic/internal/astro"
	"github.com/sametklc/mystic/internal/aspect"
	"github.com/sametklc/mystic/internal/ephemeris"
	"github.com/sametklc/mystic/logger"
)

// PlanetPosition is one body's placement in a chart.
type PlanetPosition struct {
	PlanetName     string  `json:"planet_name"`
	PlanetSymbol   string  `json:"planet_symbol"`
	Sign           string  `json:"sign"`
	SignSymbol     string  `json:"sign_symbol"`
	House          int     `json:"house"`
	Degree         float64 `json:"degree"`
	SignDegree     float64 `json:"sign_degree"`
	IsRetrograde   bool    `json:"is_retrograde"`
	Element        string  `json:"element"`
	Modality       string  `json:"modality"`
	Interpretation string  `json:"interpretation,omitempty"`
}

// Aspect is a named angular relationship between two chart bodies.
type Aspect struct {
	Planet1        string  `json:"planet1"`
	Planet2        string  `json:"planet2"`
	AspectType     string  `json:"aspect_type"`
	AspectSymbol   string  `json:"aspect_symbol"`
	Orb            float64 `json:"orb"`
	IsApplying     bool    `json:"is_applying"`
	Interpretation string  `json:"interpretation,omitempty"`
}

// Location is the birth place and timezone.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// NatalChart is the complete computed chart. Positions the ephemeris
// source could not supply are nil; dependent fields degrade to "Unknown".
type NatalChart struct {
	Name          string   `json:"name"`
	BirthDatetime string   `json:"birth_datetime"`
	Location      Location `json:"location"`

	Sun     *PlanetPosition `json:"sun"`
	Moon    *PlanetPosition `json:"moon"`
	Rising  *PlanetPosition `json:"rising"`
	Mercury *PlanetPosition `json:"mercury"`
	Venus   *PlanetPosition `json:"venus"`
	Mars    *PlanetPosition `json:"mars"`
	Jupiter *PlanetPosition `json:"jupiter"`
	Saturn  *PlanetPosition `json:"saturn"`
	Uranus  *PlanetPosition `json:"uranus,omitempty"`
	Neptune *PlanetPosition `json:"neptune,omitempty"`
	Pluto   *PlanetPosition `json:"pluto,omitempty"`

	Aspects []Aspect `json:"aspects"`

	SunMoonRisingSummary string `json:"sun_moon_rising_summary"`
}

// Position returns the placement for a body, nil when absent.
func (c *NatalChart) Position(p astro.Planet) *PlanetPosition {
	switch p {
	case astro.Sun:
		return c.Sun
	case astro.Moon:
		return c.Moon
	case astro.Ascendant:
		return c.Rising
	case astro.Mercury:
		return c.Mercury
	case astro.Venus:
		return c.Venus
	case astro.Mars:
		return c.Mars
	case astro.Jupiter:
		return c.Jupiter
	case astro.Saturn:
		return c.Saturn
	case astro.Uranus:
		return c.Uranus
	case astro.Neptune:
		return c.Neptune
	case astro.Pluto:
		return c.Pluto
	default:
		return nil
	}
}

// BirthInput is the wire-level birth data for a chart request.
type BirthInput struct {
	Date      string  `json:"date" binding:"required"`
	Time      string  `json:"time" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Name      string  `json:"name"`
}

// Assembler builds natal charts from an ephemeris adapter.
type Assembler struct {
	adapter *ephemeris.Adapter
	log     *logger.Log
}

func NewAssembler(adapter *ephemeris.Adapter) *Assembler {
	return &Assembler{adapter: adapter, log: logger.GetLogger()}
}

// Build computes the chart for the given birth data. Only malformed
// date/time input is an error; missing bodies degrade to nil positions.
func (a *Assembler) Build(in BirthInput) (*NatalChart, error) {
	name := in.Name
	if name == "" {
		name = "Seeker"
	}

	ev, err := ephemeris.BirthEvent(in.Date, in.Time, in.Latitude, in.Longitude, in.Timezone, name)
	if err != nil {
		return nil, err
	}

	positions := a.adapter.Positions(ev, astro.ChartBodies)

	chart := &NatalChart{
		Name:          name,
		BirthDatetime: fmt.Sprintf("%s %s", in.Date, in.Time),
		Location: Location{
			Latitude:  in.Latitude,
			Longitude: in.Longitude,
			Timezone:  ev.Timezone,
		},
	}

	present := make([]*ephemeris.Position, 0, len(positions))
	for _, pos := range positions {
		if pos == nil {
			continue
		}
		present = append(present, pos)
		placed := placement(pos)
		switch pos.Planet {
		case astro.Sun:
			chart.Sun = placed
		case astro.Moon:
			chart.Moon = placed
		case astro.Ascendant:
			chart.Rising = placed
		case astro.Mercury:
			chart.Mercury = placed
		case astro.Venus:
			chart.Venus = placed
		case astro.Mars:
			chart.Mars = placed
		case astro.Jupiter:
			chart.Jupiter = placed
		case astro.Saturn:
			chart.Saturn = placed
		case astro.Uranus:
			chart.Uranus = placed
		case astro.Neptune:
			chart.Neptune = placed
		case astro.Pluto:
			chart.Pluto = placed
		}
	}

	aspects, err := natalAspects(present)
	if err != nil {
		// Reading continues without aspects.
		a.log.WithComponent("chart").WithError(err).Warn("aspect detection failed, chart carries no aspects")
		aspects = []Aspect{}
	}
	chart.Aspects = aspects

	chart.SunMoonRisingSummary = bigThree(chart.Sun, chart.Moon, chart.Rising)

	return chart, nil
}

func placement(pos *ephemeris.Position) *PlanetPosition {
	sign := astro.SignFromLongitude(pos.Longitude)

	text := astro.SignInterpretation(pos.Planet, sign)
	if houseText, ok := astro.HouseInterpretation(pos.Planet, pos.House); ok {
		text = text + " " + houseText
	}

	return &PlanetPosition{
		PlanetName:     pos.Planet.Name(),
		PlanetSymbol:   pos.Planet.Symbol(),
		Sign:           sign.Name(),
		SignSymbol:     sign.Symbol(),
		House:          pos.House,
		Degree:         pos.Longitude,
		SignDegree:     astro.SignDegree(pos.Longitude),
		IsRetrograde:   pos.Retrograde,
		Element:        sign.Element().Name(),
		Modality:       sign.Modality().Name(),
		Interpretation: text,
	}
}

// natalAspects detects intra-chart aspects pairwise in chart order and
// keeps the first NatalPolicy.Limit results, in iteration order.
func natalAspects(positions []*ephemeris.Position) ([]Aspect, error) {
	for _, pos := range positions {
		if err := aspect.Validate(pos.Longitude); err != nil {
			return nil, err
		}
	}

	policy := aspect.NatalPolicy
	aspects := make([]Aspect, 0, policy.Limit)
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			m, ok := policy.Classify(positions[i].Longitude, positions[j].Longitude)
			if !ok {
				continue
			}
			p1, p2 := positions[i].Planet.Name(), positions[j].Planet.Name()
			aspects = append(aspects, Aspect{
				Planet1:        p1,
				Planet2:        p2,
				AspectType:     m.Type.Name(),
				AspectSymbol:   m.Type.Symbol(),
				Orb:            round2(m.Orb),
				Interpretation: fmt.Sprintf("%s %s %s", p1, m.Type.Name(), p2),
			})
			if len(aspects) >= policy.Limit {
				return aspects, nil
			}
		}
	}
	return aspects, nil
}

func bigThree(sun, moon, rising *PlanetPosition) string {
	sunSign, moonSign, risingSign := "Unknown", "Unknown", "Unknown"
	if sun != nil {
		sunSign = sun.Sign
	}
	if moon != nil {
		moonSign = moon.Sign
	}
	if rising != nil {
		risingSign = rising.Sign
	}

	return fmt.Sprintf(
		"Your core identity shines as a %s Sun, bringing %s. "+
			"Emotionally, your %s Moon gives you %s. "+
			"The world sees you through your %s Rising, projecting %s.",
		sunSign, astro.SunKeyword(sunSign),
		moonSign, astro.MoonKeyword(moonSign),
		risingSign, astro.RisingKeyword(risingSign),
	)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
