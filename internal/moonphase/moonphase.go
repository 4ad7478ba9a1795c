// Package moonphase derives the lunar phase from the Sun and Moon
// ecliptic longitudes alone.
package moonphase

import (
	"math"

	"github.com/sametklc/mystic/internal/aspect"
)

// Phase describes the Moon's current phase.
type Phase struct {
	Name         string  `json:"name"`
	Icon         string  `json:"icon"`
	Illumination float64 `json:"illumination"`
	PhaseAngle   float64 `json:"phase_angle"`
}

// majorTolerance is the snap window around the four cardinal phases.
// It is deliberately wide: at 176 degrees the Moon is 98% lit and users
// perceive a Full Moon, not a Waxing Gibbous.
const majorTolerance = 5.0

type majorPhase struct {
	angle float64
	name  string
	icon  string
}

var majorPhases = [4]majorPhase{
	{0, "New Moon", "new_moon"},
	{90, "First Quarter", "first_quarter"},
	{180, "Full Moon", "full_moon"},
	{270, "Last Quarter", "last_quarter"},
}

type intermediatePhase struct {
	name string
	icon string
	from float64 // inclusive
	to   float64 // exclusive
}

// Intermediate ranges exclude the snap windows around the major phases.
var intermediatePhases = [4]intermediatePhase{
	{"Waxing Crescent", "waxing_crescent", 5, 85},
	{"Waxing Gibbous", "waxing_gibbous", 95, 175},
	{"Waning Gibbous", "waning_gibbous", 185, 265},
	{"Waning Crescent", "waning_crescent", 275, 355},
}

// Calculate classifies the phase for the given Sun and Moon absolute
// longitudes. Illumination is a triangular function of the phase angle:
// 0% at 0/360 degrees, 100% at 180.
func Calculate(sunLongitude, moonLongitude float64) Phase {
	phaseAngle := math.Mod(moonLongitude-sunLongitude, 360)
	if phaseAngle < 0 {
		phaseAngle += 360
	}

	var illumination float64
	if phaseAngle <= 180 {
		illumination = phaseAngle / 180 * 100
	} else {
		illumination = (360 - phaseAngle) / 180 * 100
	}

	for _, mp := range majorPhases {
		if aspect.Distance(phaseAngle, mp.angle) <= majorTolerance {
			return Phase{
				Name:         mp.name,
				Icon:         mp.icon,
				Illumination: round1(illumination),
				PhaseAngle:   round1(phaseAngle),
			}
		}
	}

	for _, ip := range intermediatePhases {
		if phaseAngle >= ip.from && phaseAngle < ip.to {
			return Phase{
				Name:         ip.name,
				Icon:         ip.icon,
				Illumination: round1(illumination),
				PhaseAngle:   round1(phaseAngle),
			}
		}
	}

	// Unreachable with the ranges above; keep the new-moon fallback anyway.
	return Phase{
		Name:         "New Moon",
		Icon:         "new_moon",
		Illumination: round1(illumination),
		PhaseAngle:   round1(phaseAngle),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
