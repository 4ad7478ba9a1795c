// Package synastry compares two natal charts: it detects cross-chart
// aspects and scores the relationship across compatibility dimensions.
package synastry

import (
	"errors"
	"math"
	"sort"

	"github.com/sametklc/mystic/internal/aspect"
	"github.com/sametklc/mystic/internal/astro"
	"github.com/sametklc/mystic/internal/chart"
	"github.com/sametklc/mystic/logger"
)

// Aspect is a cross-chart angular relationship: one planet from each
// person's chart.
type Aspect struct {
	Person1Planet  string  `json:"person1_planet"`
	Person2Planet  string  `json:"person2_planet"`
	AspectType     string  `json:"aspect_type"`
	AspectSymbol   string  `json:"aspect_symbol"`
	Orb            float64 `json:"orb"`
	HarmonyScore   int     `json:"harmony_score"`
	Interpretation string  `json:"interpretation,omitempty"`

	kind aspect.Type
}

// Highlight is one scored aspect surfaced in a category's top list.
type Highlight struct {
	Aspect  string  `json:"aspect"`
	Meaning string  `json:"meaning"`
	Score   float64 `json:"score"`
}

// Scores holds the compatibility dimensions, each on a 0-100 scale
// (overall on 15-95).
type Scores struct {
	Overall      float64 `json:"overall"`
	Chemistry    float64 `json:"chemistry"`
	Emotional    float64 `json:"emotional"`
	Intellectual float64 `json:"intellectual"`
	Spiritual    float64 `json:"spiritual"`
	Challenges   float64 `json:"challenges"`

	HarmoniousCount  int `json:"harmonious_count"`
	ChallengingCount int `json:"challenging_count"`
}

// Report is the full synastry result for a pair of charts.
type Report struct {
	Person1Name string `json:"person1_name"`
	Person2Name string `json:"person2_name"`

	Aspects []Aspect `json:"aspects"`
	Scores  Scores   `json:"scores"`

	Chart1 *chart.NatalChart `json:"chart1"`
	Chart2 *chart.NatalChart `json:"chart2"`

	ChemistryHighlights    []Highlight `json:"chemistry_highlights"`
	EmotionalHighlights    []Highlight `json:"emotional_highlights"`
	IntellectualHighlights []Highlight `json:"intellectual_highlights"`
	ChallengeHighlights    []Highlight `json:"challenge_highlights"`

	Summary string `json:"summary"`
}

// ErrEmptyChart is returned when a chart carries no usable positions.
var ErrEmptyChart = errors.New("synastry: chart has no planetary positions")

// synastryBodies are the bodies compared across charts, in the order
// aspects are reported.
var synastryBodies = []astro.Planet{
	astro.Sun, astro.Moon, astro.Mercury, astro.Venus, astro.Mars,
	astro.Jupiter, astro.Saturn, astro.Uranus, astro.Neptune, astro.Pluto,
}

type body struct {
	name      string
	longitude float64
}

func chartBodies(c *chart.NatalChart) []body {
	bodies := make([]body, 0, len(synastryBodies))
	for _, p := range synastryBodies {
		pos := c.Position(p)
		if pos == nil {
			continue
		}
		bodies = append(bodies, body{name: pos.PlanetName, longitude: pos.Degree})
	}
	return bodies
}

// DetectAspects finds cross-chart aspects between every person-1 body
// and every person-2 body, capped by the synastry policy limit.
func DetectAspects(c1, c2 *chart.NatalChart) ([]Aspect, error) {
	b1, b2 := chartBodies(c1), chartBodies(c2)
	if len(b1) == 0 || len(b2) == 0 {
		return nil, ErrEmptyChart
	}
	for _, b := range b1 {
		if err := aspect.Validate(b.longitude); err != nil {
			return nil, err
		}
	}
	for _, b := range b2 {
		if err := aspect.Validate(b.longitude); err != nil {
			return nil, err
		}
	}

	policy := aspect.SynastryPolicy
	aspects := make([]Aspect, 0, policy.Limit)
	for _, p1 := range b1 {
		for _, p2 := range b2 {
			m, ok := policy.Classify(p1.longitude, p2.longitude)
			if !ok {
				continue
			}
			aspects = append(aspects, Aspect{
				Person1Planet:  p1.name,
				Person2Planet:  p2.name,
				AspectType:     m.Type.Name(),
				AspectSymbol:   m.Type.Symbol(),
				Orb:            round2(m.Orb),
				HarmonyScore:   m.Type.Harmony(),
				Interpretation: interpretation(p1.name, p2.name, m.Type),
				kind:           m.Type,
			})
			if len(aspects) >= policy.Limit {
				return aspects, nil
			}
		}
	}
	return aspects, nil
}

// manualOrbs is the reduced candidate set the fallback path uses: the
// five personal planets only, no quincunx.
var manualOrbs = []aspect.Tolerance{
	{Type: aspect.Conjunction, Orb: 8},
	{Type: aspect.Sextile, Orb: 6},
	{Type: aspect.Square, Orb: 6},
	{Type: aspect.Trine, Orb: 8},
	{Type: aspect.Opposition, Orb: 8},
}

var manualBodies = []astro.Planet{
	astro.Sun, astro.Moon, astro.Venus, astro.Mars, astro.Mercury,
}

// ManualAspects is the degraded detection path used when the full
// detection fails: personal planets only, first matching aspect per pair.
func ManualAspects(c1, c2 *chart.NatalChart) []Aspect {
	var aspects []Aspect
	for _, pl1 := range manualBodies {
		pos1 := c1.Position(pl1)
		if pos1 == nil {
			continue
		}
		for _, pl2 := range manualBodies {
			pos2 := c2.Position(pl2)
			if pos2 == nil {
				continue
			}
			sep := aspect.Distance(pos1.Degree, pos2.Degree)
			for _, cand := range manualOrbs {
				orb := math.Abs(sep - cand.Type.Angle())
				if orb > cand.Orb {
					continue
				}
				aspects = append(aspects, Aspect{
					Person1Planet:  pos1.PlanetName,
					Person2Planet:  pos2.PlanetName,
					AspectType:     cand.Type.Name(),
					AspectSymbol:   cand.Type.Symbol(),
					Orb:            round2(orb),
					HarmonyScore:   cand.Type.Harmony(),
					Interpretation: interpretation(pos1.PlanetName, pos2.PlanetName, cand.Type),
					kind:           cand.Type,
				})
				break
			}
		}
	}
	return aspects
}

// spiritualPlanets drive the spiritual dimension.
var spiritualPlanets = map[string]bool{"Neptune": true, "Jupiter": true, "Pluto": true}

type contribution struct {
	aspect   Aspect
	info     pairInfo
	weighted float64
}

// Score turns detected aspects into dimension scores. Each aspect
// contributes its base score, weighted by the planet pair and attenuated
// by orb; the weighted ratio is mapped onto a 50-centered scale.
func Score(c1, c2 *chart.NatalChart, aspects []Aspect) Scores {
	if len(aspects) == 0 {
		return Scores{
			Overall: 50, Chemistry: 50, Emotional: 50,
			Intellectual: 50, Spiritual: 50, Challenges: 50,
		}
	}

	var totalWeighted, totalPossible float64
	var chemRaw, emoRaw, intRaw, chalRaw, spiritRaw float64
	var harmonious, challenging int

	for _, a := range aspects {
		switch {
		case a.HarmonyScore > 0:
			harmonious++
		case a.HarmonyScore < 0:
			challenging++
		}
		base := baseScore(a.Person1Planet, a.Person2Planet, a.kind)
		info := pairInfoFor(a.Person1Planet, a.Person2Planet)
		attenuation := math.Max(0.5, 1-a.Orb/10)
		weighted := base * info.weight * attenuation

		totalWeighted += weighted
		totalPossible += math.Abs(base * info.weight)

		switch info.category {
		case Chemistry:
			chemRaw += weighted
		case Emotional:
			emoRaw += weighted
		case Intellectual:
			intRaw += weighted
		case Challenges:
			chalRaw += weighted
			if weighted > 0 {
				// Well-aspected heavy planets stabilize rather than strain.
				emoRaw += weighted * 0.5
			}
		}

		if spiritualPlanets[a.Person1Planet] || spiritualPlanets[a.Person2Planet] {
			spiritRaw += float64(a.HarmonyScore) * 3
		}
	}

	overall := 50.0
	if totalPossible > 0 {
		overall = 50 + totalWeighted/totalPossible*50
	}

	// Elemental affinity between the luminaries shifts the overall and
	// emotional tone beyond the aspect math.
	sunBonus, moonBonus, moonEmo := elementBonuses(c1, c2)
	overall += sunBonus + moonBonus
	emoRaw += moonEmo

	return Scores{
		Overall:      clamp(overall, 15, 95),
		Chemistry:    clamp(50+chemRaw*2.5, 0, 100),
		Emotional:    clamp(50+emoRaw*2.5, 0, 100),
		Intellectual: clamp(50+intRaw*3, 0, 100),
		Spiritual:    clamp(50+spiritRaw, 0, 100),
		Challenges:   clamp(50-chalRaw*2, 0, 100),

		HarmoniousCount:  harmonious,
		ChallengingCount: challenging,
	}
}

// elementBonuses rewards luminaries sharing or complementing elements:
// Fire harmonizes with Air, Earth with Water.
func elementBonuses(c1, c2 *chart.NatalChart) (sunBonus, moonBonus, moonEmotional float64) {
	if s1, s2 := c1.Sun, c2.Sun; s1 != nil && s2 != nil {
		e1, _ := astro.ElementFromName(s1.Element)
		e2, _ := astro.ElementFromName(s2.Element)
		switch {
		case s1.Element == s2.Element:
			sunBonus = 8
		case e1.CompatibleWith(e2):
			sunBonus = 4
		}
	}
	if m1, m2 := c1.Moon, c2.Moon; m1 != nil && m2 != nil {
		e1, _ := astro.ElementFromName(m1.Element)
		e2, _ := astro.ElementFromName(m2.Element)
		switch {
		case m1.Element == m2.Element:
			moonBonus, moonEmotional = 6, 5
		case e1.CompatibleWith(e2):
			moonBonus, moonEmotional = 3, 3
		}
	}
	return sunBonus, moonBonus, moonEmotional
}

// Analyze runs the full synastry pipeline for two charts: detection
// (with the manual fallback on error), scoring and highlight selection.
func Analyze(c1, c2 *chart.NatalChart) *Report {
	log := logger.GetLogger().WithComponent("synastry")

	aspects, err := DetectAspects(c1, c2)
	if err != nil {
		log.WithError(err).Warn("full aspect detection failed, using manual fallback")
		aspects = ManualAspects(c1, c2)
	}

	scores := Score(c1, c2, aspects)

	contributions := make([]contribution, 0, len(aspects))
	for _, a := range aspects {
		base := baseScore(a.Person1Planet, a.Person2Planet, a.kind)
		info := pairInfoFor(a.Person1Planet, a.Person2Planet)
		attenuation := math.Max(0.5, 1-a.Orb/10)
		contributions = append(contributions, contribution{
			aspect:   a,
			info:     info,
			weighted: base * info.weight * attenuation,
		})
	}

	return &Report{
		Person1Name:            c1.Name,
		Person2Name:            c2.Name,
		Aspects:                aspects,
		Scores:                 scores,
		Chart1:                 c1,
		Chart2:                 c2,
		ChemistryHighlights:    topHighlights(contributions, Chemistry, 5, false),
		EmotionalHighlights:    topHighlights(contributions, Emotional, 5, false),
		IntellectualHighlights: topHighlights(contributions, Intellectual, 3, false),
		ChallengeHighlights:    topHighlights(contributions, Challenges, 5, true),
		Summary:                summary(scores),
	}
}

// topHighlights selects a category's strongest contributions; challenges
// sort ascending so the hardest aspects lead.
func topHighlights(contributions []contribution, cat Category, n int, ascending bool) []Highlight {
	filtered := make([]contribution, 0, len(contributions))
	for _, c := range contributions {
		if c.info.category == cat {
			filtered = append(filtered, c)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if ascending {
			return filtered[i].weighted < filtered[j].weighted
		}
		return filtered[i].weighted > filtered[j].weighted
	})
	if len(filtered) > n {
		filtered = filtered[:n]
	}

	highlights := make([]Highlight, 0, len(filtered))
	for _, c := range filtered {
		highlights = append(highlights, Highlight{
			Aspect:  c.aspect.Person1Planet + " " + c.aspect.AspectType + " " + c.aspect.Person2Planet,
			Meaning: c.info.meaning,
			Score:   round2(c.weighted),
		})
	}
	return highlights
}

func summary(s Scores) string {
	switch {
	case s.Overall >= 80:
		return "An exceptional connection with rare natural harmony."
	case s.Overall >= 65:
		return "A strong connection with real potential for lasting depth."
	case s.Overall >= 50:
		return "A balanced connection that rewards mutual effort."
	case s.Overall >= 35:
		return "A challenging connection that demands patience and growth."
	default:
		return "A difficult pairing whose lessons come through friction."
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
