package synastry

import "github.com/sametklc/mystic/internal/aspect"

// Category buckets a planet pair's influence on the relationship.
type Category int

const (
	Chemistry Category = iota
	Emotional
	Intellectual
	Challenges
)

func (c Category) Name() string {
	switch c {
	case Chemistry:
		return "chemistry"
	case Emotional:
		return "emotional"
	case Intellectual:
		return "intellectual"
	case Challenges:
		return "challenges"
	default:
		return "unknown"
	}
}

type pairKey struct {
	p1, p2 string
}

type pairInfo struct {
	weight   float64
	category Category
	meaning  string
}

// defaultPair applies to combinations the table does not list.
var defaultPair = pairInfo{weight: 0.5, category: Emotional, meaning: "general connection"}

// pairWeights rates how much a planet pairing matters and which category
// it feeds. Both orderings are listed where the meaning differs.
var pairWeights = map[pairKey]pairInfo{
	// Soul connection (Sun/Moon) carries the highest weights.
	{"Sun", "Sun"}:   {1.5, Emotional, "core identity alignment"},
	{"Sun", "Moon"}:  {2.0, Emotional, "soul connection"},
	{"Moon", "Sun"}:  {2.0, Emotional, "emotional-identity bond"},
	{"Moon", "Moon"}: {1.8, Emotional, "emotional synchronicity"},

	// Chemistry (Venus/Mars).
	{"Venus", "Mars"}:  {2.0, Chemistry, "romantic/physical attraction"},
	{"Mars", "Venus"}:  {2.0, Chemistry, "passionate chemistry"},
	{"Venus", "Venus"}: {1.5, Chemistry, "shared love language"},
	{"Mars", "Mars"}:   {1.2, Chemistry, "drive compatibility"},
	{"Sun", "Venus"}:   {1.3, Chemistry, "admiration and affection"},
	{"Venus", "Sun"}:   {1.3, Chemistry, "attraction to identity"},
	{"Moon", "Venus"}:  {1.4, Emotional, "emotional comfort in love"},
	{"Venus", "Moon"}:  {1.4, Emotional, "nurturing affection"},

	// Communication (Mercury).
	{"Mercury", "Mercury"}: {1.2, Intellectual, "mental wavelength"},
	{"Mercury", "Sun"}:     {1.0, Intellectual, "understanding each other"},
	{"Sun", "Mercury"}:     {1.0, Intellectual, "mental connection"},
	{"Mercury", "Moon"}:    {1.1, Emotional, "emotional understanding"},
	{"Moon", "Mercury"}:    {1.1, Emotional, "communicating feelings"},
	{"Mercury", "Venus"}:   {0.9, Intellectual, "sweet communication"},
	{"Venus", "Mercury"}:   {0.9, Intellectual, "loving words"},

	// Stability or restriction (Saturn).
	{"Saturn", "Sun"}:   {1.5, Challenges, "stability or restriction"},
	{"Sun", "Saturn"}:   {1.5, Challenges, "growth through limits"},
	{"Saturn", "Moon"}:  {1.6, Challenges, "emotional security or coldness"},
	{"Moon", "Saturn"}:  {1.6, Challenges, "emotional lessons"},
	{"Saturn", "Venus"}: {1.4, Challenges, "committed love or restriction"},
	{"Venus", "Saturn"}: {1.4, Challenges, "lasting affection"},
	{"Saturn", "Mars"}:  {1.3, Challenges, "disciplined action or frustration"},
	{"Mars", "Saturn"}:  {1.3, Challenges, "controlled passion"},

	// Transformation (Pluto).
	{"Pluto", "Sun"}:   {1.5, Challenges, "transformative power"},
	{"Sun", "Pluto"}:   {1.5, Challenges, "profound change"},
	{"Pluto", "Moon"}:  {1.6, Challenges, "deep emotional transformation"},
	{"Moon", "Pluto"}:  {1.6, Challenges, "psychological intensity"},
	{"Pluto", "Venus"}: {1.4, Chemistry, "obsessive attraction"},
	{"Venus", "Pluto"}: {1.4, Chemistry, "magnetic pull"},
	{"Pluto", "Mars"}:  {1.3, Chemistry, "explosive passion"},
	{"Mars", "Pluto"}:  {1.3, Chemistry, "intense drive"},

	// Growth (Jupiter).
	{"Jupiter", "Sun"}:   {1.2, Emotional, "expansion and joy"},
	{"Sun", "Jupiter"}:   {1.2, Emotional, "optimism together"},
	{"Jupiter", "Moon"}:  {1.1, Emotional, "emotional growth"},
	{"Moon", "Jupiter"}:  {1.1, Emotional, "feeling blessed"},
	{"Jupiter", "Venus"}: {1.3, Chemistry, "abundant love"},
	{"Venus", "Jupiter"}: {1.3, Chemistry, "generosity in love"},

	// Innovation (Uranus).
	{"Uranus", "Sun"}:   {1.0, Challenges, "excitement or instability"},
	{"Sun", "Uranus"}:   {1.0, Challenges, "unique connection"},
	{"Uranus", "Moon"}:  {1.1, Challenges, "emotional unpredictability"},
	{"Moon", "Uranus"}:  {1.1, Challenges, "exciting instability"},
	{"Uranus", "Venus"}: {1.2, Chemistry, "electric attraction"},
	{"Venus", "Uranus"}: {1.2, Chemistry, "unconventional love"},

	// Dreams (Neptune).
	{"Neptune", "Sun"}:   {1.0, Emotional, "idealization"},
	{"Sun", "Neptune"}:   {1.0, Emotional, "spiritual connection"},
	{"Neptune", "Moon"}:  {1.2, Emotional, "psychic bond"},
	{"Moon", "Neptune"}:  {1.2, Emotional, "dreamy emotions"},
	{"Neptune", "Venus"}: {1.3, Chemistry, "romantic fantasy"},
	{"Venus", "Neptune"}: {1.3, Chemistry, "idealized love"},
}

func pairInfoFor(p1, p2 string) pairInfo {
	if info, ok := pairWeights[pairKey{p1, p2}]; ok {
		return info
	}
	if info, ok := pairWeights[pairKey{p2, p1}]; ok {
		return info
	}
	return defaultPair
}

type comboKey struct {
	p1, p2 string
	t      aspect.Type
}

// specialScores override the generic per-type base scores for the
// combinations that dominate relationship charts.
var specialScores = map[comboKey]float64{
	{"Sun", "Moon", aspect.Conjunction}: 15,
	{"Sun", "Moon", aspect.Trine}:       12,
	{"Sun", "Moon", aspect.Sextile}:     8,
	{"Sun", "Moon", aspect.Square}:      -5,
	{"Sun", "Moon", aspect.Opposition}:  -3, // oppositions here can still attract

	{"Venus", "Mars", aspect.Conjunction}: 15,
	{"Venus", "Mars", aspect.Trine}:       12,
	{"Venus", "Mars", aspect.Sextile}:     10,
	{"Venus", "Mars", aspect.Square}:      5, // tension, but magnetic
	{"Venus", "Mars", aspect.Opposition}:  8,

	{"Saturn", "Sun", aspect.Trine}:       8,
	{"Saturn", "Sun", aspect.Sextile}:     6,
	{"Saturn", "Sun", aspect.Conjunction}: -3,
	{"Saturn", "Sun", aspect.Square}:      -10,
	{"Saturn", "Sun", aspect.Opposition}:  -8,

	{"Pluto", "Sun", aspect.Trine}:         6,
	{"Pluto", "Sun", aspect.Square}:        -8,
	{"Pluto", "Venus", aspect.Conjunction}: 10,
	{"Pluto", "Venus", aspect.Square}:      -6,

	{"Mercury", "Mercury", aspect.Conjunction}: 8,
	{"Mercury", "Mercury", aspect.Trine}:       6,
	{"Mercury", "Mercury", aspect.Square}:      -5,
}

// heavyPlanets flip an otherwise harmonious conjunction challenging.
var heavyPlanets = map[string]bool{"Saturn": true, "Pluto": true}

// baseScore is the signed contribution of an aspect before weighting:
// the special-case table first, then the generic per-type score, with
// conjunctions split on whether a heavy planet is involved.
func baseScore(p1, p2 string, t aspect.Type) float64 {
	if s, ok := specialScores[comboKey{p1, p2, t}]; ok {
		return s
	}
	if s, ok := specialScores[comboKey{p2, p1, t}]; ok {
		return s
	}
	if t == aspect.Conjunction {
		if heavyPlanets[p1] || heavyPlanets[p2] {
			return -3
		}
		return 5
	}
	return float64(t.Harmony())
}

// harmonyVerbs narrate a generic synastry aspect.
var harmonyVerbs = map[aspect.Type]string{
	aspect.Conjunction: "merges with",
	aspect.Trine:       "flows harmoniously with",
	aspect.Sextile:     "supports",
	aspect.Square:      "challenges",
	aspect.Opposition:  "balances or conflicts with",
}

// specialCombos narrate the pairings with dedicated interpretations.
var specialCombos = map[pairKey]map[aspect.Type]string{
	{"Venus", "Mars"}: {
		aspect.Trine:       "Powerful magnetic attraction and physical chemistry.",
		aspect.Conjunction: "Intense physical and romantic attraction.",
		aspect.Square:      "Passionate but potentially volatile chemistry.",
	},
	{"Sun", "Moon"}: {
		aspect.Trine:       "Deep understanding between identity and emotions.",
		aspect.Conjunction: "Strong soul connection and mutual understanding.",
	},
	{"Moon", "Moon"}: {
		aspect.Trine:       "Emotional wavelengths are beautifully in sync.",
		aspect.Conjunction: "You feel each other's emotions deeply.",
	},
	{"Venus", "Venus"}: {
		aspect.Trine:       "Shared values and similar ways of loving.",
		aspect.Conjunction: "Nearly identical love languages.",
	},
}

// interpretation narrates one synastry aspect, special pairings first.
func interpretation(p1, p2 string, t aspect.Type) string {
	if combos, ok := specialCombos[pairKey{p1, p2}]; ok {
		if text, ok := combos[t]; ok {
			return text
		}
	}
	if combos, ok := specialCombos[pairKey{p2, p1}]; ok {
		if text, ok := combos[t]; ok {
			return text
		}
	}
	verb, ok := harmonyVerbs[t]
	if !ok {
		verb = "connects with"
	}
	return p1 + " " + verb + " " + p2 + "."
}
