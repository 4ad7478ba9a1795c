package astro

import "math"

// Sign is one of the twelve zodiac signs, ordered from Aries.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// Element groups signs into the four classical elements.
type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

// Modality groups signs into the three quadruplicities.
type Modality int

const (
	Cardinal Modality = iota
	Fixed
	Mutable
)

type signInfo struct {
	name     string
	abbr     string
	symbol   string
	element  Element
	modality Modality
}

var signTable = [12]signInfo{
	{"Aries", "Ari", "♈", Fire, Cardinal},
	{"Taurus", "Tau", "♉", Earth, Fixed},
	{"Gemini", "Gem", "♊", Air, Mutable},
	{"Cancer", "Can", "♋", Water, Cardinal},
	{"Leo", "Leo", "♌", Fire, Fixed},
	{"Virgo", "Vir", "♍", Earth, Mutable},
	{"Libra", "Lib", "♎", Air, Cardinal},
	{"Scorpio", "Sco", "♏", Water, Fixed},
	{"Sagittarius", "Sag", "♐", Fire, Mutable},
	{"Capricorn", "Cap", "♑", Earth, Cardinal},
	{"Aquarius", "Aqu", "♒", Air, Fixed},
	{"Pisces", "Pis", "♓", Water, Mutable},
}

// NormalizeLongitude wraps an ecliptic longitude into [0, 360).
func NormalizeLongitude(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SignFromLongitude maps an absolute ecliptic longitude to its sign.
// Each sign occupies a 30 degree arc starting at Aries 0.
func SignFromLongitude(deg float64) Sign {
	return Sign(int(NormalizeLongitude(deg)/30) % 12)
}

// SignDegree returns the position within the sign, in [0, 30).
func SignDegree(deg float64) float64 {
	return math.Mod(NormalizeLongitude(deg), 30)
}

// SignFromAbbr resolves a three-letter sign abbreviation.
func SignFromAbbr(abbr string) (Sign, bool) {
	for i, s := range signTable {
		if s.abbr == abbr {
			return Sign(i), true
		}
	}
	return Aries, false
}

// SignFromName resolves a full sign name.
func SignFromName(name string) (Sign, bool) {
	for i, s := range signTable {
		if s.name == name {
			return Sign(i), true
		}
	}
	return Aries, false
}

func (s Sign) valid() bool { return s >= Aries && s <= Pisces }

func (s Sign) Name() string {
	if !s.valid() {
		return "Unknown"
	}
	return signTable[s].name
}

func (s Sign) Abbr() string {
	if !s.valid() {
		return "?"
	}
	return signTable[s].abbr
}

func (s Sign) Symbol() string {
	if !s.valid() {
		return "?"
	}
	return signTable[s].symbol
}

func (s Sign) Element() Element {
	if !s.valid() {
		return -1
	}
	return signTable[s].element
}

func (s Sign) Modality() Modality {
	if !s.valid() {
		return -1
	}
	return signTable[s].modality
}

func (e Element) Name() string {
	switch e {
	case Fire:
		return "Fire"
	case Earth:
		return "Earth"
	case Air:
		return "Air"
	case Water:
		return "Water"
	default:
		return "Unknown"
	}
}

// ElementFromName resolves an element by its display name.
func ElementFromName(name string) (Element, bool) {
	switch name {
	case "Fire":
		return Fire, true
	case "Earth":
		return Earth, true
	case "Air":
		return Air, true
	case "Water":
		return Water, true
	default:
		return -1, false
	}
}

// CompatibleWith reports whether two different elements form one of the
// classically compatible pairs: Fire with Air, Earth with Water.
func (e Element) CompatibleWith(other Element) bool {
	switch {
	case e == Fire && other == Air, e == Air && other == Fire:
		return true
	case e == Earth && other == Water, e == Water && other == Earth:
		return true
	default:
		return false
	}
}

func (m Modality) Name() string {
	switch m {
	case Cardinal:
		return "Cardinal"
	case Fixed:
		return "Fixed"
	case Mutable:
		return "Mutable"
	default:
		return "Unknown"
	}
}
