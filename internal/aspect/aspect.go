package aspect

import (
	"fmt"
	"math"
)

// Type is a named angular relationship between two ecliptic longitudes,
// ordered by its exact angle.
type Type int

const (
	Conjunction Type = iota // 0
	Sextile                 // 60
	Square                  // 90
	Trine                   // 120
	Quincunx                // 150
	Opposition              // 180
)

type typeInfo struct {
	name    string
	symbol  string
	angle   float64
	harmony int
}

var typeTable = [6]typeInfo{
	{"conjunction", "☌", 0, 5},
	{"sextile", "⚹", 60, 7},
	{"square", "□", 90, -6},
	{"trine", "△", 120, 8},
	{"quincunx", "⚻", 150, -3},
	{"opposition", "☍", 180, -5},
}

func (t Type) valid() bool { return t >= Conjunction && t <= Opposition }

func (t Type) Name() string {
	if !t.valid() {
		return "unknown"
	}
	return typeTable[t].name
}

func (t Type) Symbol() string {
	if !t.valid() {
		return "?"
	}
	return typeTable[t].symbol
}

// Angle is the exact defining angle of the aspect in degrees.
func (t Type) Angle() float64 {
	if !t.valid() {
		return 0
	}
	return typeTable[t].angle
}

// Harmony is the signed base score of the aspect: positive aspects bind,
// negative ones strain. Conjunctions default to their harmonious value;
// scoring layers override it when heavy planets are involved.
func (t Type) Harmony() int {
	if !t.valid() {
		return 0
	}
	return typeTable[t].harmony
}

// TypeFromName resolves an aspect type by its lowercase name.
func TypeFromName(name string) (Type, bool) {
	for i, info := range typeTable {
		if info.name == name {
			return Type(i), true
		}
	}
	return Conjunction, false
}

// Distance is the circular angular distance between two absolute
// longitudes. The result is in [0, 180] and symmetric in its arguments.
func Distance(d1, d2 float64) float64 {
	diff := math.Abs(d1 - d2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Tolerance pairs an aspect type with the maximum orb it accepts.
type Tolerance struct {
	Type Type
	Orb  float64
}

// Policy is a call-site specific rule set: which aspects are considered,
// how loose each orb may be, and how many results the caller keeps.
// Candidates must be listed in angle-ascending order; Classify stops at
// the first candidate whose orb contains the separation rather than
// searching for the tightest match. Changing that changes which aspect
// gets reported whenever tolerance windows overlap.
type Policy struct {
	Name       string
	Candidates []Tolerance
	Limit      int
}

var (
	// NatalPolicy governs intra-chart aspects.
	NatalPolicy = Policy{
		Name: "natal",
		Candidates: []Tolerance{
			{Conjunction, 8},
			{Sextile, 5},
			{Square, 6},
			{Trine, 7},
			{Quincunx, 3},
			{Opposition, 8},
		},
		Limit: 15,
	}

	// SynastryPolicy governs inter-chart aspects.
	SynastryPolicy = Policy{
		Name: "synastry",
		Candidates: []Tolerance{
			{Conjunction, 8},
			{Sextile, 6},
			{Square, 6},
			{Trine, 8},
			{Opposition, 8},
		},
		Limit: 20,
	}

	// TransitPolicy governs current-sky to natal aspects.
	TransitPolicy = Policy{
		Name: "transit",
		Candidates: []Tolerance{
			{Conjunction, 8},
			{Sextile, 5},
			{Square, 6},
			{Trine, 7},
			{Opposition, 8},
		},
		Limit: 10,
	}
)

// Match is a detected aspect between two longitudes. Orb is the absolute
// deviation from the exact angle and is always >= 0.
type Match struct {
	Type Type
	Orb  float64
}

// Classify detects an aspect between two absolute longitudes under the
// policy, first candidate wins. The boolean is false when the separation
// falls outside every tolerance window.
func (p Policy) Classify(d1, d2 float64) (Match, bool) {
	diff := Distance(d1, d2)
	for _, c := range p.Candidates {
		orb := math.Abs(diff - c.Type.Angle())
		if orb <= c.Orb {
			return Match{Type: c.Type, Orb: orb}, true
		}
	}
	return Match{}, false
}

// Validate reports longitudes the engine cannot classify. Detection over
// whole charts refuses NaN input rather than emitting garbage aspects.
func Validate(longitudes ...float64) error {
	for _, d := range longitudes {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("invalid longitude %v", d)
		}
	}
	return nil
}
