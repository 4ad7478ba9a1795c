package astro

// Planet identifies a chart body. The Ascendant is carried alongside the
// true planets because charts treat it as an eleventh position.
type Planet int

const (
	Sun Planet = iota
	Moon
	Ascendant
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

type planetInfo struct {
	name   string
	symbol string
}

var planetTable = [11]planetInfo{
	{"Sun", "☉"},
	{"Moon", "☽"},
	{"Ascendant", "ASC"},
	{"Mercury", "☿"},
	{"Venus", "♀"},
	{"Mars", "♂"},
	{"Jupiter", "♃"},
	{"Saturn", "♄"},
	{"Uranus", "♅"},
	{"Neptune", "♆"},
	{"Pluto", "♇"},
}

// ChartBodies lists every body a natal chart carries, in chart order.
var ChartBodies = []Planet{
	Sun, Moon, Ascendant, Mercury, Venus, Mars,
	Jupiter, Saturn, Uranus, Neptune, Pluto,
}

func (p Planet) valid() bool { return p >= Sun && p <= Pluto }

func (p Planet) Name() string {
	if !p.valid() {
		return "Unknown"
	}
	return planetTable[p].name
}

func (p Planet) Symbol() string {
	if !p.valid() {
		return "?"
	}
	return planetTable[p].symbol
}

// PlanetFromName resolves a planet by its display name.
func PlanetFromName(name string) (Planet, bool) {
	for i, info := range planetTable {
		if info.name == name {
			return Planet(i), true
		}
	}
	return Sun, false
}
