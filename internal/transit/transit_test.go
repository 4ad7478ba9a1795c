package transit

import (
	"testing"
	"time"

	"github.com/sametklc/mystic/internal/astro"
	"github.com/sametklc/mystic/internal/chart"
	"github.com/sametklc/mystic/internal/ephemeris"
)

var testDay = time.Date(2024, 3, 21, 9, 0, 0, 0, time.UTC)

func natalChart(t *testing.T) *chart.NatalChart {
	t.Helper()
	src := ephemeris.StaticSource{
		astro.Sun:     {Longitude: 10, House: "1"},
		astro.Moon:    {Longitude: 95, House: "4"},
		astro.Mercury: {Longitude: 25, House: "1"},
		astro.Venus:   {Longitude: 40, House: "2"},
		astro.Mars:    {Longitude: 200, House: "7"},
		astro.Jupiter: {Longitude: 130, House: "5"},
		astro.Saturn:  {Longitude: 280, House: "10"},
	}
	a := chart.NewAssembler(ephemeris.NewAdapter(src))
	c, err := a.Build(chart.BirthInput{Date: "1990-06-15", Time: "14:30"})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// skySource trines the natal Sun with the transiting Sun and squares the
// natal Moon with the transiting Mars.
func skySource() ephemeris.StaticSource {
	return ephemeris.StaticSource{
		astro.Sun:     {Longitude: 130, House: "1"},
		astro.Moon:    {Longitude: 55, House: "2"},
		astro.Mercury: {Longitude: 220, House: "8"},
		astro.Venus:   {Longitude: 310, House: "11"},
		astro.Mars:    {Longitude: 186, House: "7"},
	}
}

func TestSummarize(t *testing.T) {
	e := NewEngine(ephemeris.NewAdapter(skySource()))
	s := e.Summarize(natalChart(t), testDay)

	if s.Date != "2024-03-21" {
		t.Errorf("date=%q", s.Date)
	}
	if len(s.Aspects) == 0 || len(s.Aspects) > 10 {
		t.Fatalf("aspect count=%d, want 1..10", len(s.Aspects))
	}
	for i := 1; i < len(s.Aspects); i++ {
		if s.Aspects[i].Orb < s.Aspects[i-1].Orb {
			t.Fatal("aspects not sorted ascending by orb")
		}
	}

	found := false
	for _, a := range s.Aspects {
		if a.TransitPlanet == "Sun" && a.NatalPlanet == "Sun" && a.AspectType == "trine" {
			found = true
			if a.Orb != 0 {
				t.Errorf("exact trine orb=%v", a.Orb)
			}
		}
		if a.AspectType == "quincunx" {
			t.Error("transits must not report quincunx")
		}
	}
	if !found {
		t.Error("transiting Sun trine natal Sun (130 vs 10) not detected")
	}
}

func TestFocusAreas(t *testing.T) {
	e := NewEngine(ephemeris.NewAdapter(skySource()))
	s := e.Summarize(natalChart(t), testDay)

	if len(s.FocusAreas) == 0 || len(s.FocusAreas) > 5 {
		t.Fatalf("focus areas=%v, want 1..5 entries", s.FocusAreas)
	}
	seen := make(map[string]bool)
	for _, area := range s.FocusAreas {
		if seen[area] {
			t.Errorf("duplicate focus area %q", area)
		}
		seen[area] = true
	}
	// The tightest aspect hits natal Sun, so identity must lead.
	if s.FocusAreas[0] != "identity" {
		t.Errorf("focus areas %v, want identity first", s.FocusAreas)
	}
}

func TestOverallEnergy(t *testing.T) {
	harmonious := []Aspect{{HarmonyScore: 8}, {HarmonyScore: -5}}
	if got := overallEnergy(harmonious); got != "harmonious" {
		t.Errorf("energy=%q want harmonious", got)
	}
	challenging := []Aspect{{HarmonyScore: -6}, {HarmonyScore: 5}}
	if got := overallEnergy(challenging); got != "challenging" {
		t.Errorf("energy=%q want challenging", got)
	}
	if got := overallEnergy(nil); got != "neutral" {
		t.Errorf("energy=%q want neutral", got)
	}
	balanced := []Aspect{{HarmonyScore: 5}, {HarmonyScore: -5}}
	if got := overallEnergy(balanced); got != "neutral" {
		t.Errorf("energy=%q want neutral", got)
	}
}

func TestSummarizeEmptySky(t *testing.T) {
	e := NewEngine(ephemeris.NewAdapter(ephemeris.StaticSource{}))
	s := e.Summarize(natalChart(t), testDay)
	if len(s.Aspects) != 0 {
		t.Errorf("empty sky produced %d aspects", len(s.Aspects))
	}
	if s.OverallEnergy != "neutral" {
		t.Errorf("energy=%q want neutral", s.OverallEnergy)
	}
	if len(s.FocusAreas) != 0 {
		t.Errorf("focus areas=%v want empty", s.FocusAreas)
	}
}
