package insight

import (
	"strings"
	"testing"
	"time"

	"github.com/sametklc/mystic/internal/astro"
	"github.com/sametklc/mystic/internal/ephemeris"
)

func retro(v bool) *bool { return &v }

var testDay = time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)

func TestDaily(t *testing.T) {
	// Sun in Cancer, Moon full in Capricorn (Earth), Mercury retrograde.
	src := ephemeris.StaticSource{
		astro.Sun:     {Longitude: 101.5, House: "1"},
		astro.Moon:    {Longitude: 281.5, House: "7"},
		astro.Mercury: {Longitude: 120.0, House: "2", Retrograde: retro(true)},
	}
	d := NewService(ephemeris.NewAdapter(src)).Daily(testDay)

	if d.Date != "2024-07-03" {
		t.Errorf("date=%q", d.Date)
	}
	if d.MoonPhase != "Full Moon" || d.MoonPhaseIcon != "full_moon" {
		t.Errorf("phase=%q icon=%q", d.MoonPhase, d.MoonPhaseIcon)
	}
	if d.MoonSign != "Capricorn" || d.MoonElement != "Earth" {
		t.Errorf("moon sign=%q element=%q", d.MoonSign, d.MoonElement)
	}
	if d.SunSign != "Cancer" {
		t.Errorf("sun sign=%q", d.SunSign)
	}
	if !d.MercuryRetrograde || d.MercuryStatus != "Retrograde" {
		t.Errorf("mercury status=%q retrograde=%v", d.MercuryStatus, d.MercuryRetrograde)
	}
	if !strings.Contains(d.MercuryMessage, "take care with communications") {
		t.Errorf("mercury message=%q", d.MercuryMessage)
	}
	if !strings.HasPrefix(d.Advice, "What was hidden now stands illuminated") {
		t.Errorf("advice=%q, want full-moon line", d.Advice)
	}
	if !strings.HasSuffix(d.Advice, "Ground yourself in what is real and lasting.") {
		t.Errorf("advice=%q, want earth modifier appended", d.Advice)
	}
}

func TestDailyDegradesOnMissingBodies(t *testing.T) {
	d := NewService(ephemeris.NewAdapter(ephemeris.StaticSource{})).Daily(testDay)

	if d.MoonSign != "Unknown" || d.SunSign != "Unknown" {
		t.Errorf("signs %q/%q, want Unknown", d.MoonSign, d.SunSign)
	}
	if d.MoonSignSymbol != "☽" {
		t.Errorf("symbol=%q, want generic moon", d.MoonSignSymbol)
	}
	if d.MercuryRetrograde {
		t.Error("missing mercury must default to direct")
	}
	if d.Advice == "" {
		t.Error("advice must never be empty")
	}
}

func TestAdvice(t *testing.T) {
	tests := []struct {
		phase, element string
		want           string
	}{
		{"New Moon", "Fire", "Seeds planted in darkness grow strongest toward the light. Let passion guide but not consume."},
		{"Last Quarter", "Water", "Release what no longer serves; make room for what is to come. Trust the currents of intuition today."},
		{"New Moon", "Unknown", "Seeds planted in darkness grow strongest toward the light."},
		{"Blood Moon", "Air", "The stars whisper secrets to those who listen. Let your thoughts flow like the wind—free but purposeful."},
		{"Blood Moon", "", "The stars whisper secrets to those who listen."},
	}
	for _, tt := range tests {
		if got := Advice(tt.phase, tt.element); got != tt.want {
			t.Errorf("Advice(%q,%q)=%q want %q", tt.phase, tt.element, got, tt.want)
		}
	}
}

func TestMercuryStatus(t *testing.T) {
	status, msg := MercuryStatus(false)
	if status != "Direct" || !strings.Contains(msg, "clear skies") {
		t.Errorf("direct status=%q msg=%q", status, msg)
	}
	status, _ = MercuryStatus(true)
	if status != "Retrograde" {
		t.Errorf("status=%q", status)
	}
}
