package ephemeris

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sametklc/mystic/internal/astro"
)

func TestParseBirthData(t *testing.T) {
	tests := []struct {
		date, tm string
		wantErr  bool
		hour     int
		minute   int
	}{
		{"1990-06-15", "14:30", false, 14, 30},
		{"1990-06-15", "14", false, 14, 0},
		{"1990-06-15", "00:00", false, 0, 0},
		{"15-06-1990", "14:30", true, 0, 0},
		{"1990-06-15", "25:00", true, 0, 0},
		{"1990-06-15", "14:75", true, 0, 0},
		{"1990-06-15", "noon", true, 0, 0},
		{"not-a-date", "14:30", true, 0, 0},
	}
	for _, tt := range tests {
		y, m, d, h, min, err := ParseBirthData(tt.date, tt.tm)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBirthData(%q,%q) err=%v wantErr=%v", tt.date, tt.tm, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if y != 1990 || m != 6 || d != 15 {
			t.Errorf("ParseBirthData(%q,%q) date=%d-%d-%d", tt.date, tt.tm, y, m, d)
		}
		if h != tt.hour || min != tt.minute {
			t.Errorf("ParseBirthData(%q,%q) time=%d:%d want %d:%d", tt.date, tt.tm, h, min, tt.hour, tt.minute)
		}
	}
}

func TestHouseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"Tenth_House", 10},
		{"First_House", 1},
		{"Twelfth_House", 12},
		{"7", 7},
		{" 3 ", 3},
		{"13", 1},
		{"0", 1},
		{"Mystery_House", 1},
		{"", 1},
	}
	for _, tt := range tests {
		if got := HouseNumber(tt.raw); got != tt.want {
			t.Errorf("HouseNumber(%q)=%d want %d", tt.raw, got, tt.want)
		}
	}
}

func TestAdapterNormalization(t *testing.T) {
	retro := true
	src := StaticSource{
		astro.Sun:     {Longitude: 84.5, House: "Tenth_House"},
		astro.Mercury: {Longitude: 412.0, House: "3", Retrograde: &retro},
	}
	a := NewAdapter(src)
	ev := Event{Year: 1990, Month: 6, Day: 15, Timezone: "UTC"}

	sun := a.Position(ev, astro.Sun)
	if sun == nil {
		t.Fatal("sun position missing")
	}
	if sun.House != 10 {
		t.Errorf("sun house=%d want 10", sun.House)
	}
	if sun.Retrograde {
		t.Error("missing retrograde flag must default to false")
	}

	mercury := a.Position(ev, astro.Mercury)
	if mercury == nil {
		t.Fatal("mercury position missing")
	}
	if !mercury.Retrograde {
		t.Error("mercury should be retrograde")
	}
	if mercury.Longitude != 52.0 {
		t.Errorf("mercury longitude=%v want 52 (normalized)", mercury.Longitude)
	}

	// A body the source cannot answer comes back nil, not an error.
	if pos := a.Position(ev, astro.Pluto); pos != nil {
		t.Errorf("expected nil for unavailable body, got %+v", pos)
	}

	positions := a.Positions(ev, []astro.Planet{astro.Sun, astro.Pluto, astro.Mercury})
	if positions[0] == nil || positions[1] != nil || positions[2] == nil {
		t.Error("Positions must preserve order and mark failures as nil")
	}
}

const sampleTable = `
records:
  - date: "2024-03-01"
    bodies:
      sun: {longitude: 341.2, house: "First_House"}
      moon: {longitude: 102.7, house: "5"}
      mercury: {longitude: 355.0, house: "First_House", retrograde: true}
  - date: "2024-03-11"
    bodies:
      sun: {longitude: 351.1, house: "First_House"}
      moon: {longitude: 234.9, house: "9"}
`

func writeTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ephemeris.yml")
	if err := os.WriteFile(path, []byte(sampleTable), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTableSourceNearestRecord(t *testing.T) {
	src := NewTableSource(writeTable(t))

	ev := Event{Year: 2024, Month: 3, Day: 2, Timezone: "UTC"}
	pos, err := src.Body(ev, astro.Sun)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if pos.Longitude != 341.2 {
		t.Errorf("sun longitude=%v want 341.2 (nearest record is 2024-03-01)", pos.Longitude)
	}

	ev = Event{Year: 2024, Month: 3, Day: 9, Timezone: "UTC"}
	pos, err = src.Body(ev, astro.Moon)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if pos.Longitude != 234.9 {
		t.Errorf("moon longitude=%v want 234.9 (nearest record is 2024-03-11)", pos.Longitude)
	}

	if _, err := src.Body(ev, astro.Pluto); err == nil {
		t.Error("expected error for body missing from the table")
	}
}

func TestTableSourceConcurrentFirstUse(t *testing.T) {
	src := NewTableSource(writeTable(t))
	ev := Event{Year: 2024, Month: 3, Day: 1, Timezone: "UTC"}

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := src.Body(ev, astro.Sun); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent lookup failed: %v", err)
	}
}

func TestTableSourceMissingFile(t *testing.T) {
	src := NewTableSource(filepath.Join(t.TempDir(), "absent.yml"))
	if _, err := src.Body(Event{Year: 2024, Month: 1, Day: 1}, astro.Sun); err == nil {
		t.Error("expected load error for missing table file")
	}
}

func TestSkyEvent(t *testing.T) {
	ev := SkyEvent(time.Date(2024, 3, 5, 23, 45, 0, 0, time.UTC))
	if ev.Hour != 12 || ev.Latitude != 0 || ev.Longitude != 0 {
		t.Errorf("SkyEvent = %+v, want noon UTC at the equator", ev)
	}
	if got := fmt.Sprintf("%d-%02d-%02d", ev.Year, ev.Month, ev.Day); got != "2024-03-05" {
		t.Errorf("SkyEvent date = %s", got)
	}
}
