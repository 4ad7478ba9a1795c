package ephemeris

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sametklc/mystic/internal/astro"
)

// TableSource serves positions out of a YAML ephemeris table. The file is
// loaded lazily on first use and never mutated afterwards, so concurrent
// lookups are safe once the sync.Once has fired.
type TableSource struct {
	path    string
	once    sync.Once
	loadErr error
	records []tableRecord
}

type tableRecord struct {
	date   time.Time
	bodies map[string]RawPosition
}

type tableFile struct {
	Records []struct {
		Date   string `yaml:"date"`
		Bodies map[string]struct {
			Longitude  float64 `yaml:"longitude"`
			House      string  `yaml:"house"`
			Retrograde *bool   `yaml:"retrograde"`
		} `yaml:"bodies"`
	} `yaml:"records"`
}

func NewTableSource(path string) *TableSource {
	return &TableSource{path: path}
}

func (s *TableSource) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.loadErr = fmt.Errorf("failed to read ephemeris table: %w", err)
		return
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		s.loadErr = fmt.Errorf("failed to parse ephemeris table: %w", err)
		return
	}

	records := make([]tableRecord, 0, len(file.Records))
	for _, rec := range file.Records {
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			s.loadErr = fmt.Errorf("invalid record date %q: %w", rec.Date, err)
			return
		}
		bodies := make(map[string]RawPosition, len(rec.Bodies))
		for name, b := range rec.Bodies {
			bodies[strings.ToLower(name)] = RawPosition{
				Longitude:  b.Longitude,
				House:      b.House,
				Retrograde: b.Retrograde,
			}
		}
		records = append(records, tableRecord{date: date, bodies: bodies})
	}

	if len(records) == 0 {
		s.loadErr = fmt.Errorf("ephemeris table %s contains no records", s.path)
		return
	}

	sort.Slice(records, func(i, j int) bool { return records[i].date.Before(records[j].date) })
	s.records = records
}

// Body returns the tabulated position nearest in time to the event date.
func (s *TableSource) Body(ev Event, p astro.Planet) (RawPosition, error) {
	s.once.Do(s.load)
	if s.loadErr != nil {
		return RawPosition{}, s.loadErr
	}

	target := time.Date(ev.Year, time.Month(ev.Month), ev.Day, 0, 0, 0, 0, time.UTC)
	rec := s.nearest(target)

	pos, ok := rec.bodies[strings.ToLower(p.Name())]
	if !ok {
		return RawPosition{}, fmt.Errorf("no %s entry for %s", p.Name(), rec.date.Format("2006-01-02"))
	}
	return pos, nil
}

func (s *TableSource) nearest(target time.Time) tableRecord {
	idx := sort.Search(len(s.records), func(i int) bool {
		return !s.records[i].date.Before(target)
	})
	if idx == 0 {
		return s.records[0]
	}
	if idx == len(s.records) {
		return s.records[len(s.records)-1]
	}
	before, after := s.records[idx-1], s.records[idx]
	if target.Sub(before.date) <= after.date.Sub(target) {
		return before
	}
	return after
}

// StaticSource is an in-memory Source keyed by body, independent of the
// event. Used by tests and fixtures.
type StaticSource map[astro.Planet]RawPosition

func (s StaticSource) Body(_ Event, p astro.Planet) (RawPosition, error) {
	pos, ok := s[p]
	if !ok {
		return RawPosition{}, fmt.Errorf("no data for %s", p.Name())
	}
	return pos, nil
}
