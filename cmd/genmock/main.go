// Command genmock writes OpenWeather One Call fixtures for every ballpark
// using the mock weather source, and prints the carry estimate each fixture
// produces for a game starting two hours later. The fixtures feed
// cmd/evaluate and the OpenWeather adapter tests.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock
//	go run ./cmd/genmock -out data/mock -park "Coors Field"
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/ballpark-weather/internal/adapter/mockweather"
	"github.com/couchcryptid/ballpark-weather/internal/adapter/openweather"
	"github.com/couchcryptid/ballpark-weather/internal/domain"
)

// Fixed instant for reproducible fixture timestamps.
var baseTime = time.Date(2024, time.June, 1, 16, 0, 0, 0, time.UTC)

const gameOffset = 2 * time.Hour

type fixtureStat struct {
	park  string
	file  string
	carry *domain.CarryFactorResult
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out", "", "output directory for One Call JSON fixtures")
	only := flag.String("park", "", "generate a single ballpark by exact name")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	names := domain.DefaultBallparks.Names()
	slices.Sort(names)
	if *only != "" {
		if domain.DefaultBallparks.Lookup(*only) == nil {
			return fmt.Errorf("unknown ballpark %q", *only)
		}
		names = []string{*only}
	}

	source := mockweather.New(clockwork.NewFakeClockAt(baseTime))
	start := baseTime.Add(gameOffset)
	tc := domain.GameTimingContext{Status: domain.StatusScheduled, ScheduledStart: &start, Now: baseTime}

	stats := make([]fixtureStat, 0, len(names))
	for _, name := range names {
		park := domain.DefaultBallparks.Lookup(name)
		series, err := source.FetchSeries(context.Background(), *park)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		path := filepath.Join(*outDir, fixtureName(name))
		if err := writeJSON(path, openweather.FromSeries(series, *park.Location)); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		ev, err := domain.Evaluate(series, tc, park)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		stats = append(stats, fixtureStat{park: name, file: path, carry: ev.Carry})
	}

	log.Printf("wrote %d fixtures to %s", len(stats), *outDir)
	printStats(stats)
	return nil
}

// fixtureName turns "Oriole Park at Camden Yards" into
// "oriole_park_at_camden_yards.json".
func fixtureName(park string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ' || r == '-':
			return '_'
		default:
			return -1
		}
	}, park)
	return slug + ".json"
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func printStats(stats []fixtureStat) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BALLPARK\tCARRY (FT)\tOUTLOOK")
	for _, s := range stats {
		if s.carry == nil {
			fmt.Fprintf(tw, "%s\t-\t%s\n", s.park, domain.WeatherUnavailable)
			continue
		}
		fmt.Fprintf(tw, "%s\t%+.1f\t%s\n", s.park, s.carry.CarryDifferenceFt, s.carry.Description)
	}
	tw.Flush()
}
