// Command evaluate runs the carry model offline against a saved OpenWeather
// One Call response.
//
// Usage:
//
//	go run ./cmd/evaluate -file data/mock/coors_field.json -venue "Coors Field" \
//	  -status Scheduled -start 2024-06-01T18:00:00Z -now 2024-06-01T16:00:00Z
//	curl -s "$ONECALL_URL" | go run ./cmd/evaluate -venue "Fenway Park" -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/couchcryptid/ballpark-weather/internal/adapter/openweather"
	"github.com/couchcryptid/ballpark-weather/internal/domain"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer) error {
	file := flag.String("file", "-", "One Call JSON file, or - for stdin")
	venue := flag.String("venue", "", "exact ballpark name; empty evaluates without park context")
	status := flag.String("status", string(domain.StatusScheduled), "game status, e.g. Scheduled, Live, Final")
	startFlag := flag.String("start", "", "scheduled start (RFC 3339)")
	nowFlag := flag.String("now", "", "evaluation instant (RFC 3339), defaults to the current time")
	tz := flag.String("tz", "UTC", "IANA timezone for the game-time label")
	asJSON := flag.Bool("json", false, "print the full evaluation as JSON")
	flag.Parse()

	series, err := readSeries(*file)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		return fmt.Errorf("invalid -tz: %w", err)
	}
	tc := domain.GameTimingContext{Status: domain.ParseGameStatus(*status), Now: time.Now().UTC(), Location: loc}
	if *nowFlag != "" {
		now, err := time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			return fmt.Errorf("invalid -now: %w", err)
		}
		tc.Now = now
	}
	if *startFlag != "" {
		start, err := time.Parse(time.RFC3339, *startFlag)
		if err != nil {
			return fmt.Errorf("invalid -start: %w", err)
		}
		tc.ScheduledStart = &start
	}

	var park *domain.BallparkGeometry
	if *venue != "" {
		if park = domain.DefaultBallparks.Lookup(*venue); park == nil {
			log.Printf("unknown ballpark %q, evaluating without park context", *venue)
		}
	}

	ev, err := domain.Evaluate(series, tc, park)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ev)
	}
	fmt.Fprintf(out, "%s: %s\n", ev.Window, ev.Summary)
	return nil
}

func readSeries(path string) (*domain.WeatherSeries, error) {
	if path == "-" {
		return openweather.Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return openweather.Decode(f)
}
