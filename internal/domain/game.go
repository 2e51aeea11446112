package domain

import (
	"strings"
	"time"
)

// Game is a scheduled MLB game as reported by the schedule source.
type Game struct {
	ID             string     `json:"id"`
	AwayTeam       string     `json:"away_team"`
	HomeTeam       string     `json:"home_team"`
	Venue          string     `json:"venue"`
	Status         GameStatus `json:"status"`
	DetailedStatus string     `json:"detailed_status,omitempty"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`

	// Score is set for games in progress, e.g. "3-2, Top 7".
	Score string `json:"score,omitempty"`
}

// TimingContext builds the selector input for the game at the given instant,
// with display times rendered in loc.
func (g Game) TimingContext(now time.Time, loc *time.Location) GameTimingContext {
	return GameTimingContext{
		Status:         g.Status,
		ScheduledStart: g.ScheduledStart,
		Now:            now,
		Location:       loc,
	}
}

// StartLabel is the short start-time text shown next to a game, with the
// start rendered in loc: "7:05 PM", "7:05 PM (Delayed)", "LIVE", "FINAL",
// "POSTPONED" or "TBD".
func (g Game) StartLabel(loc *time.Location) string {
	switch {
	case g.Status.InProgress():
		return "LIVE"
	case g.Status.Finished():
		return "FINAL"
	case g.Status == StatusPostponed:
		return "POSTPONED"
	case g.ScheduledStart == nil:
		return "TBD"
	}

	if loc == nil {
		loc = time.UTC
	}
	label := strings.TrimPrefix(g.ScheduledStart.In(loc).Format("03:04 PM"), "0")
	if g.Status == StatusDelayed {
		label += " (Delayed)"
	}
	return label
}
