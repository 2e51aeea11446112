package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// GameReport is the published carry outlook for one game.
type GameReport struct {
	ID          string     `json:"id"`
	Game        Game       `json:"game"`
	Evaluation  Evaluation `json:"evaluation"`
	EvaluatedAt time.Time  `json:"evaluated_at"`
}

// NewGameReport stamps an evaluation with a deterministic ID so republishing
// the same game against the same sample is idempotent downstream.
func NewGameReport(game Game, ev Evaluation, evaluatedAt time.Time) GameReport {
	var sampleAt time.Time
	if ev.Sample != nil {
		sampleAt = ev.Sample.Timestamp
	}
	return GameReport{
		ID:          reportID(game.ID, game.Venue, sampleAt),
		Game:        game,
		Evaluation:  ev,
		EvaluatedAt: evaluatedAt,
	}
}

func reportID(gameID, venue string, sampleAt time.Time) string {
	input := fmt.Sprintf("%s|%s|%d", gameID, venue, sampleAt.Unix())
	hash := sha256.Sum256([]byte(input))
	return "game-" + hex.EncodeToString(hash[:8])
}
