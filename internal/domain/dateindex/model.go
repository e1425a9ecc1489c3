package dateindex

import (
	"fmt"
	"strings"
)

// Artifact names one pipeline output tracked per game.
type Artifact string

const (
	ArtifactRawPlayByPlay Artifact = "raw_pbp"
	ArtifactRawStory      Artifact = "raw_story"
	ArtifactEvents        Artifact = "events"
	ArtifactSummaryStats  Artifact = "summary_stats"
	ArtifactSummaryAI     Artifact = "summary_ai"
)

var Artifacts = []Artifact{
	ArtifactRawPlayByPlay,
	ArtifactRawStory,
	ArtifactEvents,
	ArtifactSummaryStats,
	ArtifactSummaryAI,
}

func ParseArtifact(raw string) (Artifact, error) {
	value := Artifact(strings.ToLower(strings.TrimSpace(raw)))
	for _, artifact := range Artifacts {
		if value == artifact {
			return artifact, nil
		}
	}
	return "", fmt.Errorf("unknown artifact %q", raw)
}

// Row tracks which artifacts exist for one game.
type Row struct {
	GameID        int64  `json:"game_id"`
	Away          string `json:"away,omitempty"`
	Home          string `json:"home,omitempty"`
	RawPlayByPlay bool   `json:"raw_pbp"`
	RawStory      bool   `json:"raw_story"`
	Events        bool   `json:"events"`
	SummaryStats  bool   `json:"summary_stats"`
	SummaryAI     bool   `json:"summary_ai"`
}

func (r Row) Has(artifact Artifact) bool {
	switch artifact {
	case ArtifactRawPlayByPlay:
		return r.RawPlayByPlay
	case ArtifactRawStory:
		return r.RawStory
	case ArtifactEvents:
		return r.Events
	case ArtifactSummaryStats:
		return r.SummaryStats
	case ArtifactSummaryAI:
		return r.SummaryAI
	default:
		return false
	}
}

func (r *Row) Set(artifact Artifact, exists bool) {
	switch artifact {
	case ArtifactRawPlayByPlay:
		r.RawPlayByPlay = exists
	case ArtifactRawStory:
		r.RawStory = exists
	case ArtifactEvents:
		r.Events = exists
	case ArtifactSummaryStats:
		r.SummaryStats = exists
	case ArtifactSummaryAI:
		r.SummaryAI = exists
	}
}

// Document is the per-date progress index.
type Document struct {
	Date  string `json:"date"`
	Games []Row  `json:"games"`
}

func NewDocument(date string) Document {
	return Document{Date: date, Games: []Row{}}
}

// Upsert returns the row for gameID, appending one if needed. Non-empty
// away/home values overwrite the stored matchup.
func (d *Document) Upsert(gameID int64, away, home string) *Row {
	idx := -1
	for i := range d.Games {
		if d.Games[i].GameID == gameID {
			idx = i
			break
		}
	}
	if idx < 0 {
		d.Games = append(d.Games, Row{GameID: gameID})
		idx = len(d.Games) - 1
	}

	row := &d.Games[idx]
	if away = strings.TrimSpace(away); away != "" {
		row.Away = away
	}
	if home = strings.TrimSpace(home); home != "" {
		row.Home = home
	}
	return row
}

// Missing lists games lacking artifact, in index order.
func (d Document) Missing(artifact Artifact) []int64 {
	out := make([]int64, 0, len(d.Games))
	for _, row := range d.Games {
		if !row.Has(artifact) {
			out = append(out, row.GameID)
		}
	}
	return out
}

// Mark is one artifact update for a game on a given date.
type Mark struct {
	Date     string
	GameID   int64
	Away     string
	Home     string
	Artifact Artifact
	Exists   bool
}
