package gamesummary

import (
	"strconv"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
)

// Bucket classifies a period for goal and shot counting.
type Bucket int

const (
	BucketRegulation Bucket = iota
	BucketOvertime
	BucketShootout
)

// BucketOf maps periods 1-3 (or a missing period) to regulation, 4 to
// overtime and anything later to the shootout.
func BucketOf(period *int) Bucket {
	switch {
	case period == nil || *period <= 3:
		return BucketRegulation
	case *period == 4:
		return BucketOvertime
	default:
		return BucketShootout
	}
}

// WinType is the suffix appended to a final score.
type WinType string

const (
	WinRegulation WinType = ""
	WinOvertime   WinType = "OT"
	WinShootout   WinType = "SO"
)

type GoalBuckets struct {
	Regulation int
	Overtime   int
	Shootout   int
}

func (g GoalBuckets) Total() int {
	return g.Regulation + g.Overtime + g.Shootout
}

// TeamLine is one team's row in the comparison table.
type TeamLine struct {
	TeamID           int64
	Label            string
	Goals            int
	ShotsOnGoal      int
	Penalties        int
	Hits             int
	Faceoffs         int
	BlockedShots     int
	MissedShots      int
	Giveaways        int
	Takeaways        int
	DelayedPenalties int
}

// Side is the away or home half of the matchup.
type Side struct {
	TeamID *int64
	Abbrev string
	Final  int
}

// Comparison pairs the away and home rows when both teams are known.
type Comparison struct {
	Away TeamLine
	Home TeamLine
}

type PlayerRef struct {
	PlayerID int64
	Name     string
	Team     string
}

// Label renders "Name (Team)", falling back to "Player <id>" for unknown
// names and "Unknown player" when there is no id either.
func (p PlayerRef) Label() string {
	name := p.Name
	switch {
	case name != "":
	case p.PlayerID != 0:
		name = "Player " + strconv.FormatInt(p.PlayerID, 10)
	default:
		name = "Unknown player"
	}
	if p.Team == "" {
		return name
	}
	return name + " (" + p.Team + ")"
}

type StarLine struct {
	Rank     int
	Player   PlayerRef
	Position string
	Stats    gameevent.StarStats
}

// Report is the aggregated view of one game's event stream.
type Report struct {
	HasMetadata bool
	GameType    string
	Venue       string
	Away        Side
	Home        Side
	WinType     WinType

	Goals       GoalBuckets
	ShotsOnGoal int
	Penalties   int

	// Comparison is nil when home and away cannot be resolved; Teams then
	// carries the per-team breakdown in ascending id order.
	Comparison *Comparison
	Teams      []TeamLine

	Stars []StarLine

	GameWinner *PlayerRef

	TopGoalScorers  []PlayerRef
	TopGoals        int
	TopPointScorers []PlayerRef
	TopPoints       int
}

// GameTypeName maps league game type codes to display names.
func GameTypeName(gameType *int) string {
	if gameType == nil {
		return "Unknown"
	}
	switch *gameType {
	case gameevent.GameTypePreseason:
		return "Preseason"
	case gameevent.GameTypeRegular:
		return "Regular Season"
	case gameevent.GameTypePlayoffs:
		return "Playoffs"
	default:
		return "Unknown"
	}
}
