package gameevent

// Kind tags a canonical event.
type Kind string

const (
	KindGoal           Kind = "goal"
	KindPenalty        Kind = "penalty"
	KindShotOnGoal     Kind = "shot-on-goal"
	KindHit            Kind = "hit"
	KindFaceoff        Kind = "faceoff"
	KindBlockedShot    Kind = "blocked-shot"
	KindMissedShot     Kind = "missed-shot"
	KindGiveaway       Kind = "giveaway"
	KindTakeaway       Kind = "takeaway"
	KindDelayedPenalty Kind = "delayed-penalty"

	KindUnknown  Kind = "unknown"
	KindStar     Kind = "star"
	KindMetadata Kind = "metadata"
)

// GameplayKinds lists the kinds produced by the normalizer, in feed vocabulary order.
var GameplayKinds = []Kind{
	KindGoal,
	KindPenalty,
	KindShotOnGoal,
	KindHit,
	KindFaceoff,
	KindBlockedShot,
	KindMissedShot,
	KindGiveaway,
	KindTakeaway,
	KindDelayedPenalty,
}

// IsGameplay reports whether k is one of the ten normalized play kinds.
func (k Kind) IsGameplay() bool {
	_, ok := interpreters[k]
	return ok
}

// Event is the canonical, schema-uniform record of one game occurrence.
// Which fields are meaningful depends on Type; see the JSON layout in json.go.
type Event struct {
	Type Kind

	Players  Players
	TeamID   *int64
	TeamName *string
	GoalieID *int64

	Period   *int
	Time     *string
	Zone     *string
	Location Location

	ShotType  *string
	Reason    *string
	Highlight *string
	Score     Score
	Penalty   Penalty

	Star     *Star
	Metadata *Metadata

	// RawData is set only for KindUnknown and holds the input verbatim.
	RawData RawEvent
}

// Players holds role to player-id assignments. Roles vary by kind.
type Players struct {
	ScorerID *int64
	// AssistIDs holds the primary and secondary assist slots; an empty slot is nil.
	AssistIDs []*int64

	ShooterID         *int64
	BlockerID         *int64
	HitterID          *int64
	HitteeID          *int64
	WinnerID          *int64
	LoserID           *int64
	CommittedPlayerID *int64
	DrawnPlayerID     *int64
	PlayerID          *int64

	// NamesAttached is set once a goal has been enriched with scorer and assist names.
	NamesAttached bool
	ScorerName    *string
	// AssistNames is parallel to AssistIDs; nil entries are unresolved names.
	AssistNames []*string
}

type Location struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// Score holds running totals after a goal.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type Penalty struct {
	Type     *string `json:"type"`
	Reason   *string `json:"reason"`
	Duration *int    `json:"duration"`
}

// Star is one of the three standout players of a game. Team lives on the event.
type Star struct {
	Rank     int
	PlayerID *int64
	Name     *string
	Position *string
	Stats    StarStats
}

// StarStats carries goalie stats or skater stats, never both in practice.
type StarStats struct {
	GoalsAgainstAverage *float64 `json:"goalsAgainstAverage,omitempty"`
	SavePctg            *float64 `json:"savePctg,omitempty"`
	Goals               *int     `json:"goals,omitempty"`
	Assists             *int     `json:"assists,omitempty"`
	Points              *int     `json:"points,omitempty"`
}

func (s StarStats) IsGoalie() bool {
	return s.GoalsAgainstAverage != nil || s.SavePctg != nil
}

func (s StarStats) IsSkater() bool {
	return s.Goals != nil || s.Assists != nil || s.Points != nil
}

// Metadata describes the game as a whole.
type Metadata struct {
	GameID        int64
	GameType      *int
	Venue         *string
	VenueLocation *string
	HomeTeam      TeamInfo
	AwayTeam      TeamInfo
}

type TeamInfo struct {
	ID        *int64  `json:"id"`
	Name      *string `json:"name"`
	Abbrev    *string `json:"abbrev"`
	PlaceName *string `json:"place_name"`
	Score     *int    `json:"score"`
	SOG       *int    `json:"sog"`
	Logo      *string `json:"logo"`
}

// Game type codes used by the league.
const (
	GameTypePreseason = 1
	GameTypeRegular   = 2
	GameTypePlayoffs  = 3
)
