package nhlgame

import (
	"strings"

	"github.com/bytedance/sonic"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
)

// LocalizedString is a league text field. The feed sends either a bare
// string or an object keyed by locale with a "default" entry.
type LocalizedString struct {
	Default string `json:"default"`
}

func (l *LocalizedString) UnmarshalJSON(data []byte) error {
	var value any
	if err := sonic.Unmarshal(data, &value); err != nil {
		return err
	}
	switch v := value.(type) {
	case string:
		l.Default = v
	case map[string]any:
		l.Default, _ = v["default"].(string)
	default:
		l.Default = ""
	}
	return nil
}

func (l LocalizedString) String() string {
	return strings.TrimSpace(l.Default)
}

// Team is a home/away team block as it appears in play-by-play and game story payloads.
type Team struct {
	ID         int64           `json:"id"`
	Abbrev     string          `json:"abbrev"`
	CommonName LocalizedString `json:"commonName"`
	Name       LocalizedString `json:"name"`
	PlaceName  LocalizedString `json:"placeName"`
	Score      *int            `json:"score"`
	SOG        *int            `json:"sog"`
	Logo       string          `json:"logo"`
}

// DisplayName prefers the common name ("Flyers") and falls back through
// the full name, place name and abbreviation.
func (t Team) DisplayName() string {
	for _, candidate := range []string{t.CommonName.String(), t.Name.String(), t.PlaceName.String(), strings.TrimSpace(t.Abbrev)} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

type RosterSpot struct {
	PlayerID      int64           `json:"playerId"`
	TeamID        int64           `json:"teamId"`
	FirstName     LocalizedString `json:"firstName"`
	LastName      LocalizedString `json:"lastName"`
	SweaterNumber int             `json:"sweaterNumber"`
	PositionCode  string          `json:"positionCode"`
}

// FullName joins first and last name, trimming whatever is missing.
func (r RosterSpot) FullName() string {
	return strings.TrimSpace(r.FirstName.String() + " " + r.LastName.String())
}

// PlayByPlay is the gamecenter play-by-play payload reduced to what assembly reads.
type PlayByPlay struct {
	ID          int64                `json:"id"`
	GameType    int                  `json:"gameType"`
	Plays       []gameevent.RawEvent `json:"plays"`
	RosterSpots []RosterSpot         `json:"rosterSpots"`
	HomeTeam    Team                 `json:"homeTeam"`
	AwayTeam    Team                 `json:"awayTeam"`
}

// Story is the game story (boxscore narrative) payload.
type Story struct {
	ID            int64           `json:"id"`
	GameType      *int            `json:"gameType"`
	Venue         LocalizedString `json:"venue"`
	VenueLocation LocalizedString `json:"venueLocation"`
	HomeTeam      Team            `json:"homeTeam"`
	AwayTeam      Team            `json:"awayTeam"`
	Summary       StorySummary    `json:"summary"`
}

type StorySummary struct {
	ThreeStars []ThreeStar `json:"threeStars"`
}

type ThreeStar struct {
	Star       int             `json:"star"`
	PlayerID   int64           `json:"playerId"`
	TeamAbbrev LocalizedString `json:"teamAbbrev"`
	Name       LocalizedString `json:"name"`
	SweaterNo  int             `json:"sweaterNo"`
	Position   string          `json:"position"`

	Goals   *int `json:"goals"`
	Assists *int `json:"assists"`
	Points  *int `json:"points"`

	GoalsAgainstAverage *float64 `json:"goalsAgainstAverage"`
	SavePctg            *float64 `json:"savePctg"`
}

// ScheduledGame is one game on a schedule date.
type ScheduledGame struct {
	GameID              int64  `json:"game_id"`
	SeasonID            int64  `json:"season_id"`
	GameType            int    `json:"game_type"`
	HomeTeam            string `json:"home_team"`
	HomeTeamScore       *int   `json:"home_team_score"`
	AwayTeam            string `json:"away_team"`
	AwayTeamScore       *int   `json:"away_team_score"`
	WinningGoalScorerID *int64 `json:"winning_goal_scorer_id"`
}
