package usecase

import (
	"strings"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
)

// PlayerDirectory maps roster player ids to display names and owning teams.
// It is built once per assembly and read-only afterwards.
type PlayerDirectory struct {
	names map[int64]string
	teams map[int64]int64
}

func NewPlayerDirectory(spots []nhlgame.RosterSpot) PlayerDirectory {
	dir := PlayerDirectory{
		names: make(map[int64]string, len(spots)),
		teams: make(map[int64]int64, len(spots)),
	}
	for _, spot := range spots {
		if spot.PlayerID == 0 {
			continue
		}
		if name := spot.FullName(); name != "" {
			dir.names[spot.PlayerID] = name
		}
		if spot.TeamID != 0 {
			dir.teams[spot.PlayerID] = spot.TeamID
		}
	}
	return dir
}

func (d PlayerDirectory) Name(playerID int64) (string, bool) {
	name, ok := d.names[playerID]
	return name, ok
}

func (d PlayerDirectory) Team(playerID int64) (int64, bool) {
	teamID, ok := d.teams[playerID]
	return teamID, ok
}

// TeamDirectory maps team ids to display names and abbreviations to ids.
type TeamDirectory struct {
	names    map[int64]string
	byAbbrev map[string]int64
}

func NewTeamDirectory(teams ...nhlgame.Team) *TeamDirectory {
	dir := &TeamDirectory{
		names:    make(map[int64]string, len(teams)),
		byAbbrev: make(map[string]int64, len(teams)),
	}
	for _, team := range teams {
		dir.Merge(team)
	}
	return dir
}

// Merge adds a team the directory does not know yet; known teams keep
// their existing entries.
func (d *TeamDirectory) Merge(team nhlgame.Team) {
	if team.ID == 0 {
		return
	}
	if _, ok := d.names[team.ID]; !ok {
		if name := team.DisplayName(); name != "" {
			d.names[team.ID] = name
		}
	}
	abbrev := strings.ToUpper(strings.TrimSpace(team.Abbrev))
	if abbrev == "" {
		return
	}
	if _, ok := d.byAbbrev[abbrev]; !ok {
		d.byAbbrev[abbrev] = team.ID
	}
}

func (d *TeamDirectory) Name(teamID int64) (string, bool) {
	name, ok := d.names[teamID]
	return name, ok
}

func (d *TeamDirectory) IDByAbbrev(abbrev string) (int64, bool) {
	teamID, ok := d.byAbbrev[strings.ToUpper(strings.TrimSpace(abbrev))]
	return teamID, ok
}
