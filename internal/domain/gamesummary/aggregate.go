package gamesummary

import (
	"sort"
	"strconv"
	"strings"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
)

const (
	awayPlaceholder = "AWY"
	homePlaceholder = "HOME"
)

type goalRecord struct {
	teamID   *int64
	scorerID *int64
}

type aggregator struct {
	meta *gameevent.Metadata

	goals       GoalBuckets
	shotsOnGoal int
	penalties   int

	teams    map[int64]*TeamLine
	regGoals map[int64]int
	otGoals  map[int64]int
	// regOTGoals keeps regulation and overtime goals in event order.
	regOTGoals []goalRecord

	teamNames   map[int64]string
	playerNames map[int64]string
	playerTeams map[int64]int64
	goalCounts  map[int64]int
	pointCounts map[int64]int

	stars []gameevent.Event
}

// Aggregate folds an event stream into a Report. It performs no I/O and
// tolerates empty input and missing metadata or star events.
func Aggregate(events []gameevent.Event) Report {
	a := &aggregator{
		teams:       make(map[int64]*TeamLine),
		regGoals:    make(map[int64]int),
		otGoals:     make(map[int64]int),
		teamNames:   make(map[int64]string),
		playerNames: make(map[int64]string),
		playerTeams: make(map[int64]int64),
		goalCounts:  make(map[int64]int),
		pointCounts: make(map[int64]int),
	}
	for _, event := range events {
		a.add(event)
	}
	return a.report()
}

func (a *aggregator) add(event gameevent.Event) {
	switch event.Type {
	case gameevent.KindMetadata:
		if a.meta == nil && event.Metadata != nil {
			a.meta = event.Metadata
		}
		return
	case gameevent.KindStar:
		if event.Star == nil {
			return
		}
		a.stars = append(a.stars, event)
		a.rememberTeam(event.TeamID, event.TeamName)
		if event.Star.PlayerID != nil {
			a.rememberPlayer(*event.Star.PlayerID, event.Star.Name, event.TeamID)
		}
		return
	case gameevent.KindUnknown:
		return
	}

	a.rememberTeam(event.TeamID, event.TeamName)
	bucket := BucketOf(event.Period)

	switch event.Type {
	case gameevent.KindGoal:
		a.addGoal(event, bucket)
	case gameevent.KindShotOnGoal:
		if bucket != BucketShootout {
			a.shotsOnGoal++
		}
	case gameevent.KindPenalty:
		a.penalties++
	}

	if event.TeamID != nil {
		a.tallyTeam(a.line(*event.TeamID), event.Type, bucket)
	}
}

func (a *aggregator) addGoal(event gameevent.Event, bucket Bucket) {
	switch bucket {
	case BucketRegulation:
		a.goals.Regulation++
	case BucketOvertime:
		a.goals.Overtime++
	case BucketShootout:
		a.goals.Shootout++
	}

	if bucket != BucketShootout {
		a.shotsOnGoal++
		a.regOTGoals = append(a.regOTGoals, goalRecord{teamID: event.TeamID, scorerID: event.Players.ScorerID})
		if event.TeamID != nil {
			if bucket == BucketRegulation {
				a.regGoals[*event.TeamID]++
			} else {
				a.otGoals[*event.TeamID]++
			}
		}
	}

	if scorer := event.Players.ScorerID; scorer != nil {
		a.goalCounts[*scorer]++
		a.pointCounts[*scorer]++
		a.rememberPlayer(*scorer, event.Players.ScorerName, event.TeamID)
	}
	for i, assist := range event.Players.AssistIDs {
		if assist == nil {
			continue
		}
		a.pointCounts[*assist]++
		var name *string
		if i < len(event.Players.AssistNames) {
			name = event.Players.AssistNames[i]
		}
		a.rememberPlayer(*assist, name, event.TeamID)
	}
}

func (a *aggregator) tallyTeam(line *TeamLine, kind gameevent.Kind, bucket Bucket) {
	switch kind {
	case gameevent.KindGoal:
		line.Goals++
		if bucket != BucketShootout {
			line.ShotsOnGoal++
		}
	case gameevent.KindShotOnGoal:
		if bucket != BucketShootout {
			line.ShotsOnGoal++
		}
	case gameevent.KindPenalty:
		line.Penalties++
	case gameevent.KindHit:
		line.Hits++
	case gameevent.KindFaceoff:
		line.Faceoffs++
	case gameevent.KindBlockedShot:
		line.BlockedShots++
	case gameevent.KindMissedShot:
		line.MissedShots++
	case gameevent.KindGiveaway:
		line.Giveaways++
	case gameevent.KindTakeaway:
		line.Takeaways++
	case gameevent.KindDelayedPenalty:
		line.DelayedPenalties++
	}
}

func (a *aggregator) line(teamID int64) *TeamLine {
	line, ok := a.teams[teamID]
	if !ok {
		line = &TeamLine{TeamID: teamID}
		a.teams[teamID] = line
	}
	return line
}

// rememberTeam keeps the first non-empty name seen for a team.
func (a *aggregator) rememberTeam(teamID *int64, name *string) {
	if teamID == nil || name == nil || strings.TrimSpace(*name) == "" {
		return
	}
	if _, ok := a.teamNames[*teamID]; !ok {
		a.teamNames[*teamID] = strings.TrimSpace(*name)
	}
}

func (a *aggregator) rememberPlayer(playerID int64, name *string, teamID *int64) {
	if name != nil && strings.TrimSpace(*name) != "" {
		if _, ok := a.playerNames[playerID]; !ok {
			a.playerNames[playerID] = strings.TrimSpace(*name)
		}
	}
	if teamID != nil {
		if _, ok := a.playerTeams[playerID]; !ok {
			a.playerTeams[playerID] = *teamID
		}
	}
}

func (a *aggregator) regOT(teamID int64) int {
	return a.regGoals[teamID] + a.otGoals[teamID]
}

func (a *aggregator) sortedTeamIDs() []int64 {
	ids := make([]int64, 0, len(a.teams))
	for id := range a.teams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (a *aggregator) side(team gameevent.TeamInfo, placeholder string) Side {
	side := Side{TeamID: team.ID, Abbrev: placeholder}
	if team.Abbrev != nil && strings.TrimSpace(*team.Abbrev) != "" {
		side.Abbrev = strings.TrimSpace(*team.Abbrev)
	}
	switch {
	case team.Score != nil:
		side.Final = *team.Score
	case team.ID != nil:
		side.Final = a.regOT(*team.ID)
	}
	return side
}

func (a *aggregator) report() Report {
	r := Report{
		GameType:    GameTypeName(nil),
		Away:        Side{Abbrev: awayPlaceholder},
		Home:        Side{Abbrev: homePlaceholder},
		Goals:       a.goals,
		ShotsOnGoal: a.shotsOnGoal,
		Penalties:   a.penalties,
	}

	ids := a.sortedTeamIDs()
	if a.meta != nil {
		r.HasMetadata = true
		r.GameType = GameTypeName(a.meta.GameType)
		r.Venue = joinVenue(a.meta.Venue, a.meta.VenueLocation)
		r.Away = a.side(a.meta.AwayTeam, awayPlaceholder)
		r.Home = a.side(a.meta.HomeTeam, homePlaceholder)
		a.rememberTeam(a.meta.AwayTeam.ID, a.meta.AwayTeam.Name)
		a.rememberTeam(a.meta.HomeTeam.ID, a.meta.HomeTeam.Name)
	} else if len(ids) == 2 {
		away, home := ids[0], ids[1]
		r.Away = Side{TeamID: &away, Abbrev: awayPlaceholder, Final: a.regOT(away)}
		r.Home = Side{TeamID: &home, Abbrev: homePlaceholder, Final: a.regOT(home)}
	}

	r.Teams = make([]TeamLine, 0, len(ids))
	for _, id := range ids {
		line := *a.teams[id]
		line.Label = a.teamLabel(id)
		r.Teams = append(r.Teams, line)
	}

	if r.Away.TeamID != nil && r.Home.TeamID != nil {
		awayID, homeID := *r.Away.TeamID, *r.Home.TeamID
		if len(a.teams) > 0 {
			away, home := a.lineCopy(awayID), a.lineCopy(homeID)
			if r.HasMetadata {
				away.Label, home.Label = r.Away.Abbrev, r.Home.Abbrev
			} else {
				away.Label, home.Label = teamFallbackLabel(awayID), teamFallbackLabel(homeID)
			}
			r.Comparison = &Comparison{Away: away, Home: home}
		}
		r.WinType = a.winType(r.Away, r.Home)
		r.GameWinner = a.gameWinner(r.Away, r.Home, r.WinType)
	}

	r.Stars = a.starLines()
	r.TopGoalScorers, r.TopGoals = a.leaders(a.goalCounts)
	r.TopPointScorers, r.TopPoints = a.leaders(a.pointCounts)
	return r
}

// winType compares event-derived goal counts against the final score.
// A regulation tie followed by any period-4 goal is labelled OT; tied
// regulation-plus-overtime counts with differing finals are labelled SO.
func (a *aggregator) winType(away, home Side) WinType {
	if away.Final == home.Final {
		return WinRegulation
	}
	awayID, homeID := *away.TeamID, *home.TeamID
	if a.regOT(awayID) == a.regOT(homeID) {
		return WinShootout
	}
	if a.regGoals[awayID] == a.regGoals[homeID] && a.goals.Overtime > 0 {
		return WinOvertime
	}
	return WinRegulation
}

// gameWinner returns the scorer of the winning team's goal that put it one
// ahead of the loser's final total.
func (a *aggregator) gameWinner(away, home Side, win WinType) *PlayerRef {
	if away.Final == home.Final || win == WinShootout {
		return nil
	}
	winner, loserFinal := *home.TeamID, away.Final
	if away.Final > home.Final {
		winner, loserFinal = *away.TeamID, home.Final
	}

	count := 0
	for _, goal := range a.regOTGoals {
		if goal.teamID == nil || *goal.teamID != winner {
			continue
		}
		count++
		if count == loserFinal+1 {
			if goal.scorerID == nil {
				return nil
			}
			ref := a.playerRef(*goal.scorerID)
			return &ref
		}
	}
	return nil
}

func (a *aggregator) starLines() []StarLine {
	out := make([]StarLine, 0, len(a.stars))
	for _, event := range a.stars {
		star := event.Star
		line := StarLine{Rank: star.Rank, Stats: star.Stats}
		if star.Position != nil {
			line.Position = strings.TrimSpace(*star.Position)
		}
		if star.PlayerID != nil {
			line.Player = a.playerRef(*star.PlayerID)
		}
		if star.Name != nil && strings.TrimSpace(*star.Name) != "" {
			line.Player.Name = strings.TrimSpace(*star.Name)
		}
		if event.TeamName != nil && strings.TrimSpace(*event.TeamName) != "" {
			line.Player.Team = strings.TrimSpace(*event.TeamName)
		} else if event.TeamID != nil {
			line.Player.Team = a.teamNames[*event.TeamID]
		}
		out = append(out, line)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}

// leaders returns every player tied for the highest count, ids ascending.
func (a *aggregator) leaders(counts map[int64]int) ([]PlayerRef, int) {
	best := 0
	for _, count := range counts {
		if count > best {
			best = count
		}
	}
	if best == 0 {
		return nil, 0
	}

	ids := make([]int64, 0, 2)
	for id, count := range counts {
		if count == best {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]PlayerRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, a.playerRef(id))
	}
	return out, best
}

func (a *aggregator) playerRef(playerID int64) PlayerRef {
	ref := PlayerRef{PlayerID: playerID, Name: a.playerNames[playerID]}
	if teamID, ok := a.playerTeams[playerID]; ok {
		ref.Team = a.teamNames[teamID]
	}
	return ref
}

func (a *aggregator) lineCopy(teamID int64) TeamLine {
	if line, ok := a.teams[teamID]; ok {
		return *line
	}
	return TeamLine{TeamID: teamID}
}

func (a *aggregator) teamLabel(teamID int64) string {
	if name := a.teamNames[teamID]; name != "" {
		return name
	}
	return teamFallbackLabel(teamID)
}

func teamFallbackLabel(teamID int64) string {
	return "Team " + strconv.FormatInt(teamID, 10)
}

func joinVenue(venue, location *string) string {
	parts := make([]string, 0, 2)
	for _, part := range []*string{venue, location} {
		if part != nil && strings.TrimSpace(*part) != "" {
			parts = append(parts, strings.TrimSpace(*part))
		}
	}
	return strings.Join(parts, ", ")
}
