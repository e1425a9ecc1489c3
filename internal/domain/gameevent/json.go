package gameevent

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

const maxJSONLLine = 8 << 20

// MarshalJSON writes the per-kind key layout, with null for absent values.
func (e Event) MarshalJSON() ([]byte, error) {
	return sonic.ConfigStd.Marshal(e.wire())
}

func (e Event) wire() map[string]any {
	switch e.Type {
	case KindUnknown:
		return map[string]any{
			"event_type": e.Type,
			"raw_data":   e.RawData,
		}
	case KindStar:
		star := e.Star
		if star == nil {
			star = &Star{}
		}
		return map[string]any{
			"event_type": e.Type,
			"star":       star.Rank,
			"team_id":    e.TeamID,
			"team_name":  e.TeamName,
			"players": map[string]any{
				"player_id": star.PlayerID,
				"name":      star.Name,
				"team_id":   e.TeamID,
				"position":  star.Position,
				"stats":     star.Stats,
			},
		}
	case KindMetadata:
		meta := e.Metadata
		if meta == nil {
			meta = &Metadata{}
		}
		return map[string]any{
			"event_type":     e.Type,
			"game_id":        meta.GameID,
			"game_type":      meta.GameType,
			"venue":          meta.Venue,
			"venue_location": meta.VenueLocation,
			"home_team":      meta.HomeTeam,
			"away_team":      meta.AwayTeam,
		}
	}

	out := map[string]any{
		"event_type": e.Type,
		"players":    e.playersWire(),
		"team_id":    e.TeamID,
		"period":     e.Period,
		"time":       e.Time,
		"zone":       e.Zone,
		"location":   e.Location,
	}
	if e.TeamName != nil {
		out["team_name"] = e.TeamName
	}

	switch e.Type {
	case KindGoal:
		out["goalie_id"] = e.GoalieID
		out["score"] = e.Score
		out["shot_type"] = e.ShotType
		out["highlight"] = e.Highlight
	case KindPenalty:
		out["penalty"] = e.Penalty
	case KindShotOnGoal:
		out["goalie_id"] = e.GoalieID
		out["shot_type"] = e.ShotType
	case KindBlockedShot:
		out["reason"] = e.Reason
	case KindMissedShot:
		out["goalie_id"] = e.GoalieID
		out["shot_type"] = e.ShotType
		out["reason"] = e.Reason
	}
	return out
}

func (e Event) playersWire() map[string]any {
	p := e.Players
	switch e.Type {
	case KindGoal:
		assists := p.AssistIDs
		if assists == nil {
			assists = []*int64{}
		}
		out := map[string]any{
			"scorer_id":  p.ScorerID,
			"assist_ids": assists,
		}
		if p.NamesAttached {
			names := p.AssistNames
			if names == nil {
				names = make([]*string, len(assists))
			}
			out["scorer_name"] = p.ScorerName
			out["assist_names"] = names
		}
		return out
	case KindPenalty:
		return map[string]any{
			"committed_player_id": p.CommittedPlayerID,
			"drawn_player_id":     p.DrawnPlayerID,
		}
	case KindShotOnGoal, KindMissedShot:
		return map[string]any{"shooter_id": p.ShooterID}
	case KindHit:
		return map[string]any{
			"hitter_id": p.HitterID,
			"hittee_id": p.HitteeID,
		}
	case KindFaceoff:
		return map[string]any{
			"winner_id": p.WinnerID,
			"loser_id":  p.LoserID,
		}
	case KindBlockedShot:
		return map[string]any{
			"blocker_id": p.BlockerID,
			"shooter_id": p.ShooterID,
		}
	case KindGiveaway, KindTakeaway:
		return map[string]any{"player_id": p.PlayerID}
	default:
		return map[string]any{}
	}
}

type eventWire struct {
	EventType Kind         `json:"event_type"`
	Players   *playersWire `json:"players"`
	TeamID    *int64       `json:"team_id"`
	TeamName  *string      `json:"team_name"`
	GoalieID  *int64       `json:"goalie_id"`
	Period    *int         `json:"period"`
	Time      *string      `json:"time"`
	Zone      *string      `json:"zone"`
	Location  *Location    `json:"location"`
	ShotType  *string      `json:"shot_type"`
	Reason    *string      `json:"reason"`
	Highlight *string      `json:"highlight"`
	Score     *Score       `json:"score"`
	Penalty   *Penalty     `json:"penalty"`

	Star *int `json:"star"`

	GameID        *int64    `json:"game_id"`
	GameType      *int      `json:"game_type"`
	Venue         *string   `json:"venue"`
	VenueLocation *string   `json:"venue_location"`
	HomeTeam      *TeamInfo `json:"home_team"`
	AwayTeam      *TeamInfo `json:"away_team"`

	RawData RawEvent `json:"raw_data"`
}

type playersWire struct {
	ScorerID    *int64     `json:"scorer_id"`
	ScorerName  *string    `json:"scorer_name"`
	AssistIDs   []*int64   `json:"assist_ids"`
	AssistNames *[]*string `json:"assist_names"`

	ShooterID         *int64 `json:"shooter_id"`
	BlockerID         *int64 `json:"blocker_id"`
	HitterID          *int64 `json:"hitter_id"`
	HitteeID          *int64 `json:"hittee_id"`
	WinnerID          *int64 `json:"winner_id"`
	LoserID           *int64 `json:"loser_id"`
	CommittedPlayerID *int64 `json:"committed_player_id"`
	DrawnPlayerID     *int64 `json:"drawn_player_id"`
	PlayerID          *int64 `json:"player_id"`

	TeamID   *int64     `json:"team_id"`
	Name     *string    `json:"name"`
	Position *string    `json:"position"`
	Stats    *StarStats `json:"stats"`
}

// UnmarshalJSON reads the layout written by MarshalJSON.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w eventWire
	if err := sonic.ConfigStd.Unmarshal(data, &w); err != nil {
		return err
	}
	p := w.Players
	if p == nil {
		p = &playersWire{}
	}

	switch w.EventType {
	case KindUnknown:
		*e = Event{Type: KindUnknown, RawData: w.RawData}
		return nil
	case KindStar:
		star := &Star{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Position: p.Position,
		}
		if w.Star != nil {
			star.Rank = *w.Star
		}
		if p.Stats != nil {
			star.Stats = *p.Stats
		}
		teamID := w.TeamID
		if teamID == nil {
			teamID = p.TeamID
		}
		*e = Event{Type: KindStar, TeamID: teamID, TeamName: w.TeamName, Star: star}
		return nil
	case KindMetadata:
		meta := &Metadata{
			GameType:      w.GameType,
			Venue:         w.Venue,
			VenueLocation: w.VenueLocation,
		}
		if w.GameID != nil {
			meta.GameID = *w.GameID
		}
		if w.HomeTeam != nil {
			meta.HomeTeam = *w.HomeTeam
		}
		if w.AwayTeam != nil {
			meta.AwayTeam = *w.AwayTeam
		}
		*e = Event{Type: KindMetadata, Metadata: meta}
		return nil
	}

	out := Event{
		Type:      w.EventType,
		TeamID:    w.TeamID,
		TeamName:  w.TeamName,
		GoalieID:  w.GoalieID,
		Period:    w.Period,
		Time:      w.Time,
		Zone:      w.Zone,
		ShotType:  w.ShotType,
		Reason:    w.Reason,
		Highlight: w.Highlight,
		Players: Players{
			ScorerID:          p.ScorerID,
			ShooterID:         p.ShooterID,
			BlockerID:         p.BlockerID,
			HitterID:          p.HitterID,
			HitteeID:          p.HitteeID,
			WinnerID:          p.WinnerID,
			LoserID:           p.LoserID,
			CommittedPlayerID: p.CommittedPlayerID,
			DrawnPlayerID:     p.DrawnPlayerID,
			PlayerID:          p.PlayerID,
			ScorerName:        p.ScorerName,
		},
	}
	if w.Location != nil {
		out.Location = *w.Location
	}
	if w.Score != nil {
		out.Score = *w.Score
	}
	if w.Penalty != nil {
		out.Penalty = *w.Penalty
	}
	if w.EventType == KindGoal {
		out.Players.AssistIDs = p.AssistIDs
	}
	if p.AssistNames != nil {
		out.Players.NamesAttached = true
		out.Players.AssistNames = *p.AssistNames
	}

	*e = out
	return nil
}

// MarshalJSONL renders events as JSON lines, one object per line, in order.
func MarshalJSONL(events []Event) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, event := range events {
		line, err := event.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("encode event %d (%s): %w", i, event.Type, err)
		}
		_, _ = buf.Write(line)
		_ = buf.WriteByte('\n')
	}
	return append([]byte(nil), buf.B...), nil
}

func EncodeJSONL(w io.Writer, events []Event) error {
	data, err := MarshalJSONL(events)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// DecodeJSONL reads JSON lines written by EncodeJSONL. Blank lines are skipped.
func DecodeJSONL(r io.Reader) ([]Event, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJSONLLine)

	out := make([]Event, 0, 256)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var event Event
		if err := event.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("decode line %d: %w", line, err)
		}
		out = append(out, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan jsonl: %w", err)
	}
	return out, nil
}

func UnmarshalJSONL(data []byte) ([]Event, error) {
	return DecodeJSONL(bytes.NewReader(data))
}
