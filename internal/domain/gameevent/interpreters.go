package gameevent

// base fills the fields every play shares and returns the details block.
func base(kind Kind, raw RawEvent) (Event, RawEvent) {
	details := raw.Map("details")
	return Event{
		Type:   kind,
		TeamID: details.Int64("eventOwnerTeamId"),
		Period: raw.Map("periodDescriptor").Int("number"),
		Time:   raw.String("timeInPeriod"),
		Zone:   details.String("zoneCode"),
		Location: Location{
			X: details.Int("xCoord"),
			Y: details.Int("yCoord"),
		},
	}, details
}

func interpretGoal(raw RawEvent) Event {
	event, details := base(KindGoal, raw)
	event.Players.ScorerID = details.Int64("scoringPlayerId")
	event.Players.AssistIDs = []*int64{
		details.Int64("assist1PlayerId"),
		details.Int64("assist2PlayerId"),
	}
	event.GoalieID = details.Int64("goalieInNetId")
	event.ShotType = details.String("shotType")
	event.Highlight = details.String("highlightClipSharingUrl")
	event.Score = Score{
		Home: details.IntOr("homeScore", 0),
		Away: details.IntOr("awayScore", 0),
	}
	return event
}

func interpretPenalty(raw RawEvent) Event {
	event, details := base(KindPenalty, raw)
	event.Players.CommittedPlayerID = details.Int64("committedByPlayerId")
	event.Players.DrawnPlayerID = details.Int64("drawnByPlayerId")
	event.Penalty = Penalty{
		Type:     details.String("typeCode"),
		Reason:   details.String("descKey"),
		Duration: details.Int("duration"),
	}
	return event
}

func interpretShotOnGoal(raw RawEvent) Event {
	event, details := base(KindShotOnGoal, raw)
	event.Players.ShooterID = details.Int64("shootingPlayerId")
	event.GoalieID = details.Int64("goalieInNetId")
	event.ShotType = details.String("shotType")
	return event
}

func interpretHit(raw RawEvent) Event {
	event, details := base(KindHit, raw)
	event.Players.HitterID = details.Int64("hittingPlayerId")
	event.Players.HitteeID = details.Int64("hitteePlayerId")
	return event
}

func interpretFaceoff(raw RawEvent) Event {
	event, details := base(KindFaceoff, raw)
	event.Players.WinnerID = details.Int64("winningPlayerId")
	event.Players.LoserID = details.Int64("losingPlayerId")
	return event
}

func interpretBlockedShot(raw RawEvent) Event {
	event, details := base(KindBlockedShot, raw)
	event.Players.BlockerID = details.Int64("blockingPlayerId")
	event.Players.ShooterID = details.Int64("shootingPlayerId")
	event.Reason = details.String("reason")
	return event
}

func interpretMissedShot(raw RawEvent) Event {
	event, details := base(KindMissedShot, raw)
	event.Players.ShooterID = details.Int64("shootingPlayerId")
	event.GoalieID = details.Int64("goalieInNetId")
	event.ShotType = details.String("shotType")
	event.Reason = details.String("reason")
	return event
}

func interpretGiveaway(raw RawEvent) Event {
	event, details := base(KindGiveaway, raw)
	event.Players.PlayerID = details.Int64("playerId")
	return event
}

func interpretTakeaway(raw RawEvent) Event {
	event, details := base(KindTakeaway, raw)
	event.Players.PlayerID = details.Int64("playerId")
	return event
}

func interpretDelayedPenalty(raw RawEvent) Event {
	event, _ := base(KindDelayedPenalty, raw)
	return event
}
