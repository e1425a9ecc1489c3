package gamesummary

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/gameevent"
)

// Summarize renders the rule-based text summary of events.
func Summarize(events []gameevent.Event) string {
	return Render(Aggregate(events))
}

var comparisonRows = []struct {
	label string
	value func(TeamLine) int
}{
	{"Goals", func(l TeamLine) int { return l.Goals }},
	{"Shots on goal", func(l TeamLine) int { return l.ShotsOnGoal }},
	{"Penalties", func(l TeamLine) int { return l.Penalties }},
	{"Hits", func(l TeamLine) int { return l.Hits }},
	{"Faceoffs", func(l TeamLine) int { return l.Faceoffs }},
	{"Blocked shots", func(l TeamLine) int { return l.BlockedShots }},
	{"Missed shots", func(l TeamLine) int { return l.MissedShots }},
	{"Giveaways", func(l TeamLine) int { return l.Giveaways }},
	{"Takeaways", func(l TeamLine) int { return l.Takeaways }},
	{"Delayed penalties", func(l TeamLine) int { return l.DelayedPenalties }},
}

// Render formats a Report. Sections without data are skipped.
func Render(r Report) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeHeader(buf, r)
	writeTotals(buf, r)
	writeComparison(buf, r)
	writeStars(buf, r)
	writeLeaders(buf, r)

	return strings.TrimRight(buf.String(), "\n") + "\n"
}

func writeHeader(w io.Writer, r Report) {
	fmt.Fprintln(w, "Game Summary:")
	fmt.Fprintf(w, "Game type: %s\n", r.GameType)
	if r.Venue != "" {
		fmt.Fprintf(w, "Venue: %s\n", r.Venue)
	}
	fmt.Fprintf(w, "Matchup: %s @ %s\n", r.Away.Abbrev, r.Home.Abbrev)

	final := fmt.Sprintf("Final score: %s %d - %d %s", r.Away.Abbrev, r.Away.Final, r.Home.Final, r.Home.Abbrev)
	if r.WinType != WinRegulation {
		final += " (" + string(r.WinType) + ")"
	}
	fmt.Fprintln(w, final)
	fmt.Fprintln(w)
}

func writeTotals(w io.Writer, r Report) {
	fmt.Fprintln(w, "Goals by period:")
	fmt.Fprintf(w, "- Regulation: %d\n", r.Goals.Regulation)
	fmt.Fprintf(w, "- Overtime: %d\n", r.Goals.Overtime)
	fmt.Fprintf(w, "- Shootout: %d\n", r.Goals.Shootout)
	fmt.Fprintf(w, "- Goals scored: %d\n", r.Goals.Total())
	fmt.Fprintf(w, "- Shots on goal: %d\n", r.ShotsOnGoal)
	fmt.Fprintf(w, "- Penalties: %d\n", r.Penalties)
	fmt.Fprintln(w)
}

func writeComparison(w io.Writer, r Report) {
	if len(r.Teams) == 0 {
		return
	}
	fmt.Fprintln(w, "Team Comparison:")

	if c := r.Comparison; c != nil {
		for _, row := range comparisonRows {
			fmt.Fprintf(w, "- %s (%s-%s): %d - %d\n", row.label, c.Away.Label, c.Home.Label, row.value(c.Away), row.value(c.Home))
		}
		fmt.Fprintln(w)
		return
	}

	for _, line := range r.Teams {
		parts := make([]string, 0, len(comparisonRows))
		for _, row := range comparisonRows {
			parts = append(parts, fmt.Sprintf("%s %d", row.label, row.value(line)))
		}
		fmt.Fprintf(w, "- %s: %s\n", line.Label, strings.Join(parts, ", "))
	}
	fmt.Fprintln(w)
}

func writeStars(w io.Writer, r Report) {
	if len(r.Stars) == 0 {
		return
	}
	fmt.Fprintln(w, "3 Stars of the Game:")
	for _, star := range r.Stars {
		line := fmt.Sprintf("- Star %d: %s", star.Rank, star.Player.Label())
		if star.Position != "" {
			line += " (" + star.Position + ")"
		}
		switch {
		case star.Stats.IsGoalie():
			line += fmt.Sprintf(" - GAA: %s, SV%%: %s", formatFloat(star.Stats.GoalsAgainstAverage), formatFloat(star.Stats.SavePctg))
		case star.Stats.IsSkater():
			line += fmt.Sprintf(" - Goals: %d, Assists: %d, Points: %d", intOrZero(star.Stats.Goals), intOrZero(star.Stats.Assists), intOrZero(star.Stats.Points))
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}

func writeLeaders(w io.Writer, r Report) {
	if r.GameWinner != nil {
		fmt.Fprintf(w, "Game-winning goal: %s\n", r.GameWinner.Label())
	}
	if len(r.TopGoalScorers) > 0 {
		fmt.Fprintf(w, "Top goal scorers (%d): %s\n", r.TopGoals, joinLabels(r.TopGoalScorers))
	}
	if len(r.TopPointScorers) > 0 {
		fmt.Fprintf(w, "Top point scorers (%d pts): %s\n", r.TopPoints, joinLabels(r.TopPointScorers))
	}
}

func joinLabels(players []PlayerRef) string {
	labels := make([]string, 0, len(players))
	for _, player := range players {
		labels = append(labels, player.Label())
	}
	return strings.Join(labels, ", ")
}

// formatFloat prints whole numbers with one decimal ("1.0") and others at full precision.
func formatFloat(value *float64) string {
	if value == nil {
		return "n/a"
	}
	out := strconv.FormatFloat(*value, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
