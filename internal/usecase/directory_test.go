package usecase

import (
	"testing"

	"github.com/eugene-petrov-me/nhl-commentary-core/internal/domain/nhlgame"
)

func TestPlayerDirectory(t *testing.T) {
	t.Parallel()

	dir := NewPlayerDirectory([]nhlgame.RosterSpot{
		{PlayerID: 1, TeamID: 4, FirstName: nhlgame.LocalizedString{Default: "Travis"}, LastName: nhlgame.LocalizedString{Default: "Konecny"}},
		{PlayerID: 2, LastName: nhlgame.LocalizedString{Default: "Ersson"}},
		{PlayerID: 0, FirstName: nhlgame.LocalizedString{Default: "Ghost"}},
		{PlayerID: 3},
	})

	if name, ok := dir.Name(1); !ok || name != "Travis Konecny" {
		t.Fatalf("unexpected name: %q ok=%v", name, ok)
	}
	if name, _ := dir.Name(2); name != "Ersson" {
		t.Fatalf("partial names should be trimmed, got %q", name)
	}
	if _, ok := dir.Name(3); ok {
		t.Fatalf("nameless roster spot should not resolve")
	}
	if _, ok := dir.Team(2); ok {
		t.Fatalf("player without team should not resolve a team")
	}
	if team, ok := dir.Team(1); !ok || team != 4 {
		t.Fatalf("unexpected team: %d ok=%v", team, ok)
	}
}

func TestTeamDirectory_MergeKeepsFirstEntry(t *testing.T) {
	t.Parallel()

	dir := NewTeamDirectory(
		nhlgame.Team{ID: 4, Abbrev: "phi", CommonName: nhlgame.LocalizedString{Default: "Flyers"}},
		nhlgame.Team{ID: 0, Abbrev: "NOP"},
	)
	dir.Merge(nhlgame.Team{ID: 4, Abbrev: "PHI", Name: nhlgame.LocalizedString{Default: "Philadelphia Flyers"}})
	dir.Merge(nhlgame.Team{ID: 5, Abbrev: "PIT", PlaceName: nhlgame.LocalizedString{Default: "Pittsburgh"}})

	if name, _ := dir.Name(4); name != "Flyers" {
		t.Fatalf("existing name was replaced: %q", name)
	}
	if name, _ := dir.Name(5); name != "Pittsburgh" {
		t.Fatalf("unexpected fallback name: %q", name)
	}
	if id, ok := dir.IDByAbbrev(" Phi "); !ok || id != 4 {
		t.Fatalf("abbreviation lookup failed: %d ok=%v", id, ok)
	}
	if _, ok := dir.IDByAbbrev("NOP"); ok {
		t.Fatalf("team without id should be skipped")
	}
}
