package service

import (
	"context"

	"github.com/festops/scoreboard-service/internal/model"
	"github.com/festops/scoreboard-service/internal/scoring"
)

// Scoreboard is the viewer-facing summary. Exactly one of the
// per-sport sections is populated, matching Sport. All numbers are
// recomputed from the log on every call; nothing here is stored.
type Scoreboard struct {
	ActivityID string               `json:"activityId"`
	Name       string               `json:"name"`
	Sport      model.Sport          `json:"sport"`
	Status     model.ActivityStatus `json:"status"`
	Result     scoring.Result       `json:"result"`

	Cricket    []CricketTeamLine  `json:"cricket,omitempty"`
	Football   []FootballTeamLine `json:"football,omitempty"`
	Basketball []TeamPointsLine   `json:"basketball,omitempty"`
	Points     []TeamPointsLine   `json:"points,omitempty"`
}

// CricketTeamLine is one batting side's summary row.
type CricketTeamLine struct {
	TeamID  string `json:"teamId"`
	Name    string `json:"name"`
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
	Overs   string `json:"overs"`
}

// FootballTeamLine is one side's summary row.
type FootballTeamLine struct {
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	Goals       int    `json:"goals"`
	YellowCards int    `json:"yellowCards"`
	RedCards    int    `json:"redCards"`
}

// TeamPointsLine is a plain points row, shared by basketball and the
// generic point log.
type TeamPointsLine struct {
	TeamID string `json:"teamId"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// LeaderRow resolves the player name alongside the ranked value;
// dangling player ids render as "Unknown" rather than failing.
type LeaderRow struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Value    int    `json:"value"`
}

// Leaders carries the sport's leaderboards.
type Leaders struct {
	TopScorers      []LeaderRow `json:"topScorers,omitempty"`
	TopAssists      []LeaderRow `json:"topAssists,omitempty"`
	TopWicketTakers []LeaderRow `json:"topWicketTakers,omitempty"`
}

func (s *scoreService) Scoreboard(ctx context.Context, activityID string) (Scoreboard, error) {
	a, err := s.repo.Get(ctx, activityID)
	if err != nil {
		return Scoreboard{}, err
	}

	board := Scoreboard{
		ActivityID: a.ID,
		Name:       a.Name,
		Sport:      a.Game.Kind(),
		Status:     a.Status(s.now()),
	}
	teamIDs := make([]string, 0, len(a.Teams))
	for _, t := range a.Teams {
		teamIDs = append(teamIDs, t.ID)
	}

	switch g := a.Game.(type) {
	case *model.Cricket:
		sc := scoring.Cricket(g)
		board.Result = sc.Winner(teamIDs)
		for _, t := range a.Teams {
			board.Cricket = append(board.Cricket, CricketTeamLine{
				TeamID:  t.ID,
				Name:    t.Name,
				Runs:    sc.TotalRuns(t.ID),
				Wickets: sc.WicketCount(t.ID),
				Overs:   sc.TeamOvers(t.ID),
			})
		}
	case *model.Football:
		sc := scoring.Football(g)
		board.Result = sc.Winner(teamIDs)
		for _, t := range a.Teams {
			yellow, red := sc.CardCount(t.ID)
			board.Football = append(board.Football, FootballTeamLine{
				TeamID:      t.ID,
				Name:        t.Name,
				Goals:       sc.TotalGoals(t.ID),
				YellowCards: yellow,
				RedCards:    red,
			})
		}
	case *model.Basketball:
		sc := scoring.Basketball(g)
		board.Result = sc.Winner(teamIDs)
		for _, t := range a.Teams {
			board.Basketball = append(board.Basketball, TeamPointsLine{
				TeamID: t.ID,
				Name:   t.Name,
				Points: sc.TotalPoints(t.ID),
			})
		}
	case *model.OtherSport:
		sc := scoring.Other(g)
		board.Result = sc.Winner(teamIDs)
		for _, t := range a.Teams {
			board.Points = append(board.Points, TeamPointsLine{
				TeamID: t.ID,
				Name:   t.Name,
				Points: sc.TotalPoints(t.ID),
			})
		}
	}
	return board, nil
}

func (s *scoreService) Leaders(ctx context.Context, activityID string, n int) (Leaders, error) {
	if n <= 0 {
		n = 5
	}
	a, err := s.repo.Get(ctx, activityID)
	if err != nil {
		return Leaders{}, err
	}

	resolve := func(tallies []scoring.Tally) []LeaderRow {
		rows := make([]LeaderRow, 0, len(tallies))
		for _, t := range tallies {
			rows = append(rows, LeaderRow{PlayerID: t.PlayerID, Name: a.PlayerName(t.PlayerID), Value: t.Value})
		}
		return rows
	}

	var out Leaders
	switch g := a.Game.(type) {
	case *model.Cricket:
		sc := scoring.Cricket(g)
		out.TopScorers = resolve(sc.TopScorers(n))
		out.TopWicketTakers = resolve(sc.TopWicketTakers(n))
	case *model.Football:
		sc := scoring.Football(g)
		out.TopScorers = resolve(sc.TopScorers(n))
		out.TopAssists = resolve(sc.TopAssists(n))
	case *model.Basketball:
		out.TopScorers = resolve(scoring.Basketball(g).TopScorers(n))
	case *model.OtherSport:
		// No player-level breakdown exists for generic point logs.
	}
	return out, nil
}
