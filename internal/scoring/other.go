package scoring

import "github.com/festops/scoreboard-service/internal/model"

// OtherScore exposes the totals of a generic point-based game.
type OtherScore struct {
	g *model.OtherSport
}

// Other wraps a generic point log for reading.
func Other(g *model.OtherSport) OtherScore { return OtherScore{g: g} }

// TotalPoints returns a team's running total; 0 for unknown teams.
func (s OtherScore) TotalPoints(teamID string) int {
	for _, ts := range s.g.Points {
		if ts.TeamID == teamID {
			return ts.Points
		}
	}
	return 0
}

// Winner compares running totals; equal totals are a tie.
func (s OtherScore) Winner(teamIDs []string) Result {
	totals := make([]teamTotal, 0, len(teamIDs))
	for _, id := range teamIDs {
		totals = append(totals, teamTotal{teamID: id, total: s.TotalPoints(id)})
	}
	return decide(totals)
}
