package scoring

import "github.com/festops/scoreboard-service/internal/model"

// BasketballScore exposes the derived basketball stats for one game log.
type BasketballScore struct {
	g *model.Basketball
}

// Basketball wraps a basketball log for reading.
func Basketball(g *model.Basketball) BasketballScore { return BasketballScore{g: g} }

// TotalPoints sums the denomination of every scoring action for one
// team, or for every team when teamID is empty. A three-pointer
// contributes 3, so the total is never an event count.
func (s BasketballScore) TotalPoints(teamID string) int {
	total := 0
	for _, ts := range s.g.Stats {
		if teamID != "" && ts.TeamID != teamID {
			continue
		}
		for _, p := range ts.Points {
			total += p.Points
		}
	}
	return total
}

// TopScorers ranks players by summed points across all teams.
func (s BasketballScore) TopScorers(n int) []Tally {
	totals := map[string]int{}
	var order []string
	for _, ts := range s.g.Stats {
		for _, p := range ts.Points {
			accumulate(&order, totals, p.PlayerID, p.Points)
		}
	}
	return topN(order, totals, n)
}

// Winner compares point totals; equal totals are a tie.
func (s BasketballScore) Winner(teamIDs []string) Result {
	totals := make([]teamTotal, 0, len(teamIDs))
	for _, id := range teamIDs {
		totals = append(totals, teamTotal{teamID: id, total: s.TotalPoints(id)})
	}
	return decide(totals)
}
