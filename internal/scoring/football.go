package scoring

import "github.com/festops/scoreboard-service/internal/model"

// FootballScore exposes the derived football stats for one game log.
type FootballScore struct {
	g *model.Football
}

// Football wraps a football log for reading.
func Football(g *model.Football) FootballScore { return FootballScore{g: g} }

// TotalGoals counts goal events, each worth exactly 1, for one team or
// for every team when teamID is empty. Own goals are a separate
// recorded category and are not folded in either direction; that
// asymmetry is the product's current accounting and is preserved here.
func (s FootballScore) TotalGoals(teamID string) int {
	n := 0
	for _, ts := range s.g.Stats {
		if teamID != "" && ts.TeamID != teamID {
			continue
		}
		n += len(ts.Goals)
	}
	return n
}

// CardCount tallies yellow and red cards shown to one team, or to all
// teams when teamID is empty.
func (s FootballScore) CardCount(teamID string) (yellow, red int) {
	for _, ts := range s.g.Stats {
		if teamID != "" && ts.TeamID != teamID {
			continue
		}
		yellow += len(ts.YellowCards)
		red += len(ts.RedCards)
	}
	return yellow, red
}

// TopScorers ranks players by raw goal-event count.
func (s FootballScore) TopScorers(n int) []Tally {
	return s.rank(n, func(ts model.FootballTeamStats) []model.PlayerRef { return ts.Goals })
}

// TopAssists ranks players by raw assist-event count.
func (s FootballScore) TopAssists(n int) []Tally {
	return s.rank(n, func(ts model.FootballTeamStats) []model.PlayerRef { return ts.Assists })
}

// Winner compares goal totals; equal totals are a draw.
func (s FootballScore) Winner(teamIDs []string) Result {
	totals := make([]teamTotal, 0, len(teamIDs))
	for _, id := range teamIDs {
		totals = append(totals, teamTotal{teamID: id, total: s.TotalGoals(id)})
	}
	return decide(totals)
}

func (s FootballScore) rank(n int, events func(model.FootballTeamStats) []model.PlayerRef) []Tally {
	totals := map[string]int{}
	var order []string
	for _, ts := range s.g.Stats {
		for _, ev := range events(ts) {
			accumulate(&order, totals, ev.PlayerID, 1)
		}
	}
	return topN(order, totals, n)
}
