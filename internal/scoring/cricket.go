package scoring

import (
	"fmt"

	"github.com/festops/scoreboard-service/internal/model"
)

// CricketScore exposes the derived cricket stats for one game log.
// The wrapper holds only the log pointer; every method recomputes from
// scratch, so inserts, deletes and edits of historical balls are
// always reflected.
type CricketScore struct {
	g *model.Cricket
}

// Cricket wraps a cricket log for reading.
func Cricket(g *model.Cricket) CricketScore { return CricketScore{g: g} }

// TotalRuns is the team's full score: batsman runs plus extras over
// every ball of every innings in which the team batted.
func (s CricketScore) TotalRuns(teamID string) int {
	total := 0
	s.eachBattingBall(teamID, func(b model.Ball) {
		total += b.Runs + b.ExtraRuns
	})
	return total
}

// WicketCount counts the wickets fallen while the team batted.
func (s CricketScore) WicketCount(teamID string) int {
	n := 0
	s.eachBattingBall(teamID, func(b model.Ball) {
		if b.Type == model.BallWicket {
			n++
		}
	})
	return n
}

// TeamOvers renders the overs faced by a batting team as
// "completed.remainder" out of legal deliveries only. An over has six
// legal balls, so 9 legal deliveries is "1.3", never decimal 1.5.
func (s CricketScore) TeamOvers(teamID string) string {
	legal := 0
	s.eachBattingBall(teamID, func(b model.Ball) {
		if b.Type.Legal() {
			legal++
		}
	})
	return fmt.Sprintf("%d.%d", legal/6, legal%6)
}

// EconomyRate is runs conceded per over by a bowler within one
// innings. Returns 0 when the bowler has no legal deliveries there,
// including when the innings index is out of range.
func (s CricketScore) EconomyRate(inningsIdx int, bowlerID string) float64 {
	if inningsIdx < 0 || inningsIdx >= len(s.g.Innings) {
		return 0
	}
	conceded, legal := 0, 0
	for _, o := range s.g.Innings[inningsIdx].Overs {
		if o.BowlerID != bowlerID {
			continue
		}
		for _, b := range o.Balls {
			conceded += b.Runs + b.ExtraRuns
			if b.Type.Legal() {
				legal++
			}
		}
	}
	if legal == 0 {
		return 0
	}
	return float64(conceded) / (float64(legal) / 6)
}

// StrikeRate is runs per 100 balls faced within one innings. Balls
// faced exclude wides and no-balls bowled at the batsman. ok is false
// when the batsman faced no countable balls; render that as "-", never
// as NaN.
func (s CricketScore) StrikeRate(inningsIdx int, batsmanID string) (rate float64, ok bool) {
	if inningsIdx < 0 || inningsIdx >= len(s.g.Innings) {
		return 0, false
	}
	runs, faced := 0, 0
	for _, o := range s.g.Innings[inningsIdx].Overs {
		for _, b := range o.Balls {
			if b.BatsmanID != batsmanID {
				continue
			}
			runs += b.Runs
			if b.Type.Legal() {
				faced++
			}
		}
	}
	if faced == 0 {
		return 0, false
	}
	return float64(runs) / float64(faced) * 100, true
}

// FormatStrikeRate renders a strike rate, using the "-" sentinel for a
// batsman with no balls faced.
func FormatStrikeRate(rate float64, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.2f", rate)
}

// TopScorers ranks batsmen across the whole game by credited runs.
// Extras never count toward a batsman. Pass n < 0 for the full list.
func (s CricketScore) TopScorers(n int) []Tally {
	totals := map[string]int{}
	var order []string
	for _, inn := range s.g.Innings {
		for _, o := range inn.Overs {
			for _, b := range o.Balls {
				accumulate(&order, totals, b.BatsmanID, b.Runs)
			}
		}
	}
	return topN(order, totals, n)
}

// TopWicketTakers ranks bowlers by wickets across the whole game.
func (s CricketScore) TopWicketTakers(n int) []Tally {
	totals := map[string]int{}
	var order []string
	for _, inn := range s.g.Innings {
		for _, o := range inn.Overs {
			for _, b := range o.Balls {
				if b.Type == model.BallWicket {
					accumulate(&order, totals, o.BowlerID, 1)
				}
			}
		}
	}
	return topN(order, totals, n)
}

// Winner compares final run totals across the given teams; equal
// totals are a tie and the margin is the run difference.
func (s CricketScore) Winner(teamIDs []string) Result {
	totals := make([]teamTotal, 0, len(teamIDs))
	for _, id := range teamIDs {
		totals = append(totals, teamTotal{teamID: id, total: s.TotalRuns(id)})
	}
	return decide(totals)
}

func (s CricketScore) eachBattingBall(teamID string, fn func(model.Ball)) {
	for _, inn := range s.g.Innings {
		if inn.BattingTeam != teamID {
			continue
		}
		for _, o := range inn.Overs {
			for _, b := range o.Balls {
				fn(b)
			}
		}
	}
}
