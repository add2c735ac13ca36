// Package scoring derives scoreboard and leaderboard values from the
// raw game logs. Every function here is pure: it reads the log it is
// given and computes, stores nothing, and is safe to call repeatedly
// and concurrently over the same snapshot. No aggregate is ever
// persisted; the log is the single source of truth.
package scoring

import "sort"

// ResultStatus is the outcome classification of a match.
type ResultStatus string

const (
	ResultPending ResultStatus = "pending"
	ResultTie     ResultStatus = "tie"
	ResultWon     ResultStatus = "won"
)

// Result is the shared winner-determination shape for every sport:
// compare primary totals, equal means tie, otherwise winner plus
// absolute margin in the sport's native unit.
type Result struct {
	Status   ResultStatus `json:"status"`
	WinnerID string       `json:"winnerId,omitempty"`
	Margin   int          `json:"margin,omitempty"`
}

// Tally is one leaderboard row.
type Tally struct {
	PlayerID string `json:"playerId"`
	Value    int    `json:"value"`
}

type teamTotal struct {
	teamID string
	total  int
}

// decide implements the shared winner pattern over per-team totals,
// in the order the teams were supplied.
func decide(totals []teamTotal) Result {
	if len(totals) < 2 {
		return Result{Status: ResultPending}
	}
	best, second := totals[0], teamTotal{}
	haveSecond := false
	for _, t := range totals[1:] {
		switch {
		case t.total > best.total:
			second, haveSecond = best, true
			best = t
		case !haveSecond || t.total > second.total:
			second, haveSecond = t, true
		}
	}
	if best.total == second.total {
		return Result{Status: ResultTie}
	}
	return Result{Status: ResultWon, WinnerID: best.teamID, Margin: best.total - second.total}
}

// topN ranks accumulated per-player values descending. Ties keep the
// order players first appeared in the log; there is no secondary key.
func topN(order []string, totals map[string]int, n int) []Tally {
	out := make([]Tally, 0, len(order))
	for _, id := range order {
		out = append(out, Tally{PlayerID: id, Value: totals[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// accumulate bumps a player's total, tracking first-appearance order.
func accumulate(order *[]string, totals map[string]int, id string, v int) {
	if _, seen := totals[id]; !seen {
		*order = append(*order, id)
	}
	totals[id] += v
}
