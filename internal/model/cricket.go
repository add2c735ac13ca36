package model

import (
	"errors"
	"fmt"
)

// BallType is the short wire code for a delivery outcome. The empty
// string is a normal delivery.
type BallType string

const (
	BallNormal BallType = ""
	BallWicket BallType = "W"
	BallWide   BallType = "WD"
	BallNoBall BallType = "NB"
	BallBye    BallType = "B"
	BallLegBye BallType = "LB"
)

// ValidBallType reports whether the code is one of the known outcomes.
func ValidBallType(t BallType) bool {
	switch t {
	case BallNormal, BallWicket, BallWide, BallNoBall, BallBye, BallLegBye:
		return true
	}
	return false
}

// Legal reports whether the delivery counts toward the 6-ball over.
// Wides and no-balls must be re-bowled and are excluded.
func (t BallType) Legal() bool {
	return t != BallWide && t != BallNoBall
}

// Ball is a single delivery. Runs is always the batsman's credited
// runs (0 for wides and wickets); ExtraRuns carries runs not credited
// to the batsman. Team total = Σ(Runs+ExtraRuns).
type Ball struct {
	BatsmanID string   `json:"batsmanId" bson:"batsmanId"`
	Runs      int      `json:"runs" bson:"runs"`
	ExtraRuns int      `json:"extraRuns" bson:"extraRuns"`
	Type      BallType `json:"type" bson:"type"`
}

// Over groups deliveries by bowler of record. There is no 6-ball
// auto-roll; when a bowler's spell ends is an admin-UI concern, and
// over counts shown to viewers come from legal-delivery math in
// internal/scoring, not from this grouping.
type Over struct {
	BowlerID string `json:"bowlerId" bson:"bowlerId"`
	Balls    []Ball `json:"balls" bson:"balls"`
}

// Innings records one side's turn to bat.
type Innings struct {
	BattingTeam string `json:"battingTeam" bson:"battingTeam"`
	BowlingTeam string `json:"bowlingTeam" bson:"bowlingTeam"`
	Overs       []Over `json:"overs" bson:"overs"`
}

// Cricket is the innings → overs → balls event log.
type Cricket struct {
	Innings []Innings `json:"innings" bson:"innings"`
}

func (c *Cricket) Kind() Sport { return SportCricket }

var (
	ErrNoInnings    = errors.New("innings does not exist")
	ErrSameTeams    = errors.New("batting and bowling team must differ")
	ErrBadBallType  = errors.New("unknown ball type")
	ErrNegativeRuns = errors.New("runs must not be negative")
)

// AddInnings opens a new innings. The supplied pair (the toss /
// bat-first choice) is only consulted for the first innings; every
// later innings strictly swaps the previous one's sides. Multi-innings
// formats where the same side bats twice in a row are not supported.
func (c *Cricket) AddInnings(battingTeam, bowlingTeam string) error {
	if len(c.Innings) > 0 {
		prev := c.Innings[len(c.Innings)-1]
		battingTeam, bowlingTeam = prev.BowlingTeam, prev.BattingTeam
	}
	if battingTeam == "" || bowlingTeam == "" {
		return ErrNeedTwoTeams
	}
	if battingTeam == bowlingTeam {
		return ErrSameTeams
	}
	c.Innings = append(c.Innings, Innings{BattingTeam: battingTeam, BowlingTeam: bowlingTeam})
	return nil
}

// AddBall appends a delivery to the bowler's over within the innings,
// opening a new over record on the bowler's first ball there.
// ExtraRuns is derived from the ball type (wide/no-ball concede one
// run, everything else zero); callers must not double-enter extras.
func (c *Cricket) AddBall(inningsIdx int, bowlerID string, b Ball) error {
	if inningsIdx < 0 || inningsIdx >= len(c.Innings) {
		return fmt.Errorf("%w: index %d", ErrNoInnings, inningsIdx)
	}
	if !ValidBallType(b.Type) {
		return fmt.Errorf("%w: %q", ErrBadBallType, b.Type)
	}
	if b.Runs < 0 {
		return ErrNegativeRuns
	}
	b.ExtraRuns = extraRunsFor(b.Type)

	inn := &c.Innings[inningsIdx]
	for i := range inn.Overs {
		if inn.Overs[i].BowlerID == bowlerID {
			inn.Overs[i].Balls = append(inn.Overs[i].Balls, b)
			return nil
		}
	}
	inn.Overs = append(inn.Overs, Over{BowlerID: bowlerID, Balls: []Ball{b}})
	return nil
}

// DeleteInnings removes one innings entirely; later innings shift down.
// A corrective edit for mis-entered data, not part of normal scoring.
func (c *Cricket) DeleteInnings(idx int) error {
	if idx < 0 || idx >= len(c.Innings) {
		return fmt.Errorf("%w: index %d", ErrNoInnings, idx)
	}
	c.Innings = append(c.Innings[:idx], c.Innings[idx+1:]...)
	return nil
}

func extraRunsFor(t BallType) int {
	if t == BallWide || t == BallNoBall {
		return 1
	}
	return 0
}
