package model

import "errors"

// ErrNegativePoints rejects negative amounts on point edits; removal
// is its own operation.
var ErrNegativePoints = errors.New("points must not be negative")

// TeamScore is a running total for one team. Unlike the other variants
// there is no per-player event log, only explicit add/remove edits.
type TeamScore struct {
	TeamID string `json:"teamId" bson:"teamId"`
	Points int    `json:"points" bson:"points"`
}

// OtherSport covers generic point-based activities (volleyball,
// athletics, tug of war) where only team totals matter.
type OtherSport struct {
	Points []TeamScore `json:"points" bson:"points"`
}

func (o *OtherSport) Kind() Sport { return SportOther }

func (o *OtherSport) teamScore(teamID string) *TeamScore {
	for i := range o.Points {
		if o.Points[i].TeamID == teamID {
			return &o.Points[i]
		}
	}
	o.Points = append(o.Points, TeamScore{TeamID: teamID})
	return &o.Points[len(o.Points)-1]
}

// AddPoints increases a team's running total.
func (o *OtherSport) AddPoints(teamID string, n int) error {
	if n < 0 {
		return ErrNegativePoints
	}
	o.teamScore(teamID).Points += n
	return nil
}

// RemovePoints decreases a team's running total, clamped at zero.
func (o *OtherSport) RemovePoints(teamID string, n int) error {
	if n < 0 {
		return ErrNegativePoints
	}
	s := o.teamScore(teamID)
	s.Points -= n
	if s.Points < 0 {
		s.Points = 0
	}
	return nil
}
