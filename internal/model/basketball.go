package model

import "errors"

// ErrBadDenom rejects scoring actions outside basketball's 1/2/3
// denominations.
var ErrBadDenom = errors.New("basket denomination must be 1, 2 or 3")

// PlayerPoints is one scoring action; Points is the denomination of
// the basket (1 free throw, 2 field goal, 3 three-pointer), so team
// totals are sums of Points, never event counts.
type PlayerPoints struct {
	PlayerID string `json:"playerId" bson:"playerId"`
	Points   int    `json:"points" bson:"points"`
}

// BasketballTeamStats is the scoring log for one side.
type BasketballTeamStats struct {
	TeamID string         `json:"teamId" bson:"teamId"`
	Points []PlayerPoints `json:"points" bson:"points"`
}

// Basketball is a flat per-team log of weighted scoring actions.
type Basketball struct {
	Stats []BasketballTeamStats `json:"stats" bson:"stats"`
}

func (b *Basketball) Kind() Sport { return SportBasketball }

func (b *Basketball) teamStats(teamID string) *BasketballTeamStats {
	for i := range b.Stats {
		if b.Stats[i].TeamID == teamID {
			return &b.Stats[i]
		}
	}
	b.Stats = append(b.Stats, BasketballTeamStats{TeamID: teamID})
	return &b.Stats[len(b.Stats)-1]
}

// AddBasket records one scoring action of the given denomination.
func (b *Basketball) AddBasket(teamID, playerID string, points int) error {
	if points < 1 || points > 3 {
		return ErrBadDenom
	}
	s := b.teamStats(teamID)
	s.Points = append(s.Points, PlayerPoints{PlayerID: playerID, Points: points})
	return nil
}
