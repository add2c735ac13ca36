package model

// PlayerRef is one discrete recorded event attributed to a player.
type PlayerRef struct {
	PlayerID string `json:"playerId" bson:"playerId"`
	Position string `json:"position,omitempty" bson:"position,omitempty"`
}

// FootballTeamStats is the flat multiset of events for one side.
// Own goals are recorded in their own list and deliberately not folded
// into either team's goal total; see TotalGoals in internal/scoring.
type FootballTeamStats struct {
	TeamID      string      `json:"teamId" bson:"teamId"`
	Goals       []PlayerRef `json:"goals" bson:"goals"`
	OwnGoals    []PlayerRef `json:"ownGoals" bson:"ownGoals"`
	Assists     []PlayerRef `json:"assists" bson:"assists"`
	RedCards    []PlayerRef `json:"redCards" bson:"redCards"`
	YellowCards []PlayerRef `json:"yellowCards" bson:"yellowCards"`
	Positions   []PlayerRef `json:"positions" bson:"positions"`
}

// Football has no innings/over structure, just per-team event lists.
type Football struct {
	Stats []FootballTeamStats `json:"stats" bson:"stats"`
}

func (f *Football) Kind() Sport { return SportFootball }

// teamStats finds or creates the stats entry for a team.
func (f *Football) teamStats(teamID string) *FootballTeamStats {
	for i := range f.Stats {
		if f.Stats[i].TeamID == teamID {
			return &f.Stats[i]
		}
	}
	f.Stats = append(f.Stats, FootballTeamStats{TeamID: teamID})
	return &f.Stats[len(f.Stats)-1]
}

// AddGoal records one goal, worth exactly 1, for the team.
func (f *Football) AddGoal(teamID, playerID string) {
	s := f.teamStats(teamID)
	s.Goals = append(s.Goals, PlayerRef{PlayerID: playerID})
}

// AddOwnGoal records an own goal against the player's own team.
func (f *Football) AddOwnGoal(teamID, playerID string) {
	s := f.teamStats(teamID)
	s.OwnGoals = append(s.OwnGoals, PlayerRef{PlayerID: playerID})
}

// AddAssist records one assist for the team.
func (f *Football) AddAssist(teamID, playerID string) {
	s := f.teamStats(teamID)
	s.Assists = append(s.Assists, PlayerRef{PlayerID: playerID})
}

// AddRedCard records a red card shown to the player.
func (f *Football) AddRedCard(teamID, playerID string) {
	s := f.teamStats(teamID)
	s.RedCards = append(s.RedCards, PlayerRef{PlayerID: playerID})
}

// AddYellowCard records a yellow card shown to the player.
func (f *Football) AddYellowCard(teamID, playerID string) {
	s := f.teamStats(teamID)
	s.YellowCards = append(s.YellowCards, PlayerRef{PlayerID: playerID})
}

// SetPosition records the field position a player lined up in.
func (f *Football) SetPosition(teamID, playerID, position string) {
	s := f.teamStats(teamID)
	for i := range s.Positions {
		if s.Positions[i].PlayerID == playerID {
			s.Positions[i].Position = position
			return
		}
	}
	s.Positions = append(s.Positions, PlayerRef{PlayerID: playerID, Position: position})
}
