// Package model contains domain entities and the per-sport game
// containers. Data shapes plus the mutations that keep their internal
// invariants; all derived numbers live in internal/scoring.
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/xid"
)

// ActivityType is the integer discriminant carried on the wire.
// Codes are grouped into contiguous bands so new sub-types slot into a
// band without touching dispatch code.
type ActivityType int

const (
	TypeGeneral ActivityType = 1

	SportsBandFloor   ActivityType = 1000
	CulturalBandFloor ActivityType = 2000
	TechBandFloor     ActivityType = 3000

	TypeCricket    ActivityType = 1000
	TypeFootball   ActivityType = 1001
	TypeBasketball ActivityType = 1002
	TypeVolleyball ActivityType = 1003
	TypeAthletics  ActivityType = 1004
)

// Band is the coarse classification of an ActivityType.
type Band string

const (
	BandGeneral  Band = "general"
	BandSports   Band = "sports"
	BandCultural Band = "cultural"
	BandTech     Band = "tech"
)

// BandOf classifies a discriminant by range comparison, highest floor
// first. Unknown codes inside a band are valid members of that band.
func BandOf(t ActivityType) Band {
	switch {
	case t >= TechBandFloor:
		return BandTech
	case t >= CulturalBandFloor:
		return BandCultural
	case t >= SportsBandFloor:
		return BandSports
	default:
		return BandGeneral
	}
}

// ActivityStatus is derived from the activity's time window, never stored.
type ActivityStatus string

const (
	StatusUpcoming  ActivityStatus = "upcoming"
	StatusOngoing   ActivityStatus = "ongoing"
	StatusCompleted ActivityStatus = "completed"
)

// Sport tags the concrete Game variant inside a SportsActivity.
type Sport string

const (
	SportCricket    Sport = "cricket"
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
	SportOther      Sport = "other"
)

// Game is the sport-specific event-log container. Concrete types are
// *Cricket, *Football, *Basketball and *OtherSport; use a type switch
// on the interface value to recover the variant.
type Game interface {
	Kind() Sport
}

// Participant is a registered person. Identity fields are immutable
// once the participant appears in a played event.
type Participant struct {
	USN    string `json:"usn" bson:"usn"`
	Name   string `json:"name" bson:"name"`
	Gender string `json:"gender,omitempty" bson:"gender,omitempty"`
	Email  string `json:"email,omitempty" bson:"email,omitempty"`
	Phone  string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Player is a participant scoped to one sports activity.
type Player struct {
	Participant `bson:",inline"`

	TeamID    string            `json:"teamId,omitempty" bson:"teamId,omitempty"`
	IsPlaying bool              `json:"isPlaying" bson:"isPlaying"`
	Stats     map[string]string `json:"stats,omitempty" bson:"stats,omitempty"`
}

// Team identity is a stable opaque id assigned at creation; Slug is a
// separately maintained display key derived from the name and kept
// unique within an activity. Renames keep ID, so player links survive.
type Team struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
	Slug string `json:"slug" bson:"slug"`
}

// NewTeam mints a team with a fresh opaque id.
func NewTeam(name string) Team {
	name = strings.TrimSpace(name)
	return Team{ID: xid.New().String(), Name: name, Slug: Slugify(name)}
}

// Activity is a single scheduled program item. A nil EndTime means the
// activity has not concluded.
type Activity struct {
	ID        string       `json:"id" bson:"id"`
	Name      string       `json:"name" bson:"name"`
	Type      ActivityType `json:"type" bson:"type"`
	StartTime time.Time    `json:"startTime" bson:"startTime"`
	EndTime   *time.Time   `json:"endTime,omitempty" bson:"endTime,omitempty"`
}

// Status derives the lifecycle phase from the activity's time window.
func (a Activity) Status(now time.Time) ActivityStatus {
	if a.EndTime != nil && !a.EndTime.After(now) {
		return StatusCompleted
	}
	if a.StartTime.After(now) {
		return StatusUpcoming
	}
	return StatusOngoing
}

// Roster and game mutation errors. Services translate these into
// field-level validation errors; they never escape as panics.
var (
	ErrTeamExists   = errors.New("team with the same slug already exists")
	ErrUnknownTeam  = errors.New("team does not exist in this activity")
	ErrNeedTwoTeams = errors.New("at least two teams are required")
)

// SportsActivity owns the teams, the sport-scoped players and one Game.
// The usual instantiation is SportsActivity[Game]; typed instantiations
// such as SportsActivity[*Cricket] are handy in tests.
type SportsActivity[G Game] struct {
	Activity `bson:",inline"`

	Teams   []Team   `json:"teams" bson:"teams"`
	Players []Player `json:"participants" bson:"participants"`
	Game    G        `json:"game" bson:"game"`
}

// AddTeam appends a new team unless its slug collides (case-insensitive)
// with an existing team of a different name.
func (a *SportsActivity[G]) AddTeam(name string) (Team, error) {
	t := NewTeam(name)
	for _, existing := range a.Teams {
		if strings.EqualFold(existing.Slug, t.Slug) {
			return Team{}, ErrTeamExists
		}
	}
	a.Teams = append(a.Teams, t)
	return t, nil
}

// RenameTeam updates the display name and recomputes the slug under the
// same collision guard. The opaque id is untouched.
func (a *SportsActivity[G]) RenameTeam(teamID, newName string) (Team, error) {
	newName = strings.TrimSpace(newName)
	slug := Slugify(newName)
	idx := -1
	for i, t := range a.Teams {
		if t.ID == teamID {
			idx = i
			continue
		}
		if strings.EqualFold(t.Slug, slug) {
			return Team{}, ErrTeamExists
		}
	}
	if idx < 0 {
		return Team{}, ErrUnknownTeam
	}
	a.Teams[idx].Name = newName
	a.Teams[idx].Slug = slug
	return a.Teams[idx], nil
}

// AddPlayer registers a player; a non-empty TeamID must resolve against
// the activity's team set, otherwise the player could never be scored.
func (a *SportsActivity[G]) AddPlayer(p Player) error {
	if p.TeamID != "" && a.TeamByID(p.TeamID) == nil {
		return ErrUnknownTeam
	}
	a.Players = append(a.Players, p)
	return nil
}

// TeamByID returns nil when the id does not resolve.
func (a *SportsActivity[G]) TeamByID(id string) *Team {
	for i := range a.Teams {
		if a.Teams[i].ID == id {
			return &a.Teams[i]
		}
	}
	return nil
}

// TeamName degrades to "Unknown" for dangling references so historical
// logs stay renderable after roster edits.
func (a *SportsActivity[G]) TeamName(id string) string {
	if t := a.TeamByID(id); t != nil {
		return t.Name
	}
	return "Unknown"
}

// PlayerByID returns nil when the usn does not resolve.
func (a *SportsActivity[G]) PlayerByID(usn string) *Player {
	for i := range a.Players {
		if a.Players[i].USN == usn {
			return &a.Players[i]
		}
	}
	return nil
}

// PlayerName degrades to "Unknown" for dangling references.
func (a *SportsActivity[G]) PlayerName(usn string) string {
	if p := a.PlayerByID(usn); p != nil {
		return p.Name
	}
	return "Unknown"
}

// TeamRoster lists the players assigned to one team.
func (a *SportsActivity[G]) TeamRoster(teamID string) []Player {
	var out []Player
	for _, p := range a.Players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

// ParticipantCount reports total and starting-lineup player counts.
func (a *SportsActivity[G]) ParticipantCount() (total, playing int) {
	total = len(a.Players)
	for _, p := range a.Players {
		if p.IsPlaying {
			playing++
		}
	}
	return total, playing
}
