// Package service holds business logic orchestration across the
// repository and handlers: use-case coordination, validation and
// domain error shaping. Every admin mutation is one whole-document
// read-modify-write against the store.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/festops/scoreboard-service/internal/model"
	"github.com/festops/scoreboard-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation
// failures (maps to HTTP 400). Field-level details are retrieved via
// FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and
// unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field
// errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// CreateActivityInput carries everything needed to open an activity.
// TeamNames are optional; teams can also be added later.
type CreateActivityInput struct {
	Name      string
	Type      model.ActivityType
	StartTime time.Time
	TeamNames []string
}

// ActivityView decorates an activity with its derived status.
type ActivityView struct {
	*model.SportsActivity[model.Game]

	Status model.ActivityStatus `json:"status"`
}

// ActivityService defines activity lifecycle and roster use cases.
type ActivityService interface {
	CreateActivity(ctx context.Context, in CreateActivityInput) (ActivityView, error)
	GetActivity(ctx context.Context, id string) (ActivityView, error)
	ListActivities(ctx context.Context, page repository.Page) (repository.PageResult[ActivityView], error)
	DeleteActivity(ctx context.Context, id string) error
	ConcludeActivity(ctx context.Context, id string, end time.Time) (ActivityView, error)

	AddTeam(ctx context.Context, activityID, name string) (model.Team, error)
	RenameTeam(ctx context.Context, activityID, teamID, name string) (model.Team, error)
	AddPlayer(ctx context.Context, activityID string, p model.Player) error
}

// BallInput is one cricket delivery as entered by the admin.
type BallInput struct {
	InningsIndex int
	BowlerID     string
	BatsmanID    string
	Runs         int
	Type         model.BallType
}

// FootballEventKind selects which football event list an entry lands in.
type FootballEventKind string

const (
	EventGoal       FootballEventKind = "goal"
	EventOwnGoal    FootballEventKind = "own_goal"
	EventAssist     FootballEventKind = "assist"
	EventYellowCard FootballEventKind = "yellow_card"
	EventRedCard    FootballEventKind = "red_card"
)

// FootballEventInput is one discrete football event.
type FootballEventInput struct {
	TeamID   string
	PlayerID string
	Kind     FootballEventKind
}

// ScoreService defines the play-by-play mutations and the derived
// read surface.
type ScoreService interface {
	AddInnings(ctx context.Context, activityID, battingTeamID, bowlingTeamID string) error
	AddBall(ctx context.Context, activityID string, in BallInput) error
	DeleteInnings(ctx context.Context, activityID string, index int) error

	AddFootballEvent(ctx context.Context, activityID string, in FootballEventInput) error
	AddBasket(ctx context.Context, activityID, teamID, playerID string, points int) error
	AdjustPoints(ctx context.Context, activityID, teamID string, delta int) error

	Scoreboard(ctx context.Context, activityID string) (Scoreboard, error)
	Leaders(ctx context.Context, activityID string, n int) (Leaders, error)
}
