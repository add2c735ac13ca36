package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/festops/scoreboard-service/internal/model"
	"github.com/festops/scoreboard-service/internal/repository"
)

// scoreService holds play-by-play use-case logic. Each mutation loads
// the whole document, applies one model mutation and saves it back;
// the admin UI is the single writer per activity, so there is no
// in-process locking here.
type scoreService struct {
	repo repository.ActivityRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewScoreService(repo repository.ActivityRepository, logger zerolog.Logger) ScoreService {
	l := logger.With().Str("module", "service").Str("component", "score").Logger()
	return &scoreService{repo: repo, log: l, now: time.Now}
}

// gameAs loads the activity and asserts the game variant in one step.
func gameAs[G model.Game](ctx context.Context, repo repository.ActivityRepository, activityID string) (*model.SportsActivity[model.Game], G, error) {
	var zero G
	a, err := repo.Get(ctx, activityID)
	if err != nil {
		return nil, zero, err
	}
	g, ok := a.Game.(G)
	if !ok {
		return nil, zero, newInvalidInput([]FieldError{{Field: "type", Message: "operation does not match the activity's sport"}})
	}
	return a, g, nil
}

func (s *scoreService) AddInnings(ctx context.Context, activityID, battingTeamID, bowlingTeamID string) error {
	a, g, err := gameAs[*model.Cricket](ctx, s.repo, activityID)
	if err != nil {
		return err
	}
	if len(a.Teams) < 2 {
		return newInvalidInput([]FieldError{{Field: "teams", Message: "at least two teams are required"}})
	}
	// The toss choice only matters for the first innings; later
	// innings swap sides regardless of what the caller sends.
	if len(g.Innings) == 0 {
		if a.TeamByID(battingTeamID) == nil {
			return newInvalidInput([]FieldError{{Field: "battingTeam", Message: "team does not exist in this activity"}})
		}
		if bowlingTeamID == "" && len(a.Teams) == 2 {
			bowlingTeamID = otherTeam(a.Teams, battingTeamID)
		}
		if a.TeamByID(bowlingTeamID) == nil {
			return newInvalidInput([]FieldError{{Field: "bowlingTeam", Message: "team does not exist in this activity"}})
		}
	}
	if err := g.AddInnings(battingTeamID, bowlingTeamID); err != nil {
		return newInvalidInput([]FieldError{{Field: "battingTeam", Message: err.Error()}})
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return err
	}
	s.log.Info().Str("activity_id", activityID).Int("innings", len(g.Innings)).Msg("innings added")
	return nil
}

func (s *scoreService) AddBall(ctx context.Context, activityID string, in BallInput) error {
	var ferrs []FieldError
	if strings.TrimSpace(in.BowlerID) == "" {
		ferrs = append(ferrs, FieldError{Field: "bowlerId", Message: "must not be empty"})
	}
	if strings.TrimSpace(in.BatsmanID) == "" {
		ferrs = append(ferrs, FieldError{Field: "batsmanId", Message: "must not be empty"})
	}
	if in.Runs < 0 {
		ferrs = append(ferrs, FieldError{Field: "runs", Message: "must be >= 0"})
	}
	if !model.ValidBallType(in.Type) {
		ferrs = append(ferrs, FieldError{Field: "type", Message: `must be one of "", "W", "WD", "NB", "B", "LB"`})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return err
	}

	a, g, err := gameAs[*model.Cricket](ctx, s.repo, activityID)
	if err != nil {
		return err
	}
	ball := model.Ball{BatsmanID: in.BatsmanID, Runs: in.Runs, Type: in.Type}
	if err := g.AddBall(in.InningsIndex, in.BowlerID, ball); err != nil {
		return newInvalidInput([]FieldError{{Field: "inningsIndex", Message: err.Error()}})
	}
	return s.repo.Save(ctx, a)
}

func (s *scoreService) DeleteInnings(ctx context.Context, activityID string, index int) error {
	a, g, err := gameAs[*model.Cricket](ctx, s.repo, activityID)
	if err != nil {
		return err
	}
	if err := g.DeleteInnings(index); err != nil {
		return newInvalidInput([]FieldError{{Field: "index", Message: err.Error()}})
	}
	return s.repo.Save(ctx, a)
}

func (s *scoreService) AddFootballEvent(ctx context.Context, activityID string, in FootballEventInput) error {
	var ferrs []FieldError
	if strings.TrimSpace(in.TeamID) == "" {
		ferrs = append(ferrs, FieldError{Field: "teamId", Message: "must not be empty"})
	}
	if strings.TrimSpace(in.PlayerID) == "" {
		ferrs = append(ferrs, FieldError{Field: "playerId", Message: "must not be empty"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return err
	}

	a, g, err := gameAs[*model.Football](ctx, s.repo, activityID)
	if err != nil {
		return err
	}
	if a.TeamByID(in.TeamID) == nil {
		return newInvalidInput([]FieldError{{Field: "teamId", Message: "team does not exist in this activity"}})
	}
	switch in.Kind {
	case EventGoal:
		g.AddGoal(in.TeamID, in.PlayerID)
	case EventOwnGoal:
		g.AddOwnGoal(in.TeamID, in.PlayerID)
	case EventAssist:
		g.AddAssist(in.TeamID, in.PlayerID)
	case EventYellowCard:
		g.AddYellowCard(in.TeamID, in.PlayerID)
	case EventRedCard:
		g.AddRedCard(in.TeamID, in.PlayerID)
	default:
		return newInvalidInput([]FieldError{{Field: "kind", Message: "unknown football event kind"}})
	}
	return s.repo.Save(ctx, a)
}

func (s *scoreService) AddBasket(ctx context.Context, activityID, teamID, playerID string, points int) error {
	a, g, err := gameAs[*model.Basketball](ctx, s.repo, activityID)
	if err != nil {
		return err
	}
	if a.TeamByID(teamID) == nil {
		return newInvalidInput([]FieldError{{Field: "teamId", Message: "team does not exist in this activity"}})
	}
	if err := g.AddBasket(teamID, playerID, points); err != nil {
		return newInvalidInput([]FieldError{{Field: "points", Message: "must be 1, 2 or 3"}})
	}
	return s.repo.Save(ctx, a)
}

// AdjustPoints adds to or removes from a generic running total. A
// negative delta removes; the model clamps totals at zero.
func (s *scoreService) AdjustPoints(ctx context.Context, activityID, teamID string, delta int) error {
	a, g, err := gameAs[*model.OtherSport](ctx, s.repo, activityID)
	if err != nil {
		return err
	}
	if a.TeamByID(teamID) == nil {
		return newInvalidInput([]FieldError{{Field: "teamId", Message: "team does not exist in this activity"}})
	}
	if delta >= 0 {
		err = g.AddPoints(teamID, delta)
	} else {
		err = g.RemovePoints(teamID, -delta)
	}
	if err != nil {
		return newInvalidInput([]FieldError{{Field: "points", Message: err.Error()}})
	}
	return s.repo.Save(ctx, a)
}

func otherTeam(teams []model.Team, teamID string) string {
	for _, t := range teams {
		if t.ID != teamID {
			return t.ID
		}
	}
	return ""
}
