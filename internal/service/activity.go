package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/festops/scoreboard-service/internal/model"
	"github.com/festops/scoreboard-service/internal/parse"
	"github.com/festops/scoreboard-service/internal/repository"
)

// activityService holds lifecycle and roster use-case logic:
// validation + orchestration, no transport or storage details.
type activityService struct {
	repo repository.ActivityRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewActivityService(repo repository.ActivityRepository, logger zerolog.Logger) ActivityService {
	l := logger.With().Str("module", "service").Str("component", "activity").Logger()
	return &activityService{repo: repo, log: l, now: time.Now}
}

func (s *activityService) view(a *model.SportsActivity[model.Game]) ActivityView {
	return ActivityView{SportsActivity: a, Status: a.Status(s.now())}
}

func (s *activityService) CreateActivity(ctx context.Context, in CreateActivityInput) (ActivityView, error) {
	start := time.Now()
	name := strings.TrimSpace(in.Name)

	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	} else if ln := len([]rune(name)); ln < 2 || ln > 80 {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "length must be between 2 and 80"})
	}
	game, err := parse.NewGame(in.Type)
	if err != nil {
		ferrs = append(ferrs, FieldError{Field: "type", Message: "must be a sports discriminant (1000-1999)"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("name_raw", in.Name).Interface("field_errors", ferrs).Msg("activity validation failed")
		return ActivityView{}, err
	}

	startTime := in.StartTime
	if startTime.IsZero() {
		startTime = s.now().UTC()
	}
	a := &model.SportsActivity[model.Game]{
		Activity: model.Activity{
			ID:        xid.New().String(),
			Name:      name,
			Type:      in.Type,
			StartTime: startTime,
		},
		Teams:   []model.Team{},
		Players: []model.Player{},
		Game:    game,
	}
	for _, tn := range in.TeamNames {
		if _, err := a.AddTeam(tn); err != nil {
			return ActivityView{}, newInvalidInput([]FieldError{{Field: "teams", Message: "duplicate team name: " + tn}})
		}
	}

	if err := s.repo.Save(ctx, a); err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("create activity failed")
		return ActivityView{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Str("activity_id", a.ID).Int("type", int(a.Type)).Msg("activity created")
	return s.view(a), nil
}

func (s *activityService) GetActivity(ctx context.Context, id string) (ActivityView, error) {
	if id == "" {
		return ActivityView{}, newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return ActivityView{}, err
	}
	return s.view(a), nil
}

func (s *activityService) ListActivities(ctx context.Context, page repository.Page) (repository.PageResult[ActivityView], error) {
	p := normalizePage(page)
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list activities failed")
		return repository.PageResult[ActivityView]{}, err
	}
	out := repository.PageResult[ActivityView]{Total: res.Total, Items: make([]ActivityView, 0, len(res.Items))}
	for _, a := range res.Items {
		out.Items = append(out.Items, s.view(a))
	}
	return out, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, id string) error {
	if id == "" {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must not be empty"}})
	}
	return s.repo.Delete(ctx, id)
}

// ConcludeActivity stamps the end time; status flips to completed by
// derivation, nothing else is stored.
func (s *activityService) ConcludeActivity(ctx context.Context, id string, end time.Time) (ActivityView, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return ActivityView{}, err
	}
	if end.IsZero() {
		end = s.now().UTC()
	}
	if end.Before(a.StartTime) {
		return ActivityView{}, newInvalidInput([]FieldError{{Field: "endTime", Message: "must not precede startTime"}})
	}
	a.EndTime = &end
	if err := s.repo.Save(ctx, a); err != nil {
		return ActivityView{}, err
	}
	return s.view(a), nil
}

func (s *activityService) AddTeam(ctx context.Context, activityID, name string) (model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Team{}, newInvalidInput([]FieldError{{Field: "name", Message: "must not be empty"}})
	}
	a, err := s.repo.Get(ctx, activityID)
	if err != nil {
		return model.Team{}, err
	}
	t, err := a.AddTeam(name)
	if err != nil {
		if errors.Is(err, model.ErrTeamExists) {
			return model.Team{}, repository.ErrAlreadyExists
		}
		return model.Team{}, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return model.Team{}, err
	}
	s.log.Info().Str("activity_id", activityID).Str("team_id", t.ID).Msg("team added")
	return t, nil
}

func (s *activityService) RenameTeam(ctx context.Context, activityID, teamID, name string) (model.Team, error) {
	if strings.TrimSpace(name) == "" {
		return model.Team{}, newInvalidInput([]FieldError{{Field: "name", Message: "must not be empty"}})
	}
	a, err := s.repo.Get(ctx, activityID)
	if err != nil {
		return model.Team{}, err
	}
	t, err := a.RenameTeam(teamID, name)
	switch {
	case errors.Is(err, model.ErrTeamExists):
		return model.Team{}, repository.ErrAlreadyExists
	case errors.Is(err, model.ErrUnknownTeam):
		return model.Team{}, repository.ErrNotFound
	case err != nil:
		return model.Team{}, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return model.Team{}, err
	}
	return t, nil
}

func (s *activityService) AddPlayer(ctx context.Context, activityID string, p model.Player) error {
	var ferrs []FieldError
	if strings.TrimSpace(p.USN) == "" {
		ferrs = append(ferrs, FieldError{Field: "usn", Message: "must not be empty"})
	}
	if strings.TrimSpace(p.Name) == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return err
	}
	a, err := s.repo.Get(ctx, activityID)
	if err != nil {
		return err
	}
	if a.PlayerByID(p.USN) != nil {
		return repository.ErrAlreadyExists
	}
	if err := a.AddPlayer(p); err != nil {
		return newInvalidInput([]FieldError{{Field: "teamId", Message: "team does not exist in this activity"}})
	}
	return s.repo.Save(ctx, a)
}
