package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/festops/scoreboard-service/internal/model"
	"github.com/festops/scoreboard-service/internal/repository"
	"github.com/festops/scoreboard-service/internal/service"
)

// fakeRepo is an in-memory ActivityRepository. Save stores the whole
// document, mirroring the real store's replace-on-write behavior.
type fakeRepo struct {
	items   map[string]*model.SportsActivity[model.Game]
	order   []string
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]*model.SportsActivity[model.Game]{}}
}

func (f *fakeRepo) Save(_ context.Context, a *model.SportsActivity[model.Game]) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.items[a.ID]; !ok {
		f.order = append(f.order, a.ID)
	}
	f.items[a.ID] = a
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (*model.SportsActivity[model.Game], error) {
	a, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) List(_ context.Context, p repository.Page) (repository.PageResult[*model.SportsActivity[model.Game]], error) {
	res := repository.PageResult[*model.SportsActivity[model.Game]]{Total: len(f.order)}
	for _, id := range f.order {
		res.Items = append(res.Items, f.items[id])
	}
	return res, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

var _ repository.ActivityRepository = (*fakeRepo)(nil)

func testLogger() zerolog.Logger { return zerolog.New(io.Discard) }

func fieldOf(err error) string {
	fe := service.FieldErrors(err)
	if len(fe) == 0 {
		return ""
	}
	return fe[0].Field
}

func TestCreateActivity_Validation(t *testing.T) {
	svc := service.NewActivityService(newFakeRepo(), testLogger())

	cases := []struct {
		name      string
		input     service.CreateActivityInput
		wantField string
	}{
		{"empty name", service.CreateActivityInput{Name: "", Type: model.TypeCricket}, "name"},
		{"short name", service.CreateActivityInput{Name: "x", Type: model.TypeCricket}, "name"},
		{"general code", service.CreateActivityInput{Name: "quiz", Type: model.TypeGeneral}, "type"},
		{"cultural code", service.CreateActivityInput{Name: "dance", Type: 2100}, "type"},
		{"ok", service.CreateActivityInput{Name: "cricket finals", Type: model.TypeCricket}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateActivity(context.Background(), tc.input)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if got := fieldOf(err); got != tc.wantField {
				t.Fatalf("field = %q (err %v), want %q", got, err, tc.wantField)
			}
		})
	}
}

func TestCreateActivity_InitializesGameAndTeams(t *testing.T) {
	repo := newFakeRepo()
	svc := service.NewActivityService(repo, testLogger())

	a, err := svc.CreateActivity(context.Background(), service.CreateActivityInput{
		Name:      "hoops semifinal",
		Type:      model.TypeBasketball,
		TeamNames: []string{"Alpha", "Beta"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := a.Game.(*model.Basketball); !ok {
		t.Fatalf("game = %T, want *model.Basketball", a.Game)
	}
	if len(a.Teams) != 2 {
		t.Fatalf("teams = %d, want 2", len(a.Teams))
	}
	if a.Status != model.StatusOngoing {
		t.Errorf("status = %q, want ongoing (start defaulted to now)", a.Status)
	}
	if _, ok := repo.items[a.ID]; !ok {
		t.Error("activity was not saved")
	}

	_, err = svc.CreateActivity(context.Background(), service.CreateActivityInput{
		Name:      "dup teams",
		Type:      model.TypeBasketball,
		TeamNames: []string{"Alpha", "ALPHA"},
	})
	if fieldOf(err) != "teams" {
		t.Errorf("duplicate team names: got %v, want teams field error", err)
	}
}

func TestAddTeam_And_Rename(t *testing.T) {
	repo := newFakeRepo()
	svc := service.NewActivityService(repo, testLogger())
	ctx := context.Background()

	a, err := svc.CreateActivity(ctx, service.CreateActivityInput{Name: "volley", Type: model.TypeVolleyball})
	if err != nil {
		t.Fatal(err)
	}

	alpha, err := svc.AddTeam(ctx, a.ID, "Alpha")
	if err != nil {
		t.Fatalf("add team: %v", err)
	}
	if _, err := svc.AddTeam(ctx, a.ID, "alpha"); err != repository.ErrAlreadyExists {
		t.Errorf("duplicate team: got %v, want ErrAlreadyExists", err)
	}
	if _, err := svc.AddTeam(ctx, "missing", "Gamma"); err != repository.ErrNotFound {
		t.Errorf("unknown activity: got %v, want ErrNotFound", err)
	}

	renamed, err := svc.RenameTeam(ctx, a.ID, alpha.ID, "Alpha Prime")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.ID != alpha.ID {
		t.Errorf("rename changed team id")
	}
}

func TestAddPlayer(t *testing.T) {
	repo := newFakeRepo()
	svc := service.NewActivityService(repo, testLogger())
	ctx := context.Background()

	a, _ := svc.CreateActivity(ctx, service.CreateActivityInput{Name: "football", Type: model.TypeFootball, TeamNames: []string{"Alpha"}})
	teamID := a.Teams[0].ID

	if err := svc.AddPlayer(ctx, a.ID, model.Player{}); fieldOf(err) != "usn" {
		t.Errorf("empty player: got %v, want usn field error", err)
	}
	p := model.Player{Participant: model.Participant{USN: "u1", Name: "One"}, TeamID: "ghost"}
	if err := svc.AddPlayer(ctx, a.ID, p); fieldOf(err) != "teamId" {
		t.Errorf("dangling team: got %v, want teamId field error", err)
	}
	p.TeamID = teamID
	if err := svc.AddPlayer(ctx, a.ID, p); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := svc.AddPlayer(ctx, a.ID, p); err != repository.ErrAlreadyExists {
		t.Errorf("duplicate usn: got %v, want ErrAlreadyExists", err)
	}
}

func TestConcludeActivity(t *testing.T) {
	repo := newFakeRepo()
	svc := service.NewActivityService(repo, testLogger())
	ctx := context.Background()

	a, _ := svc.CreateActivity(ctx, service.CreateActivityInput{
		Name:      "tournament",
		Type:      model.TypeCricket,
		StartTime: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	})

	if _, err := svc.ConcludeActivity(ctx, a.ID, time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)); fieldOf(err) != "endTime" {
		t.Errorf("end before start: got %v, want endTime field error", err)
	}

	done, err := svc.ConcludeActivity(ctx, a.ID, time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("conclude: %v", err)
	}
	if done.Status != model.StatusCompleted {
		t.Errorf("status = %q, want completed", done.Status)
	}
	if done.EndTime == nil {
		t.Error("end time not stored")
	}
}

func TestListActivities_NormalizesPage(t *testing.T) {
	repo := newFakeRepo()
	svc := service.NewActivityService(repo, testLogger())
	ctx := context.Background()
	_, _ = svc.CreateActivity(ctx, service.CreateActivityInput{Name: "one", Type: model.TypeCricket})

	res, err := svc.ListActivities(ctx, repository.Page{Limit: -5, Offset: -1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 1 || len(res.Items) != 1 {
		t.Errorf("list = %d/%d, want 1/1", len(res.Items), res.Total)
	}
}
