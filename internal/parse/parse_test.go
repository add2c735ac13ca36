package parse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festops/scoreboard-service/internal/model"
	"github.com/festops/scoreboard-service/internal/parse"
)

func TestNewGame_Dispatch(t *testing.T) {
	cases := []struct {
		code model.ActivityType
		want model.Sport
	}{
		{model.TypeCricket, model.SportCricket},
		{model.TypeFootball, model.SportFootball},
		{model.TypeBasketball, model.SportBasketball},
		{model.TypeVolleyball, model.SportOther},
		{1777, model.SportOther}, // unknown code inside the band falls back
	}
	for _, tc := range cases {
		g, err := parse.NewGame(tc.code)
		require.NoError(t, err, "code %d", tc.code)
		assert.Equal(t, tc.want, g.Kind(), "code %d", tc.code)
	}

	for _, code := range []model.ActivityType{1, 999, 2000, 3400} {
		_, err := parse.NewGame(code)
		assert.ErrorIs(t, err, parse.ErrNotSports, "code %d", code)
	}
}

func TestActivity_RequiresParticipants(t *testing.T) {
	_, err := parse.Activity(map[string]any{
		"name": "finals",
		"type": int(model.TypeCricket),
	})
	require.ErrorIs(t, err, parse.ErrMissingParticipants)
}

func TestActivity_DefaultsOptionalFields(t *testing.T) {
	before := time.Now().UTC()
	a, err := parse.Activity(map[string]any{
		"name":         "finals",
		"type":         int(model.TypeCricket),
		"participants": []any{},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID, "missing id gets minted")
	assert.False(t, a.StartTime.Before(before.Add(-time.Second)), "missing startTime defaults to now")
	assert.Nil(t, a.EndTime)
	assert.NotNil(t, a.Teams)
	assert.NotNil(t, a.Players)
	require.IsType(t, &model.Cricket{}, a.Game)
}

func TestActivity_NormalizesEventType(t *testing.T) {
	a, err := parse.Activity(map[string]any{
		"name":         "hoops",
		"eventType":    int(model.TypeBasketball),
		"participants": []any{},
	})
	require.NoError(t, err)
	assert.Equal(t, model.TypeBasketball, a.Type)
	require.IsType(t, &model.Basketball{}, a.Game)

	// The internal discriminant wins when both fields appear.
	a, err = parse.Activity(map[string]any{
		"name":         "mixed",
		"type":         int(model.TypeFootball),
		"eventType":    int(model.TypeBasketball),
		"participants": []any{},
	})
	require.NoError(t, err)
	require.IsType(t, &model.Football{}, a.Game)
}

func TestActivity_BackfillsTeamSlugs(t *testing.T) {
	a, err := parse.Activity(map[string]any{
		"name":         "legacy",
		"type":         int(model.TypeFootball),
		"participants": []any{},
		"teams":        []any{map[string]any{"id": "t1", "name": "Red Dragons"}},
	})
	require.NoError(t, err)
	require.Len(t, a.Teams, 1)
	assert.Equal(t, "red-dragons", a.Teams[0].Slug)
}

// buildActivity assembles a populated activity for one sport through
// the same mutations production code uses.
func buildActivity(t *testing.T, typ model.ActivityType, fill func(a *model.SportsActivity[model.Game])) *model.SportsActivity[model.Game] {
	t.Helper()
	game, err := parse.NewGame(typ)
	require.NoError(t, err)
	a := &model.SportsActivity[model.Game]{
		Activity: model.Activity{
			ID:        "act-1",
			Name:      "round trip",
			Type:      typ,
			StartTime: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		Teams:   []model.Team{},
		Players: []model.Player{},
		Game:    game,
	}
	_, err = a.AddTeam("Alpha")
	require.NoError(t, err)
	_, err = a.AddTeam("Beta")
	require.NoError(t, err)
	require.NoError(t, a.AddPlayer(model.Player{
		Participant: model.Participant{USN: "u1", Name: "Player One", Gender: "F"},
		TeamID:      a.Teams[0].ID,
		IsPlaying:   true,
		Stats:       map[string]string{"position": "captain"},
	}))
	fill(a)
	return a
}

func TestRoundTrip_AllVariants(t *testing.T) {
	cases := []struct {
		name string
		typ  model.ActivityType
		fill func(a *model.SportsActivity[model.Game])
	}{
		{"cricket", model.TypeCricket, func(a *model.SportsActivity[model.Game]) {
			g := a.Game.(*model.Cricket)
			require.NoError(t, g.AddInnings(a.Teams[0].ID, a.Teams[1].ID))
			require.NoError(t, g.AddBall(0, "u9", model.Ball{BatsmanID: "u1", Runs: 4}))
			require.NoError(t, g.AddBall(0, "u9", model.Ball{BatsmanID: "u1", Type: model.BallWide}))
		}},
		{"football", model.TypeFootball, func(a *model.SportsActivity[model.Game]) {
			g := a.Game.(*model.Football)
			g.AddGoal(a.Teams[0].ID, "u1")
			g.AddOwnGoal(a.Teams[1].ID, "u9")
			g.AddYellowCard(a.Teams[1].ID, "u9")
		}},
		{"basketball", model.TypeBasketball, func(a *model.SportsActivity[model.Game]) {
			g := a.Game.(*model.Basketball)
			require.NoError(t, g.AddBasket(a.Teams[0].ID, "u1", 3))
			require.NoError(t, g.AddBasket(a.Teams[1].ID, "u9", 2))
		}},
		{"generic", model.TypeVolleyball, func(a *model.SportsActivity[model.Game]) {
			g := a.Game.(*model.OtherSport)
			require.NoError(t, g.AddPoints(a.Teams[0].ID, 25))
			require.NoError(t, g.AddPoints(a.Teams[1].ID, 21))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := buildActivity(t, tc.typ, tc.fill)

			payload, err := parse.ToPayload(a)
			require.NoError(t, err)
			got, err := parse.Activity(payload)
			require.NoError(t, err)

			assert.Equal(t, a.ID, got.ID)
			assert.Equal(t, a.Type, got.Type)
			assert.True(t, a.StartTime.Equal(got.StartTime), "start time drifted: %v vs %v", a.StartTime, got.StartTime)
			assert.Equal(t, a.Teams, got.Teams)
			assert.Equal(t, a.Players, got.Players)
			assert.Equal(t, a.Game, got.Game)
		})
	}
}
