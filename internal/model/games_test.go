package model_test

import (
	"testing"

	"github.com/festops/scoreboard-service/internal/model"
)

func TestFootball_EventLists(t *testing.T) {
	var f model.Football
	f.AddGoal("a", "p1")
	f.AddGoal("a", "p1")
	f.AddOwnGoal("a", "p2")
	f.AddAssist("a", "p3")
	f.AddYellowCard("b", "p9")
	f.AddRedCard("b", "p9")

	if len(f.Stats) != 2 {
		t.Fatalf("stats entries = %d, want 2", len(f.Stats))
	}
	a := f.Stats[0]
	if a.TeamID != "a" || len(a.Goals) != 2 || len(a.OwnGoals) != 1 || len(a.Assists) != 1 {
		t.Errorf("team a stats wrong: %+v", a)
	}
	b := f.Stats[1]
	if len(b.YellowCards) != 1 || len(b.RedCards) != 1 {
		t.Errorf("team b cards wrong: %+v", b)
	}
}

func TestFootball_SetPosition_Upserts(t *testing.T) {
	var f model.Football
	f.SetPosition("a", "p1", "GK")
	f.SetPosition("a", "p1", "DEF")
	pos := f.Stats[0].Positions
	if len(pos) != 1 || pos[0].Position != "DEF" {
		t.Errorf("positions = %+v, want single DEF entry", pos)
	}
}

func TestBasketball_AddBasket_Denominations(t *testing.T) {
	var b model.Basketball
	for _, d := range []int{1, 2, 3} {
		if err := b.AddBasket("a", "p1", d); err != nil {
			t.Fatalf("denomination %d: %v", d, err)
		}
	}
	for _, d := range []int{0, 4, -2} {
		if err := b.AddBasket("a", "p1", d); err != model.ErrBadDenom {
			t.Errorf("denomination %d: got %v, want ErrBadDenom", d, err)
		}
	}
	if got := len(b.Stats[0].Points); got != 3 {
		t.Errorf("recorded actions = %d, want 3", got)
	}
}

func TestOtherSport_ClampAtZero(t *testing.T) {
	var o model.OtherSport
	if err := o.AddPoints("a", 5); err != nil {
		t.Fatal(err)
	}
	if err := o.RemovePoints("a", 8); err != nil {
		t.Fatal(err)
	}
	if got := o.Points[0].Points; got != 0 {
		t.Errorf("total = %d, want 0 (clamped)", got)
	}
	if err := o.AddPoints("a", -1); err != model.ErrNegativePoints {
		t.Errorf("negative add: got %v, want ErrNegativePoints", err)
	}
	if err := o.RemovePoints("a", -1); err != model.ErrNegativePoints {
		t.Errorf("negative remove: got %v, want ErrNegativePoints", err)
	}
}
