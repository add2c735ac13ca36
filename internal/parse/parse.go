// Package parse builds typed activities from untyped payloads. The
// same document shape flows to and from the store, so the inverse
// (ToPayload) lives here too.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/xid"

	"github.com/festops/scoreboard-service/internal/model"
)

var (
	// ErrMissingParticipants marks the one hard-required payload field;
	// the rest of the pipeline assumes the array exists.
	ErrMissingParticipants = errors.New("payload is missing participants")
	// ErrNotSports is returned for discriminants outside the sports
	// band; cultural/tech/general activities carry no game log.
	ErrNotSports = errors.New("activity type is not in the sports band")
)

var validate = validator.New()

// envelope is the canonical serialized activity shape. Optional fields
// default on parse; participants is required.
type envelope struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      *int            `json:"type"`
	EventType *int            `json:"eventType"`
	StartTime *time.Time      `json:"startTime"`
	EndTime   *time.Time      `json:"endTime"`
	Teams     []model.Team    `json:"teams"`
	Players   *[]model.Player `json:"participants" validate:"required"`
	Game      json.RawMessage `json:"game"`
}

// normalizeType resolves the discriminant: a payload may carry the
// internal "type" or the external "eventType"; internal wins when both
// appear.
func (e envelope) normalizeType() (model.ActivityType, bool) {
	if e.Type != nil {
		return model.ActivityType(*e.Type), true
	}
	if e.EventType != nil {
		return model.ActivityType(*e.EventType), true
	}
	return 0, false
}

// NewGame returns the empty Game variant for a sports discriminant.
// Exact codes select cricket, football and basketball; any other code
// in the sports band falls back to the generic point log, so new
// sports slot in without dispatch changes.
func NewGame(t model.ActivityType) (model.Game, error) {
	if model.BandOf(t) != model.BandSports {
		return nil, fmt.Errorf("%w: %d", ErrNotSports, t)
	}
	switch t {
	case model.TypeCricket:
		return &model.Cricket{}, nil
	case model.TypeFootball:
		return &model.Football{}, nil
	case model.TypeBasketball:
		return &model.Basketball{}, nil
	default:
		return &model.OtherSport{}, nil
	}
}

// FromJSON parses a serialized activity document. Missing optional
// fields default (fresh id, current start time, empty teams and game);
// missing participants is a validation error, never a silent default.
func FromJSON(data []byte) (*model.SportsActivity[model.Game], error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unparseable activity payload: %w", err)
	}
	if err := validate.Struct(env); err != nil {
		return nil, ErrMissingParticipants
	}

	code, ok := env.normalizeType()
	if !ok {
		return nil, fmt.Errorf("%w: payload has no type or eventType", ErrNotSports)
	}
	game, err := NewGame(code)
	if err != nil {
		return nil, err
	}
	if len(env.Game) > 0 {
		if err := json.Unmarshal(env.Game, game); err != nil {
			return nil, fmt.Errorf("game payload does not match sport %d: %w", code, err)
		}
	}

	a := &model.SportsActivity[model.Game]{
		Activity: model.Activity{
			ID:      env.ID,
			Name:    env.Name,
			Type:    code,
			EndTime: env.EndTime,
		},
		Teams:   env.Teams,
		Players: *env.Players,
		Game:    game,
	}
	if a.ID == "" {
		a.ID = xid.New().String()
	}
	if env.StartTime != nil {
		a.StartTime = *env.StartTime
	} else {
		a.StartTime = time.Now().UTC()
	}
	if a.Teams == nil {
		a.Teams = []model.Team{}
	}
	// Teams pass through as-is, except a missing slug is backfilled so
	// the uniqueness guard keeps working on older documents.
	for i := range a.Teams {
		if a.Teams[i].Slug == "" {
			a.Teams[i].Slug = model.Slugify(a.Teams[i].Name)
		}
	}
	return a, nil
}

// Activity parses an untyped document, as handed back by the store or
// an admin client.
func Activity(payload map[string]any) (*model.SportsActivity[model.Game], error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("unparseable activity payload: %w", err)
	}
	return FromJSON(data)
}

// ToPayload is the inverse of Activity: the canonical untyped document
// for whole-document persistence. Activity(ToPayload(a)) reproduces a
// structurally equal activity for every Game variant.
func ToPayload(a *model.SportsActivity[model.Game]) (map[string]any, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
