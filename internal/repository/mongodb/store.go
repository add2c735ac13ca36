// Package mongodb implements the activity repository on a MongoDB
// collection. One activity is one document; every write replaces the
// whole document.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/festops/scoreboard-service/internal/model"
	"github.com/festops/scoreboard-service/internal/parse"
	"github.com/festops/scoreboard-service/internal/repository"
)

// Store holds the client and the activities collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
	log    zerolog.Logger
}

var (
	_ repository.ActivityRepository = (*Store)(nil)
	_ repository.Pinger             = (*Store)(nil)
)

// New connects and selects the activities collection.
func New(ctx context.Context, uri, database, collection string, logger zerolog.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	l := logger.With().Str("module", "repository").Str("component", "mongodb").Logger()
	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
		log:    l,
	}, nil
}

// Close releases the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping satisfies the readiness probe contract.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// activityDoc is the stored shape. Game is kept raw because its
// concrete type depends on the activity's discriminant; it is
// re-decoded through the same dispatch the JSON path uses.
type activityDoc struct {
	ID        string         `bson:"id"`
	Name      string         `bson:"name"`
	Type      int            `bson:"type"`
	StartTime time.Time      `bson:"startTime"`
	EndTime   *time.Time     `bson:"endTime,omitempty"`
	Teams     []model.Team   `bson:"teams"`
	Players   []model.Player `bson:"participants"`
	Game      bson.Raw       `bson:"game,omitempty"`
}

// Save upserts the whole document keyed by activity id. Two admin
// sessions saving the same activity race as last-write-wins; there is
// no version field.
func (s *Store) Save(ctx context.Context, a *model.SportsActivity[model.Game]) error {
	gameRaw, err := bson.Marshal(a.Game)
	if err != nil {
		return fmt.Errorf("encode game: %w", err)
	}
	doc := activityDoc{
		ID:        a.ID,
		Name:      a.Name,
		Type:      int(a.Type),
		StartTime: a.StartTime.UTC(),
		EndTime:   a.EndTime,
		Teams:     a.Teams,
		Players:   a.Players,
		Game:      gameRaw,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"id": a.ID}, doc, opts); err != nil {
		return mapMongoError(err)
	}
	s.log.Debug().Str("activity_id", a.ID).Msg("activity saved")
	return nil
}

// Get loads one activity and restores the typed game variant.
func (s *Store) Get(ctx context.Context, id string) (*model.SportsActivity[model.Game], error) {
	var doc activityDoc
	if err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, mapMongoError(err)
	}
	return doc.toModel()
}

// List returns a startTime-ordered window plus the total count.
func (s *Store) List(ctx context.Context, p repository.Page) (repository.PageResult[*model.SportsActivity[model.Game]], error) {
	var res repository.PageResult[*model.SportsActivity[model.Game]]

	total, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return res, mapMongoError(err)
	}
	res.Total = int(total)

	opts := options.Find().
		SetSort(bson.D{{Key: "startTime", Value: 1}}).
		SetSkip(int64(p.Offset)).
		SetLimit(int64(p.Limit))
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return res, mapMongoError(err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc activityDoc
		if err := cur.Decode(&doc); err != nil {
			return res, mapMongoError(err)
		}
		a, err := doc.toModel()
		if err != nil {
			// A malformed document must not take down the whole list.
			s.log.Warn().Err(err).Str("activity_id", doc.ID).Msg("skipping undecodable activity")
			continue
		}
		res.Items = append(res.Items, a)
	}
	return res, cur.Err()
}

// Delete removes one activity document.
func (s *Store) Delete(ctx context.Context, id string) error {
	out, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return mapMongoError(err)
	}
	if out.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (d activityDoc) toModel() (*model.SportsActivity[model.Game], error) {
	game, err := parse.NewGame(model.ActivityType(d.Type))
	if err != nil {
		return nil, err
	}
	if len(d.Game) > 0 {
		if err := bson.Unmarshal(d.Game, game); err != nil {
			return nil, fmt.Errorf("decode game for type %d: %w", d.Type, err)
		}
	}
	players := d.Players
	if players == nil {
		players = []model.Player{}
	}
	teams := d.Teams
	if teams == nil {
		teams = []model.Team{}
	}
	return &model.SportsActivity[model.Game]{
		Activity: model.Activity{
			ID:        d.ID,
			Name:      d.Name,
			Type:      model.ActivityType(d.Type),
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		},
		Teams:   teams,
		Players: players,
		Game:    game,
	}, nil
}

// mapMongoError translates driver errors to domain errors; anything
// unexpected passes through for the caller to log.
func mapMongoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrAlreadyExists
	}
	return err
}
