package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/premierleague/fixtures-api/internal/core/domain"
	"github.com/premierleague/fixtures-api/internal/core/ports"
)

const fixturesCollection = "fixtures"

// FixtureRepository persists fixtures with team references and resolves the
// references on every read through a $lookup aggregation, so callers always
// receive fully populated teams.
type FixtureRepository struct {
	coll *mongo.Collection
}

func NewFixtureRepository(db *mongo.Database) *FixtureRepository {
	return &FixtureRepository{coll: db.Collection(fixturesCollection)}
}

type fixtureDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	HomeTeamID primitive.ObjectID `bson:"home_team_id"`
	AwayTeamID primitive.ObjectID `bson:"away_team_id"`
	Date       time.Time          `bson:"date"`
	Score      string             `bson:"score,omitempty"`
	Link       string             `bson:"link"`
	CreatedAt  time.Time          `bson:"created_at"`
}

// fixtureView is the shape produced by the lookup pipeline.
type fixtureView struct {
	ID        primitive.ObjectID `bson:"_id"`
	HomeTeam  teamDoc            `bson:"home_team"`
	AwayTeam  teamDoc            `bson:"away_team"`
	Date      time.Time          `bson:"date"`
	Score     string             `bson:"score,omitempty"`
	Link      string             `bson:"link"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (v fixtureView) toDomain() *domain.Fixture {
	return &domain.Fixture{
		ID:        v.ID.Hex(),
		HomeTeam:  *v.HomeTeam.toDomain(),
		AwayTeam:  *v.AwayTeam.toDomain(),
		Date:      v.Date.UTC(),
		Score:     v.Score,
		Link:      v.Link,
		CreatedAt: v.CreatedAt.UTC(),
	}
}

func (r *FixtureRepository) Create(ctx context.Context, rec ports.FixtureRecord) (*domain.Fixture, error) {
	homeID, awayID, err := teamRefs(rec)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fixtureDoc{
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Date:       rec.Date,
		Link:       rec.Link,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrFixtureExists
		}
		return nil, fmt.Errorf("insert fixture: %w", err)
	}

	return r.findByObjectID(ctx, res.InsertedID.(primitive.ObjectID))
}

func (r *FixtureRepository) FindByID(ctx context.Context, id string) (*domain.Fixture, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findByObjectID(ctx, oid)
}

func (r *FixtureRepository) ListAll(ctx context.Context) ([]*domain.Fixture, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.aggregate(ctx, bson.M{})
}

func (r *FixtureRepository) Update(ctx context.Context, id string, rec ports.FixtureRecord) (*domain.Fixture, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	homeID, awayID, err := teamRefs(rec)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"home_team_id": homeID,
		"away_team_id": awayID,
		"date":         rec.Date,
	}})
	if err != nil {
		return nil, fmt.Errorf("update fixture: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrFixtureNotFound
	}

	return r.findByObjectID(ctx, oid)
}

func (r *FixtureRepository) UpdateScore(ctx context.Context, id, score string) (*domain.Fixture, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"score": score}})
	if err != nil {
		return nil, fmt.Errorf("update fixture score: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrFixtureNotFound
	}

	return r.findByObjectID(ctx, oid)
}

func (r *FixtureRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFixtureNotFound
	}
	return nil
}

// EnsureIndexes creates the unique link index and the date index used for
// sorted listings.
func (r *FixtureRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "link", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	})
	return err
}

func (r *FixtureRepository) findByObjectID(ctx context.Context, oid primitive.ObjectID) (*domain.Fixture, error) {
	fixtures, err := r.aggregate(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(fixtures) == 0 {
		return nil, domain.ErrFixtureNotFound
	}
	return fixtures[0], nil
}

func (r *FixtureRepository) aggregate(ctx context.Context, match bson.M) ([]*domain.Fixture, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         teamsCollection,
			"localField":   "home_team_id",
			"foreignField": "_id",
			"as":           "home_team",
		}}},
		{{Key: "$unwind", Value: "$home_team"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         teamsCollection,
			"localField":   "away_team_id",
			"foreignField": "_id",
			"as":           "away_team",
		}}},
		{{Key: "$unwind", Value: "$away_team"}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate fixtures: %w", err)
	}
	defer cur.Close(ctx)

	var views []fixtureView
	if err := cur.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	fixtures := make([]*domain.Fixture, len(views))
	for i, v := range views {
		fixtures[i] = v.toDomain()
	}
	return fixtures, nil
}

func teamRefs(rec ports.FixtureRecord) (home, away primitive.ObjectID, err error) {
	home, err = primitive.ObjectIDFromHex(rec.HomeTeamID)
	if err != nil {
		return home, away, domain.ErrInvalidID
	}
	away, err = primitive.ObjectIDFromHex(rec.AwayTeamID)
	if err != nil {
		return home, away, domain.ErrInvalidID
	}
	return home, away, nil
}
