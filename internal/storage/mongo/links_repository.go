package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/IgorGrieder/shortlink/internal/infrastructure/db"
	"github.com/IgorGrieder/shortlink/internal/processing/links"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultCollection = "urls"

var _ links.LinkRepository = (*LinksRepository)(nil)

type LinksRepository struct {
	coll *mongo.Collection
}

type LinksRepositoryOptions struct {
	Collection string
	// TTLIndex lets the server purge documents once "expires" has passed.
	// Without it expired links stay in the collection and are only hidden
	// from lookups.
	TTLIndex bool
}

type linkDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Alias     string             `bson:"alias"`
	URL       string             `bson:"url"`
	CreatedAt time.Time          `bson:"createdAt"`
	Expires   time.Time          `bson:"expires"`
}

func NewLinksRepository(m *db.Mongo, opts LinksRepositoryOptions) (*LinksRepository, error) {
	if opts.Collection == "" {
		opts.Collection = DefaultCollection
	}
	repo := &LinksRepository{coll: m.Collection(opts.Collection)}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "alias", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_alias"),
		},
	}
	if opts.TTLIndex {
		indexes = append(indexes, mongo.IndexModel{
			Keys:    bson.D{{Key: "expires", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0).SetName("ttl_expires"),
		})
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *LinksRepository) Exists(ctx context.Context, alias string) (bool, error) {
	err := r.coll.FindOne(
		ctx,
		bson.M{"alias": alias},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// InsertIfAbsent upserts with $setOnInsert so an existing document is never
// touched. Two concurrent upserts on a missing alias can both try to insert;
// the unique index rejects the loser and that duplicate key error is dropped.
func (r *LinksRepository) InsertIfAbsent(ctx context.Context, link *links.ShortLink) error {
	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"alias": link.Alias},
		bson.M{
			"$setOnInsert": bson.M{
				"alias":     link.Alias,
				"url":       link.URL,
				"createdAt": link.CreatedAt.UTC(),
				"expires":   link.Expires.UTC(),
			},
		},
		options.Update().SetUpsert(true),
	)
	if err == nil || mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

func (r *LinksRepository) FindLive(ctx context.Context, alias string, at time.Time) (*links.ShortLink, error) {
	filter := bson.M{
		"alias":   alias,
		"expires": bson.M{"$gt": at.UTC()},
	}

	var doc linkDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err == nil {
		return mapLinkDoc(doc), nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, links.ErrNotFound
	}

	return nil, err
}

func mapLinkDoc(doc linkDoc) *links.ShortLink {
	return &links.ShortLink{
		Alias:     doc.Alias,
		URL:       doc.URL,
		CreatedAt: doc.CreatedAt.UTC(),
		Expires:   doc.Expires.UTC(),
	}
}
