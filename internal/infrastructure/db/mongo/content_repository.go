package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khulna-traveller/travel-api/internal/core/domain"
)

// Store collection names. "them" is the historical name of the team-members
// collection and is kept for compatibility with existing data.
const (
	BannerCollection  = "banner"
	PlanCollection    = "latestPlan"
	TeamCollection    = "them"
	GalleryCollection = "gallery"
)

// ContentRepository is a schemaless document repository bound to a single
// collection. One instance per content collection.
type ContentRepository struct {
	coll *mongo.Collection
}

func NewContentRepository(db *mongo.Database, collection string) *ContentRepository {
	return &ContentRepository{coll: db.Collection(collection)}
}

func (r *ContentRepository) Insert(ctx context.Context, doc domain.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *ContentRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var raw bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return normalize(raw), nil
}

func (r *ContentRepository) FindAll(ctx context.Context) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer cursor.Close(ctx)

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}

	docs := make([]domain.Document, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, normalize(raw))
	}
	return docs, nil
}

func (r *ContentRepository) Upsert(ctx context.Context, id string, doc domain.Document) (*domain.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M(doc)},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert document: %w", err)
	}
	return toUpdateResult(res), nil
}

func (r *ContentRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete document: %w", err)
	}
	return &domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// normalize rewrites the driver's ObjectID into its hex form so documents
// serialize to JSON the way clients expect.
func normalize(raw bson.M) domain.Document {
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		raw["_id"] = oid.Hex()
	}
	return domain.Document(raw)
}
