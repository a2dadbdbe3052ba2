package todos

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "todos"

// MongoRepository stores todos as documents keyed by their id. List order is
// the collection's natural order, which is insertion order for this workload.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

func owned(id, creatorID string) bson.M {
	return bson.M{"_id": id, "_creator": creatorID}
}

func (r *MongoRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	if _, err := r.coll.InsertOne(ctx, todo); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return todo, nil
}

func (r *MongoRepository) ListByCreator(ctx context.Context, creatorID string) ([]*models.Todo, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"_creator": creatorID})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	result := make([]*models.Todo, 0)
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *MongoRepository) Get(ctx context.Context, id, creatorID string) (*models.Todo, error) {
	return decodeOne(r.coll.FindOne(ctx, owned(id, creatorID)))
}

func (r *MongoRepository) Update(ctx context.Context, id, creatorID string, upd models.TodoUpdate) (*models.Todo, error) {
	set := bson.M{
		"completed":   upd.Completed,
		"completedAt": upd.CompletedAt,
	}
	if upd.Text != nil {
		set["text"] = *upd.Text
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return decodeOne(r.coll.FindOneAndUpdate(ctx, owned(id, creatorID), bson.M{"$set": set}, opts))
}

func (r *MongoRepository) Delete(ctx context.Context, id, creatorID string) (*models.Todo, error) {
	return decodeOne(r.coll.FindOneAndDelete(ctx, owned(id, creatorID)))
}

func decodeOne(res *mongo.SingleResult) (*models.Todo, error) {
	t := &models.Todo{}
	if err := res.Decode(t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
