package tokens

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository keeps tokens embedded in the user document, in the
// "tokens" array of the given users collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(users *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: users}
}

func (r *MongoRepository) Add(ctx context.Context, userID string, token models.Token) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"tokens": token}},
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *MongoRepository) Exists(ctx context.Context, userID string, value string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": userID, "tokens.token": value})
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *MongoRepository) Remove(ctx context.Context, userID string, value string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"tokens": bson.M{"token": value}}},
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
