package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/verifly/verify_backend/config"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Client) *UserRepository {
	return &UserRepository{
		collection: config.GetCollection(db, "users"),
	}
}

// UpdateDetails sets the profile fields on the user document for the phone.
// The returned count is the number of matched documents, zero means no user
// exists for that phone.
func (r *UserRepository) UpdateDetails(ctx context.Context, phone, name, dob, gender string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"phone": phone}
	update := bson.M{
		"$set": bson.M{
			"name":      name,
			"dob":       dob,
			"gender":    gender,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}

	return result.MatchedCount, nil
}
