package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/travelhub/booking-system/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository wraps the users collection. Connect creates the
// unique index on email, which is what keeps the duplicate check below
// from degrading to a racy find-then-insert.
func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	Email        string `bson:"email"`
	Name         string `bson:"name"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
}

func (r *MongoUserRepository) Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	doc := mongoUser{
		Email:        identity.Email,
		Name:         identity.Name,
		PasswordHash: identity.PasswordHash,
		Role:         string(identity.Role),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return identity, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.Identity{
		Email:        mu.Email,
		Name:         mu.Name,
		PasswordHash: mu.PasswordHash,
		Role:         domain.Role(mu.Role),
	}, nil
}
