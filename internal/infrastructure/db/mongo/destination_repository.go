package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/travelhub/booking-system/internal/core/domain"
)

const destinationCollection = "destinations"

type MongoDestinationRepository struct {
	coll *mongo.Collection
}

func NewDestinationRepository(db *mongo.Database) *MongoDestinationRepository {
	return &MongoDestinationRepository{coll: db.Collection(destinationCollection)}
}

type mongoDestination struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Description string `bson:"description,omitempty"`
	Location    string `bson:"location,omitempty"`
}

func (r *MongoDestinationRepository) FindAll(ctx context.Context) ([]domain.Destination, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find destinations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoDestination
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode destinations: %w", err)
	}

	destinations := make([]domain.Destination, 0, len(docs))
	for _, d := range docs {
		destinations = append(destinations, domain.Destination{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Location:    d.Location,
		})
	}
	return destinations, nil
}

func (r *MongoDestinationRepository) FindByID(ctx context.Context, id string) (*domain.Destination, error) {
	var d mongoDestination
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDestinationNotFound
		}
		return nil, fmt.Errorf("find destination: %w", err)
	}

	return &domain.Destination{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Location:    d.Location,
	}, nil
}

func (r *MongoDestinationRepository) Create(ctx context.Context, destination *domain.Destination) error {
	doc := mongoDestination{
		ID:          destination.ID,
		Name:        destination.Name,
		Description: destination.Description,
		Location:    destination.Location,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert destination: %w", err)
	}
	return nil
}

func (r *MongoDestinationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDestinationNotFound
	}
	return nil
}
