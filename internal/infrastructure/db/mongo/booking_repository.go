package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/travelhub/booking-system/internal/core/domain"
)

const bookingCollection = "bookings"

type MongoBookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *MongoBookingRepository {
	return &MongoBookingRepository{coll: db.Collection(bookingCollection)}
}

type mongoBooking struct {
	ID              string `bson:"_id"`
	UserEmail       string `bson:"user_email"`
	Destination     string `bson:"destination"`
	BookingDateTime int64  `bson:"booking_date_time"`
	DepartureTime   int64  `bson:"departure_time"`
	ArrivalTime     int64  `bson:"arrival_time"`
}

func (r *MongoBookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoBooking
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	bookings := make([]domain.Booking, 0, len(docs))
	for _, b := range docs {
		bookings = append(bookings, domain.Booking{
			ID:              b.ID,
			UserEmail:       b.UserEmail,
			Destination:     b.Destination,
			BookingDateTime: unixToTime(b.BookingDateTime),
			DepartureTime:   unixToTime(b.DepartureTime),
			ArrivalTime:     unixToTime(b.ArrivalTime),
		})
	}
	return bookings, nil
}

func (r *MongoBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	doc := mongoBooking{
		ID:              booking.ID,
		UserEmail:       booking.UserEmail,
		Destination:     booking.Destination,
		BookingDateTime: booking.BookingDateTime.Unix(),
		DepartureTime:   booking.DepartureTime.Unix(),
		ArrivalTime:     booking.ArrivalTime.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
