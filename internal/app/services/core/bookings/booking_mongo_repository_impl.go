package bookings

import (
	"context"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID := result.InsertedID.(primitive.ObjectID)
	booking.ID = insertedID
	return insertedID.Hex(), nil
}

func (r *BookingMongoRepository) FindByDoctorAndSlot(ctx context.Context, doctorEmail, slot string) (*models.Booking, error) {
	var booking models.Booking
	filter := bson.M{
		"doctorEmail": doctorEmail,
		"slot":        slot,
	}
	err := r.Collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindAllByDoctorEmail(ctx context.Context, doctorEmail string) ([]models.Booking, error) {
	return r.findAll(ctx, bson.M{"doctorEmail": doctorEmail})
}

func (r *BookingMongoRepository) FindAllByPatientEmail(ctx context.Context, patientEmail string) ([]models.Booking, error) {
	return r.findAll(ctx, bson.M{"patientEmail": patientEmail})
}

func (r *BookingMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}
