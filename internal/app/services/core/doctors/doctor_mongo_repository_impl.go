package doctors

import (
	"context"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) UpsertProfile(ctx context.Context, profile *models.DoctorProfile) error {
	filter := bson.M{"email": profile.Email}
	replacement := bson.M{
		"email":          profile.Email,
		"name":           profile.Name,
		"specialization": profile.Specialization,
		"experience":     profile.Experience,
		"slots":          profile.Slots,
	}
	_, err := r.Collection.ReplaceOne(ctx, filter, replacement, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) FindByEmail(ctx context.Context, email string) (*models.DoctorProfile, error) {
	var profile models.DoctorProfile
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.DoctorProfile, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var profiles []models.DoctorProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return profiles, nil
}
