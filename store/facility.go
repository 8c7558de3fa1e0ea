package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openamr/surveillance-api/schema"
)

// FacilityOperator - facility reference data, read-mostly by the core
type FacilityOperator interface {
	CreateFacility(facility schema.Facility) (*schema.Facility, error)
	GetFacility(id primitive.ObjectID) (*schema.Facility, error)
	ListFacilities() ([]schema.Facility, error)
}

func (m *mongoDB) CreateFacility(facility schema.Facility) (*schema.Facility, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	facility.CreatedAt = time.Now().UTC().Unix()

	result, err := m.client.Database(m.database).Collection(schema.FacilityCollection).
		InsertOne(ctx, &facility)
	if err != nil {
		return nil, err
	}

	facility.ID = result.InsertedID.(primitive.ObjectID)
	return &facility, nil
}

func (m *mongoDB) GetFacility(id primitive.ObjectID) (*schema.Facility, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var f schema.Facility
	err := m.client.Database(m.database).Collection(schema.FacilityCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, ErrFacilityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (m *mongoDB) ListFacilities() ([]schema.Facility, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := m.client.Database(m.database).Collection(schema.FacilityCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	facilities := make([]schema.Facility, 0)
	if err := cur.All(ctx, &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}
