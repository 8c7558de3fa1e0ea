package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openamr/surveillance-api/schema"
)

// Catalog resolves pathogen and antibiotic names to deduplicated catalog
// entities. Lookup is a case-sensitive exact name match; a miss inserts a
// new entity. A duplicate-key write error from a concurrent insert of the
// same name is retried as a lookup, so at most one entity exists per name.
type Catalog interface {
	ResolvePathogen(name, scientificName, pathogenType string) (*schema.Pathogen, error)
	ResolveAntibiotic(name, drugClass string) (*schema.Antibiotic, error)
	GetPathogen(id primitive.ObjectID) (*schema.Pathogen, error)
	GetAntibiotic(id primitive.ObjectID) (*schema.Antibiotic, error)
	ListPathogens() ([]schema.Pathogen, error)
	ListAntibiotics() ([]schema.Antibiotic, error)
}

func (m *mongoDB) ResolvePathogen(name, scientificName, pathogenType string) (*schema.Pathogen, error) {
	if name == "" {
		return nil, ErrEmptyCatalogName
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PathogenCollection)

	var p schema.Pathogen
	err := c.FindOne(ctx, bson.M{"name": name}).Decode(&p)
	if err == nil {
		return &p, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	p = schema.Pathogen{
		Name:           name,
		ScientificName: scientificName,
		PathogenType:   pathogenType,
	}

	result, err := c.InsertOne(ctx, &p)
	if err != nil {
		if isDuplicateKeyError(err) {
			// another ingestion created the same name first
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"name":   name,
			}).Debug("pathogen created concurrently, re-selecting")

			if err := c.FindOne(ctx, bson.M{"name": name}).Decode(&p); err != nil {
				return nil, err
			}
			return &p, nil
		}
		return nil, err
	}

	p.ID = result.InsertedID.(primitive.ObjectID)
	return &p, nil
}

func (m *mongoDB) ResolveAntibiotic(name, drugClass string) (*schema.Antibiotic, error) {
	if name == "" {
		return nil, ErrEmptyCatalogName
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AntibioticCollection)

	var a schema.Antibiotic
	err := c.FindOne(ctx, bson.M{"name": name}).Decode(&a)
	if err == nil {
		return &a, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	a = schema.Antibiotic{
		Name:      name,
		DrugClass: drugClass,
	}

	result, err := c.InsertOne(ctx, &a)
	if err != nil {
		if isDuplicateKeyError(err) {
			log.WithFields(log.Fields{
				"prefix": mongoLogPrefix,
				"name":   name,
			}).Debug("antibiotic created concurrently, re-selecting")

			if err := c.FindOne(ctx, bson.M{"name": name}).Decode(&a); err != nil {
				return nil, err
			}
			return &a, nil
		}
		return nil, err
	}

	a.ID = result.InsertedID.(primitive.ObjectID)
	return &a, nil
}

func (m *mongoDB) GetPathogen(id primitive.ObjectID) (*schema.Pathogen, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var p schema.Pathogen
	if err := m.client.Database(m.database).Collection(schema.PathogenCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *mongoDB) GetAntibiotic(id primitive.ObjectID) (*schema.Antibiotic, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var a schema.Antibiotic
	if err := m.client.Database(m.database).Collection(schema.AntibioticCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (m *mongoDB) ListPathogens() ([]schema.Pathogen, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := m.client.Database(m.database).Collection(schema.PathogenCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	pathogens := make([]schema.Pathogen, 0)
	if err := cur.All(ctx, &pathogens); err != nil {
		return nil, err
	}
	return pathogens, nil
}

func (m *mongoDB) ListAntibiotics() ([]schema.Antibiotic, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := m.client.Database(m.database).Collection(schema.AntibioticCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	antibiotics := make([]schema.Antibiotic, 0)
	if err := cur.All(ctx, &antibiotics); err != nil {
		return nil, err
	}
	return antibiotics, nil
}
