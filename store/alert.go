package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openamr/surveillance-api/schema"
)

// AlertFilter narrows alert listings for one user.
type AlertFilter struct {
	UnreadOnly bool
	AlertType  string
	Limit      int64
}

// AlertOperator persists and updates per-recipient alert copies.
type AlertOperator interface {
	CreateAlerts(payload schema.AlertPayload, userIDs []string) (int, error)
	ListAlerts(userID string, filter AlertFilter) ([]schema.Alert, error)
	CountUnreadAlerts(userID string) (int64, error)
	AcknowledgeAlert(userID string, alertID primitive.ObjectID) error
	ResolveAlert(userID string, alertID primitive.ObjectID) error
	DismissAlert(userID string, alertID primitive.ObjectID) error
}

// CreateAlerts fans one payload out to every recipient, one persisted
// alert per user. Returns the number of copies written.
func (m *mongoDB) CreateAlerts(payload schema.AlertPayload, userIDs []string) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC().Unix()
	docs := make([]interface{}, 0, len(userIDs))
	for _, userID := range userIDs {
		alert := schema.NewAlert(payload, userID, now)
		docs = append(docs, &alert)
	}

	result, err := m.client.Database(m.database).Collection(schema.AlertCollection).
		InsertMany(ctx, docs)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"alert_type": payload.AlertType,
			"error":      err,
		}).Error("fan out alerts")
		return 0, err
	}

	log.WithFields(log.Fields{
		"prefix":     mongoLogPrefix,
		"alert_type": payload.AlertType,
		"severity":   payload.Severity,
		"recipients": len(result.InsertedIDs),
	}).Info("fanned out alerts")

	return len(result.InsertedIDs), nil
}

func (m *mongoDB) ListAlerts(userID string, filter AlertFilter) ([]schema.Alert, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": userID}
	if filter.UnreadOnly {
		query["read"] = false
	}
	if filter.AlertType != "" {
		query["alert_type"] = filter.AlertType
	}

	opts := options.Find().SetSort(bson.M{"created_ts": -1})
	if filter.Limit > 0 {
		opts = opts.SetLimit(filter.Limit)
	}

	cur, err := m.client.Database(m.database).Collection(schema.AlertCollection).
		Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	alerts := make([]schema.Alert, 0)
	if err := cur.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (m *mongoDB) CountUnreadAlerts(userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Database(m.database).Collection(schema.AlertCollection).
		CountDocuments(ctx, bson.M{"user_id": userID, "read": false})
}

// AcknowledgeAlert marks one alert read. The user scope on the query
// keeps a user from touching another recipient's copy.
func (m *mongoDB) AcknowledgeAlert(userID string, alertID primitive.ObjectID) error {
	return m.updateAlert(userID, alertID, bson.M{"read": true})
}

// ResolveAlert marks an alert read with action taken.
func (m *mongoDB) ResolveAlert(userID string, alertID primitive.ObjectID) error {
	return m.updateAlert(userID, alertID, bson.M{"read": true, "action_taken": true})
}

// DismissAlert deletes the user's copy of an alert.
func (m *mongoDB) DismissAlert(userID string, alertID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.client.Database(m.database).Collection(schema.AlertCollection).
		DeleteOne(ctx, bson.M{"_id": alertID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func (m *mongoDB) updateAlert(userID string, alertID primitive.ObjectID, set bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var updated schema.Alert
	err := m.client.Database(m.database).Collection(schema.AlertCollection).
		FindOneAndUpdate(ctx,
			bson.M{"_id": alertID, "user_id": userID},
			bson.M{"$set": set},
		).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return ErrAlertNotFound
	}
	return err
}
