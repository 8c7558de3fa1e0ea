package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openamr/surveillance-api/schema"
)

// ObservationLedger appends validated observations. The ledger is
// append-only: observations are never updated or deleted.
type ObservationLedger interface {
	CommitLabBatch(observations []schema.Observation, alerts []schema.Alert) error
}

// CommitLabBatch persists a whole ingestion batch in one transaction.
// Either every observation and every fanned-out alert of the batch is
// written, or none is.
func (m *mongoDB) CommitLabBatch(observations []schema.Observation, alerts []schema.Alert) error {
	if len(observations) == 0 && len(alerts) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*defaultTimeout)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	db := m.client.Database(m.database)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if len(observations) > 0 {
			docs := make([]interface{}, 0, len(observations))
			for i := range observations {
				docs = append(docs, &observations[i])
			}
			if _, err := db.Collection(schema.ObservationCollection).InsertMany(sc, docs); err != nil {
				return nil, err
			}
		}

		if len(alerts) > 0 {
			docs := make([]interface{}, 0, len(alerts))
			for i := range alerts {
				docs = append(docs, &alerts[i])
			}
			if _, err := db.Collection(schema.AlertCollection).InsertMany(sc, docs); err != nil {
				return nil, err
			}
		}

		return nil, nil
	})

	if err != nil {
		log.WithFields(log.Fields{
			"prefix":       mongoLogPrefix,
			"observations": len(observations),
			"alerts":       len(alerts),
			"error":        err,
		}).Error("commit lab batch")
		return err
	}

	log.WithFields(log.Fields{
		"prefix":       mongoLogPrefix,
		"observations": len(observations),
		"alerts":       len(alerts),
	}).Info("committed lab batch")

	return nil
}
