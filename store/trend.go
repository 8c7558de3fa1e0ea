package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openamr/surveillance-api/resistance"
	"github.com/openamr/surveillance-api/schema"
)

// TrendWindowDays is the rolling detection window.
const TrendWindowDays = 30

// TrendOperator builds per-day resistance series and scans them for
// outbreak signals.
type TrendOperator interface {
	TrendWindow(now time.Time) ([]resistance.TrendPoint, error)
	DetectOutbreaks(now time.Time) ([]schema.OutbreakSignal, error)
}

// TrendWindow aggregates the last TrendWindowDays of observations into
// daily (region, city, pathogen) points.
func (m *mongoDB) TrendWindow(now time.Time) ([]resistance.TrendPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	start := now.UTC().AddDate(0, 0, -TrendWindowDays).Unix()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: aggStageMatchWindow(start, 0)["$match"]}},
		bson.D{{Key: "$addFields", Value: aggStageDayKey()["$addFields"]}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"region":      "$region",
				"city":        "$city",
				"pathogen_id": "$pathogen_id",
				"day":         "$day",
			},
			"pathogen_name": bson.M{"$first": "$pathogen_name"},
			"location":      bson.M{"$first": "$location"},
			"total":         aggKnownResultCount(),
			"resistant":     aggResistantSum(),
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id.day": 1}}},
	}

	cur, err := m.client.Database(m.database).Collection(schema.ObservationCollection).
		Aggregate(ctx, pipeline)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("aggregate trend window")
		return nil, err
	}

	var rows []struct {
		ID struct {
			Region     string             `bson:"region"`
			City       string             `bson:"city"`
			PathogenID primitive.ObjectID `bson:"pathogen_id"`
			Day        int64              `bson:"day"`
		} `bson:"_id"`
		PathogenName string          `bson:"pathogen_name"`
		Location     *schema.GeoJSON `bson:"location"`
		Total        int             `bson:"total"`
		Resistant    int             `bson:"resistant"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	points := make([]resistance.TrendPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, resistance.TrendPoint{
			Region:       row.ID.Region,
			City:         row.ID.City,
			PathogenID:   row.ID.PathogenID,
			PathogenName: row.PathogenName,
			Location:     row.Location,
			Day:          row.ID.Day,
			Total:        row.Total,
			Resistant:    row.Resistant,
		})
	}

	return points, nil
}

// DetectOutbreaks runs signal detection over the current trend window.
// Detection is read-only: signals are returned, never persisted here.
func (m *mongoDB) DetectOutbreaks(now time.Time) ([]schema.OutbreakSignal, error) {
	points, err := m.TrendWindow(now)
	if err != nil {
		return nil, err
	}

	signals := resistance.DetectSignals(points)

	log.WithFields(log.Fields{
		"prefix":  mongoLogPrefix,
		"points":  len(points),
		"signals": len(signals),
	}).Info("outbreak detection scan")

	return signals, nil
}
