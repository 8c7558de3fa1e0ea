package store

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openamr/surveillance-api/resistance"
	"github.com/openamr/surveillance-api/schema"
)

// Aggregation dimensions accepted by AggregateBy.
const (
	DimensionRegion     = "region"
	DimensionPathogen   = "pathogen"
	DimensionAntibiotic = "antibiotic"
	DimensionMonth      = "month"
)

// StatFilter narrows grouped statistics. Zero values leave a dimension
// unfiltered.
type StatFilter struct {
	PathogenID primitive.ObjectID
	FacilityID primitive.ObjectID
	Region     string
	Start      int64
	End        int64
}

func (f StatFilter) match() bson.M {
	match := bson.M{}
	if !f.PathogenID.IsZero() {
		match["pathogen_id"] = f.PathogenID
	}
	if !f.FacilityID.IsZero() {
		match["facility_id"] = f.FacilityID
	}
	if f.Region != "" {
		match["region"] = f.Region
	}
	if f.Start > 0 || f.End > 0 {
		match["report_ts"] = func() bson.M {
			window := bson.M{}
			if f.Start > 0 {
				window["$gte"] = f.Start
			}
			if f.End > 0 {
				window["$lt"] = f.End
			}
			return window
		}()
	}
	return match
}

// StatsOperator computes grouped resistance statistics on demand.
// Nothing here is persisted as authoritative data.
type StatsOperator interface {
	AggregateBy(dimension string, filter StatFilter) ([]schema.AggregateStat, error)
	ResistanceMap(filter StatFilter) ([]schema.MapPoint, error)
	MonthlyResistanceTrend(filter StatFilter) ([]schema.MonthlyPoint, error)
	AntibioticBreakdown() ([]schema.AntibioticEffectiveness, error)
	PathogenDistribution() ([]schema.PathogenCount, error)
	TreatmentOptions(pathogenID primitive.ObjectID, region string) ([]schema.TreatmentOption, error)
	DashboardSummary() (*schema.DashboardSummary, error)
}

type groupedCount struct {
	Key       string `bson:"_id"`
	Total     int    `bson:"total"`
	Resistant int    `bson:"resistant"`
}

// AggregateBy groups observations along one dimension and attaches a
// resistance percentage and risk classification to each bucket.
func (m *mongoDB) AggregateBy(dimension string, filter StatFilter) ([]schema.AggregateStat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{}
	if match := filter.match(); len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	var groupField string
	switch dimension {
	case DimensionRegion:
		groupField = "region"
	case DimensionPathogen:
		groupField = "pathogen_name"
	case DimensionAntibiotic:
		groupField = "antibiotic_name"
	case DimensionMonth:
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: aggStageMonthKey()["$project"]}})
		groupField = "month"
	default:
		return nil, fmt.Errorf("unknown aggregation dimension: %s", dimension)
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: aggStageGroupCounts(specifyField(groupField))["$group"]}})

	cur, err := m.client.Database(m.database).Collection(schema.ObservationCollection).
		Aggregate(ctx, pipeline)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":    mongoLogPrefix,
			"dimension": dimension,
			"error":     err,
		}).Error("aggregate observations")
		return nil, err
	}

	var rows []groupedCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := make([]schema.AggregateStat, 0, len(rows))
	for _, row := range rows {
		percentage := roundPercentage(resistance.Percentage(row.Resistant, row.Total))
		level, color := resistance.Classify(percentage)
		stats = append(stats, schema.AggregateStat{
			GroupKey:   row.Key,
			Total:      row.Total,
			Resistant:  row.Resistant,
			Percentage: percentage,
			RiskLevel:  level,
			Color:      color,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Percentage > stats[j].Percentage
	})

	return stats, nil
}

// ResistanceMap combines per-facility resistance points and detected
// environmental samples into one geospatial payload.
func (m *mongoDB) ResistanceMap(filter StatFilter) ([]schema.MapPoint, error) {
	facilities, err := m.ListFacilities()
	if err != nil {
		return nil, err
	}

	points := make([]schema.MapPoint, 0, len(facilities))

	for _, facility := range facilities {
		if facility.Location == nil {
			continue
		}

		breakdown, totalSamples, totalResistant, err := m.facilityBreakdown(facility.ID, filter)
		if err != nil {
			return nil, err
		}

		percentage := roundPercentage(resistance.Percentage(totalResistant, totalSamples))
		level, color := resistance.Classify(percentage)

		p := percentage
		points = append(points, schema.MapPoint{
			ID:                   facility.ID.Hex(),
			Name:                 facility.Name,
			Latitude:             facility.Location.Latitude(),
			Longitude:            facility.Location.Longitude(),
			LocationText:         fmt.Sprintf("%s, %s, %s", facility.City, facility.State, facility.Country),
			ResistancePercentage: &p,
			RiskLevel:            level,
			Color:                color,
			TotalSamples:         totalSamples,
			TotalResistant:       totalResistant,
			Pathogens:            breakdown,
		})
	}

	envPoints, err := m.environmentalMapPoints()
	if err != nil {
		return nil, err
	}

	return append(points, envPoints...), nil
}

func (m *mongoDB) facilityBreakdown(facilityID primitive.ObjectID, filter StatFilter) ([]schema.PathogenBreakdown, int, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter.FacilityID = facilityID
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter.match()}},
		bson.D{{Key: "$group", Value: aggStageGroupCounts("$pathogen_name")["$group"]}},
	}

	cur, err := m.client.Database(m.database).Collection(schema.ObservationCollection).
		Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, 0, err
	}

	var rows []groupedCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, 0, 0, err
	}

	breakdown := make([]schema.PathogenBreakdown, 0, len(rows))
	totalSamples := 0
	totalResistant := 0

	for _, row := range rows {
		totalSamples += row.Total
		totalResistant += row.Resistant
		if row.Total == 0 {
			continue
		}
		breakdown = append(breakdown, schema.PathogenBreakdown{
			Name:       row.Key,
			Total:      row.Total,
			Resistant:  row.Resistant,
			Percentage: roundPercentage(resistance.Percentage(row.Resistant, row.Total)),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Percentage > breakdown[j].Percentage
	})

	return breakdown, totalSamples, totalResistant, nil
}

func (m *mongoDB) environmentalMapPoints() ([]schema.MapPoint, error) {
	samples, err := m.ListDetectedSamples()
	if err != nil {
		return nil, err
	}

	points := make([]schema.MapPoint, 0, len(samples))
	for _, sample := range samples {
		if len(sample.Location.Coordinates) != 2 {
			continue
		}

		level, color := resistance.ClassifyLoad(sample.PathogenLoad)

		points = append(points, schema.MapPoint{
			ID:              fmt.Sprintf("env-%s", sample.ID.Hex()),
			Name:            fmt.Sprintf("Environmental Sample: %s", sample.SampleID),
			Latitude:        sample.Location.Latitude(),
			Longitude:       sample.Location.Longitude(),
			LocationText:    sample.LocationDescription,
			RiskLevel:       level,
			Color:           color,
			IsEnvironmental: true,
			SampleType:      sample.SampleType,
			Pathogen:        sample.PathogenName,
			PathogenLoad:    sample.PathogenLoad,
		})
	}

	return points, nil
}

// MonthlyResistanceTrend returns the trailing 12 calendar months of
// resistance percentages, zero-filled for months without data.
func (m *mongoDB) MonthlyResistanceTrend(filter StatFilter) ([]schema.MonthlyPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	seriesStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	filter.Start = seriesStart.Unix()
	filter.End = 0

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter.match()}},
		bson.D{{Key: "$project", Value: aggStageMonthKey()["$project"]}},
		bson.D{{Key: "$group", Value: aggStageGroupCounts("$month")["$group"]}},
	}

	cur, err := m.client.Database(m.database).Collection(schema.ObservationCollection).
		Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var counts []resistance.MonthCount
	if err := cur.All(ctx, &counts); err != nil {
		return nil, err
	}

	return resistance.FillMonthlySeries(counts, now), nil
}

type effectivenessRow struct {
	Key          string `bson:"_id"`
	Total        int    `bson:"total"`
	Susceptible  int    `bson:"susceptible"`
	Intermediate int    `bson:"intermediate"`
	Resistant    int    `bson:"resistant"`
}

// AntibioticBreakdown splits each antibiotic's results into S/I/R shares.
func (m *mongoDB) AntibioticBreakdown() ([]schema.AntibioticEffectiveness, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          "$antibiotic_name",
			"total":        aggKnownResultCount(),
			"susceptible":  aggResultSum(schema.ResultSusceptible),
			"intermediate": aggResultSum(schema.ResultIntermediate),
			"resistant":    aggResultSum(schema.ResultResistant),
		}}},
	}

	cur, err := m.client.Database(m.database).Collection(schema.ObservationCollection).
		Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []effectivenessRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	breakdown := make([]schema.AntibioticEffectiveness, 0, len(rows))
	for _, row := range rows {
		if row.Total == 0 {
			continue
		}
		breakdown = append(breakdown, schema.AntibioticEffectiveness{
			Antibiotic:          row.Key,
			Total:               row.Total,
			SusceptiblePercent:  roundPercentage(resistance.Percentage(row.Susceptible, row.Total)),
			IntermediatePercent: roundPercentage(resistance.Percentage(row.Intermediate, row.Total)),
			ResistantPercent:    roundPercentage(resistance.Percentage(row.Resistant, row.Total)),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	return breakdown, nil
}

// PathogenDistribution counts observations per pathogen.
func (m *mongoDB) PathogenDistribution() ([]schema.PathogenCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$pathogen_name",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cur, err := m.client.Database(m.database).Collection(schema.ObservationCollection).
		Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Key   string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	distribution := make([]schema.PathogenCount, 0, len(rows))
	for _, row := range rows {
		distribution = append(distribution, schema.PathogenCount{Name: row.Key, Count: row.Count})
	}
	return distribution, nil
}

type treatmentRow struct {
	ID struct {
		AntibioticID   primitive.ObjectID `bson:"antibiotic_id"`
		AntibioticName string             `bson:"antibiotic_name"`
	} `bson:"_id"`
	Total     int `bson:"total"`
	Resistant int `bson:"resistant"`
}

// TreatmentOptions ranks antibiotics against a pathogen by local
// resistance, most effective first.
func (m *mongoDB) TreatmentOptions(pathogenID primitive.ObjectID, region string) ([]schema.TreatmentOption, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	match := bson.M{"pathogen_id": pathogenID}
	if region != "" {
		match["region"] = region
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"antibiotic_id":   "$antibiotic_id",
				"antibiotic_name": "$antibiotic_name",
			},
			"total":     aggKnownResultCount(),
			"resistant": aggResistantSum(),
		}}},
	}

	cur, err := m.client.Database(m.database).Collection(schema.ObservationCollection).
		Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []treatmentRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	options := make([]schema.TreatmentOption, 0, len(rows))
	for _, row := range rows {
		if row.Total == 0 {
			continue
		}
		percentage := roundPercentage(resistance.Percentage(row.Resistant, row.Total))
		options = append(options, schema.TreatmentOption{
			AntibioticID:   row.ID.AntibioticID,
			AntibioticName: row.ID.AntibioticName,
			Percentage:     percentage,
			TotalSamples:   row.Total,
			Effectiveness:  resistance.Effectiveness(percentage),
		})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Percentage < options[j].Percentage
	})

	return options, nil
}

// DashboardSummary computes the landing-page counters.
func (m *mongoDB) DashboardSummary() (*schema.DashboardSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)

	totalObservations, err := db.Collection(schema.ObservationCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	totalFacilities, err := db.Collection(schema.FacilityCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	totalPathogens, err := db.Collection(schema.PathogenCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	knownResults, err := db.Collection(schema.ObservationCollection).CountDocuments(ctx, bson.M{
		"result": bson.M{"$in": bson.A{"R", "I", "S"}},
	})
	if err != nil {
		return nil, err
	}

	resistant, err := db.Collection(schema.ObservationCollection).CountDocuments(ctx, bson.M{
		"result": schema.ResultResistant,
	})
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"result": schema.ResultResistant}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$pathogen_name",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
		bson.D{{Key: "$limit", Value: 5}},
	}

	cur, err := db.Collection(schema.ObservationCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Key   string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	top := make([]schema.PathogenCount, 0, len(rows))
	for _, row := range rows {
		top = append(top, schema.PathogenCount{Name: row.Key, Count: row.Count})
	}

	return &schema.DashboardSummary{
		TotalObservations: int(totalObservations),
		TotalFacilities:   int(totalFacilities),
		TotalPathogens:    int(totalPathogens),
		ResistanceRate:    roundPercentage(resistance.Percentage(int(resistant), int(knownResults))),
		TopResistant:      top,
	}, nil
}

func roundPercentage(p float64) float64 {
	return math.Round(p*100) / 100
}
