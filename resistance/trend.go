package resistance

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openamr/surveillance-api/schema"
)

// Detection policy constants. A group is statistically eligible only with
// at least MinPoints aggregation points and MinSamples total samples.
const (
	MinPoints         = 3
	MinSamples        = 10
	BreachPercentage  = 50
	BreachDeltaPoints = 15
)

// TrendPoint is one (region, city, pathogen, day) aggregation point of the
// rolling detection window.
type TrendPoint struct {
	Region       string             `bson:"region"`
	City         string             `bson:"city"`
	PathogenID   primitive.ObjectID `bson:"pathogen_id"`
	PathogenName string             `bson:"pathogen_name"`
	Location     *schema.GeoJSON    `bson:"location"`
	Day          int64              `bson:"day"` // unix seconds at day start
	Total        int                `bson:"total"`
	Resistant    int                `bson:"resistant"`
}

// Percentage of this point.
func (p TrendPoint) Percentage() float64 {
	return Percentage(p.Resistant, p.Total)
}

type groupKey struct {
	region   string
	city     string
	pathogen primitive.ObjectID
}

// DetectSignals scans trend points for statistically notable upward
// deviations per (region, city, pathogen) group. A signal is raised iff
// the latest percentage exceeds BreachPercentage and is more than
// BreachDeltaPoints above the mean of all prior points. With a single
// point the baseline is 0.
func DetectSignals(points []TrendPoint) []schema.OutbreakSignal {
	groups := make(map[groupKey][]TrendPoint)
	for _, p := range points {
		k := groupKey{region: p.Region, city: p.City, pathogen: p.PathogenID}
		groups[k] = append(groups[k], p)
	}

	signals := make([]schema.OutbreakSignal, 0)

	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return group[i].Day < group[j].Day
		})

		if len(group) < MinPoints {
			continue
		}

		totalSamples := 0
		for _, p := range group {
			totalSamples += p.Total
		}
		if totalSamples < MinSamples {
			continue
		}

		latest := group[len(group)-1]
		baseline := float64(0)
		if len(group) > 1 {
			sum := float64(0)
			for _, p := range group[:len(group)-1] {
				sum += p.Percentage()
			}
			baseline = sum / float64(len(group)-1)
		}

		current := latest.Percentage()
		if current <= BreachPercentage || current-baseline <= BreachDeltaPoints {
			continue
		}

		signals = append(signals, schema.OutbreakSignal{
			PathogenID:       latest.PathogenID,
			PathogenName:     latest.PathogenName,
			Region:           latest.Region,
			City:             latest.City,
			Location:         latest.Location,
			Percentage:       current,
			Baseline:         baseline,
			Severity:         SignalSeverity(current),
			TotalSamples:     latest.Total,
			ResistantSamples: latest.Resistant,
			Date:             time.Unix(latest.Day, 0).UTC().Format("2006-01-02"),
		})
	}

	sort.Slice(signals, func(i, j int) bool {
		if signals[i].Severity != signals[j].Severity {
			return signals[i].Severity > signals[j].Severity
		}
		return signals[i].Percentage > signals[j].Percentage
	})

	return signals
}

// SignalSeverity maps the latest resistance percentage of a breaching
// group to the 1-5 alert scale: 5 above 80, 4 above 60, otherwise 3.
func SignalSeverity(percentage float64) int {
	switch {
	case percentage > 80:
		return 5
	case percentage > 60:
		return 4
	default:
		return 3
	}
}
