package resistance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openamr/surveillance-api/resistance"
)

var (
	testPathogenID = primitive.NewObjectID()

	day1 = time.Date(2020, 5, 25, 0, 0, 0, 0, time.UTC).Unix()
	day2 = time.Date(2020, 5, 26, 0, 0, 0, 0, time.UTC).Unix()
	day3 = time.Date(2020, 5, 27, 0, 0, 0, 0, time.UTC).Unix()
)

func trendGroup(totals, resistant []int) []resistance.TrendPoint {
	days := []int64{day1, day2, day3}
	points := make([]resistance.TrendPoint, 0, len(totals))
	for i := range totals {
		points = append(points, resistance.TrendPoint{
			Region:       "Central",
			City:         "Metropolis",
			PathogenID:   testPathogenID,
			PathogenName: "E. coli",
			Day:          days[i],
			Total:        totals[i],
			Resistant:    resistant[i],
		})
	}
	return points
}

func TestDetectSignalsBreach(t *testing.T) {
	// percentages 10, 10, 85: baseline 10, latest 85, delta 75
	points := trendGroup([]int{20, 20, 20}, []int{2, 2, 17})

	signals := resistance.DetectSignals(points)

	assert.Len(t, signals, 1)
	assert.Equal(t, "E. coli", signals[0].PathogenName)
	assert.Equal(t, "Central", signals[0].Region)
	assert.Equal(t, float64(85), signals[0].Percentage)
	assert.Equal(t, float64(10), signals[0].Baseline)
	assert.Equal(t, 5, signals[0].Severity)
	assert.Equal(t, 20, signals[0].TotalSamples)
	assert.Equal(t, 17, signals[0].ResistantSamples)
	assert.Equal(t, "2020-05-27", signals[0].Date)
}

func TestDetectSignalsTooFewSamples(t *testing.T) {
	// same shape but only 8 samples in total: never flagged
	points := trendGroup([]int{3, 3, 2}, []int{0, 0, 2})

	signals := resistance.DetectSignals(points)
	assert.Empty(t, signals)
}

func TestDetectSignalsTooFewPoints(t *testing.T) {
	points := trendGroup([]int{20, 20, 20}, []int{2, 2, 16})[:2]

	signals := resistance.DetectSignals(points)
	assert.Empty(t, signals)
}

func TestDetectSignalsBelowBreachPercentage(t *testing.T) {
	// latest at 45% stays below the 50% floor even with a large delta
	points := trendGroup([]int{20, 20, 20}, []int{1, 1, 9})

	signals := resistance.DetectSignals(points)
	assert.Empty(t, signals)
}

func TestDetectSignalsSmallDelta(t *testing.T) {
	// latest 60% vs baseline 50%: delta 10 does not breach
	points := trendGroup([]int{20, 20, 20}, []int{10, 10, 12})

	signals := resistance.DetectSignals(points)
	assert.Empty(t, signals)
}

func TestSignalSeverityTiers(t *testing.T) {
	assert.Equal(t, 5, resistance.SignalSeverity(81))
	assert.Equal(t, 4, resistance.SignalSeverity(80))
	assert.Equal(t, 4, resistance.SignalSeverity(61))
	assert.Equal(t, 3, resistance.SignalSeverity(60))
	assert.Equal(t, 3, resistance.SignalSeverity(51))
}

func TestDetectSignalsSeparatesGroups(t *testing.T) {
	quiet := trendGroup([]int{20, 20, 20}, []int{2, 2, 2})
	for i := range quiet {
		quiet[i].Region = "North"
	}
	breaching := trendGroup([]int{20, 20, 20}, []int{2, 2, 14}) // latest 70%

	signals := resistance.DetectSignals(append(quiet, breaching...))

	assert.Len(t, signals, 1)
	assert.Equal(t, "Central", signals[0].Region)
	assert.Equal(t, 4, signals[0].Severity)
}
