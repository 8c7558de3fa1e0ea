package resistance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openamr/surveillance-api/resistance"
)

func TestFillMonthlySeriesNoGaps(t *testing.T) {
	now := time.Date(2020, 5, 15, 12, 0, 0, 0, time.UTC)
	counts := []resistance.MonthCount{
		{Month: "2020-03", Total: 40, Resistant: 10},
		{Month: "2020-05", Total: 10, Resistant: 5},
	}

	series := resistance.FillMonthlySeries(counts, now)

	assert.Len(t, series, 12)
	assert.Equal(t, "2019-06", series[0].Month)
	assert.Equal(t, "2020-05", series[11].Month)

	for _, p := range series {
		switch p.Month {
		case "2020-03":
			assert.Equal(t, 40, p.Total)
			assert.Equal(t, float64(25), p.Percentage)
		case "2020-05":
			assert.Equal(t, 10, p.Total)
			assert.Equal(t, float64(50), p.Percentage)
		default:
			// months without data report zero, not a gap
			assert.Equal(t, 0, p.Total)
			assert.Equal(t, float64(0), p.Percentage)
		}
	}
}

func TestFillMonthlySeriesEmpty(t *testing.T) {
	series := resistance.FillMonthlySeries(nil, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Len(t, series, 12)
	assert.Equal(t, "2019-02", series[0].Month)
	assert.Equal(t, "2020-01", series[11].Month)
	for _, p := range series {
		assert.Equal(t, 0, p.Total)
	}
}
