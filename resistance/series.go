package resistance

import (
	"time"

	"github.com/openamr/surveillance-api/schema"
)

// MonthCount is one raw month bucket coming back from storage.
type MonthCount struct {
	Month     string `bson:"_id"` // YYYY-MM
	Total     int    `bson:"total"`
	Resistant int    `bson:"resistant"`
}

// FillMonthlySeries expands raw month buckets into a contiguous series of
// the trailing 12 calendar months ending at now (current partial month
// included). Missing months are emitted with zero totals.
func FillMonthlySeries(counts []MonthCount, now time.Time) []schema.MonthlyPoint {
	byMonth := make(map[string]MonthCount, len(counts))
	for _, c := range counts {
		byMonth[c.Month] = c
	}

	now = now.UTC()
	series := make([]schema.MonthlyPoint, 0, 12)

	for i := 11; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		key := m.Format("2006-01")

		point := schema.MonthlyPoint{Month: key}
		if c, ok := byMonth[key]; ok {
			point.Total = c.Total
			point.Resistant = c.Resistant
			point.Percentage = Percentage(c.Resistant, c.Total)
		}
		series = append(series, point)
	}

	return series
}
