package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Aggregation stage builders shared by the statistics and trend pipelines.

func matchPeriod(field string, start, end int64) bson.M {
	window := bson.M{}
	if start > 0 {
		window["$gte"] = start
	}
	if end > 0 {
		window["$lt"] = end
	}
	return bson.M{field: window}
}

func aggStageMatchWindow(start, end int64) bson.M {
	return bson.M{"$match": matchPeriod("report_ts", start, end)}
}

// aggResistantSum counts a document only when its result code is exactly
// "R". Unknown codes count toward neither resistant nor total.
func aggResistantSum() bson.M {
	return bson.M{
		"$sum": bson.M{
			"$cond": bson.A{
				bson.M{"$eq": bson.A{"$result", "R"}},
				1,
				0,
			},
		},
	}
}

func aggResultSum(code string) bson.M {
	return bson.M{
		"$sum": bson.M{
			"$cond": bson.A{
				bson.M{"$eq": bson.A{"$result", code}},
				1,
				0,
			},
		},
	}
}

// aggKnownResultCount counts only documents carrying one of the three
// recognized susceptibility codes.
func aggKnownResultCount() bson.M {
	return bson.M{
		"$sum": bson.M{
			"$cond": bson.A{
				bson.M{"$in": bson.A{"$result", bson.A{"R", "I", "S"}}},
				1,
				0,
			},
		},
	}
}

// aggStageGroupCounts groups by the given id expression, producing total
// and resistant counts per bucket.
func aggStageGroupCounts(idExpr interface{}) bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":       idExpr,
			"total":     aggKnownResultCount(),
			"resistant": aggResistantSum(),
		},
	}
}

// aggStageMonthKey projects a YYYY-MM key out of the report timestamp.
func aggStageMonthKey() bson.M {
	return bson.M{
		"$project": bson.M{
			"result": 1,
			"month": bson.M{
				"$dateToString": bson.M{
					"format": "%Y-%m",
					"date":   bson.M{"$toDate": bson.M{"$multiply": bson.A{"$report_ts", 1000}}},
				},
			},
		},
	}
}

// aggStageDayKey truncates the report timestamp to the start of its UTC day.
func aggStageDayKey() bson.M {
	const daySeconds = 24 * 60 * 60
	return bson.M{
		"$addFields": bson.M{
			"day": bson.M{
				"$subtract": bson.A{
					"$report_ts",
					bson.M{"$mod": bson.A{"$report_ts", daySeconds}},
				},
			},
		},
	}
}

func specifyField(fieldName string) string {
	return fmt.Sprintf("$%s", fieldName)
}
