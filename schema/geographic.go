package schema

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewPoint returns a GeoJSON point for a lat/lng pair. Mongo expects
// coordinates in longitude-first order.
func NewPoint(latitude, longitude float64) GeoJSON {
	return GeoJSON{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

func (g GeoJSON) Latitude() float64 {
	if len(g.Coordinates) != 2 {
		return 0
	}
	return g.Coordinates[1]
}

func (g GeoJSON) Longitude() float64 {
	if len(g.Coordinates) != 2 {
		return 0
	}
	return g.Coordinates[0]
}
