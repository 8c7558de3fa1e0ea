package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AggregateStat is a derived grouped statistic. It is recomputed on demand
// and never persisted as authoritative data.
type AggregateStat struct {
	GroupKey   string  `json:"group_key"`
	Total      int     `json:"total"`
	Resistant  int     `json:"resistant"`
	Percentage float64 `json:"percentage"`
	RiskLevel  string  `json:"risk_level"`
	Color      string  `json:"color"`
}

// PathogenBreakdown is a per-pathogen slice of a facility map point.
type PathogenBreakdown struct {
	Name       string  `json:"name"`
	Total      int     `json:"total"`
	Resistant  int     `json:"resistant"`
	Percentage float64 `json:"percentage"`
}

// MapPoint is one marker on the resistance risk map. Facility points carry
// a resistance percentage; environmental points carry a pathogen load.
type MapPoint struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	Latitude             float64             `json:"latitude"`
	Longitude            float64             `json:"longitude"`
	LocationText         string              `json:"location"`
	ResistancePercentage *float64            `json:"resistance_percentage"`
	RiskLevel            string              `json:"risk_level"`
	Color                string              `json:"color"`
	TotalSamples         int                 `json:"total_samples,omitempty"`
	TotalResistant       int                 `json:"total_resistant,omitempty"`
	Pathogens            []PathogenBreakdown `json:"pathogens,omitempty"`
	IsEnvironmental      bool                `json:"is_environmental_sample,omitempty"`
	SampleType           string              `json:"sample_type,omitempty"`
	Pathogen             string              `json:"pathogen,omitempty"`
	PathogenLoad         float64             `json:"pathogen_load,omitempty"`
}

// MonthlyPoint is one calendar month of the trailing resistance series.
// Months without data carry zero totals, never a gap.
type MonthlyPoint struct {
	Month      string  `json:"month"` // YYYY-MM
	Total      int     `json:"total"`
	Resistant  int     `json:"resistant"`
	Percentage float64 `json:"percentage"`
}

// OutbreakSignal is a detected upward deviation in resistance percentage
// for a (region, pathogen) group. Signals never mutate state.
type OutbreakSignal struct {
	PathogenID       primitive.ObjectID `json:"pathogen_id"`
	PathogenName     string             `json:"pathogen"`
	Region           string             `json:"region"`
	City             string             `json:"city,omitempty"`
	Location         *GeoJSON           `json:"location,omitempty"`
	Percentage       float64            `json:"resistance_percentage"`
	Baseline         float64            `json:"baseline_percentage"`
	Severity         int                `json:"severity"`
	TotalSamples     int                `json:"total_samples"`
	ResistantSamples int                `json:"resistant_samples"`
	Date             string             `json:"date"` // YYYY-MM-DD of the latest point
}

// TreatmentOption ranks an antibiotic by local resistance for a pathogen.
type TreatmentOption struct {
	AntibioticID   primitive.ObjectID `json:"antibiotic_id"`
	AntibioticName string             `json:"antibiotic_name"`
	Percentage     float64            `json:"resistance_percentage"`
	TotalSamples   int                `json:"total_samples"`
	Effectiveness  string             `json:"effectiveness"`
}

// AntibioticEffectiveness splits results of one antibiotic into S/I/R shares.
type AntibioticEffectiveness struct {
	Antibiotic          string  `json:"antibiotic"`
	Total               int     `json:"total"`
	SusceptiblePercent  float64 `json:"susceptible_percent"`
	IntermediatePercent float64 `json:"intermediate_percent"`
	ResistantPercent    float64 `json:"resistant_percent"`
}

// DashboardSummary is the landing-page aggregate.
type DashboardSummary struct {
	TotalObservations int             `json:"total_observations"`
	TotalFacilities   int             `json:"total_facilities"`
	TotalPathogens    int             `json:"total_pathogens"`
	ResistanceRate    float64         `json:"resistance_rate"`
	TopResistant      []PathogenCount `json:"top_resistant_pathogens"`
}

// PathogenCount is a pathogen with a plain observation count.
type PathogenCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
