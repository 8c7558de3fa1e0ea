package resistance

// Risk levels derived from resistance percentage or pathogen load.
const (
	LevelLow      = "Low"
	LevelMedium   = "Medium"
	LevelHigh     = "High"
	LevelVeryHigh = "Very High"
)

// Marker colors matched to the dashboard palette.
const (
	ColorGreen  = "#28a745"
	ColorYellow = "#ffc107"
	ColorOrange = "#fd7e14"
	ColorRed    = "#dc3545"
)

// Percentage returns resistant/total as a percentage. A zero total is
// defined as 0, not an error.
func Percentage(resistant, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(resistant) / float64(total) * 100
}

// Classify maps a resistance percentage to a risk level and marker color.
// Thresholds are inclusive on the lower bound:
// >=75 Very High, >=50 High, >=25 Medium, otherwise Low.
// Out-of-range input is clamped to [0, 100].
func Classify(percentage float64) (string, string) {
	if percentage < 0 {
		percentage = 0
	} else if percentage > 100 {
		percentage = 100
	}

	switch {
	case percentage >= 75:
		return LevelVeryHigh, ColorRed
	case percentage >= 50:
		return LevelHigh, ColorOrange
	case percentage >= 25:
		return LevelMedium, ColorYellow
	default:
		return LevelLow, ColorGreen
	}
}

// ClassifyLoad maps an environmental pathogen load to a risk level and
// color. Load thresholds are independent of resistance percentages:
// >1000 Very High, >500 High, otherwise Medium when a pathogen was
// detected at all.
func ClassifyLoad(load float64) (string, string) {
	switch {
	case load > 1000:
		return LevelVeryHigh, ColorRed
	case load > 500:
		return LevelHigh, ColorOrange
	default:
		return LevelMedium, ColorYellow
	}
}

// LoadSeverity converts a pathogen load to an alert severity on the 1-5
// scale used for environmental detections.
func LoadSeverity(load float64) int {
	switch {
	case load > 1000:
		return 5
	case load > 500:
		return 4
	default:
		return 3
	}
}
