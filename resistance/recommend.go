package resistance

// Effectiveness bands for treatment options, keyed off the local
// resistance percentage of an antibiotic against a pathogen.
const (
	EffectivenessHigh   = "High"
	EffectivenessMedium = "Medium"
	EffectivenessLow    = "Low"
)

// Effectiveness maps a resistance percentage to a treatment
// effectiveness band: High below 20, Medium below 50, otherwise Low.
func Effectiveness(percentage float64) string {
	switch {
	case percentage < 20:
		return EffectivenessHigh
	case percentage < 50:
		return EffectivenessMedium
	default:
		return EffectivenessLow
	}
}
