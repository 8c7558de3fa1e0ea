package resistance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openamr/surveillance-api/resistance"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		level      string
		color      string
	}{
		{100, resistance.LevelVeryHigh, resistance.ColorRed},
		{75, resistance.LevelVeryHigh, resistance.ColorRed},
		{74.999, resistance.LevelHigh, resistance.ColorOrange},
		{50, resistance.LevelHigh, resistance.ColorOrange},
		{49.999, resistance.LevelMedium, resistance.ColorYellow},
		{25, resistance.LevelMedium, resistance.ColorYellow},
		{24.9, resistance.LevelLow, resistance.ColorGreen},
		{0, resistance.LevelLow, resistance.ColorGreen},
	}

	for _, c := range cases {
		level, color := resistance.Classify(c.percentage)
		assert.Equal(t, c.level, level, "wrong level for %v", c.percentage)
		assert.Equal(t, c.color, color, "wrong color for %v", c.percentage)
	}
}

func TestClassifyClampsOutOfRange(t *testing.T) {
	level, color := resistance.Classify(-12)
	assert.Equal(t, resistance.LevelLow, level)
	assert.Equal(t, resistance.ColorGreen, color)

	level, color = resistance.Classify(180)
	assert.Equal(t, resistance.LevelVeryHigh, level)
	assert.Equal(t, resistance.ColorRed, color)
}

func TestPercentageZeroTotal(t *testing.T) {
	assert.Equal(t, float64(0), resistance.Percentage(0, 0))

	level, _ := resistance.Classify(resistance.Percentage(0, 0))
	assert.Equal(t, resistance.LevelLow, level)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, float64(50), resistance.Percentage(5, 10))
	assert.Equal(t, float64(100), resistance.Percentage(3, 3))
}

func TestClassifyLoad(t *testing.T) {
	level, color := resistance.ClassifyLoad(1500)
	assert.Equal(t, resistance.LevelVeryHigh, level)
	assert.Equal(t, resistance.ColorRed, color)

	level, _ = resistance.ClassifyLoad(1000)
	assert.Equal(t, resistance.LevelHigh, level)

	level, _ = resistance.ClassifyLoad(501)
	assert.Equal(t, resistance.LevelHigh, level)

	level, color = resistance.ClassifyLoad(100)
	assert.Equal(t, resistance.LevelMedium, level)
	assert.Equal(t, resistance.ColorYellow, color)
}

func TestLoadSeverity(t *testing.T) {
	assert.Equal(t, 5, resistance.LoadSeverity(1200))
	assert.Equal(t, 4, resistance.LoadSeverity(700))
	assert.Equal(t, 3, resistance.LoadSeverity(10))
}

func TestEffectiveness(t *testing.T) {
	assert.Equal(t, resistance.EffectivenessHigh, resistance.Effectiveness(10))
	assert.Equal(t, resistance.EffectivenessMedium, resistance.Effectiveness(20))
	assert.Equal(t, resistance.EffectivenessMedium, resistance.Effectiveness(49.9))
	assert.Equal(t, resistance.EffectivenessLow, resistance.Effectiveness(50))
	assert.Equal(t, resistance.EffectivenessLow, resistance.Effectiveness(95))
}
