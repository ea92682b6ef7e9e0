package aggregationService

import (
	"math"
	"missensecolor/models"
	"missensecolor/models/constants"
	amClass "missensecolor/models/constants/am-class"
	"testing"

	. "github.com/ahmetb/go-linq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(label string, class constants.AmClass, score float64) models.VariantRow {
	return models.VariantRow{ProteinVariant: label, AmClass: class, AmPathogenicity: score}
}

func TestPositionOf(t *testing.T) {
	cases := map[string]string{
		"A123V":    "A123",
		"M1A":      "M1",
		"W1000*":   "W1000",
		"p.G12D":   "G12",
		"Ala12Gly": "Ala12",
		"":         "",
		"NaN":      "",
		"123":      "",
	}
	for label, expected := range cases {
		assert.Equal(t, expected, PositionOf(label), label)
	}
}

func TestPositionNumber(t *testing.T) {
	assert.Equal(t, "123", PositionNumber("A123"))
	assert.Equal(t, "12", PositionNumber("A1B2"))
	assert.Equal(t, "", PositionNumber(""))
}

func TestMeanOfValid(t *testing.T) {
	assert.InDelta(t, 0.5, MeanOfValid([]float64{0.9, 0.1}), 1e-12)
	assert.InDelta(t, 0.4, MeanOfValid([]float64{math.NaN(), 0.4}), 1e-12)
	assert.True(t, math.IsNaN(MeanOfValid([]float64{math.NaN(), math.NaN()})))
	assert.True(t, math.IsNaN(MeanOfValid(nil)))

	// not clipped
	assert.InDelta(t, 1.5, MeanOfValid([]float64{1.0, 2.0}), 1e-12)
}

func TestMajorityClass(t *testing.T) {
	t.Run("should pick the strictly highest count", func(t *testing.T) {
		assert.Equal(t, amClass.LBen, MajorityClass(1, 3, 2))
		assert.Equal(t, amClass.Amb, MajorityClass(0, 1, 2))
		assert.Equal(t, amClass.LPath, MajorityClass(5, 1, 2))
	})
	t.Run("should break ties in declaration order", func(t *testing.T) {
		assert.Equal(t, amClass.LPath, MajorityClass(1, 1, 1))
		assert.Equal(t, amClass.LPath, MajorityClass(0, 0, 0))
		assert.Equal(t, amClass.LBen, MajorityClass(0, 2, 2))
		assert.Equal(t, amClass.LPath, MajorityClass(2, 0, 2))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("should merge substitutions of one residue", func(t *testing.T) {
		summaries := Summarize([]models.VariantRow{
			row("A123V", amClass.LPath, 0.9),
			row("A123T", amClass.LBen, 0.1),
		})

		require.Len(t, summaries, 1)
		s := summaries[0]
		assert.Equal(t, "A123", s.Position)
		assert.Equal(t, 1, s.LPathCount)
		assert.Equal(t, 1, s.LBenCount)
		assert.Equal(t, 0, s.AmbCount)
		assert.InDelta(t, 0.5, s.AvgPathogenicity, 1e-12)
		assert.Equal(t, amClass.LPath, s.OverallClass)
	})

	t.Run("should keep first-seen position order", func(t *testing.T) {
		summaries := Summarize([]models.VariantRow{
			row("K30A", amClass.Amb, 0.4),
			row("M1A", amClass.LBen, 0.1),
			row("K30C", amClass.Amb, 0.5),
			row("G7D", amClass.LPath, 0.8),
			row("M1C", amClass.LBen, 0.2),
		})

		var positions []string
		From(summaries).SelectT(func(s models.PositionSummary) string {
			return s.Position
		}).ToSlice(&positions)
		assert.Equal(t, []string{"K30", "M1", "G7"}, positions)

		assert.Equal(t, 2, summaries[0].AmbCount)
		assert.Equal(t, amClass.Amb, summaries[0].OverallClass)
		assert.InDelta(t, 0.15, summaries[1].AvgPathogenicity, 1e-12)
	})

	t.Run("should account every row to exactly one position", func(t *testing.T) {
		rows := []models.VariantRow{
			row("M1A", amClass.LBen, 0.1),
			row("M1C", amClass.Amb, 0.4),
			row("A2C", amClass.LPath, 0.9),
			row("A2D", "other", 0.7),
		}
		total := From(Summarize(rows)).SelectT(func(s models.PositionSummary) int {
			return s.LPathCount + s.LBenCount + s.AmbCount
		}).SumInts()

		// the unclassified row counts towards no class
		assert.Equal(t, int64(3), total)
	})

	t.Run("should ignore missing scores and propagate NaN", func(t *testing.T) {
		summaries := Summarize([]models.VariantRow{
			row("M1A", amClass.LBen, math.NaN()),
			row("M1C", amClass.LBen, 0.3),
			row("A2C", amClass.Amb, math.NaN()),
		})

		require.Len(t, summaries, 2)
		assert.InDelta(t, 0.3, summaries[0].AvgPathogenicity, 1e-12)
		assert.True(t, math.IsNaN(summaries[1].AvgPathogenicity))
	})

	t.Run("should pass unmatched labels through as one empty position", func(t *testing.T) {
		summaries := Summarize([]models.VariantRow{
			row("M1A", amClass.LBen, 0.1),
			row("garbage", amClass.LPath, 0.9),
			row("", amClass.LPath, 0.7),
		})

		require.Len(t, summaries, 2)
		assert.Equal(t, "", summaries[1].Position)
		assert.Equal(t, 2, summaries[1].LPathCount)
		assert.InDelta(t, 0.8, summaries[1].AvgPathogenicity, 1e-12)
	})

	t.Run("should return an empty, non-nil slice for no rows", func(t *testing.T) {
		summaries := Summarize(nil)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})
}
