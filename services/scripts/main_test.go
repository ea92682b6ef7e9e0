package scriptsService

import (
	"math"
	"missensecolor/models"
	amClass "missensecolor/models/constants/am-class"
	"missensecolor/models/constants/palette"
	colorsService "missensecolor/services/colors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyFor(t *testing.T) string {
	key, err := colorsService.KeyCommand(palette.Jet)
	require.NoError(t, err)
	return key
}

func TestEmitStructureScript(t *testing.T) {
	t.Run("should only display the structure without groups", func(t *testing.T) {
		script, err := EmitStructureScript("7ZNJ", nil, palette.Jet)
		require.NoError(t, err)

		assert.Equal(t, models.Script{"open 7ZNJ", "hide atoms", "show cartoon"}, script)
	})

	t.Run("should colour one position of one chain", func(t *testing.T) {
		groups := []models.ScoredGroup{{
			Group: models.UniprotGroup{UniprotId: "P38919", Chains: []string{"A"}},
			Summaries: []models.PositionSummary{
				{Position: "A123", LPathCount: 1, LBenCount: 1, AvgPathogenicity: 0, OverallClass: amClass.LPath},
			},
		}}

		script, err := EmitStructureScript("7ZNJ", groups, palette.Jet)
		require.NoError(t, err)

		assert.Equal(t, models.Script{
			"open 7ZNJ",
			"hide atoms",
			"show cartoon",
			"color last-opened &/A:123 #000080",
			"lighting soft",
			"set bg_color white",
			keyFor(t),
			"key pos 0.036642,0.100632 size 0.0378814,0.835561",
		}, script)
	})

	t.Run("should address every chain of a group in group order", func(t *testing.T) {
		groups := []models.ScoredGroup{
			{
				Group:     models.UniprotGroup{UniprotId: "P38919", Chains: []string{"A", "C"}},
				Summaries: []models.PositionSummary{{Position: "M1", AvgPathogenicity: 1}, {Position: "A2", AvgPathogenicity: 0}},
			},
			{
				Group:     models.UniprotGroup{UniprotId: "Q9Y5S9", Chains: []string{"B"}},
				Summaries: []models.PositionSummary{{Position: "K9", AvgPathogenicity: 1}},
			},
		}

		script, err := EmitStructureScript("7znj", groups, palette.Jet)
		require.NoError(t, err)
		require.Len(t, script, 3+3+4)

		assert.Equal(t, "color last-opened &/A,C:1 #800000", script[3])
		assert.Equal(t, "color last-opened &/A,C:2 #000080", script[4])
		assert.Equal(t, "color last-opened &/B:9 #800000", script[5])
	})

	t.Run("should keep the trailer when every lookup failed", func(t *testing.T) {
		groups := []models.ScoredGroup{
			{Group: models.UniprotGroup{UniprotId: "P38919", Chains: []string{"A"}}},
		}

		script, err := EmitStructureScript("7ZNJ", groups, palette.Jet)
		require.NoError(t, err)

		assert.Equal(t, models.Script{
			"open 7ZNJ", "hide atoms", "show cartoon",
			"lighting soft", "set bg_color white", keyFor(t),
			"key pos 0.036642,0.100632 size 0.0378814,0.835561",
		}, script)
	})

	t.Run("should use the bad colour for positions without scores", func(t *testing.T) {
		groups := []models.ScoredGroup{{
			Group:     models.UniprotGroup{Chains: []string{"A"}},
			Summaries: []models.PositionSummary{{Position: "A1", AvgPathogenicity: math.NaN()}},
		}}

		script, err := EmitStructureScript("7ZNJ", groups, palette.Viridis)
		require.NoError(t, err)
		assert.Equal(t, "color last-opened &/A:1 "+colorsService.BadColor, script[3])
	})

	t.Run("should reject unknown palettes", func(t *testing.T) {
		_, err := EmitStructureScript("7ZNJ", nil, "greys")
		assert.Error(t, err)
	})
}

func TestEmitModelScript(t *testing.T) {
	t.Run("should only display the model when the table is missing", func(t *testing.T) {
		script, err := EmitModelScript("P38919", nil, palette.Jet)
		require.NoError(t, err)

		assert.Equal(t, models.Script{"alphafold fetch P38919", "hide atoms", "show cartoon"}, script)
	})

	t.Run("should colour residues without a chain qualifier", func(t *testing.T) {
		summaries := []models.PositionSummary{{Position: "M1", AvgPathogenicity: 0}, {Position: "A1B2", AvgPathogenicity: 1}}

		script, err := EmitModelScript("P38919", summaries, palette.Jet)
		require.NoError(t, err)

		assert.Equal(t, models.Script{
			"alphafold fetch P38919",
			"hide atoms",
			"show cartoon",
			"color last-opened & :1 #000080",
			"color last-opened & :12 #800000",
			"lighting soft",
			"set bg_color white",
			keyFor(t),
			"key pos 0.036642,0.100632 size 0.0378814,0.835561",
		}, script)
	})

	t.Run("should keep the trailer for an empty table", func(t *testing.T) {
		script, err := EmitModelScript("P38919", []models.PositionSummary{}, palette.Jet)
		require.NoError(t, err)
		assert.Len(t, script, 7)
	})
}

func TestScriptString(t *testing.T) {
	script := models.Script{"open 7ZNJ", "hide atoms", "show cartoon"}
	assert.Equal(t, "open 7ZNJ\nhide atoms\nshow cartoon", script.String())
}
