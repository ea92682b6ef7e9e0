package colorsService

import (
	"math"
	"missensecolor/models/constants"
	"missensecolor/models/constants/palette"
	"regexp"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestColorFor(t *testing.T) {
	t.Run("should produce a hex colour for every palette and score", func(t *testing.T) {
		for _, p := range palette.Names {
			for i := 0; i <= 100; i++ {
				score := float64(i) / 100

				first, err := ColorFor(score, p)
				require.NoError(t, err, string(p))
				assert.Regexp(t, hexPattern, first, "%s at %v", p, score)

				second, _ := ColorFor(score, p)
				assert.Equal(t, first, second, "%s at %v", p, score)
			}
		}
	})

	t.Run("should follow jet at its endpoints", func(t *testing.T) {
		low, _ := ColorFor(0, palette.Jet)
		high, _ := ColorFor(1, palette.Jet)
		assert.Equal(t, "#000080", low)
		assert.Equal(t, "#800000", high)
	})

	t.Run("should pass through the listed colours", func(t *testing.T) {
		cases := []struct {
			p     constants.Palette
			score float64
			hex   string
		}{
			{palette.Viridis, 0, "#440154"},
			{palette.Viridis, 0.25, "#3b528b"},
			{palette.Viridis, 0.5, "#21918c"},
			{palette.Viridis, 0.75, "#5ec962"},
			{palette.Viridis, 1, "#fde725"},
			{palette.Plasma, 0, "#0d0887"},
			{palette.Inferno, 1, "#fcffa4"},
			{palette.Magma, 0.5, "#b73779"},
			{palette.RdYlBu, 0, "#a50026"},
			{palette.RdYlBu, 0.5, "#ffffbf"},
			{palette.RdYlBu, 1, "#313695"},
			{palette.Spectral, 0, "#9e0142"},
			{palette.Spectral, 0.5, "#ffffbf"},
			{palette.Spectral, 1, "#5e4fa2"},
		}

		for _, c := range cases {
			hex, err := ColorFor(c.score, c.p)
			require.NoError(t, err)
			assert.Equal(t, c.hex, hex, "%s at %v", c.p, c.score)
		}
	})

	t.Run("should interpolate linearly between listed colours", func(t *testing.T) {
		// halfway between #ffffbf and #e0f3f8
		hex, err := ColorFor(0.55, palette.RdYlBu)
		require.NoError(t, err)

		c, err := colorful.Hex(hex)
		require.NoError(t, err)
		assert.InDelta(t, 239.5, c.R*255, 1)
		assert.InDelta(t, 249.0, c.G*255, 1)
		assert.InDelta(t, 219.5, c.B*255, 1)
	})

	t.Run("should leave out of range scores to the colormap", func(t *testing.T) {
		for _, p := range palette.Names {
			below, _ := ColorFor(-0.5, p)
			low, _ := ColorFor(0, p)
			above, _ := ColorFor(1.5, p)
			high, _ := ColorFor(1, p)

			assert.Equal(t, low, below, string(p))
			assert.Equal(t, high, above, string(p))
		}
		for _, p := range palette.Names {
			c, err := ColorFor(7, p)
			require.NoError(t, err)
			assert.Regexp(t, hexPattern, c)
		}
	})

	t.Run("should use the bad colour for NaN", func(t *testing.T) {
		c, err := ColorFor(math.NaN(), palette.Viridis)
		require.NoError(t, err)
		assert.Equal(t, BadColor, c)
	})

	t.Run("should reject unknown palettes", func(t *testing.T) {
		_, err := ColorFor(0.5, constants.Palette("Spectral"))
		assert.Error(t, err)
		_, err = ColorFor(0.5, constants.Palette("greys"))
		assert.Error(t, err)
	})
}

func TestPaletteTable(t *testing.T) {
	// every selectable palette resolves to a registered colormap
	for _, p := range palette.Names {
		name, ok := palette.ColormapNames[p]
		require.True(t, ok, string(p))
		_, ok = colormaps[name]
		assert.True(t, ok, name)
	}

	assert.Equal(t, "Spectral", palette.ColormapNames[palette.Spectral])
	assert.True(t, palette.IsKnownPalette("spectral"))
	assert.False(t, palette.IsKnownPalette("Spectral"))
}

func TestLegend(t *testing.T) {
	expectedLabels := []string{"0.00", "0.10", "0.20", "0.30", "0.40", "0.50", "0.60", "0.70", "0.80", "0.90", "1.00"}

	for _, p := range palette.Names {
		stops, err := Legend(p)
		require.NoError(t, err)
		require.Len(t, stops, 11)

		for i, stop := range stops {
			assert.Equal(t, expectedLabels[i], stop.Label)
			assert.Regexp(t, hexPattern, stop.Hex)

			direct, _ := ColorFor(float64(i)/10, p)
			assert.Equal(t, direct, stop.Hex)
		}
	}
}

func TestKeyCommand(t *testing.T) {
	command, err := KeyCommand(palette.Jet)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(command, "key #000080:0.00 "))
	assert.True(t, strings.HasSuffix(command, " #800000:1.00"))

	entries := strings.Fields(strings.TrimPrefix(command, "key "))
	assert.Len(t, entries, 11)
	for _, e := range entries {
		assert.Regexp(t, `^#[0-9a-f]{6}:[01]\.\d\d$`, e)
	}
}

func TestChannelAt(t *testing.T) {
	anchors := jetData.red
	assert.Equal(t, 0.0, channelAt(anchors, 0.2))
	assert.Equal(t, 1.0, channelAt(anchors, 0.75))
	assert.InDelta(t, 0.75, channelAt(anchors, 0.945), 1e-9)
	assert.Equal(t, 0.5, channelAt(anchors, 1))
}
