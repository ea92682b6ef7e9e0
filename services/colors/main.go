package colorsService

import (
	"fmt"
	"image/color"
	"math"
	"missensecolor/models"
	"missensecolor/models/constants"
	"missensecolor/models/constants/palette"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"
)

// BadColor is used for scores that are not a number.
const BadColor = "#000000"

const (
	keyMinScore = 0.0
	keyMaxScore = 1.0
	keySteps    = 10
)

type gradientFactory func() (colorgrad.Gradient, error)

// colormaps is keyed by colormap name, see palette.ColormapNames.
var colormaps = map[string]gradientFactory{
	"jet":      segmented(jetData),
	"viridis":  listed(viridisStops...),
	"plasma":   listed(plasmaStops...),
	"inferno":  listed(infernoStops...),
	"magma":    listed(magmaStops...),
	"rainbow":  sampled(rainbowData, 256),
	"coolwarm": segmented(coolwarmData),
	"RdYlBu":   listed(rdYlBuStops...),
	"Spectral": listed(spectralStops...),
}

// Gradient returns the continuous colormap behind a palette.
func Gradient(p constants.Palette) (colorgrad.Gradient, error) {
	var none colorgrad.Gradient

	name, ok := palette.ColormapNames[p]
	if !ok {
		return none, fmt.Errorf("unknown palette %q", p)
	}
	factory, ok := colormaps[name]
	if !ok {
		return none, fmt.Errorf("no colormap registered for %q", name)
	}
	return factory()
}

// HexAt maps a score through a gradient. Scores outside [0,1]
// are left for the gradient to clamp.
func HexAt(grad colorgrad.Gradient, score float64) string {
	if math.IsNaN(score) {
		return BadColor
	}
	return grad.At(score).Clamped().Hex()
}

func ColorFor(score float64, p constants.Palette) (string, error) {
	grad, err := Gradient(p)
	if err != nil {
		return "", err
	}
	return HexAt(grad, score), nil
}

// Legend samples the palette at 0.0, 0.1, ... 1.0.
func Legend(p constants.Palette) ([]models.ColorStop, error) {
	grad, err := Gradient(p)
	if err != nil {
		return nil, err
	}

	step := (keyMaxScore - keyMinScore) / keySteps
	stops := make([]models.ColorStop, 0, keySteps+1)
	for i := 0; i <= keySteps; i++ {
		score := float64(i) / keySteps
		stops = append(stops, models.ColorStop{
			Label: fmt.Sprintf("%.2f", keyMinScore+float64(i)*step),
			Score: score,
			Hex:   HexAt(grad, score),
		})
	}
	return stops, nil
}

// KeyCommand renders the legend as a ChimeraX "key" command.
func KeyCommand(p constants.Palette) (string, error) {
	stops, err := Legend(p)
	if err != nil {
		return "", err
	}

	entries := make([]string, 0, len(stops))
	for _, s := range stops {
		entries = append(entries, fmt.Sprintf("%s:%s", s.Hex, s.Label))
	}
	return "key " + strings.Join(entries, " "), nil
}

// -- gradient builders

// listed interpolates linearly between evenly spaced colours,
// passing through every one of them.
func listed(hexes ...string) gradientFactory {
	return func() (colorgrad.Gradient, error) {
		return colorgrad.NewGradient().
			HtmlColors(hexes...).
			Mode(colorgrad.BlendRgb).
			Build()
	}
}

// anchor is one (x, value) point of a piecewise linear channel.
type anchor struct {
	x float64
	v float64
}

type segmentData struct {
	red   []anchor
	green []anchor
	blue  []anchor
}

// channelAt interpolates a channel; anchors are sorted by x and
// span [0,1].
func channelAt(anchors []anchor, x float64) float64 {
	if x <= anchors[0].x {
		return anchors[0].v
	}
	for i := 1; i < len(anchors); i++ {
		lo, hi := anchors[i-1], anchors[i]
		if x <= hi.x {
			if hi.x == lo.x {
				return hi.v
			}
			return lo.v + (hi.v-lo.v)*(x-lo.x)/(hi.x-lo.x)
		}
	}
	return anchors[len(anchors)-1].v
}

// segmented turns per-channel breakpoints into a gradient by
// placing one colour stop at every breakpoint of any channel.
func segmented(data segmentData) gradientFactory {
	return func() (colorgrad.Gradient, error) {
		seen := map[float64]bool{}
		positions := []float64{}
		for _, channel := range [][]anchor{data.red, data.green, data.blue} {
			for _, a := range channel {
				if !seen[a.x] {
					seen[a.x] = true
					positions = append(positions, a.x)
				}
			}
		}
		sort.Float64s(positions)

		stops := make([]color.Color, 0, len(positions))
		for _, x := range positions {
			stops = append(stops, colorful.Color{
				R: channelAt(data.red, x),
				G: channelAt(data.green, x),
				B: channelAt(data.blue, x),
			})
		}

		return colorgrad.NewGradient().
			Colors(stops...).
			Domain(positions...).
			Mode(colorgrad.BlendRgb).
			Build()
	}
}

// sampled builds a gradient from n evenly spaced samples of a
// functional colormap.
func sampled(fn func(x float64) colorful.Color, n int) gradientFactory {
	return func() (colorgrad.Gradient, error) {
		stops := make([]color.Color, 0, n)
		for i := 0; i < n; i++ {
			stops = append(stops, fn(float64(i)/float64(n-1)).Clamped())
		}
		return colorgrad.NewGradient().
			Colors(stops...).
			Mode(colorgrad.BlendRgb).
			Build()
	}
}

// -- colormap data

var jetData = segmentData{
	red:   []anchor{{0, 0}, {0.35, 0}, {0.66, 1}, {0.89, 1}, {1, 0.5}},
	green: []anchor{{0, 0}, {0.125, 0}, {0.375, 1}, {0.64, 1}, {0.91, 0}, {1, 0}},
	blue:  []anchor{{0, 0.5}, {0.11, 1}, {0.34, 1}, {0.65, 0}, {1, 0}},
}

// Moreland's diverging map, sampled at quarter points.
var coolwarmData = segmentData{
	red:   []anchor{{0, 0.2298057}, {0.25, 0.5529}, {0.5, 0.8654}, {0.75, 0.9566}, {1, 0.7057}},
	green: []anchor{{0, 0.2987180}, {0.25, 0.6900}, {0.5, 0.8654}, {0.75, 0.5980}, {1, 0.0156}},
	blue:  []anchor{{0, 0.7536832}, {0.25, 0.9955}, {0.5, 0.8654}, {0.75, 0.4773}, {1, 0.1502}},
}

// Perceptually uniform maps, taken at every eighth of the range.
var (
	viridisStops = []string{"#440154", "#472d7b", "#3b528b", "#2c728e", "#21918c", "#27ad81", "#5ec962", "#aadc32", "#fde725"}
	plasmaStops  = []string{"#0d0887", "#4c02a1", "#7e03a8", "#a92395", "#cc4778", "#e56b5d", "#f89540", "#fdc328", "#f0f921"}
	infernoStops = []string{"#000004", "#210c4a", "#57106e", "#89226a", "#bc3754", "#e35932", "#f98e09", "#f9c932", "#fcffa4"}
	magmaStops   = []string{"#000004", "#1d1147", "#51127c", "#822681", "#b73779", "#e65164", "#fc8961", "#fec287", "#fcfdbf"}
)

// ColorBrewer diverging schemes, eleven classes.
var (
	rdYlBuStops   = []string{"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf", "#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695"}
	spectralStops = []string{"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2"}
)

func rainbowData(x float64) colorful.Color {
	return colorful.Color{
		R: math.Abs(2*x - 0.5),
		G: math.Sin(x * math.Pi),
		B: math.Cos(x * math.Pi / 2),
	}
}
