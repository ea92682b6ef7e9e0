package palette

import (
	"missensecolor/models/constants"
)

const (
	Unknown constants.Palette = ""

	Jet      constants.Palette = "jet"
	Viridis  constants.Palette = "viridis"
	Plasma   constants.Palette = "plasma"
	Inferno  constants.Palette = "inferno"
	Magma    constants.Palette = "magma"
	Rainbow  constants.Palette = "rainbow"
	Coolwarm constants.Palette = "coolwarm"
	RdYlBu   constants.Palette = "RdYlBu"
	Spectral constants.Palette = "spectral"

	Default = Jet
)

// Names lists the selectable palettes in help/display order.
var Names = []constants.Palette{Jet, Viridis, Plasma, Inferno, Magma, Rainbow, Coolwarm, RdYlBu, Spectral}

// ColormapNames maps a selectable palette onto the colormap it
// stands for. Note "spectral" resolves to "Spectral".
var ColormapNames = map[constants.Palette]string{
	Jet:      "jet",
	Viridis:  "viridis",
	Plasma:   "plasma",
	Inferno:  "inferno",
	Magma:    "magma",
	Rainbow:  "rainbow",
	Coolwarm: "coolwarm",
	RdYlBu:   "RdYlBu",
	Spectral: "Spectral",
}

func CastToPalette(text string) constants.Palette {
	p := constants.Palette(text)
	if _, ok := ColormapNames[p]; ok {
		return p
	}
	return Unknown
}

func IsKnownPalette(text string) bool {
	return CastToPalette(text) != Unknown
}

func NamesAsStrings() []string {
	names := make([]string, 0, len(Names))
	for _, n := range Names {
		names = append(names, string(n))
	}
	return names
}
