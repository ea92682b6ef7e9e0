package scriptsService

import (
	"fmt"
	"missensecolor/models"
	"missensecolor/models/constants"
	aggregationService "missensecolor/services/aggregation"
	colorsService "missensecolor/services/colors"
	"strings"
)

const (
	HideAtoms       = "hide atoms"
	ShowCartoon     = "show cartoon"
	LightingSoft    = "lighting soft"
	WhiteBackground = "set bg_color white"
	KeyPlacement    = "key pos 0.036642,0.100632 size 0.0378814,0.835561"
)

func OpenStructureCommand(pdbId string) string {
	return fmt.Sprintf("open %s", pdbId)
}

func FetchModelCommand(uniprotId string) string {
	return fmt.Sprintf("alphafold fetch %s", uniprotId)
}

func ChainColorCommand(chains []string, positionNumber string, hex string) string {
	return fmt.Sprintf("color last-opened &/%s:%s %s", strings.Join(chains, ","), positionNumber, hex)
}

func ResidueColorCommand(positionNumber string, hex string) string {
	return fmt.Sprintf("color last-opened & :%s %s", positionNumber, hex)
}

/*
EmitStructureScript colours an experimental structure, one command
per position of every group whose scores were found. With no groups
at all only the display commands are produced.
*/
func EmitStructureScript(pdbId string, groups []models.ScoredGroup, p constants.Palette) (models.Script, error) {
	grad, err := colorsService.Gradient(p)
	if err != nil {
		return nil, err
	}

	script := models.Script{OpenStructureCommand(pdbId), HideAtoms, ShowCartoon}
	if len(groups) == 0 {
		return script, nil
	}

	for _, g := range groups {
		for _, summary := range g.Summaries {
			hex := colorsService.HexAt(grad, summary.AvgPathogenicity)
			script = append(script, ChainColorCommand(g.Group.Chains, aggregationService.PositionNumber(summary.Position), hex))
		}
	}

	return appendTrailer(script, p)
}

/*
EmitModelScript colours a predicted model. A nil summaries slice
means the score table could not be fetched.
*/
func EmitModelScript(uniprotId string, summaries []models.PositionSummary, p constants.Palette) (models.Script, error) {
	grad, err := colorsService.Gradient(p)
	if err != nil {
		return nil, err
	}

	script := models.Script{FetchModelCommand(uniprotId), HideAtoms, ShowCartoon}
	if summaries == nil {
		return script, nil
	}

	for _, summary := range summaries {
		hex := colorsService.HexAt(grad, summary.AvgPathogenicity)
		script = append(script, ResidueColorCommand(aggregationService.PositionNumber(summary.Position), hex))
	}

	return appendTrailer(script, p)
}

func appendTrailer(script models.Script, p constants.Palette) (models.Script, error) {
	key, err := colorsService.KeyCommand(p)
	if err != nil {
		return nil, err
	}
	return append(script, LightingSoft, WhiteBackground, key, KeyPlacement), nil
}
