package scriptsService

import (
	"context"
	"missensecolor/models"
	"missensecolor/models/constants"
	scriptMode "missensecolor/models/constants/script-mode"
	aggregationService "missensecolor/services/aggregation"
	colorsService "missensecolor/services/colors"
	mappingsService "missensecolor/services/mappings"
	"missensecolor/utils"

	"github.com/google/uuid"
)

type (
	// ChainMapper resolves the chains of a PDB entry.
	ChainMapper interface {
		GetChainMappings(ctx context.Context, pdbId string) []models.ChainMapping
	}

	// MissenseSource provides the AlphaMissense rows of an accession.
	MissenseSource interface {
		GetMissenseRows(ctx context.Context, uniprotId string) ([]models.VariantRow, bool)
	}

	ScriptService struct {
		Mapper ChainMapper
		Source MissenseSource
		Logger utils.Logger
	}
)

func NewScriptService(mapper ChainMapper, source MissenseSource, logger utils.Logger) *ScriptService {
	return &ScriptService{
		Mapper: mapper,
		Source: source,
		Logger: logger,
	}
}

// StructureScript builds the colouring script of a PDB entry.
// Only an unknown palette is reported as an error; remote
// failures degrade the script instead.
func (ss *ScriptService) StructureScript(ctx context.Context, pdbId string, p constants.Palette) (*models.ScriptRun, error) {
	if _, err := colorsService.Gradient(p); err != nil {
		return nil, err
	}

	run := ss.newRun(scriptMode.Structure, pdbId, p)
	ss.Logger.Infof("[%s] Processing PDB structure: %s", run.Id, pdbId)

	mappings := ss.Mapper.GetChainMappings(ctx, pdbId)
	if len(mappings) == 0 {
		ss.Logger.Errorf("No UniProt mappings found for PDB ID %s", pdbId)
	}

	scored := []models.ScoredGroup{}
	for _, group := range mappingsService.GroupByUniprot(mappings) {
		ss.Logger.Infof("Processing UniProt ID %s for %d chains", group.UniprotId, len(group.Chains))
		for _, r := range group.Ranges {
			ss.Logger.Debugf("UniProt ID %s covers residues %d-%d", group.UniprotId, r.Start, r.End)
		}

		sg := models.ScoredGroup{Group: group}
		if rows, ok := ss.Source.GetMissenseRows(ctx, group.UniprotId); ok {
			sg.Summaries = aggregationService.Summarize(rows)
		}
		scored = append(scored, sg)
	}

	script, err := EmitStructureScript(pdbId, scored, p)
	if err != nil {
		return nil, err
	}
	run.Script = script

	ss.Logger.Infof("[%s] Generated %d commands for %s", run.Id, len(script), pdbId)
	return run, nil
}

// ModelScript builds the colouring script of the AlphaFold model
// of a UniProt accession.
func (ss *ScriptService) ModelScript(ctx context.Context, uniprotId string, p constants.Palette) (*models.ScriptRun, error) {
	if _, err := colorsService.Gradient(p); err != nil {
		return nil, err
	}

	run := ss.newRun(scriptMode.Model, uniprotId, p)
	ss.Logger.Infof("[%s] Processing AlphaFold model for UniProt ID: %s", run.Id, uniprotId)

	var summaries []models.PositionSummary
	if rows, ok := ss.Source.GetMissenseRows(ctx, uniprotId); ok {
		summaries = aggregationService.Summarize(rows)
	}

	script, err := EmitModelScript(uniprotId, summaries, p)
	if err != nil {
		return nil, err
	}
	run.Script = script

	ss.Logger.Infof("[%s] Generated %d commands for %s", run.Id, len(script), uniprotId)
	return run, nil
}

func (ss *ScriptService) newRun(mode constants.ScriptMode, accession string, p constants.Palette) *models.ScriptRun {
	return &models.ScriptRun{
		Id:        uuid.New(),
		Mode:      mode,
		Accession: accession,
		Palette:   p,
	}
}
