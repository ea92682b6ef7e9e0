package models

import (
	"missensecolor/models/constants"
	"strings"

	"github.com/google/uuid"
)

// ChainMapping places one structure chain onto a UniProt
// accession's residue numbering.
type ChainMapping struct {
	ChainId   string `json:"chainId" mapstructure:"chain_id"`
	UniprotId string `json:"uniprotId" mapstructure:"-"`
	Start     int    `json:"start" mapstructure:"unp_start"`
	End       int    `json:"end" mapstructure:"unp_end"`
}

type SequenceRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// UniprotGroup gathers every chain of a structure that maps
// onto the same UniProt accession.
type UniprotGroup struct {
	UniprotId string          `json:"uniprotId"`
	Chains    []string        `json:"chains"`
	Ranges    []SequenceRange `json:"ranges"`
}

// AddRange keeps Ranges a set, in first-seen order.
func (g *UniprotGroup) AddRange(start int, end int) {
	for _, r := range g.Ranges {
		if r.Start == start && r.End == end {
			return
		}
	}
	g.Ranges = append(g.Ranges, SequenceRange{Start: start, End: end})
}

type VariantRow struct {
	ProteinVariant  string            `json:"protein_variant"`
	AmClass         constants.AmClass `json:"am_class"`
	AmPathogenicity float64           `json:"am_pathogenicity"` // NaN when missing or non-numeric
}

type PositionSummary struct {
	Position         string            `json:"position"`
	LPathCount       int               `json:"LPath_count"`
	LBenCount        int               `json:"LBen_count"`
	AmbCount         int               `json:"Amb_count"`
	AvgPathogenicity float64           `json:"avg_pathogenicity"`
	OverallClass     constants.AmClass `json:"overall_class"`
}

// ScoredGroup is a UniprotGroup together with the outcome of its
// score table lookup. Summaries is nil when the lookup failed.
type ScoredGroup struct {
	Group     UniprotGroup
	Summaries []PositionSummary
}

type ColorStop struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Hex   string  `json:"hex"`
}

// Script is an ordered list of ChimeraX commands.
type Script []string

func (s Script) String() string {
	return strings.Join(s, "\n")
}

type ScriptRun struct {
	Id        uuid.UUID            `json:"id"`
	Mode      constants.ScriptMode `json:"mode"`
	Accession string               `json:"accession"`
	Palette   constants.Palette    `json:"palette"`
	Script    Script               `json:"script"`
}
