package aggregationService

import (
	"math"
	"missensecolor/models"
	"missensecolor/models/constants"
	amClass "missensecolor/models/constants/am-class"
	"missensecolor/utils"
	"regexp"

	. "github.com/ahmetb/go-linq"
)

var positionPattern = regexp.MustCompile(`[A-Za-z]+[0-9]+`)

type positionedRow struct {
	Position string
	Row      models.VariantRow
}

// PositionOf extracts the residue token ("A123") of a variant
// label ("A123V"). Labels without one map to "".
func PositionOf(proteinVariant string) string {
	return positionPattern.FindString(proteinVariant)
}

// PositionNumber keeps every digit of a position token.
func PositionNumber(position string) string {
	return utils.DigitsOnly(position)
}

// MeanOfValid averages the non-NaN values; NaN when there are none.
func MeanOfValid(values []float64) float64 {
	var (
		sum   float64
		count int
	)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// MajorityClass picks the class with the highest count. Ties go
// to the class declared first in amClass.Ordered.
func MajorityClass(lpath int, lben int, amb int) constants.AmClass {
	counts := map[constants.AmClass]int{
		amClass.LPath: lpath,
		amClass.LBen:  lben,
		amClass.Amb:   amb,
	}

	best := amClass.Ordered[0]
	for _, class := range amClass.Ordered[1:] {
		if counts[class] > counts[best] {
			best = class
		}
	}
	return best
}

// Summarize collapses variant rows into one summary per residue
// position, in the order positions first appear.
func Summarize(rows []models.VariantRow) []models.PositionSummary {
	var positioned []positionedRow
	From(rows).SelectT(func(r models.VariantRow) positionedRow {
		return positionedRow{Position: PositionOf(r.ProteinVariant), Row: r}
	}).ToSlice(&positioned)

	var order []string
	From(positioned).SelectT(func(p positionedRow) string {
		return p.Position
	}).Distinct().ToSlice(&order)

	groups := map[string][]models.VariantRow{}
	From(positioned).GroupByT(
		func(p positionedRow) string { return p.Position },
		func(p positionedRow) models.VariantRow { return p.Row },
	).ForEachT(func(g Group) {
		var members []models.VariantRow
		From(g.Group).ToSlice(&members)
		groups[g.Key.(string)] = members
	})

	summaries := make([]models.PositionSummary, 0, len(order))
	for _, position := range order {
		summaries = append(summaries, summarizePosition(position, groups[position]))
	}
	return summaries
}

func summarizePosition(position string, members []models.VariantRow) models.PositionSummary {
	countOf := func(class constants.AmClass) int {
		return From(members).CountWithT(func(r models.VariantRow) bool {
			return r.AmClass == class
		})
	}

	var scores []float64
	From(members).SelectT(func(r models.VariantRow) float64 {
		return r.AmPathogenicity
	}).ToSlice(&scores)

	summary := models.PositionSummary{
		Position:         position,
		LPathCount:       countOf(amClass.LPath),
		LBenCount:        countOf(amClass.LBen),
		AmbCount:         countOf(amClass.Amb),
		AvgPathogenicity: MeanOfValid(scores),
	}
	summary.OverallClass = MajorityClass(summary.LPathCount, summary.LBenCount, summary.AmbCount)
	return summary
}
