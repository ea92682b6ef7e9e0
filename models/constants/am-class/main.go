package amClass

import (
	"missensecolor/models/constants"
)

const (
	Unknown constants.AmClass = ""

	LPath constants.AmClass = "LPath"
	LBen  constants.AmClass = "LBen"
	Amb   constants.AmClass = "Amb"
)

// Ordered is the declaration order used to break ties
// when picking the majority class of a position.
var Ordered = []constants.AmClass{LPath, LBen, Amb}

func CastToAmClass(text string) constants.AmClass {
	switch text {
	case "LPath":
		return LPath
	case "LBen":
		return LBen
	case "Amb":
		return Amb
	default:
		return Unknown
	}
}
