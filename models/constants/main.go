package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout the missense colouring
	tool and its services.
*/
type AmClass string
type Palette string
type ScriptMode string
