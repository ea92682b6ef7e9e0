package scriptMode

import "missensecolor/models/constants"

const (
	Structure constants.ScriptMode = "structure"
	Model     constants.ScriptMode = "model"
)
