package model

// PipelineResult is the single payload every pipeline run produces, even on
// total failure. Addresses holds whatever passed the active operation's
// filter; Narrative explains what happened and where the run degraded.
type PipelineResult struct {
	Addresses []string `json:"addresses"`
	Narrative string   `json:"narrative"`
}
