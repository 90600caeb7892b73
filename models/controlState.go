package models

// Operating modes for the panel actuators.
const (
	ModeAuto   = "AUTO"
	ModeManual = "MANUAL"
)

// ControlState is the single mutable control record for a deployment.
// Created implicitly by the first update; read falls back to defaults.
type ControlState struct {
	ControlID   string `json:"-" dynamodbav:"control_id"`
	Mode        string `json:"mode" dynamodbav:"mode"`
	Pump        string `json:"pump" dynamodbav:"pump"`
	Fan         string `json:"fan" dynamodbav:"fan"`
	LastUpdated string `json:"lastUpdated,omitempty" dynamodbav:"last_updated"` // RFC 3339
}

// ControlUpdate is a partial control-state change. An empty string means
// the field was not supplied; the stored value is kept.
type ControlUpdate struct {
	Mode string `json:"mode"`
	Pump string `json:"pump"`
	Fan  string `json:"fan"`
}

// DefaultControlState is what a deployment runs as before any update.
func DefaultControlState() ControlState {
	return ControlState{
		Mode: ModeAuto,
		Pump: StatusOff,
		Fan:  StatusOff,
	}
}
