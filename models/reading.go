package models

// Soil moisture values reported by the panel sensor.
const (
	SoilDry = "DRY"
	SoilWet = "WET"
)

// Actuator status values (pump and fan).
const (
	StatusOn  = "ON"
	StatusOff = "OFF"
)

// DefaultPanelID tags readings ingested without an explicit panelId.
// Single-panel firmware builds do not send one.
const DefaultPanelID = "panel01"

// DefaultHistoryLimit caps how many readings a history query returns.
const DefaultHistoryLimit = 50

// Reading is one ingested telemetry sample. Immutable once stored; the
// timestamp is assigned server-side at write time, never by the device.
type Reading struct {
	ReadingID string `json:"readingId" dynamodbav:"reading_id"`
	// SortKey is the readings-table range key: the zero-padded timestamp
	// joined with the reading id, so two writes for one panel in the same
	// millisecond still occupy distinct items.
	SortKey      string  `json:"-" dynamodbav:"sk"`
	PanelID      string  `json:"panelId" dynamodbav:"panel_id"`
	Temperature  float64 `json:"temperature" dynamodbav:"temperature"`
	Humidity     float64 `json:"humidity" dynamodbav:"humidity"`
	SoilMoisture string  `json:"soilMoisture" dynamodbav:"soil_moisture"`
	PumpStatus   string  `json:"pumpStatus" dynamodbav:"pump_status"`
	FanStatus    string  `json:"fanStatus" dynamodbav:"fan_status"`
	Pollution    float64 `json:"pollution" dynamodbav:"pollution"`
	Timestamp    int64   `json:"timestamp" dynamodbav:"ts"` // unix millis
}
