package validation

import (
	"errors"
	"fmt"

	"github.com/hauraqrrta/smartmosspanel-app/models"
)

var (
	ErrInvalidField = errors.New("invalid field value")
	ErrNoFields     = errors.New("no field to update")
)

// ApplyReadingDefaults fills in every field a device left out. Numeric
// fields default to zero, enums to their resting value. The panel tag
// falls back to the single-panel default so untagged firmware still
// lands in a tenant.
func ApplyReadingDefaults(r *models.Reading) {
	if r.PanelID == "" {
		r.PanelID = models.DefaultPanelID
	}
	if r.SoilMoisture == "" {
		r.SoilMoisture = models.SoilDry
	}
	if r.PumpStatus == "" {
		r.PumpStatus = models.StatusOff
	}
	if r.FanStatus == "" {
		r.FanStatus = models.StatusOff
	}
}

// ValidateControlUpdate checks a partial control update before anything
// is written. An empty string means "not supplied" (the client contract
// decides presence by truthiness); at least one field must be supplied,
// and every supplied field must hold a valid value.
func ValidateControlUpdate(u models.ControlUpdate) error {
	if u.Mode == "" && u.Pump == "" && u.Fan == "" {
		return fmt.Errorf("%w: minimal one field (mode, pump, or fan)", ErrNoFields)
	}

	if u.Mode != "" && u.Mode != models.ModeAuto && u.Mode != models.ModeManual {
		return fmt.Errorf("%w: invalid mode %q", ErrInvalidField, u.Mode)
	}

	if u.Pump != "" && u.Pump != models.StatusOn && u.Pump != models.StatusOff {
		return fmt.Errorf("%w: invalid pump status %q", ErrInvalidField, u.Pump)
	}

	if u.Fan != "" && u.Fan != models.StatusOn && u.Fan != models.StatusOff {
		return fmt.Errorf("%w: invalid fan status %q", ErrInvalidField, u.Fan)
	}

	return nil
}
