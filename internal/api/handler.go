package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hauraqrrta/smartmosspanel-app/internal/auth"
	"github.com/hauraqrrta/smartmosspanel-app/internal/session"
	"github.com/hauraqrrta/smartmosspanel-app/internal/validation"
	"github.com/hauraqrrta/smartmosspanel-app/models"
)

// OfflineLimit is how stale the newest reading may be before the panel
// counts as offline.
const OfflineLimit = 2 * time.Minute

// TelemetryStore is the reading history contract the API needs.
type TelemetryStore interface {
	SaveReading(ctx context.Context, r models.Reading) (models.Reading, error)
	LatestAndHistory(ctx context.Context, panelID string, limit int32) (*models.Reading, []models.Reading, error)
	Latest(ctx context.Context, panelID string) (*models.Reading, error)
}

// ControlStore is the control-state contract the API needs.
type ControlStore interface {
	Read(ctx context.Context) (models.ControlState, error)
	Update(ctx context.Context, u models.ControlUpdate) (models.ControlState, error)
}

// TokenResolver maps an access token to a panel identity.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (models.TokenBinding, error)
}

// Handler holds dependencies for the dashboard and device endpoints.
type Handler struct {
	Logger    *slog.Logger
	Telemetry TelemetryStore
	Control   ControlStore
	Tokens    TokenResolver
}

func NewHandler(logger *slog.Logger, telemetry TelemetryStore, control ControlStore, tokens TokenResolver) *Handler {
	return &Handler{
		Logger:    logger,
		Telemetry: telemetry,
		Control:   control,
		Tokens:    tokens,
	}
}

// PostReading ingests one sensor reading from a panel
// @Summary Ingest a sensor reading
// @Description Accepts a reading from the panel firmware; missing fields get defaults and the timestamp is assigned server-side
// @Tags telemetry
// @Accept json
// @Produce json
// @Param data body models.Reading true "Sensor reading"
// @Success 200 {object} map[string]interface{} "success, message, data"
// @Failure 400 {object} map[string]interface{} "error: invalid JSON body"
// @Failure 500 {object} map[string]interface{} "error: storage failure"
// @Router /api/receive-data [post]
func (h *Handler) PostReading(c *gin.Context) {
	var r models.Reading

	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON body"})
		return
	}

	stored, err := h.Telemetry.SaveReading(c.Request.Context(), r)
	if err != nil {
		h.Logger.Error("failed to save reading", "panel_id", r.PanelID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	h.Logger.Info("reading received", "panel_id", stored.PanelID, "ts", stored.Timestamp)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Data berhasil diterima!",
		"data":    stored,
	})
}

// GetReadings returns the latest reading and bounded history for a panel
// @Summary Latest reading plus history
// @Description History is capped to the most recent entries and ordered oldest to newest; success reports whether the panel has any data yet
// @Tags telemetry
// @Produce json
// @Param panelId query string true "Panel ID"
// @Param limit query int false "History cap" default(50)
// @Success 200 {object} map[string]interface{} "success, latest, history"
// @Failure 401 {object} map[string]interface{} "error: panelId missing"
// @Router /api/receive-data [get]
func (h *Handler) GetReadings(c *gin.Context) {
	panelID := c.Query("panelId")
	if panelID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "panelId is required"})
		return
	}

	var limit int32
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			limit = int32(n)
		}
	}

	latest, history, err := h.Telemetry.LatestAndHistory(c.Request.Context(), panelID, limit)
	if err != nil {
		h.Logger.Error("failed to query readings", "panel_id", panelID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": latest != nil,
		"latest":  latest,
		"history": history,
	})
}

// GetControl returns the current control settings
// @Summary Read control state
// @Produce json
// @Success 200 {object} map[string]interface{} "success, mode, pump, fan"
// @Failure 500 {object} map[string]interface{} "message: storage failure"
// @Router /api/control [get]
func (h *Handler) GetControl(c *gin.Context) {
	state, err := h.Control.Read(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to read control state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"mode":    state.Mode,
		"pump":    state.Pump,
		"fan":     state.Fan,
	})
}

// PostControl applies a partial control update
// @Summary Update control state
// @Description At least one of mode, pump, fan must be supplied; empty values mean "keep the current setting"
// @Tags control
// @Accept json
// @Produce json
// @Param data body models.ControlUpdate true "Fields to change"
// @Success 200 {object} map[string]interface{} "success, message, data"
// @Failure 400 {object} map[string]interface{} "message: validation failure"
// @Failure 500 {object} map[string]interface{} "message: storage failure"
// @Router /api/control [post]
func (h *Handler) PostControl(c *gin.Context) {
	var u models.ControlUpdate

	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
		return
	}

	h.Logger.Info("control update request", "mode", u.Mode, "pump", u.Pump, "fan", u.Fan)

	state, err := h.Control.Update(c.Request.Context(), u)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Minimal satu field harus di-update (mode, pump, atau fan)",
			})
		case errors.Is(err, validation.ErrInvalidField):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		default:
			h.Logger.Error("failed to update control state", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error: " + err.Error()})
		}
		return
	}

	h.Logger.Info("control settings updated",
		"mode", state.Mode, "pump", state.Pump, "fan", state.Fan)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Control settings updated",
		"data": gin.H{
			"mode": state.Mode,
			"pump": state.Pump,
			"fan":  state.Fan,
		},
	})
}

// VerifyToken resolves an access token and issues the session cookies
// @Summary Verify an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param data body object true "{token}"
// @Success 200 {object} map[string]interface{} "success, panelId, areaName"
// @Failure 400 {object} map[string]interface{} "message: token missing"
// @Failure 401 {object} map[string]interface{} "message: token not found"
// @Router /api/verify-token [post]
func (h *Handler) VerifyToken(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Token is required"})
		return
	}

	binding, err := h.Tokens.Resolve(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenNotFound) {
			h.Logger.Warn("token not found")
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token tidak valid atau tidak ditemukan",
			})
			return
		}

		h.Logger.Error("token resolution failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error: " + err.Error(),
		})
		return
	}

	session.Issue(c, binding)

	h.Logger.Info("authentication successful",
		"panel_id", binding.PanelID, "area", binding.AreaName)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"panelId":  binding.PanelID,
		"areaName": binding.AreaName,
	})
}

// GetDeviceStatus reports whether a panel is online
// @Summary Device connection status
// @Description A panel is online when its newest reading is under two minutes old
// @Tags devices
// @Produce json
// @Param panelId query string false "Panel ID (falls back to the session cookie)"
// @Success 200 {object} map[string]interface{} "success, online, lastSeen"
// @Failure 401 {object} map[string]interface{} "error: no panel identity"
// @Router /api/devices/status [get]
func (h *Handler) GetDeviceStatus(c *gin.Context) {
	panelID := c.Query("panelId")
	if panelID == "" {
		panelID, _ = c.Cookie(session.PanelCookie)
	}
	if panelID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "panelId is required"})
		return
	}

	latest, err := h.Telemetry.Latest(c.Request.Context(), panelID)
	if err != nil {
		h.Logger.Error("failed to read device status", "panel_id", panelID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve status"})
		return
	}

	online := false
	var lastSeen any
	if latest != nil {
		lastSeen = latest.Timestamp
		online = time.Since(time.UnixMilli(latest.Timestamp)) <= OfflineLimit
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"panelId":  panelID,
		"online":   online,
		"lastSeen": lastSeen,
	})
}
