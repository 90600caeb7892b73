package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/hauraqrrta/smartmosspanel-app/models"
)

// TelemetryStore is the write-side contract the ingestion path needs.
type TelemetryStore interface {
	SaveReading(ctx context.Context, r models.Reading) (models.Reading, error)
}

// Service holds dependencies for the Lambda ingestion logic. It fronts
// the same reading pipeline as the HTTP endpoint, for deployments where
// devices report through API Gateway.
type Service struct {
	Logger         *slog.Logger
	TelemetryStore TelemetryStore
}

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    *models.Reading `json:"data,omitempty"`
}

func (s *Service) HandleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (out events.APIGatewayProxyResponse, err error) {
	// Panic Recovery Shield
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("CRITICAL: Lambda Panic Recovered", "panic", r)
			out = reply(http.StatusInternalServerError, response{Success: false, Error: "internal server error"})
			err = nil
		}
	}()

	switch req.HTTPMethod {
	case http.MethodOptions:
		return reply(http.StatusOK, response{Success: true}), nil
	case http.MethodPost:
	default:
		return reply(http.StatusMethodNotAllowed, response{Success: false, Error: "Method not allowed"}), nil
	}

	var reading models.Reading
	if err := json.Unmarshal([]byte(req.Body), &reading); err != nil {
		s.Logger.Warn("invalid ingestion body", "error", err)
		return reply(http.StatusBadRequest, response{Success: false, Error: "Invalid JSON body"}), nil
	}

	stored, err := s.TelemetryStore.SaveReading(ctx, reading)
	if err != nil {
		s.Logger.Error("failed to save reading", "panel_id", reading.PanelID, "error", err)
		return reply(http.StatusInternalServerError, response{Success: false, Error: err.Error()}), nil
	}

	s.Logger.Info("reading received", "panel_id", stored.PanelID, "ts", stored.Timestamp)

	return reply(http.StatusOK, response{
		Success: true,
		Message: "Data berhasil diterima!",
		Data:    &stored,
	}), nil
}

func reply(status int, body response) events.APIGatewayProxyResponse {
	b, err := json.Marshal(body)
	if err != nil {
		b = []byte(fmt.Sprintf(`{"success":false,"error":%q}`, err.Error()))
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":                 "application/json",
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "POST, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type",
		},
		Body: string(b),
	}
}
