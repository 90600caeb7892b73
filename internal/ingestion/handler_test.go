package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/hauraqrrta/smartmosspanel-app/internal/validation"
	"github.com/hauraqrrta/smartmosspanel-app/models"
)

type fakeTelemetry struct {
	saved []models.Reading
	err   error
}

func (f *fakeTelemetry) SaveReading(_ context.Context, r models.Reading) (models.Reading, error) {
	if f.err != nil {
		return models.Reading{}, f.err
	}
	validation.ApplyReadingDefaults(&r)
	r.Timestamp = 1700000000000
	f.saved = append(f.saved, r)
	return r, nil
}

func newService(store *fakeTelemetry) *Service {
	return &Service{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		TelemetryStore: store,
	}
}

func TestHandleRequestStoresReading(t *testing.T) {
	store := &fakeTelemetry{}
	service := newService(store)

	out, err := service.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{"panelId":"panel02","temperature":21.5}`,
	})
	if err != nil {
		t.Fatalf("HandleRequest failed: %v", err)
	}
	if out.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", out.StatusCode)
	}

	var body response
	if err := json.Unmarshal([]byte(out.Body), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if !body.Success || body.Data == nil {
		t.Fatalf("body = %+v", body)
	}
	if body.Data.PanelID != "panel02" || body.Data.Timestamp == 0 {
		t.Errorf("stored reading = %+v", body.Data)
	}
	if len(store.saved) != 1 {
		t.Errorf("saved = %d readings, want 1", len(store.saved))
	}
}

func TestHandleRequestInvalidBody(t *testing.T) {
	service := newService(&fakeTelemetry{})

	out, err := service.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{not json`,
	})
	if err != nil {
		t.Fatalf("HandleRequest failed: %v", err)
	}
	if out.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", out.StatusCode)
	}
}

func TestHandleRequestStorageFailure(t *testing.T) {
	service := newService(&fakeTelemetry{err: errors.New("table unreachable")})

	out, err := service.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{}`,
	})
	if err != nil {
		t.Fatalf("HandleRequest failed: %v", err)
	}
	if out.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", out.StatusCode)
	}
}

func TestHandleRequestMethodNotAllowed(t *testing.T) {
	service := newService(&fakeTelemetry{})

	out, err := service.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
	})
	if err != nil {
		t.Fatalf("HandleRequest failed: %v", err)
	}
	if out.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", out.StatusCode)
	}
}

func TestHandleRequestOptions(t *testing.T) {
	service := newService(&fakeTelemetry{})

	out, err := service.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodOptions,
	})
	if err != nil {
		t.Fatalf("HandleRequest failed: %v", err)
	}
	if out.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", out.StatusCode)
	}
	if out.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Error("CORS headers missing on preflight response")
	}
}
