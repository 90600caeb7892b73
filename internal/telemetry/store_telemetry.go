package telemetry

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/hauraqrrta/smartmosspanel-app/internal/validation"
	"github.com/hauraqrrta/smartmosspanel-app/models"
	"github.com/hauraqrrta/smartmosspanel-app/pkg/db"
)

// DynamoDBAPI is the slice of the DynamoDB client the store uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// TelemetryStore owns the per-panel reading history and the denormalized
// latest-reading pointer. History lives in the readings table keyed by
// panel_id plus a timestamp-prefixed sort key, so range order is time
// order and same-millisecond writes never collide; the pointer is one
// item per panel in the latest table.
type TelemetryStore struct {
	Client      DynamoDBAPI
	TableName   string
	LatestTable string

	// now is swapped in tests to control timestamps.
	now func() time.Time
}

// NewTelemetryStore initializes the store using the shared db.Client.
func NewTelemetryStore() (*TelemetryStore, error) {
	tableName := os.Getenv("DYNAMODB_READINGS_TABLE")
	if tableName == "" {
		return nil, fmt.Errorf("DYNAMODB_READINGS_TABLE environment variable is not set")
	}

	latestTable := os.Getenv("DYNAMODB_LATEST_TABLE")
	if latestTable == "" {
		return nil, fmt.Errorf("DYNAMODB_LATEST_TABLE environment variable is not set")
	}

	if db.Client == nil {
		return nil, fmt.Errorf("dynamodb client is not initialized")
	}

	return &TelemetryStore{
		Client:      db.Client,
		TableName:   tableName,
		LatestTable: latestTable,
		now:         time.Now,
	}, nil
}

// SaveReading fills defaults, stamps the reading with the server clock,
// appends it to the panel's history and moves the latest pointer. The
// append is the source of truth and happens first; a pointer failure
// fails the whole call so the caller never sees a half-applied write.
func (store *TelemetryStore) SaveReading(ctx context.Context, r models.Reading) (models.Reading, error) {
	validation.ApplyReadingDefaults(&r)
	r.ReadingID = uuid.NewString()
	r.Timestamp = store.clock().UnixMilli()
	r.SortKey = fmt.Sprintf("%013d#%s", r.Timestamp, r.ReadingID)

	item, err := attributevalue.MarshalMap(r)
	if err != nil {
		return models.Reading{}, fmt.Errorf("failed to marshal reading: %w", err)
	}

	_, err = store.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(store.TableName),
		Item:      item,
	})
	if err != nil {
		return models.Reading{}, fmt.Errorf("failed to store reading: %w", err)
	}

	_, err = store.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(store.LatestTable),
		Item:      item,
	})
	if err != nil {
		return models.Reading{}, fmt.Errorf("reading stored but latest pointer update failed: %w", err)
	}

	return r, nil
}

// LatestAndHistory returns the newest reading for a panel and its most
// recent history, oldest first so chart consumers can plot left to
// right. A panel with no readings yields a nil latest and an empty
// history with no error.
func (store *TelemetryStore) LatestAndHistory(ctx context.Context, panelID string, limit int32) (*models.Reading, []models.Reading, error) {
	if limit <= 0 {
		limit = models.DefaultHistoryLimit
	}

	out, err := store.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(store.TableName),
		KeyConditionExpression: aws.String("panel_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: panelID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query readings: %w", err)
	}

	history := make([]models.Reading, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &history); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal readings: %w", err)
	}

	if len(history) == 0 {
		return nil, history, nil
	}

	// Query returned newest first; flip to oldest first.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	latest := history[len(history)-1]
	return &latest, history, nil
}

// Latest reads the denormalized pointer for one panel. Nil without error
// when the panel has never reported.
func (store *TelemetryStore) Latest(ctx context.Context, panelID string) (*models.Reading, error) {
	out, err := store.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(store.LatestTable),
		Key: map[string]types.AttributeValue{
			"panel_id": &types.AttributeValueMemberS{Value: panelID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read latest pointer: %w", err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var r models.Reading
	if err := attributevalue.UnmarshalMap(out.Item, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal latest reading: %w", err)
	}

	return &r, nil
}

func (store *TelemetryStore) clock() time.Time {
	if store.now != nil {
		return store.now()
	}
	return time.Now()
}
