package control

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hauraqrrta/smartmosspanel-app/internal/validation"
	"github.com/hauraqrrta/smartmosspanel-app/models"
	"github.com/hauraqrrta/smartmosspanel-app/pkg/db"
)

// controlDocID keys the single control record of a deployment. The table
// key leaves room for per-panel records later.
const controlDocID = "main_control"

// DynamoDBAPI is the slice of the DynamoDB client the store uses.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// StateStore holds the mode/pump/fan control record.
type StateStore struct {
	Client    DynamoDBAPI
	TableName string

	now func() time.Time
}

// NewStateStore initializes the store using the shared db.Client.
func NewStateStore() (*StateStore, error) {
	tableName := os.Getenv("DYNAMODB_CONTROL_TABLE")
	if tableName == "" {
		return nil, fmt.Errorf("DYNAMODB_CONTROL_TABLE environment variable is not set")
	}

	if db.Client == nil {
		return nil, fmt.Errorf("dynamodb client is not initialized")
	}

	return &StateStore{
		Client:    db.Client,
		TableName: tableName,
		now:       time.Now,
	}, nil
}

// Read returns the current control state, falling back to AUTO with both
// actuators off when the record does not exist yet.
func (s *StateStore) Read(ctx context.Context) (models.ControlState, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"control_id": &types.AttributeValueMemberS{Value: controlDocID},
		},
	})
	if err != nil {
		return models.ControlState{}, fmt.Errorf("failed to read control state: %w", err)
	}

	if len(out.Item) == 0 {
		return models.DefaultControlState(), nil
	}

	var state models.ControlState
	if err := attributevalue.UnmarshalMap(out.Item, &state); err != nil {
		return models.ControlState{}, fmt.Errorf("failed to unmarshal control state: %w", err)
	}

	fillDefaults(&state)
	return state, nil
}

// Update applies a partial change. Validation happens before any write,
// so a rejected update leaves the record untouched. The write is a single
// UpdateItem that sets only the supplied fields; DynamoDB serializes
// updates per item, so concurrent updates to disjoint fields both land.
// The full resulting state comes back from the same call.
func (s *StateStore) Update(ctx context.Context, u models.ControlUpdate) (models.ControlState, error) {
	if err := validation.ValidateControlUpdate(u); err != nil {
		return models.ControlState{}, err
	}

	sets := []string{"#last_updated = :last_updated"}
	names := map[string]string{"#last_updated": "last_updated"}
	values := map[string]types.AttributeValue{
		":last_updated": &types.AttributeValueMemberS{Value: s.clock().UTC().Format(time.RFC3339)},
	}

	if u.Mode != "" {
		sets = append(sets, "#mode = :mode")
		names["#mode"] = "mode"
		values[":mode"] = &types.AttributeValueMemberS{Value: u.Mode}
	}
	if u.Pump != "" {
		sets = append(sets, "#pump = :pump")
		names["#pump"] = "pump"
		values[":pump"] = &types.AttributeValueMemberS{Value: u.Pump}
	}
	if u.Fan != "" {
		sets = append(sets, "#fan = :fan")
		names["#fan"] = "fan"
		values[":fan"] = &types.AttributeValueMemberS{Value: u.Fan}
	}

	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"control_id": &types.AttributeValueMemberS{Value: controlDocID},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return models.ControlState{}, fmt.Errorf("failed to update control state: %w", err)
	}

	var state models.ControlState
	if err := attributevalue.UnmarshalMap(out.Attributes, &state); err != nil {
		return models.ControlState{}, fmt.Errorf("failed to unmarshal control state: %w", err)
	}

	fillDefaults(&state)
	return state, nil
}

// fillDefaults completes a record created by a partial first write, so
// callers always see all three fields.
func fillDefaults(state *models.ControlState) {
	if state.Mode == "" {
		state.Mode = models.ModeAuto
	}
	if state.Pump == "" {
		state.Pump = models.StatusOff
	}
	if state.Fan == "" {
		state.Fan = models.StatusOff
	}
}

func (s *StateStore) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
