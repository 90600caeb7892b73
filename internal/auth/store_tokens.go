package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hauraqrrta/smartmosspanel-app/models"
	"github.com/hauraqrrta/smartmosspanel-app/pkg/db"
)

// ErrTokenNotFound means the token matched no slot in any area. Distinct
// from an infrastructure failure so callers can answer 401 vs 500.
var ErrTokenNotFound = errors.New("token not found")

// areaKeyAttr is the partition key of the access-tokens table; every
// other string attribute on an area item is a slot-to-token entry.
const areaKeyAttr = "area_id"

// DynamoDBAPI is the slice of the DynamoDB client the store uses.
type DynamoDBAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// TokenStore resolves opaque access tokens against the token registry.
// The registry is provisioned out of band and read-only here.
type TokenStore struct {
	Client    DynamoDBAPI
	TableName string
	Logger    *slog.Logger
}

// NewTokenStore initializes the store using the shared db.Client.
func NewTokenStore(logger *slog.Logger) (*TokenStore, error) {
	tableName := os.Getenv("DYNAMODB_ACCESS_TOKENS_TABLE")
	if tableName == "" {
		return nil, fmt.Errorf("DYNAMODB_ACCESS_TOKENS_TABLE environment variable is not set")
	}

	if db.Client == nil {
		return nil, fmt.Errorf("dynamodb client is not initialized")
	}

	return &TokenStore{
		Client:    db.Client,
		TableName: tableName,
		Logger:    logger,
	}, nil
}

// Resolve walks every area item and every slot within it until the token
// matches. First match wins; the registry is small enough that a full
// scan per login is acceptable. Later duplicates are logged so operators
// can clean up the registry.
func (s *TokenStore) Resolve(ctx context.Context, token string) (models.TokenBinding, error) {
	var (
		found    bool
		binding  models.TokenBinding
		startKey map[string]types.AttributeValue
	)

	for {
		out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.TableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return models.TokenBinding{}, fmt.Errorf("failed to scan token registry: %w", err)
		}

		for _, item := range out.Items {
			areaName := stringAttr(item[areaKeyAttr])
			if areaName == "" {
				continue
			}

			for attr, av := range item {
				if attr == areaKeyAttr {
					continue
				}
				if stringAttr(av) != token {
					continue
				}

				if found {
					s.Logger.Warn("duplicate token in registry",
						"area", areaName,
						"panel_id", attr,
						"matched_area", binding.AreaName,
						"matched_panel_id", binding.PanelID,
					)
					continue
				}

				found = true
				binding = models.TokenBinding{PanelID: attr, AreaName: areaName}
			}
		}

		startKey = out.LastEvaluatedKey
		if len(startKey) == 0 {
			break
		}
	}

	if !found {
		return models.TokenBinding{}, ErrTokenNotFound
	}

	return binding, nil
}

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
