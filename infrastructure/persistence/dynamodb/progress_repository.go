package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"

	"paperplay-backend/application/ports"
	"paperplay-backend/domain/core/entities"
	pkgerrors "paperplay-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ProgressRepository implements the ProgressRepository interface using
// DynamoDB. Records live under PK=USER#<id>, SK=GAME#<id>, so one Query
// fetches all of a user's games.
type ProgressRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ProgressRepository {
	return &ProgressRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// progressItem represents the DynamoDB item structure for progress
type progressItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	UserID     string `dynamodbav:"UserID"`
	GameID     string `dynamodbav:"GameID"`
	Document   string `dynamodbav:"Document"`
}

// Get retrieves one user's progress for one game
func (r *ProgressRepository) Get(ctx context.Context, userID, gameID string) (*entities.UserProgress, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", userID)},
			"SK": &types.AttributeValueMemberS{Value: fmt.Sprintf("GAME#%s", gameID)},
		},
	})
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get progress", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("progress for user " + userID + " game " + gameID)
	}

	return decodeProgressItem(result.Item)
}

// ListByUser retrieves all progress records for a user
func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]*entities.UserProgress, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(fmt.Sprintf("USER#%s", userID))).
		And(expression.Key("SK").BeginsWith("GAME#"))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to build query expression: " + err.Error())
	}

	var records []*entities.UserProgress
	var lastKey map[string]types.AttributeValue
	for {
		result, err := r.client.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("query progress", err)
		}

		for _, item := range result.Items {
			record, err := decodeProgressItem(item)
			if err != nil {
				r.logger.Warn("Skipping malformed progress item",
					zap.String("userID", userID),
					zap.Error(err),
				)
				continue
			}
			records = append(records, record)
		}

		lastKey = result.LastEvaluatedKey
		if lastKey == nil {
			break
		}
	}

	return records, nil
}

// Apply reads, mutates and writes back the record. Progress is only
// touched from session-end handling, so read-modify-write is enough
// here; there is no concurrent writer for the same (user, game) pair
// outside a race the session Claim already resolved.
func (r *ProgressRepository) Apply(ctx context.Context, userID, gameID string, create func() *entities.UserProgress, fn func(*entities.UserProgress)) error {
	record, err := r.Get(ctx, userID, gameID)
	if err != nil {
		if !pkgerrors.IsNotFound(err) {
			return err
		}
		record = create()
	}

	fn(record)

	document, err := json.Marshal(record)
	if err != nil {
		return pkgerrors.NewInternalError("failed to encode progress: " + err.Error())
	}

	item := progressItem{
		PK:         fmt.Sprintf("USER#%s", userID),
		SK:         fmt.Sprintf("GAME#%s", gameID),
		EntityType: "PROGRESS",
		UserID:     userID,
		GameID:     gameID,
		Document:   string(document),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal progress item: " + err.Error())
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("put progress", err)
	}

	return nil
}

func decodeProgressItem(av map[string]types.AttributeValue) (*entities.UserProgress, error) {
	var item progressItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, pkgerrors.NewInternalError("failed to unmarshal progress item: " + err.Error())
	}

	var record entities.UserProgress
	if err := json.Unmarshal([]byte(item.Document), &record); err != nil {
		return nil, pkgerrors.NewInternalError("failed to decode progress: " + err.Error())
	}
	return &record, nil
}
