package dynamodb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paperplay-backend/application/ports"
	"paperplay-backend/domain/core/entities"
	pkgerrors "paperplay-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// GameRepository implements the GameRepository interface using DynamoDB
type GameRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.GameRepository {
	return &GameRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// gameItem represents the DynamoDB item structure for a processed paper.
// The paper body is stored as a JSON document so the nested game specs
// keep their wire field names.
type gameItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	GameID     string `dynamodbav:"GameID"`
	Document   string `dynamodbav:"Document"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
}

// Save persists a processed paper to DynamoDB
func (r *GameRepository) Save(ctx context.Context, paper *entities.ProcessedPaper) error {
	document, err := json.Marshal(paper)
	if err != nil {
		return pkgerrors.NewInternalError("failed to encode paper: " + err.Error())
	}

	item := gameItem{
		PK:         fmt.Sprintf("GAME#%s", paper.GameID),
		SK:         "METADATA",
		EntityType: "GAME",
		GameID:     paper.GameID,
		Document:   string(document),
		CreatedAt:  paper.CreatedAt.Format(time.RFC3339),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return pkgerrors.NewInternalError("failed to marshal game item: " + err.Error())
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return pkgerrors.NewDatabaseError("put game", err)
	}

	r.logger.Info("Game saved to DynamoDB",
		zap.String("gameID", paper.GameID),
		zap.Int("documentBytes", len(document)),
	)
	return nil
}

// GetByID retrieves a processed paper from DynamoDB
func (r *GameRepository) GetByID(ctx context.Context, gameID string) (*entities.ProcessedPaper, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("GAME#%s", gameID)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil, pkgerrors.NewNotFoundError("game " + gameID)
		}
		return nil, pkgerrors.NewDatabaseError("get game", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("game " + gameID)
	}

	var item gameItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, pkgerrors.NewInternalError("failed to unmarshal game item: " + err.Error())
	}

	var paper entities.ProcessedPaper
	if err := json.Unmarshal([]byte(item.Document), &paper); err != nil {
		return nil, pkgerrors.NewInternalError("failed to decode paper: " + err.Error())
	}
	return &paper, nil
}
