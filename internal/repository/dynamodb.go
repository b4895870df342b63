package repository

import (
	"context"
	"fmt"
	"time"

	"restaurant-finder-api/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mmcloughlin/geohash"
)

// DynamoDBAPI is the subset of the DynamoDB client used by DynamoLocationStore
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type locationItem struct {
	SessionKey string    `dynamodbav:"session_key"`
	Latitude   float64   `dynamodbav:"latitude"`
	Longitude  float64   `dynamodbav:"longitude"`
	Geohash    string    `dynamodbav:"geohash"`
	UpdatedAt  time.Time `dynamodbav:"updated_at"`
}

// DynamoLocationStore implements the location store on a DynamoDB table keyed by session_key
type DynamoLocationStore struct {
	client    DynamoDBAPI
	tableName string
	now       func() time.Time
}

// NewDynamoLocationStore creates a new DynamoDB location store
func NewDynamoLocationStore(client DynamoDBAPI, tableName string) *DynamoLocationStore {
	return &DynamoLocationStore{client: client, tableName: tableName, now: time.Now}
}

// SetLocation overwrites the item for key
func (s *DynamoLocationStore) SetLocation(ctx context.Context, key string, loc models.Location) error {
	item, err := attributevalue.MarshalMap(locationItem{
		SessionKey: key,
		Latitude:   loc.Latitude,
		Longitude:  loc.Longitude,
		Geohash:    geohash.Encode(loc.Latitude, loc.Longitude),
		UpdatedAt:  s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("repository: failed to marshal location: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("repository: failed to store location in DynamoDB: %w", err)
	}
	return nil
}

// GetLocation reads the item for key with a strongly consistent read
func (s *DynamoLocationStore) GetLocation(ctx context.Context, key string) (models.Location, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]dynamodbtypes.AttributeValue{
			"session_key": &dynamodbtypes.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return models.Location{}, fmt.Errorf("repository: failed to get location from DynamoDB: %w", err)
	}
	if len(result.Item) == 0 {
		return models.Location{}, models.ErrLocationNotFound
	}

	var item locationItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return models.Location{}, fmt.Errorf("repository: failed to unmarshal location: %w", err)
	}
	return models.Location{Latitude: item.Latitude, Longitude: item.Longitude}, nil
}
