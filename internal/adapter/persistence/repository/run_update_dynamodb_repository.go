package repository

import (
	"context"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRunUpdatesTableName = "run_updates"
	runUpdatesRunIDIndex       = "run_id-index"
)

type runUpdateItem struct {
	ID               string   `dynamodbav:"id"`
	RunID            string   `dynamodbav:"run_id"`
	AuthorID         string   `dynamodbav:"author_id"`
	Title            string   `dynamodbav:"title"`
	Body             string   `dynamodbav:"body"`
	PhotoURLs        []string `dynamodbav:"photo_urls,omitempty"`
	VisibleToClients bool     `dynamodbav:"visible_to_clients"`
	CreatedAt        string   `dynamodbav:"created_at"`
}

// RunUpdateDynamoRepository persists RunUpdate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: run_id-index (PK: run_id)

type RunUpdateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRunUpdateRepository = (*RunUpdateDynamoRepository)(nil)

func NewRunUpdateDynamoRepository(ddb *dynamodb.Client) *RunUpdateDynamoRepository {
	return &RunUpdateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RUN_UPDATES_TABLE", defaultRunUpdatesTableName),
	}
}

func (r *RunUpdateDynamoRepository) Create(ctx context.Context, u entities.RunUpdate) (entities.RunUpdate, error) {
	av, err := attributevalue.MarshalMap(toRunUpdateItem(u))
	if err != nil {
		return entities.RunUpdate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.RunUpdate{}, err
	}
	return u, nil
}

func (r *RunUpdateDynamoRepository) GetByID(ctx context.Context, id string) (entities.RunUpdate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RunUpdate{}, err
	}
	if len(out.Item) == 0 {
		return entities.RunUpdate{}, nil
	}

	var it runUpdateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RunUpdate{}, err
	}
	return fromRunUpdateItem(it), nil
}

func (r *RunUpdateDynamoRepository) ListByRunID(ctx context.Context, runID string) ([]entities.RunUpdate, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(runUpdatesRunIDIndex),
		KeyConditionExpression: aws.String("#run_id = :run_id"),
		ExpressionAttributeNames: map[string]string{
			"#run_id": "run_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":run_id": &types.AttributeValueMemberS{Value: runID},
		},
	}

	updates := make([]entities.RunUpdate, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []runUpdateItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			updates = append(updates, fromRunUpdateItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return updates, nil
}

func toRunUpdateItem(u entities.RunUpdate) runUpdateItem {
	return runUpdateItem{
		ID:               u.ID,
		RunID:            u.RunID,
		AuthorID:         u.AuthorID,
		Title:            u.Title,
		Body:             u.Body,
		PhotoURLs:        u.PhotoURLs,
		VisibleToClients: u.VisibleToClients,
		CreatedAt:        formatTime(u.CreatedAt),
	}
}

func fromRunUpdateItem(it runUpdateItem) entities.RunUpdate {
	return entities.RunUpdate{
		ID:               it.ID,
		RunID:            it.RunID,
		AuthorID:         it.AuthorID,
		Title:            it.Title,
		Body:             it.Body,
		PhotoURLs:        it.PhotoURLs,
		VisibleToClients: it.VisibleToClients,
		CreatedAt:        parseTime(it.CreatedAt),
	}
}
