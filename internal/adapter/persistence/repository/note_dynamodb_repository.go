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
	defaultNotesTableName = "notes"
	notesBuildIDIndex     = "build_id-index"
)

type noteItem struct {
	ID              string   `dynamodbav:"id"`
	BuildID         string   `dynamodbav:"build_id"`
	AuthorID        string   `dynamodbav:"author_id"`
	Body            string   `dynamodbav:"body"`
	PhotoURLs       []string `dynamodbav:"photo_urls,omitempty"`
	VisibleToClient bool     `dynamodbav:"visible_to_client"`
	StageID         string   `dynamodbav:"stage_id,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
}

// NoteDynamoRepository persists Note entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: build_id-index (PK: build_id)

type NoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INoteRepository = (*NoteDynamoRepository)(nil)

func NewNoteDynamoRepository(ddb *dynamodb.Client) *NoteDynamoRepository {
	return &NoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTES_TABLE", defaultNotesTableName),
	}
}

func (r *NoteDynamoRepository) Create(ctx context.Context, n entities.Note) (entities.Note, error) {
	av, err := attributevalue.MarshalMap(toNoteItem(n))
	if err != nil {
		return entities.Note{}, err
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
		return entities.Note{}, err
	}
	return n, nil
}

func (r *NoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Note, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Note{}, err
	}
	if len(out.Item) == 0 {
		return entities.Note{}, nil
	}

	var it noteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Note{}, err
	}
	return fromNoteItem(it), nil
}

func (r *NoteDynamoRepository) ListByBuildID(ctx context.Context, buildID string, clientVisibleOnly bool) ([]entities.Note, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notesBuildIDIndex),
		KeyConditionExpression: aws.String("#build_id = :build_id"),
		ExpressionAttributeNames: map[string]string{
			"#build_id": "build_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":build_id": &types.AttributeValueMemberS{Value: buildID},
		},
	}
	if clientVisibleOnly {
		in.FilterExpression = aws.String("#visible = :true")
		in.ExpressionAttributeNames["#visible"] = "visible_to_client"
		in.ExpressionAttributeValues[":true"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	notes := make([]entities.Note, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []noteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			notes = append(notes, fromNoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return notes, nil
}

func toNoteItem(n entities.Note) noteItem {
	return noteItem{
		ID:              n.ID,
		BuildID:         n.BuildID,
		AuthorID:        n.AuthorID,
		Body:            n.Body,
		PhotoURLs:       n.PhotoURLs,
		VisibleToClient: n.VisibleToClient,
		StageID:         n.StageID,
		CreatedAt:       formatTime(n.CreatedAt),
	}
}

func fromNoteItem(it noteItem) entities.Note {
	return entities.Note{
		ID:              it.ID,
		BuildID:         it.BuildID,
		AuthorID:        it.AuthorID,
		Body:            it.Body,
		PhotoURLs:       it.PhotoURLs,
		VisibleToClient: it.VisibleToClient,
		StageID:         it.StageID,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}
