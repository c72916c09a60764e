package repository

import (
	"context"
	"errors"
	"time"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRunsTableName = "runs"

type stageItem struct {
	ID            string `dynamodbav:"id"`
	Label         string `dynamodbav:"label"`
	Order         int    `dynamodbav:"order"`
	InternalOnly  bool   `dynamodbav:"internal_only"`
	RequiresNote  bool   `dynamodbav:"requires_note"`
	RequiresPhoto bool   `dynamodbav:"requires_photo"`
	ClientLabel   string `dynamodbav:"client_label,omitempty"`
}

type runItem struct {
	ID         string      `dynamodbav:"id"`
	Name       string      `dynamodbav:"name"`
	Site       string      `dynamodbav:"site"`
	Active     bool        `dynamodbav:"active"`
	Stages     []stageItem `dynamodbav:"stages"`
	StartedAt  string      `dynamodbav:"started_at"`
	EndedAt    string      `dynamodbav:"ended_at,omitempty"`
	Archived   bool        `dynamodbav:"archived,omitempty"`
	ArchivedAt string      `dynamodbav:"archived_at,omitempty"`
}

// RunDynamoRepository persists Run entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The stage list is embedded in the run item so a single read returns the
// run together with its pipeline, and a stage edit is observed as one
// mutation of the run document on the change feed.

type RunDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRunRepository = (*RunDynamoRepository)(nil)

func NewRunDynamoRepository(ddb *dynamodb.Client) *RunDynamoRepository {
	return &RunDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RUNS_TABLE", defaultRunsTableName),
	}
}

func (r *RunDynamoRepository) Create(ctx context.Context, run entities.Run) (entities.Run, error) {
	av, err := attributevalue.MarshalMap(toRunItem(run))
	if err != nil {
		return entities.Run{}, err
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
		return entities.Run{}, err
	}
	return run, nil
}

func (r *RunDynamoRepository) GetByID(ctx context.Context, id string) (entities.Run, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Run{}, err
	}
	if len(out.Item) == 0 {
		return entities.Run{}, nil
	}

	var it runItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Run{}, err
	}
	return fromRunItem(it), nil
}

func (r *RunDynamoRepository) List(ctx context.Context, includeArchived bool) ([]entities.Run, error) {
	// Runs number in the dozens at most; a scan is fine here.
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if !includeArchived {
		in.FilterExpression = aws.String("attribute_not_exists(#archived) OR #archived = :false")
		in.ExpressionAttributeNames = map[string]string{"#archived": "archived"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		}
	}

	runs := make([]entities.Run, 0)
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []runItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			runs = append(runs, fromRunItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return runs, nil
}

func (r *RunDynamoRepository) Archive(ctx context.Context, id string) (entities.Run, error) {
	now := formatTime(time.Now())
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #archived = :true, #archived_at = :now, #active = :false"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#archived":    "archived",
			"#archived_at": "archived_at",
			"#active":      "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":now":   &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Run{}, nil
		}
		return entities.Run{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Run{}, nil
	}
	var it runItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Run{}, err
	}
	return fromRunItem(it), nil
}

func toRunItem(run entities.Run) runItem {
	stages := make([]stageItem, 0, len(run.Stages))
	for _, s := range run.Stages {
		stages = append(stages, stageItem{
			ID:            s.ID,
			Label:         s.Label,
			Order:         s.Order,
			InternalOnly:  s.InternalOnly,
			RequiresNote:  s.RequiresNote,
			RequiresPhoto: s.RequiresPhoto,
			ClientLabel:   s.ClientLabel,
		})
	}
	return runItem{
		ID:         run.ID,
		Name:       run.Name,
		Site:       run.Site,
		Active:     run.Active,
		Stages:     stages,
		StartedAt:  formatTime(run.StartedAt),
		EndedAt:    formatTimePtr(run.EndedAt),
		Archived:   run.Archived,
		ArchivedAt: formatTimePtr(run.ArchivedAt),
	}
}

func fromRunItem(it runItem) entities.Run {
	stages := make([]entities.Stage, 0, len(it.Stages))
	for _, s := range it.Stages {
		stages = append(stages, entities.Stage{
			ID:            s.ID,
			Label:         s.Label,
			Order:         s.Order,
			InternalOnly:  s.InternalOnly,
			RequiresNote:  s.RequiresNote,
			RequiresPhoto: s.RequiresPhoto,
			ClientLabel:   s.ClientLabel,
		})
	}
	return entities.Run{
		ID:         it.ID,
		Name:       it.Name,
		Site:       it.Site,
		Active:     it.Active,
		Stages:     stages,
		StartedAt:  parseTime(it.StartedAt),
		EndedAt:    parseTimePtr(it.EndedAt),
		Archived:   it.Archived,
		ArchivedAt: parseTimePtr(it.ArchivedAt),
	}
}
