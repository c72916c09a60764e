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

const (
	defaultBuildsTableName = "builds"
	buildsRunIDIndex       = "run_id-index"
)

type buildSpecItem struct {
	BodyWood    string `dynamodbav:"body_wood,omitempty"`
	NeckWood    string `dynamodbav:"neck_wood,omitempty"`
	Fretboard   string `dynamodbav:"fretboard,omitempty"`
	Pickups     string `dynamodbav:"pickups,omitempty"`
	Hardware    string `dynamodbav:"hardware,omitempty"`
	ScaleLength string `dynamodbav:"scale_length,omitempty"`
	Notes       string `dynamodbav:"notes,omitempty"`
}

type buildItem struct {
	ID          string         `dynamodbav:"id"`
	RunID       string         `dynamodbav:"run_id"`
	StageID     string         `dynamodbav:"stage_id"`
	ClientID    string         `dynamodbav:"client_id,omitempty"`
	ClientName  string         `dynamodbav:"client_name,omitempty"`
	ClientEmail string         `dynamodbav:"client_email,omitempty"`
	OrderNumber string         `dynamodbav:"order_number"`
	Model       string         `dynamodbav:"model"`
	Finish      string         `dynamodbav:"finish"`
	Serial      string         `dynamodbav:"serial,omitempty"`
	Spec        *buildSpecItem `dynamodbav:"spec,omitempty"`
	Archived    bool           `dynamodbav:"archived,omitempty"`
	CreatedAt   string         `dynamodbav:"created_at"`
	UpdatedAt   string         `dynamodbav:"updated_at"`
}

// BuildDynamoRepository persists Build entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: run_id-index (PK: run_id)

type BuildDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBuildRepository = (*BuildDynamoRepository)(nil)

func NewBuildDynamoRepository(ddb *dynamodb.Client) *BuildDynamoRepository {
	return &BuildDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUILDS_TABLE", defaultBuildsTableName),
	}
}

func (r *BuildDynamoRepository) Create(ctx context.Context, b entities.Build) (entities.Build, error) {
	av, err := attributevalue.MarshalMap(toBuildItem(b))
	if err != nil {
		return entities.Build{}, err
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
		return entities.Build{}, err
	}
	return b, nil
}

func (r *BuildDynamoRepository) GetByID(ctx context.Context, id string) (entities.Build, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Build{}, err
	}
	if len(out.Item) == 0 {
		return entities.Build{}, nil
	}

	var it buildItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Build{}, err
	}
	return fromBuildItem(it), nil
}

func (r *BuildDynamoRepository) ListByRunID(ctx context.Context, runID string) ([]entities.Build, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(buildsRunIDIndex),
		KeyConditionExpression: aws.String("#run_id = :run_id"),
		ExpressionAttributeNames: map[string]string{
			"#run_id": "run_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":run_id": &types.AttributeValueMemberS{Value: runID},
		},
	}

	builds := make([]entities.Build, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []buildItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			builds = append(builds, fromBuildItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return builds, nil
}

// UpdateStage is the stage pipeline's one write: set stage_id, refresh
// updated_at, nothing else. One UpdateItem, one stream event.
func (r *BuildDynamoRepository) UpdateStage(ctx context.Context, buildID, stageID string) (entities.Build, error) {
	return r.update(ctx, buildID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #stage_id = :stage_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":stage_id":   &types.AttributeValueMemberS{Value: stageID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#stage_id":   "stage_id",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *BuildDynamoRepository) SetArchived(ctx context.Context, buildID string, archived bool) (entities.Build, error) {
	return r.update(ctx, buildID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #archived = :archived, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":archived":   &types.AttributeValueMemberBOOL{Value: archived},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#archived":   "archived",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *BuildDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Build, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Build{}, nil
		}
		return entities.Build{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Build{}, nil
	}
	var it buildItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Build{}, err
	}
	return fromBuildItem(it), nil
}

func toBuildItem(b entities.Build) buildItem {
	it := buildItem{
		ID:          b.ID,
		RunID:       b.RunID,
		StageID:     b.StageID,
		ClientID:    b.ClientID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		OrderNumber: b.OrderNumber,
		Model:       b.Model,
		Finish:      b.Finish,
		Serial:      b.Serial,
		Archived:    b.Archived,
		CreatedAt:   formatTime(b.CreatedAt),
		UpdatedAt:   formatTime(b.UpdatedAt),
	}
	if b.Spec != nil {
		it.Spec = &buildSpecItem{
			BodyWood:    b.Spec.BodyWood,
			NeckWood:    b.Spec.NeckWood,
			Fretboard:   b.Spec.Fretboard,
			Pickups:     b.Spec.Pickups,
			Hardware:    b.Spec.Hardware,
			ScaleLength: b.Spec.ScaleLength,
			Notes:       b.Spec.Notes,
		}
	}
	return it
}

func fromBuildItem(it buildItem) entities.Build {
	b := entities.Build{
		ID:          it.ID,
		RunID:       it.RunID,
		StageID:     it.StageID,
		ClientID:    it.ClientID,
		ClientName:  it.ClientName,
		ClientEmail: it.ClientEmail,
		OrderNumber: it.OrderNumber,
		Model:       it.Model,
		Finish:      it.Finish,
		Serial:      it.Serial,
		Archived:    it.Archived,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.Spec != nil {
		b.Spec = &entities.BuildSpec{
			BodyWood:    it.Spec.BodyWood,
			NeckWood:    it.Spec.NeckWood,
			Fretboard:   it.Spec.Fretboard,
			Pickups:     it.Spec.Pickups,
			Hardware:    it.Spec.Hardware,
			ScaleLength: it.Spec.ScaleLength,
			Notes:       it.Spec.Notes,
		}
	}
	return b
}
