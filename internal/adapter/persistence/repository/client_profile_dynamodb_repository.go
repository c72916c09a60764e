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

const defaultClientProfilesTableName = "client_profiles"

type clientProfileItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name,omitempty"`
	Email string `dynamodbav:"email,omitempty"`
}

// ClientProfileDynamoRepository reads the denormalized client profile
// documents. The core only ever reads them (as an email fallback); profile
// writes belong to the account-management screens outside this core.
//
// Table requirements:
//   - PK: id (string, equals the auth user id)

type ClientProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientProfileRepository = (*ClientProfileDynamoRepository)(nil)

func NewClientProfileDynamoRepository(ddb *dynamodb.Client) *ClientProfileDynamoRepository {
	return &ClientProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENT_PROFILES_TABLE", defaultClientProfilesTableName),
	}
}

func (r *ClientProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.ClientProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ClientProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClientProfile{}, nil
	}

	var it clientProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClientProfile{}, err
	}
	return entities.ClientProfile{ID: it.ID, Name: it.Name, Email: it.Email}, nil
}
