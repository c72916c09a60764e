package directory

import (
	"context"
	"errors"
	"log"
	"os"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

var ErrMissingUserPoolID = errors.New("missing COGNITO_USER_POOL_ID")

const (
	roleAttributeName  = "custom:role"
	emailAttributeName = "email"

	// Cognito refuses ListUsers pages larger than 60; callers asking for
	// more get the service maximum.
	maxCognitoPageSize = 60
)

// CognitoDirectory backs the user directory with a Cognito user pool:
// paginated ListUsers for enumeration, AdminGetUser for email-by-id.

type CognitoDirectory struct {
	client *cognitoidentityprovider.Client
	poolID string
}

var _ interfaces.IDirectoryPager = (*CognitoDirectory)(nil)

func NewCognitoDirectory(client *cognitoidentityprovider.Client) (*CognitoDirectory, error) {
	poolID := os.Getenv("COGNITO_USER_POOL_ID")
	if poolID == "" {
		log.Printf("[directory][cognito] missing COGNITO_USER_POOL_ID")
		return nil, ErrMissingUserPoolID
	}
	return &CognitoDirectory{client: client, poolID: poolID}, nil
}

func (d *CognitoDirectory) ListUsersPage(ctx context.Context, pageSize int32, cursor string) ([]entities.DirectoryEntry, string, error) {
	if pageSize <= 0 || pageSize > maxCognitoPageSize {
		pageSize = maxCognitoPageSize
	}
	in := &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(d.poolID),
		Limit:      aws.Int32(pageSize),
	}
	if cursor != "" {
		in.PaginationToken = aws.String(cursor)
	}

	out, err := d.client.ListUsers(ctx, in)
	if err != nil {
		return nil, "", err
	}

	entries := make([]entities.DirectoryEntry, 0, len(out.Users))
	for _, user := range out.Users {
		entries = append(entries, entities.DirectoryEntry{
			ID:    aws.ToString(user.Username),
			Email: attributeValue(user.Attributes, emailAttributeName),
			Role:  entities.Role(attributeValue(user.Attributes, roleAttributeName)),
		})
	}
	return entries, aws.ToString(out.PaginationToken), nil
}

func (d *CognitoDirectory) EmailByID(ctx context.Context, userID string) (string, error) {
	out, err := d.client.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: aws.String(d.poolID),
		Username:   aws.String(userID),
	})
	if err != nil {
		return "", err
	}
	return attributeValue(out.UserAttributes, emailAttributeName), nil
}

func attributeValue(attrs []cognitotypes.AttributeType, name string) string {
	for _, a := range attrs {
		if aws.ToString(a.Name) == name {
			return aws.ToString(a.Value)
		}
	}
	return ""
}
