package repository

import (
	"context"
	"errors"
	"fmt"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsRecipientIndex   = "recipient_id-index"

	// maxBatchWriteOps is DynamoDB's BatchWriteItem ceiling. Recipient sets
	// larger than this are split into sequential batches; atomicity only ever
	// holds within one batch.
	maxBatchWriteOps = 25

	// batch retry budget for unprocessed items before giving up.
	maxBatchAttempts = 3
)

type notificationMetaItem struct {
	GuitarID       string `dynamodbav:"guitar_id,omitempty"`
	RunID          string `dynamodbav:"run_id,omitempty"`
	NoteID         string `dynamodbav:"note_id,omitempty"`
	InvoiceID      string `dynamodbav:"invoice_id,omitempty"`
	PaymentID      string `dynamodbav:"payment_id,omitempty"`
	CommentID      string `dynamodbav:"comment_id,omitempty"`
	RunUpdateID    string `dynamodbav:"run_update_id,omitempty"`
	CommentPreview string `dynamodbav:"comment_preview,omitempty"`
}

type notificationItem struct {
	ID          string               `dynamodbav:"id"`
	RecipientID string               `dynamodbav:"recipient_id"`
	Type        string               `dynamodbav:"type"`
	Title       string               `dynamodbav:"title"`
	Message     string               `dynamodbav:"message"`
	Read        bool                 `dynamodbav:"read"`
	Meta        notificationMetaItem `dynamodbav:"meta"`
	CreatedAt   string               `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: recipient_id-index (PK: recipient_id)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

// ChunkNotifications splits a fan-out into batch-write sized chunks.
func ChunkNotifications(ns []entities.Notification, size int) [][]entities.Notification {
	if size <= 0 || len(ns) == 0 {
		return nil
	}
	chunks := make([][]entities.Notification, 0, (len(ns)+size-1)/size)
	for start := 0; start < len(ns); start += size {
		end := start + size
		if end > len(ns) {
			end = len(ns)
		}
		chunks = append(chunks, ns[start:end])
	}
	return chunks
}

// CreateBatch writes every record, chunking below the BatchWriteItem ceiling
// and committing chunks sequentially. On a chunk failure it stops and
// returns how many records were durably written together with the error;
// earlier chunks stay written (partial fan-out, never silent total loss).
func (r *NotificationDynamoRepository) CreateBatch(ctx context.Context, ns []entities.Notification) (int, error) {
	written := 0
	for _, chunk := range ChunkNotifications(ns, maxBatchWriteOps) {
		requests := make([]types.WriteRequest, 0, len(chunk))
		for _, n := range chunk {
			av, err := attributevalue.MarshalMap(toNotificationItem(n))
			if err != nil {
				return written, err
			}
			requests = append(requests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: av},
			})
		}

		pending := map[string][]types.WriteRequest{r.tableName: requests}
		for attempt := 0; len(pending[r.tableName]) > 0; attempt++ {
			if attempt >= maxBatchAttempts {
				return written, fmt.Errorf("notification batch left %d unprocessed records after %d attempts", len(pending[r.tableName]), attempt)
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return written, err
			}
			processed := len(pending[r.tableName]) - len(out.UnprocessedItems[r.tableName])
			written += processed
			pending = out.UnprocessedItems
		}
	}
	return written, nil
}

func (r *NotificationDynamoRepository) ListByRecipientID(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsRecipientIndex),
		KeyConditionExpression: aws.String("#recipient_id = :recipient_id"),
		ExpressionAttributeNames: map[string]string{
			"#recipient_id": "recipient_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":recipient_id": &types.AttributeValueMemberS{Value: recipientID},
		},
	}

	notifications := make([]entities.Notification, 0)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []notificationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			notifications = append(notifications, fromNotificationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return notifications, nil
}

// MarkRead flips the read flag, conditioned on the record belonging to the
// recipient so one user can never touch another's notifications.
func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, recipientID string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #recipient_id = :recipient_id"),
		UpdateExpression:    aws.String("SET #read = :true"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#recipient_id": "recipient_id",
			"#read":         "read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":recipient_id": &types.AttributeValueMemberS{Value: recipientID},
			":true":         &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	ns, err := r.ListByRecipientID(ctx, recipientID)
	if err != nil {
		return 0, err
	}
	marked := 0
	for _, n := range ns {
		if n.Read {
			continue
		}
		if _, err := r.MarkRead(ctx, n.ID, recipientID); err != nil {
			return marked, err
		}
		marked++
	}
	return marked, nil
}

func (r *NotificationDynamoRepository) Delete(ctx context.Context, id, recipientID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #recipient_id = :recipient_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#recipient_id": "recipient_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":recipient_id": &types.AttributeValueMemberS{Value: recipientID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
	}
	return err
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		Read:        n.Read,
		Meta: notificationMetaItem{
			GuitarID:       n.Meta.GuitarID,
			RunID:          n.Meta.RunID,
			NoteID:         n.Meta.NoteID,
			InvoiceID:      n.Meta.InvoiceID,
			PaymentID:      n.Meta.PaymentID,
			CommentID:      n.Meta.CommentID,
			RunUpdateID:    n.Meta.RunUpdateID,
			CommentPreview: n.Meta.CommentPreview,
		},
		CreatedAt: formatTime(n.CreatedAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:          it.ID,
		RecipientID: it.RecipientID,
		Type:        entities.NotificationType(it.Type),
		Title:       it.Title,
		Message:     it.Message,
		Read:        it.Read,
		Meta: entities.NotificationMeta{
			GuitarID:       it.Meta.GuitarID,
			RunID:          it.Meta.RunID,
			NoteID:         it.Meta.NoteID,
			InvoiceID:      it.Meta.InvoiceID,
			PaymentID:      it.Meta.PaymentID,
			CommentID:      it.Meta.CommentID,
			RunUpdateID:    it.Meta.RunUpdateID,
			CommentPreview: it.Meta.CommentPreview,
		},
		CreatedAt: parseTime(it.CreatedAt),
	}
}
