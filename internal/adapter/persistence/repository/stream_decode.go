package repository

import (
	"encoding/json"
	"fmt"

	"luthier_works/internal/domain/entities"

	streamav "github.com/aws/aws-sdk-go-v2/feature/dynamodbstreams/attributevalue"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

// Invoices and comments are written by the accounting and discussion screens
// outside this core; the core only ever sees them through the change feed.
// Their item shapes live here so the feed can decode them alongside the
// collections this package also writes.

type paymentItem struct {
	ID             string  `dynamodbav:"id"`
	Amount         float64 `dynamodbav:"amount"`
	Method         string  `dynamodbav:"method,omitempty"`
	ApprovalStatus string  `dynamodbav:"approval_status"`
	SubmittedAt    string  `dynamodbav:"submitted_at"`
}

type invoiceItem struct {
	ID        string        `dynamodbav:"id"`
	BuildID   string        `dynamodbav:"build_id"`
	ClientID  string        `dynamodbav:"client_id,omitempty"`
	Number    string        `dynamodbav:"number"`
	Total     float64       `dynamodbav:"total"`
	Payments  []paymentItem `dynamodbav:"payments,omitempty"`
	CreatedAt string        `dynamodbav:"created_at"`
	UpdatedAt string        `dynamodbav:"updated_at"`
}

type commentItem struct {
	ID         string `dynamodbav:"id"`
	ThreadKind string `dynamodbav:"thread_kind"`
	ThreadID   string `dynamodbav:"thread_id"`
	AuthorID   string `dynamodbav:"author_id"`
	AuthorName string `dynamodbav:"author_name,omitempty"`
	Body       string `dynamodbav:"body"`
	CreatedAt  string `dynamodbav:"created_at"`
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	payments := make([]entities.Payment, 0, len(it.Payments))
	for _, p := range it.Payments {
		payments = append(payments, entities.Payment{
			ID:             p.ID,
			Amount:         p.Amount,
			Method:         p.Method,
			ApprovalStatus: entities.PaymentApprovalStatus(p.ApprovalStatus),
			SubmittedAt:    parseTime(p.SubmittedAt),
		})
	}
	return entities.Invoice{
		ID:        it.ID,
		BuildID:   it.BuildID,
		ClientID:  it.ClientID,
		Number:    it.Number,
		Total:     it.Total,
		Payments:  payments,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func fromCommentItem(it commentItem) entities.Comment {
	return entities.Comment{
		ID:         it.ID,
		ThreadKind: entities.ThreadKind(it.ThreadKind),
		ThreadID:   it.ThreadID,
		AuthorID:   it.AuthorID,
		AuthorName: it.AuthorName,
		Body:       it.Body,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}

// DecodeStreamImage converts one DynamoDB stream image belonging to a known
// logical collection into the JSON document shape the change-feed consumers
// unmarshal into entities. A nil or empty image decodes to nil.
func DecodeStreamImage(collection string, image map[string]streamtypes.AttributeValue) (json.RawMessage, error) {
	if len(image) == 0 {
		return nil, nil
	}
	switch collection {
	case entities.CollectionRuns:
		var it runItem
		if err := streamav.UnmarshalMap(image, &it); err != nil {
			return nil, err
		}
		return json.Marshal(fromRunItem(it))
	case entities.CollectionBuilds:
		var it buildItem
		if err := streamav.UnmarshalMap(image, &it); err != nil {
			return nil, err
		}
		return json.Marshal(fromBuildItem(it))
	case entities.CollectionNotes:
		var it noteItem
		if err := streamav.UnmarshalMap(image, &it); err != nil {
			return nil, err
		}
		return json.Marshal(fromNoteItem(it))
	case entities.CollectionComments:
		var it commentItem
		if err := streamav.UnmarshalMap(image, &it); err != nil {
			return nil, err
		}
		return json.Marshal(fromCommentItem(it))
	case entities.CollectionInvoices:
		var it invoiceItem
		if err := streamav.UnmarshalMap(image, &it); err != nil {
			return nil, err
		}
		return json.Marshal(fromInvoiceItem(it))
	case entities.CollectionRunUpdates:
		var it runUpdateItem
		if err := streamav.UnmarshalMap(image, &it); err != nil {
			return nil, err
		}
		return json.Marshal(fromRunUpdateItem(it))
	default:
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
}
