package entities

import "time"

// NotificationType tags what kind of event a notification fan-out describes.

type NotificationType string

const (
	NotificationTypePaymentPending   NotificationType = "payment_pending"
	NotificationTypeNoteComment      NotificationType = "note_comment"
	NotificationTypeRunUpdateComment NotificationType = "run_update_comment"
)

// Notification is one per-recipient fan-out record. An event addressed to N
// staff produces N independent records sharing the same content and
// CreatedAt, varying only by RecipientID.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (recipient_id-index): recipient_id
//
// Created only by the fan-out engine; mutated only by the recipient (read
// flag) or by deletion.

type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Read        bool             `json:"read"`
	Meta        NotificationMeta `json:"meta,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NotificationMeta carries the correlation ids and per-type fields an event
// kind needs. It is a closed struct rather than an open map so each field is
// spelled once and typed.

type NotificationMeta struct {
	GuitarID string `json:"guitar_id,omitempty"`
	RunID    string `json:"run_id,omitempty"`
	NoteID   string `json:"note_id,omitempty"`

	// payment_pending
	InvoiceID string `json:"invoice_id,omitempty"`
	PaymentID string `json:"payment_id,omitempty"`

	// note_comment / run_update_comment
	CommentID      string `json:"comment_id,omitempty"`
	RunUpdateID    string `json:"run_update_id,omitempty"`
	CommentPreview string `json:"comment_preview,omitempty"`
}

// FanoutPayload is what a trigger handler hands to the fan-out engine: the
// shared content of every record the engine will write.

type FanoutPayload struct {
	Type    NotificationType
	Title   string
	Message string
	Meta    NotificationMeta
}
