package repository

import (
	"encoding/json"
	"testing"

	"luthier_works/internal/domain/entities"

	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

func TestDecodeStreamImage(t *testing.T) {
	t.Run("empty image", func(t *testing.T) {
		raw, err := DecodeStreamImage(entities.CollectionBuilds, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if raw != nil {
			t.Fatalf("expected nil for empty image, got %s", raw)
		}
	})

	t.Run("unknown collection", func(t *testing.T) {
		image := map[string]streamtypes.AttributeValue{
			"id": &streamtypes.AttributeValueMemberS{Value: "x"},
		}
		if _, err := DecodeStreamImage("ledgers", image); err == nil {
			t.Fatal("expected error for unknown collection")
		}
	})

	t.Run("build image round-trips into the entity", func(t *testing.T) {
		image := map[string]streamtypes.AttributeValue{
			"id":           &streamtypes.AttributeValueMemberS{Value: "b1"},
			"run_id":       &streamtypes.AttributeValueMemberS{Value: "run-1"},
			"stage_id":     &streamtypes.AttributeValueMemberS{Value: "stage-a"},
			"order_number": &streamtypes.AttributeValueMemberS{Value: "LW-0001"},
			"model":        &streamtypes.AttributeValueMemberS{Value: "S-1"},
			"created_at":   &streamtypes.AttributeValueMemberS{Value: "2026-03-01T10:00:00Z"},
			"updated_at":   &streamtypes.AttributeValueMemberS{Value: "2026-03-02T10:00:00Z"},
		}
		raw, err := DecodeStreamImage(entities.CollectionBuilds, image)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var b entities.Build
		if err := json.Unmarshal(raw, &b); err != nil {
			t.Fatalf("decoded payload not a build: %v", err)
		}
		if b.ID != "b1" || b.RunID != "run-1" || b.StageID != "stage-a" {
			t.Fatalf("unexpected build %+v", b)
		}
		if b.UpdatedAt.IsZero() {
			t.Fatal("timestamp not parsed")
		}
	})

	t.Run("invoice image carries the payments array", func(t *testing.T) {
		image := map[string]streamtypes.AttributeValue{
			"id":       &streamtypes.AttributeValueMemberS{Value: "inv-1"},
			"build_id": &streamtypes.AttributeValueMemberS{Value: "b1"},
			"number":   &streamtypes.AttributeValueMemberS{Value: "INV-2026-014"},
			"total":    &streamtypes.AttributeValueMemberN{Value: "250"},
			"payments": &streamtypes.AttributeValueMemberL{
				Value: []streamtypes.AttributeValue{
					&streamtypes.AttributeValueMemberM{
						Value: map[string]streamtypes.AttributeValue{
							"id":              &streamtypes.AttributeValueMemberS{Value: "p1"},
							"amount":          &streamtypes.AttributeValueMemberN{Value: "250"},
							"approval_status": &streamtypes.AttributeValueMemberS{Value: "pending"},
							"submitted_at":    &streamtypes.AttributeValueMemberS{Value: "2026-03-03T09:00:00Z"},
						},
					},
				},
			},
		}
		raw, err := DecodeStreamImage(entities.CollectionInvoices, image)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var inv entities.Invoice
		if err := json.Unmarshal(raw, &inv); err != nil {
			t.Fatalf("decoded payload not an invoice: %v", err)
		}
		if len(inv.Payments) != 1 {
			t.Fatalf("expected one payment, got %d", len(inv.Payments))
		}
		p := inv.Payments[0]
		if p.ID != "p1" || p.ApprovalStatus != entities.PaymentApprovalPending || p.Amount != 250 {
			t.Fatalf("unexpected payment %+v", p)
		}
	})

	t.Run("comment image", func(t *testing.T) {
		image := map[string]streamtypes.AttributeValue{
			"id":          &streamtypes.AttributeValueMemberS{Value: "c1"},
			"thread_kind": &streamtypes.AttributeValueMemberS{Value: "note"},
			"thread_id":   &streamtypes.AttributeValueMemberS{Value: "note-1"},
			"author_id":   &streamtypes.AttributeValueMemberS{Value: "staff-1"},
			"body":        &streamtypes.AttributeValueMemberS{Value: "Grain filler cured overnight."},
			"created_at":  &streamtypes.AttributeValueMemberS{Value: "2026-03-04T08:30:00Z"},
		}
		raw, err := DecodeStreamImage(entities.CollectionComments, image)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var c entities.Comment
		if err := json.Unmarshal(raw, &c); err != nil {
			t.Fatalf("decoded payload not a comment: %v", err)
		}
		if c.ThreadKind != entities.ThreadKindNote || c.ThreadID != "note-1" {
			t.Fatalf("unexpected comment %+v", c)
		}
	})
}
