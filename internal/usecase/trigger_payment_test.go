package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"luthier_works/internal/domain/entities"
)

type stubFanout struct {
	payloads []entities.FanoutPayload
}

func (s *stubFanout) NotifyAll(_ context.Context, payload entities.FanoutPayload) {
	s.payloads = append(s.payloads, payload)
}

func invoiceEvent(t *testing.T, before, after entities.Invoice) entities.ChangeEvent {
	t.Helper()
	rawBefore, err := json.Marshal(before)
	if err != nil {
		t.Fatalf("marshal before: %v", err)
	}
	rawAfter, err := json.Marshal(after)
	if err != nil {
		t.Fatalf("marshal after: %v", err)
	}
	return entities.ChangeEvent{
		Collection: entities.CollectionInvoices,
		Kind:       entities.ChangeKindModify,
		Before:     rawBefore,
		After:      rawAfter,
	}
}

func TestPaymentPendingTrigger(t *testing.T) {
	base := entities.Invoice{
		ID:      "inv-1",
		BuildID: "b1",
		Number:  "INV-2026-014",
		Payments: []entities.Payment{
			{ID: "p1", Amount: 1200, ApprovalStatus: entities.PaymentApprovalPaid},
		},
	}

	t.Run("appended pending payment fans out once", func(t *testing.T) {
		fanout := &stubFanout{}
		trigger := NewPaymentPendingTrigger(fanout)

		after := base
		after.Payments = append([]entities.Payment{}, base.Payments...)
		after.Payments = append(after.Payments, entities.Payment{ID: "p2", Amount: 250, ApprovalStatus: entities.PaymentApprovalPending})

		trigger.Handle(context.Background(), invoiceEvent(t, base, after))

		if len(fanout.payloads) != 1 {
			t.Fatalf("expected 1 fan-out, got %d", len(fanout.payloads))
		}
		p := fanout.payloads[0]
		if p.Type != entities.NotificationTypePaymentPending {
			t.Fatalf("unexpected type %s", p.Type)
		}
		if p.Meta.InvoiceID != "inv-1" || p.Meta.PaymentID != "p2" || p.Meta.GuitarID != "b1" {
			t.Fatalf("unexpected meta %+v", p.Meta)
		}
		if !strings.Contains(p.Message, "INV-2026-014") || !strings.Contains(p.Message, "250.00") {
			t.Fatalf("unexpected message %q", p.Message)
		}
	})

	t.Run("appended paid payment is silent", func(t *testing.T) {
		fanout := &stubFanout{}
		trigger := NewPaymentPendingTrigger(fanout)

		after := base
		after.Payments = append([]entities.Payment{}, base.Payments...)
		after.Payments = append(after.Payments, entities.Payment{ID: "p2", Amount: 250, ApprovalStatus: entities.PaymentApprovalPaid})

		trigger.Handle(context.Background(), invoiceEvent(t, base, after))

		if len(fanout.payloads) != 0 {
			t.Fatalf("expected no fan-out, got %d", len(fanout.payloads))
		}
	})

	t.Run("unrelated invoice edit is silent", func(t *testing.T) {
		fanout := &stubFanout{}
		trigger := NewPaymentPendingTrigger(fanout)

		after := base
		after.Total = 999

		trigger.Handle(context.Background(), invoiceEvent(t, base, after))

		if len(fanout.payloads) != 0 {
			t.Fatalf("expected no fan-out, got %d", len(fanout.payloads))
		}
	})

	t.Run("event without before image is skipped", func(t *testing.T) {
		fanout := &stubFanout{}
		trigger := NewPaymentPendingTrigger(fanout)

		raw, err := json.Marshal(base)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		trigger.Handle(context.Background(), entities.ChangeEvent{
			Collection: entities.CollectionInvoices,
			Kind:       entities.ChangeKindInsert,
			After:      raw,
		})

		if len(fanout.payloads) != 0 {
			t.Fatalf("expected no fan-out without a before image, got %d", len(fanout.payloads))
		}
	})
}
