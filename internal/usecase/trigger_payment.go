package usecase

import (
	"context"
	"fmt"
	"log"

	"luthier_works/internal/domain/entities"
)

// PaymentPendingTrigger fans out a staff notification when an invoice's
// payments array gained an entry awaiting approval. Bound to modify events
// on the invoices collection.
//
// Only the first newly-pending entry of an update is reported, even when
// several arrived at once.

type PaymentPendingTrigger struct {
	fanout INotificationFanoutUseCase
}

func NewPaymentPendingTrigger(fanout INotificationFanoutUseCase) *PaymentPendingTrigger {
	return &PaymentPendingTrigger{fanout: fanout}
}

func (t *PaymentPendingTrigger) Handle(ctx context.Context, ev entities.ChangeEvent) {
	var before, after entities.Invoice
	if ok, err := ev.DecodeBefore(&before); err != nil || !ok {
		if err != nil {
			log.Printf("[trigger][payment] before decode failed err=%v", err)
		}
		return
	}
	if ok, err := ev.DecodeAfter(&after); err != nil || !ok {
		if err != nil {
			log.Printf("[trigger][payment] after decode failed err=%v", err)
		}
		return
	}

	payment, ok := entities.FirstNewlyPending(before.Payments, after.Payments)
	if !ok {
		return
	}
	log.Printf("[trigger][payment] newly pending payment invoice_id=%s payment_id=%s", after.ID, payment.ID)

	t.fanout.NotifyAll(ctx, entities.FanoutPayload{
		Type:    entities.NotificationTypePaymentPending,
		Title:   "Payment awaiting approval",
		Message: fmt.Sprintf("Invoice %s received a payment of $%.2f awaiting approval.", after.Number, payment.Amount),
		Meta: entities.NotificationMeta{
			GuitarID:  after.BuildID,
			InvoiceID: after.ID,
			PaymentID: payment.ID,
		},
	})
}
