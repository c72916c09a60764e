package entities

import "testing"

func TestFirstNewlyPending(t *testing.T) {
	p1 := Payment{ID: "p1", Amount: 500, ApprovalStatus: PaymentApprovalPaid}

	t.Run("appended pending entry is reported", func(t *testing.T) {
		p2 := Payment{ID: "p2", Amount: 250, ApprovalStatus: PaymentApprovalPending}
		got, ok := FirstNewlyPending([]Payment{p1}, []Payment{p1, p2})
		if !ok {
			t.Fatalf("expected a newly pending payment")
		}
		if got.ID != "p2" {
			t.Fatalf("expected p2, got %s", got.ID)
		}
	})

	t.Run("appended paid entry is ignored", func(t *testing.T) {
		p2 := Payment{ID: "p2", Amount: 250, ApprovalStatus: PaymentApprovalPaid}
		if _, ok := FirstNewlyPending([]Payment{p1}, []Payment{p1, p2}); ok {
			t.Fatalf("paid entry must not trigger")
		}
	})

	t.Run("status flip on a known entry is ignored", func(t *testing.T) {
		flipped := p1
		flipped.ApprovalStatus = PaymentApprovalPending
		if _, ok := FirstNewlyPending([]Payment{p1}, []Payment{flipped}); ok {
			t.Fatalf("existing id must not trigger even when pending")
		}
	})

	t.Run("multiple new pending entries report only the first", func(t *testing.T) {
		p2 := Payment{ID: "p2", ApprovalStatus: PaymentApprovalPending}
		p3 := Payment{ID: "p3", ApprovalStatus: PaymentApprovalPending}
		got, ok := FirstNewlyPending([]Payment{p1}, []Payment{p1, p2, p3})
		if !ok || got.ID != "p2" {
			t.Fatalf("expected first pending p2, got %v ok=%v", got.ID, ok)
		}
	})

	t.Run("empty before treats everything as new", func(t *testing.T) {
		p2 := Payment{ID: "p2", ApprovalStatus: PaymentApprovalPending}
		got, ok := FirstNewlyPending(nil, []Payment{p2})
		if !ok || got.ID != "p2" {
			t.Fatalf("expected p2 from empty before")
		}
	})

	t.Run("no payments at all", func(t *testing.T) {
		if _, ok := FirstNewlyPending(nil, nil); ok {
			t.Fatalf("expected no result")
		}
	})
}
