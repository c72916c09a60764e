package entities

import "time"

// PaymentApprovalStatus is the accounting state of a single payment entry.

type PaymentApprovalStatus string

const (
	PaymentApprovalPending PaymentApprovalStatus = "pending"
	PaymentApprovalPaid    PaymentApprovalStatus = "paid"
	PaymentApprovalDenied  PaymentApprovalStatus = "denied"
)

// Payment is one entry in an invoice's payments array. Entries are appended
// by accounting and approved later; the trigger layer watches the array for
// newly appended pending entries.

type Payment struct {
	ID             string                `json:"id"`
	Amount         float64               `json:"amount"`
	Method         string                `json:"method,omitempty"`
	ApprovalStatus PaymentApprovalStatus `json:"approval_status"`
	SubmittedAt    time.Time             `json:"submitted_at"`
}

// Invoice is the accounting document a build's payments hang off.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (build_id-index): build_id
//   - the payments array is embedded; appending a payment mutates the
//     invoice document, which is what the change feed observes.

type Invoice struct {
	ID        string    `json:"id"`
	BuildID   string    `json:"build_id"`
	ClientID  string    `json:"client_id,omitempty"`
	Number    string    `json:"number"`
	Total     float64   `json:"total"`
	Payments  []Payment `json:"payments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FirstNewlyPending returns the first payment in after whose id is absent
// from before and whose approval status is exactly pending. The second
// return is false when no such entry exists. If several pending entries
// arrived in one update only the first is reported.
func FirstNewlyPending(before, after []Payment) (Payment, bool) {
	known := make(map[string]struct{}, len(before))
	for _, p := range before {
		known[p.ID] = struct{}{}
	}
	for _, p := range after {
		if _, ok := known[p.ID]; ok {
			continue
		}
		if p.ApprovalStatus == PaymentApprovalPending {
			return p, true
		}
	}
	return Payment{}, false
}
