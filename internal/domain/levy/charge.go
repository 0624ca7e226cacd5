// Package levy defines the reconciliation facts derived for fee-sized debits:
// which statutory transfer levies were charged legitimately, which were charged
// against exempt transfers, and which cannot be explained.
package levy

import (
	"time"

	"github.com/google/uuid"
)

// Status classifies the legitimacy of one fee-sized debit
type Status string

const (
	StatusLegitimate    Status = "legitimate"
	StatusExemptIllegal Status = "exempt_illegal"
	StatusSuspicious    Status = "suspicious"
)

// Category identifies the statutory fee class a charge narration matched
type Category string

const (
	CategoryLevy      Category = "levy"
	CategoryStampDuty Category = "stamp_duty"
)

// Charge is the derived fact about one fee-sized debit. Charges are written
// with upsert semantics keyed by TransactionID so reprocessing a feed is
// idempotent.
type Charge struct {
	TransactionID        string    `json:"transaction_id" bson:"transaction_id"`
	AccountHolderID      uuid.UUID `json:"account_holder_id" bson:"account_holder_id"`
	Amount               int64     `json:"amount" bson:"amount"` // Kobo (minor units)
	LinkedTransferID     string    `json:"linked_transfer_id,omitempty" bson:"linked_transfer_id,omitempty"`
	LinkedTransferAmount int64     `json:"linked_transfer_amount,omitempty" bson:"linked_transfer_amount,omitempty"`
	Status               Status    `json:"status" bson:"status"`
	Category             Category  `json:"category,omitempty" bson:"category,omitempty"`
	Reason               string    `json:"reason,omitempty" bson:"reason,omitempty"`
	IsDeductible         bool      `json:"is_deductible" bson:"is_deductible"`
	HasConsumptionTax    bool      `json:"has_consumption_tax" bson:"has_consumption_tax"` // Always false for this fee class
	DetectedAt           time.Time `json:"detected_at" bson:"detected_at"`
}

// ScanSummary reports counts by status for one reconciled batch
type ScanSummary struct {
	Total              int   `json:"total"`
	Legitimate         int   `json:"legitimate"`
	ExemptIllegal      int   `json:"exempt_illegal"`
	Suspicious         int   `json:"suspicious"`
	IllegalTotalAmount int64 `json:"illegal_total_amount"` // Kobo
}

// Summarize counts charges by status
func Summarize(charges []*Charge) ScanSummary {
	var s ScanSummary
	for _, c := range charges {
		s.Total++
		switch c.Status {
		case StatusLegitimate:
			s.Legitimate++
		case StatusExemptIllegal:
			s.ExemptIllegal++
			s.IllegalTotalAmount += c.Amount
		case StatusSuspicious:
			s.Suspicious++
		}
	}
	return s
}
