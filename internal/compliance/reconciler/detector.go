// Package reconciler implements levy reconciliation: scanning an ordered
// transaction feed for fixed-fee debits, linking each fee to the transfer it
// was charged for, and classifying whether the charge was legitimate.
package reconciler

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jothamO/prism-app-sub003/internal/config"
	"github.com/jothamO/prism-app-sub003/internal/domain/levy"
	"github.com/jothamO/prism-app-sub003/internal/domain/transaction"
)

// Detector scans transaction feeds for statutory fee charges. Detection is
// pure and never fails: every fee-sized debit yields exactly one charge.
type Detector struct {
	cfg    config.EngineConfig
	logger *slog.Logger
}

// NewDetector creates a detector with the given thresholds
func NewDetector(cfg config.EngineConfig, logger *slog.Logger) *Detector {
	return &Detector{
		cfg:    cfg,
		logger: logger,
	}
}

// Detect scans the feed for fee-sized debits and classifies each one.
// The input must be ordered ascending by timestamp; the detector sorts
// defensively since the backward window search depends on feed order.
func (d *Detector) Detect(accountHolderID uuid.UUID, txns []transaction.Transaction) []*levy.Charge {
	ordered := make([]transaction.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	var charges []*levy.Charge
	for i := range ordered {
		tx := &ordered[i]
		if !tx.IsDebit() || tx.Amount != d.cfg.FeeAmount {
			continue
		}

		charge := d.classifyFee(accountHolderID, ordered, i)
		charges = append(charges, charge)

		d.logger.Debug("classified fee charge",
			"transaction_id", charge.TransactionID,
			"status", string(charge.Status),
			"category", string(charge.Category),
			"linked_transfer_id", charge.LinkedTransferID,
		)
	}

	return charges
}

// classifyFee produces the charge for the fee-sized debit at index i
func (d *Detector) classifyFee(accountHolderID uuid.UUID, ordered []transaction.Transaction, i int) *levy.Charge {
	fee := &ordered[i]
	charge := &levy.Charge{
		TransactionID:   fee.ID,
		AccountHolderID: accountHolderID,
		Amount:          fee.Amount,
		DetectedAt:      time.Now().UTC(),
	}

	category, recognized := classifyFeeNarration(fee.Narration)
	if !recognized {
		// Unrecognized narration degrades to suspicious rather than erroring.
		// Deductible pending review: benefit of the doubt.
		charge.Status = levy.StatusSuspicious
		charge.Reason = fmt.Sprintf("unknown %s charge – needs manual review", transaction.FormatNaira(d.cfg.FeeAmount))
		charge.IsDeductible = true
		return charge
	}
	charge.Category = category

	linked := d.findLinkedTransfer(ordered, i)
	if linked == nil {
		charge.Status = levy.StatusSuspicious
		charge.Reason = fmt.Sprintf("no linked transfer found >= %s", transaction.FormatNaira(d.cfg.TransferThreshold))
		charge.IsDeductible = true
		return charge
	}

	charge.LinkedTransferID = linked.ID
	charge.LinkedTransferAmount = linked.Amount

	if reason, exempt := d.exemptionReason(linked); exempt {
		// The transfer was exempt, so the fee should never have been charged.
		// A wrongly levied charge is not a valid business expense.
		charge.Status = levy.StatusExemptIllegal
		charge.Reason = fmt.Sprintf("fee charged on exempt transfer: %s", reason)
		charge.IsDeductible = false
		return charge
	}

	charge.Status = levy.StatusLegitimate
	charge.IsDeductible = true
	return charge
}

// findLinkedTransfer searches backward from the fee at index i for the nearest
// prior debit large enough to attract the levy. The search stops after
// LookbackCount transactions or once candidates fall outside LookbackWindow,
// whichever comes first.
func (d *Detector) findLinkedTransfer(ordered []transaction.Transaction, i int) *transaction.Transaction {
	fee := &ordered[i]
	for j := i - 1; j >= 0 && i-j <= d.cfg.LookbackCount; j-- {
		candidate := &ordered[j]
		if fee.Timestamp.Sub(candidate.Timestamp) > d.cfg.LookbackWindow {
			break
		}
		if !candidate.IsDebit() {
			continue
		}
		if candidate.Amount == d.cfg.FeeAmount {
			continue // Another fee-sized debit cannot be the transfer
		}
		if candidate.Amount >= d.cfg.TransferThreshold {
			return candidate
		}
	}
	return nil
}

// exemptionReason evaluates the levy exemption rules against the linked
// transfer, in order. First match wins.
func (d *Detector) exemptionReason(linked *transaction.Transaction) (string, bool) {
	if linked.Amount < d.cfg.TransferThreshold {
		return fmt.Sprintf("transfer amount < %s", transaction.FormatNaira(d.cfg.TransferThreshold)), true
	}
	if containsAny(linked.Narration, salaryNarrationKeywords) {
		return "salary payment", true
	}
	if containsAny(linked.Narration, selfTransferNarrationKeywords) {
		return "intra-bank self-transfer", true
	}
	return "", false
}

// classifyFeeNarration maps a fee narration onto its statutory category.
// Returns false when the narration matches neither keyword set.
func classifyFeeNarration(narration string) (levy.Category, bool) {
	if containsAny(narration, levyNarrationKeywords) {
		return levy.CategoryLevy, true
	}
	if containsAny(narration, stampDutyNarrationKeywords) {
		return levy.CategoryStampDuty, true
	}
	return "", false
}
