// Package transaction defines the bank transaction record the compliance
// engine operates on. Records are produced by the banking data provider and
// are read-only to this service.
package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingID        = errors.New("transaction id is required")
	ErrMissingTimestamp = errors.New("transaction timestamp is required")
	ErrInvalidAmount    = errors.New("transaction amount must be positive")
	ErrInvalidDirection = errors.New("transaction direction must be debit or credit")
)

// Direction indicates whether a transaction moved money out of or into the account
type Direction string

const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// Transaction is one ledger entry from the transaction feed.
// Amount is an absolute value in kobo (minor units); Direction carries the sign.
type Transaction struct {
	ID             string    `json:"id"`
	Direction      Direction `json:"direction"`
	Amount         int64     `json:"amount"` // Kobo (minor units)
	Narration      string    `json:"narration"`
	Timestamp      time.Time `json:"timestamp"`
	RunningBalance int64     `json:"running_balance"`
	Category       string    `json:"category,omitempty"`
}

// Validate rejects malformed feed records. A failing record is dropped from
// its batch individually; it never aborts the remaining items.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if t.Timestamp.IsZero() {
		return ErrMissingTimestamp
	}
	if t.Amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, t.Amount)
	}
	if t.Direction != DirectionDebit && t.Direction != DirectionCredit {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, t.Direction)
	}
	return nil
}

// IsDebit reports whether the transaction moved money out of the account
func (t *Transaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}
