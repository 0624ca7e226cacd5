package handler

import (
	"time"

	"github.com/jothamO/prism-app-sub003/internal/api/service"
	"github.com/jothamO/prism-app-sub003/internal/domain/transaction"
)

// TransactionPayload represents one feed transaction in API requests
type TransactionPayload struct {
	ID             string    `json:"id"`
	Direction      string    `json:"direction"`
	Amount         int64     `json:"amount"`
	Narration      string    `json:"narration"`
	Timestamp      time.Time `json:"timestamp"`
	RunningBalance int64     `json:"running_balance"`
	Category       string    `json:"category,omitempty"`
}

// toDomain maps a payload onto the domain transaction record
func (p *TransactionPayload) toDomain() transaction.Transaction {
	return transaction.Transaction{
		ID:             p.ID,
		Direction:      transaction.Direction(p.Direction),
		Amount:         p.Amount,
		Narration:      p.Narration,
		Timestamp:      p.Timestamp,
		RunningBalance: p.RunningBalance,
		Category:       p.Category,
	}
}

// LevyScanRequest represents a request to reconcile a transaction batch
type LevyScanRequest struct {
	Transactions []TransactionPayload `json:"transactions" binding:"required"`
}

// AvoidanceCheckPayload represents one transaction plus optional counterparty
// context in an avoidance check request
type AvoidanceCheckPayload struct {
	Transaction             TransactionPayload `json:"transaction" binding:"required"`
	CounterpartyName        string             `json:"counterparty_name,omitempty"`
	CounterpartyTaxID       string             `json:"counterparty_tax_id,omitempty"`
	CounterpartyAmount      int64              `json:"counterparty_amount,omitempty"`
	ConnectedPersonDeclared bool               `json:"connected_person_declared,omitempty"`
}

// toItem maps the payload onto the service check item
func (p *AvoidanceCheckPayload) toItem() service.AvoidanceCheckItem {
	return service.AvoidanceCheckItem{
		Transaction:             p.Transaction.toDomain(),
		CounterpartyName:        p.CounterpartyName,
		CounterpartyTaxID:       p.CounterpartyTaxID,
		CounterpartyAmount:      p.CounterpartyAmount,
		ConnectedPersonDeclared: p.ConnectedPersonDeclared,
	}
}

// AvoidanceCheckRequest represents the batch form of an avoidance check
// request. The endpoint also accepts a bare AvoidanceCheckPayload for a
// single transaction.
type AvoidanceCheckRequest struct {
	Transactions []AvoidanceCheckPayload `json:"transactions" binding:"required"`
}

// PaginationParams represents pagination parameters for list endpoints
type PaginationParams struct {
	Page    int `form:"page,default=1" binding:"min=1"`
	PerPage int `form:"per_page,default=10" binding:"min=1,max=100"`
}
