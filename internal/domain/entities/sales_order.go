package entities

import "time"

// SalesOrderStatus represents the back-office lifecycle of a sales order (pedido).
type SalesOrderStatus string

const (
	SalesOrderStatusValidationBackoffice SalesOrderStatus = "VALIDATION_BACKOFFICE"
	SalesOrderStatusBilling              SalesOrderStatus = "BILLING"
	SalesOrderStatusDelivered            SalesOrderStatus = "DELIVERED"
	SalesOrderStatusCanceled             SalesOrderStatus = "CANCELED"
)

// SalesOrder is spawned once by a proposal finished with sale.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proposal_id-index): proposal_id
type SalesOrder struct {
	ID             string           `json:"id"`
	ProposalID     string           `json:"proposal_id"`
	Status         SalesOrderStatus `json:"status"`
	Classification string           `json:"classification,omitempty"`
	OwnerUserID    string           `json:"owner_user_id"`
	IssueKey       string           `json:"issue_key,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
