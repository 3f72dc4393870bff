package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proposal is the aggregate root of a commercial proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//   - GSI2 (num-index): num
//
// Child collections are not stored on the root item. Each lives in its own table
// keyed by an identity derived from its owner (see Key() on each child) and is
// reconciled against the submitted aggregate on every save.
type Proposal struct {
	ID                string         `json:"id"`
	LeadID            string         `json:"lead_id,omitempty"`
	Status            ProposalStatus `json:"status"`
	Num               int64          `json:"num"`
	Cod               string         `json:"cod"`
	ProposalNumber    string         `json:"proposal_number"`
	Version           int            `json:"version"`
	ValidityDate      *time.Time     `json:"validity_date,omitempty"`
	ImmediateDelivery bool           `json:"immediate_delivery"`
	CreatedBy         string         `json:"created_by"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         *time.Time     `json:"deleted_at,omitempty"`

	Detail        *ProposalDetail             `json:"detail,omitempty"`
	DetailVehicle *ProposalDetailVehicle      `json:"detail_vehicle,omitempty"`
	Items         []ProposalDetailVehicleItem `json:"items,omitempty"`
	Payments      []ProposalPayment           `json:"payments,omitempty"`
	Commissions   []ProposalCommission        `json:"commissions,omitempty"`
	Persons       []ProposalPerson            `json:"persons,omitempty"`
	Documents     []ProposalDocument          `json:"documents,omitempty"`
	SalesOrder    *SalesOrder                 `json:"sales_order,omitempty"`
}

// IsDeleted reports whether the proposal was soft deleted.
func (p Proposal) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Root returns a copy of the proposal without its child collections.
func (p Proposal) Root() Proposal {
	p.Detail = nil
	p.DetailVehicle = nil
	p.Items = nil
	p.Payments = nil
	p.Commissions = nil
	p.Persons = nil
	p.Documents = nil
	p.SalesOrder = nil
	return p
}

// SellerID returns the executive responsible for the proposal, if any.
func (p Proposal) SellerID() string {
	if p.Detail == nil {
		return ""
	}
	return p.Detail.SellerID
}

// ProposalFilter narrows proposal listings. Empty fields are ignored.
type ProposalFilter struct {
	Status         ProposalStatus
	SellerID       string
	LeadID         string
	ProposalNumber string
}

// ProposalApproval is a transient view correlating a proposal with its
// aggregated discount. It is built on demand and never persisted.
type ProposalApproval struct {
	ProposalID       string          `json:"proposal_id"`
	ProposalNumber   string          `json:"proposal_number"`
	Status           ProposalStatus  `json:"status"`
	SellerID         string          `json:"seller_id"`
	Discount         decimal.Decimal `json:"discount"`
	RequiresApproval bool            `json:"requires_approval"`
	InReviewerTeam   bool            `json:"in_reviewer_team"`
	ValidityDate     *time.Time      `json:"validity_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
