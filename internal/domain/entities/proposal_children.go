package entities

import "github.com/shopspring/decimal"

// Child collections of a proposal.
//
// Each type exposes Key(), the explicit identity used by reconciliation and as
// the DynamoDB primary key, and SameAs(), the payload comparison used to decide
// whether an item present on both sides needs an update.

const keySep = "#"

// ProposalDetailVehicleItem is an accessory/item sold with the vehicle.
type ProposalDetailVehicleItem struct {
	ProposalID      string          `json:"proposal_id"`
	DetailVehicleID string          `json:"detail_vehicle_id"`
	ItemID          string          `json:"item_id"`
	Amount          decimal.Decimal `json:"amount"`
	AmountDiscount  decimal.Decimal `json:"amount_discount"`
}

func (i ProposalDetailVehicleItem) Key() string {
	return i.DetailVehicleID + keySep + i.ItemID
}

func (i ProposalDetailVehicleItem) SameAs(o ProposalDetailVehicleItem) bool {
	return i.Key() == o.Key() &&
		i.ProposalID == o.ProposalID &&
		i.Amount.Equal(o.Amount) &&
		i.AmountDiscount.Equal(o.AmountDiscount)
}

// ProposalPayment is a payment condition offered in the proposal.
//
// ProviderPaymentID links a down payment captured by the payment provider
// (Mercado Pago). When present, PreApproved follows the provider status.
type ProposalPayment struct {
	ProposalID        string          `json:"proposal_id"`
	DetailID          string          `json:"detail_id"`
	PaymentMethodID   string          `json:"payment_method_id"`
	PaymentRuleID     string          `json:"payment_rule_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	PreApproved       bool            `json:"pre_approved"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
}

func (p ProposalPayment) Key() string {
	return p.DetailID + keySep + p.PaymentMethodID + keySep + p.PaymentRuleID
}

func (p ProposalPayment) SameAs(o ProposalPayment) bool {
	return p.Key() == o.Key() &&
		p.ProposalID == o.ProposalID &&
		p.Amount.Equal(o.Amount) &&
		p.PreApproved == o.PreApproved &&
		p.ProviderPaymentID == o.ProviderPaymentID
}

// ProposalCommission is the commission owed to a partner person.
type ProposalCommission struct {
	ProposalID      string          `json:"proposal_id"`
	DetailID        string          `json:"detail_id"`
	PartnerPersonID string          `json:"partner_person_id"`
	Amount          decimal.Decimal `json:"amount"`
}

func (c ProposalCommission) Key() string {
	return c.DetailID + keySep + c.PartnerPersonID
}

func (c ProposalCommission) SameAs(o ProposalCommission) bool {
	return c.Key() == o.Key() && c.ProposalID == o.ProposalID && c.Amount.Equal(o.Amount)
}

type ProposalPersonRole string

const (
	ProposalPersonRoleClient  ProposalPersonRole = "CLIENT"
	ProposalPersonRoleRelated ProposalPersonRole = "RELATED"
)

// ProposalPerson links a person (client or related party) to the proposal.
//
// Person carries the submitted person data; it is persisted through the person
// service before the link is reconciled and is not stored on the link itself.
type ProposalPerson struct {
	ProposalID string             `json:"proposal_id"`
	PersonID   string             `json:"person_id"`
	Role       ProposalPersonRole `json:"role"`
	Person     *Person            `json:"person,omitempty"`
}

func (p ProposalPerson) Key() string {
	return p.ProposalID + keySep + p.PersonID
}

func (p ProposalPerson) SameAs(o ProposalPerson) bool {
	return p.Key() == o.Key() && p.Role == o.Role
}

// ProposalDocument references a stored document attached to the proposal.
// Documents are only ever inserted or deleted.
type ProposalDocument struct {
	ProposalID string `json:"proposal_id"`
	DocumentID string `json:"document_id"`
	Name       string `json:"name,omitempty"`
}

func (d ProposalDocument) Key() string {
	return d.ProposalID + keySep + d.DocumentID
}
