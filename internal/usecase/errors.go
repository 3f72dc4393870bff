package usecase

import "errors"

// RuleViolation is a user-visible business rule failure.
//
// It is always returned unwrapped so the caller receives the original message.
// Anything that is not a RuleViolation (or one of the not-found/invalid
// sentinels below) is treated as a system error.
type RuleViolation struct {
	Code    string
	Message string
}

func (e *RuleViolation) Error() string {
	return e.Message
}

func newRuleViolation(code, message string) *RuleViolation {
	return &RuleViolation{Code: code, Message: message}
}

// IsRuleViolation reports whether err carries a business rule violation.
func IsRuleViolation(err error) bool {
	var rv *RuleViolation
	return errors.As(err, &rv)
}

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrInvalidProposalID     = errors.New("invalid proposal id")
	ErrProposalSaveFailed    = errors.New("could not save proposal")
	ErrProposalUpdateFailed  = errors.New("could not update proposal")
	ErrProposalDeleteFailed  = errors.New("could not delete proposal")
	ErrProposalSearchFailed  = errors.New("could not search proposals")
	ErrSalesOrderNotFound    = errors.New("sales order not found")
	ErrInvalidProposalNumber = errors.New("invalid proposal number configuration")
)

var (
	ErrProposalRequiredFields     = newRuleViolation("PROPOSAL_REQUIRED_FIELDS", "proposal detail and detail vehicle are required")
	ErrProposalChannelRequired    = newRuleViolation("PROPOSAL_CHANNEL_REQUIRED", "proposal channel is required")
	ErrProposalSellerRequired     = newRuleViolation("PROPOSAL_SELLER_REQUIRED", "proposal seller is required")
	ErrProposalVehicleRequired    = newRuleViolation("PROPOSAL_VEHICLE_REQUIRED", "vehicle is required unless delivery is future")
	ErrProposalPriceRequired      = newRuleViolation("PROPOSAL_PRICE_REQUIRED", "product price is required")
	ErrProposalInvalidDiscount    = newRuleViolation("PROPOSAL_INVALID_DISCOUNT", "discounts and prices cannot be negative")
	ErrProposalDuplicated         = newRuleViolation("PROPOSAL_DUPLICATED", "another proposal already uses this number and version")
	ErrProposalInvalidVersion     = newRuleViolation("PROPOSAL_INVALID_VERSION", "proposal version must be positive")
	ErrProposalNumberUnknown      = newRuleViolation("PROPOSAL_NUMBER_UNKNOWN", "no proposal exists with the given number")
	ErrProposalDeleted            = newRuleViolation("PROPOSAL_DELETED", "proposal was deleted")
	ErrProposalHasSalesOrder      = newRuleViolation("PROPOSAL_HAS_SALES_ORDER", "proposal already generated a sales order")
	ErrIllegalStatusTransition    = newRuleViolation("PROPOSAL_ILLEGAL_TRANSITION", "status transition is not allowed")
	ErrStatusMismatch             = newRuleViolation("PROPOSAL_STATUS_MISMATCH", "proposal status does not match the requested status")
	ErrApprovalNotAuthorized      = newRuleViolation("PROPOSAL_APPROVAL_NOT_AUTHORIZED", "user is not allowed to approve this proposal")
	ErrCustomerApprovalBlocked    = newRuleViolation("PROPOSAL_CUSTOMER_APPROVAL_BLOCKED", "proposal with discount requires commercial approval or pre-approved payments")
	ErrCommissionRequired         = newRuleViolation("PROPOSAL_COMMISSION_REQUIRED", "partner channel with over price requires a commission")
	ErrPersonCPFRequired          = newRuleViolation("PROPOSAL_PERSON_CPF_REQUIRED", "natural person requires CPF")
	ErrPersonCNPJRequired         = newRuleViolation("PROPOSAL_PERSON_CNPJ_REQUIRED", "legal person requires CNPJ")
	ErrPersonAddressRequired      = newRuleViolation("PROPOSAL_PERSON_ADDRESS_REQUIRED", "person requires an address")
	ErrInvalidItem                = newRuleViolation("PROPOSAL_INVALID_ITEM", "item requires an id and a non-negative discount")
	ErrInvalidPayment             = newRuleViolation("PROPOSAL_INVALID_PAYMENT", "payment requires a payment method and a non-negative amount")
	ErrInvalidCommission          = newRuleViolation("PROPOSAL_INVALID_COMMISSION", "commission requires a partner person and a positive amount")
	ErrInvalidPerson              = newRuleViolation("PROPOSAL_INVALID_PERSON", "person requires an id or person data and a valid role")
	ErrInvalidDocument            = newRuleViolation("PROPOSAL_INVALID_DOCUMENT", "document requires an id")
	ErrSalesOrderAlreadyGenerated = newRuleViolation("SALES_ORDER_ALREADY_GENERATED", "proposal already has a sales order")
)
