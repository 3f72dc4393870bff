package entities

// ProposalStatus represents the lifecycle of a sales proposal (proposta).
//
// Domain notes:
//   - A proposal is created IN_PROGRESS.
//   - FINISHED_WITH_SALE, FINISHED_WITHOUT_SALE and CANCELED are terminal.
//   - COMMERCIAL_DISAPPROVED never sticks: the next save without a new status
//     brings the proposal back to IN_PROGRESS.

type ProposalStatus string

const (
	ProposalStatusInProgress            ProposalStatus = "IN_PROGRESS"
	ProposalStatusInCommercialApproval  ProposalStatus = "IN_COMMERCIAL_APPROVAL"
	ProposalStatusCommercialApproved    ProposalStatus = "COMMERCIAL_APPROVED"
	ProposalStatusCommercialDisapproved ProposalStatus = "COMMERCIAL_DISAPPROVED"
	ProposalStatusOnCustomerApproval    ProposalStatus = "ON_CUSTOMER_APPROVAL"
	ProposalStatusFinishedWithSale      ProposalStatus = "FINISHED_WITH_SALE"
	ProposalStatusFinishedWithoutSale   ProposalStatus = "FINISHED_WITHOUT_SALE"
	ProposalStatusCanceled              ProposalStatus = "CANCELED"
)

var knownProposalStatuses = map[ProposalStatus]struct{}{
	ProposalStatusInProgress:            {},
	ProposalStatusInCommercialApproval:  {},
	ProposalStatusCommercialApproved:    {},
	ProposalStatusCommercialDisapproved: {},
	ProposalStatusOnCustomerApproval:    {},
	ProposalStatusFinishedWithSale:      {},
	ProposalStatusFinishedWithoutSale:   {},
	ProposalStatusCanceled:              {},
}

// IsValid reports whether s is one of the known proposal states.
func (s ProposalStatus) IsValid() bool {
	_, ok := knownProposalStatuses[s]
	return ok
}

// IsTerminal reports whether no further transition is defined from s.
func (s ProposalStatus) IsTerminal() bool {
	switch s {
	case ProposalStatusFinishedWithSale, ProposalStatusFinishedWithoutSale, ProposalStatusCanceled:
		return true
	}
	return false
}

// RequiresRuleApproval reports whether entering s must pass the approval rule set.
func (s ProposalStatus) RequiresRuleApproval() bool {
	switch s {
	case ProposalStatusCommercialApproved, ProposalStatusCommercialDisapproved, ProposalStatusOnCustomerApproval:
		return true
	}
	return false
}
