package usecase

import (
	"context"
	"time"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"
)

// CoerceUnchanged returns the status a proposal takes on a save that does not
// request a new status. A disapproved proposal goes back to IN_PROGRESS.
func CoerceUnchanged(current entities.ProposalStatus) entities.ProposalStatus {
	if current == entities.ProposalStatusCommercialDisapproved {
		return entities.ProposalStatusInProgress
	}
	return current
}

// StatusTransitionGuard checks every requested status change of a proposal.
//
// Guard is a plain function of the current status, the requested status and
// the incoming aggregate snapshot; no state machine is persisted.
type StatusTransitionGuard struct {
	approvals *ApprovalRuleEvaluator
	channels  interfaces.IChannelService
	persons   interfaces.IPersonService
	now       func() time.Time
}

func NewStatusTransitionGuard(approvals *ApprovalRuleEvaluator, channels interfaces.IChannelService, persons interfaces.IPersonService) *StatusTransitionGuard {
	return &StatusTransitionGuard{
		approvals: approvals,
		channels:  channels,
		persons:   persons,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Guard validates moving snapshot from current into requested on behalf of user.
//
// Business failures are returned as *RuleViolation; anything else is a system
// failure from a collaborator. On a successful move into ON_CUSTOMER_APPROVAL
// the snapshot's ValidityDate is set.
func (g *StatusTransitionGuard) Guard(
	ctx context.Context,
	current, requested entities.ProposalStatus,
	snapshot *entities.Proposal,
	user entities.ActingUser,
) error {
	if requested == current {
		return nil
	}
	if !requested.IsValid() || !current.IsValid() || current.IsTerminal() {
		return ErrIllegalStatusTransition
	}
	if snapshot == nil || snapshot.Status != requested {
		return ErrStatusMismatch
	}

	switch requested {
	case entities.ProposalStatusInProgress,
		entities.ProposalStatusInCommercialApproval,
		entities.ProposalStatusFinishedWithoutSale,
		entities.ProposalStatusCanceled:
		return nil

	case entities.ProposalStatusCommercialApproved,
		entities.ProposalStatusCommercialDisapproved:
		return g.validateRuleApproval(ctx, current, requested, snapshot, user)

	case entities.ProposalStatusOnCustomerApproval:
		if err := g.validateRuleApproval(ctx, current, requested, snapshot, user); err != nil {
			return err
		}
		if current != entities.ProposalStatusCommercialApproved && !customerApprovalAllowed(*snapshot) {
			return ErrCustomerApprovalBlocked
		}
		validity := g.now()
		if snapshot.DetailVehicle != nil {
			validity = validity.AddDate(0, 0, snapshot.DetailVehicle.AgreedTermDays)
		}
		snapshot.ValidityDate = &validity
		return nil

	case entities.ProposalStatusFinishedWithSale:
		return g.validateFinishWithSale(ctx, *snapshot)
	}
	return ErrIllegalStatusTransition
}

func (g *StatusTransitionGuard) validateRuleApproval(
	ctx context.Context,
	current, requested entities.ProposalStatus,
	snapshot *entities.Proposal,
	user entities.ActingUser,
) error {
	view, err := g.approvals.BuildView(ctx, *snapshot, user)
	if err != nil {
		return err
	}
	return g.approvals.ValidateRuleApproval(ctx, view, requested, current, user)
}

// customerApprovalAllowed holds when the proposal carries no discount or every
// payment condition is pre-approved.
func customerApprovalAllowed(p entities.Proposal) bool {
	if ComputeDiscount(p).IsZero() {
		return true
	}
	for _, pay := range p.Payments {
		if !pay.PreApproved {
			return false
		}
	}
	return true
}

func (g *StatusTransitionGuard) validateFinishWithSale(ctx context.Context, p entities.Proposal) error {
	if p.Detail == nil || p.DetailVehicle == nil {
		return ErrProposalRequiredFields
	}

	channel, err := g.channels.GetByID(ctx, p.Detail.ChannelID)
	if err != nil {
		return err
	}
	if channel.ID == "" {
		return ErrProposalChannelRequired
	}
	if channel.HasPartner && p.DetailVehicle.OverPrice.IsPositive() && len(p.Commissions) == 0 {
		return ErrCommissionRequired
	}

	for _, link := range p.Persons {
		person := link.Person
		if person == nil {
			found, err := g.persons.GetByID(ctx, link.PersonID)
			if err != nil {
				return err
			}
			if found.ID == "" {
				return ErrInvalidPerson
			}
			person = &found
		}
		if err := validatePersonForSale(*person); err != nil {
			return err
		}
	}
	return nil
}

func validatePersonForSale(p entities.Person) error {
	switch p.Classification {
	case entities.PersonClassificationPF:
		if p.CPF == nil {
			return ErrPersonCPFRequired
		}
	case entities.PersonClassificationPJ:
		if p.CNPJ == nil {
			return ErrPersonCNPJRequired
		}
	}
	if p.Address == nil {
		return ErrPersonAddressRequired
	}
	return nil
}
