package usecase

import (
	"context"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"
)

// ProposalRepositories groups the repositories backing the proposal aggregate.
type ProposalRepositories struct {
	Proposals      interfaces.IProposalRepository
	Details        interfaces.IProposalDetailRepository
	DetailVehicles interfaces.IProposalDetailVehicleRepository
	Items          interfaces.IProposalItemRepository
	Payments       interfaces.IProposalPaymentRepository
	Commissions    interfaces.IProposalCommissionRepository
	Persons        interfaces.IProposalPersonRepository
	Documents      interfaces.IProposalDocumentRepository
	SalesOrders    interfaces.ISalesOrderRepository
}

type proposalLoader struct {
	repos ProposalRepositories
}

func newProposalLoader(repos ProposalRepositories) *proposalLoader {
	return &proposalLoader{repos: repos}
}

// loadByID returns the full aggregate, or an empty proposal when id is unknown.
func (l *proposalLoader) loadByID(ctx context.Context, id string) (entities.Proposal, error) {
	root, err := l.repos.Proposals.GetByID(ctx, id)
	if err != nil || root.ID == "" {
		return entities.Proposal{}, err
	}
	return l.load(ctx, root)
}

// load attaches every child collection to root.
func (l *proposalLoader) load(ctx context.Context, root entities.Proposal) (entities.Proposal, error) {
	p := root.Root()

	detail, err := l.repos.Details.GetByProposalID(ctx, p.ID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if detail.ID != "" {
		p.Detail = &detail
	}

	vehicle, err := l.repos.DetailVehicles.GetByProposalID(ctx, p.ID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if vehicle.ID != "" {
		p.DetailVehicle = &vehicle
	}

	if p.Items, err = l.repos.Items.ListByProposalID(ctx, p.ID); err != nil {
		return entities.Proposal{}, err
	}
	if p.Payments, err = l.repos.Payments.ListByProposalID(ctx, p.ID); err != nil {
		return entities.Proposal{}, err
	}
	if p.Commissions, err = l.repos.Commissions.ListByProposalID(ctx, p.ID); err != nil {
		return entities.Proposal{}, err
	}
	if p.Persons, err = l.repos.Persons.ListByProposalID(ctx, p.ID); err != nil {
		return entities.Proposal{}, err
	}
	if p.Documents, err = l.repos.Documents.ListByProposalID(ctx, p.ID); err != nil {
		return entities.Proposal{}, err
	}

	order, err := l.repos.SalesOrders.GetByProposalID(ctx, p.ID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if order.ID != "" {
		p.SalesOrder = &order
	}
	return p, nil
}
