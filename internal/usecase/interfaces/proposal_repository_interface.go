package interfaces

import (
	"context"

	"concessionaria_xpto/internal/domain/entities"
)

// IProposalRepository abstracts persistence of the proposal root.
//
// Child collections are persisted by their own repositories; Create/Update
// only touch the root fields.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByNum(ctx context.Context, num int64) ([]entities.Proposal, error)
	ListByStatus(ctx context.Context, status entities.ProposalStatus) ([]entities.Proposal, error)
	Search(ctx context.Context, filter entities.ProposalFilter) ([]entities.Proposal, error)
}

// IProposalDetailRepository persists the single detail of a proposal.
type IProposalDetailRepository interface {
	Create(ctx context.Context, d entities.ProposalDetail) (entities.ProposalDetail, error)
	Update(ctx context.Context, d entities.ProposalDetail) (entities.ProposalDetail, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.ProposalDetail, error)
}

// IProposalDetailVehicleRepository persists the single detail-vehicle of a proposal.
type IProposalDetailVehicleRepository interface {
	Create(ctx context.Context, v entities.ProposalDetailVehicle) (entities.ProposalDetailVehicle, error)
	Update(ctx context.Context, v entities.ProposalDetailVehicle) (entities.ProposalDetailVehicle, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.ProposalDetailVehicle, error)
}

// IChildRepository is the find/save/update/delete contract shared by the
// proposal child collections. Items are addressed by their Key().
type IChildRepository[T any] interface {
	ListByProposalID(ctx context.Context, proposalID string) ([]T, error)
	Create(ctx context.Context, item T) error
	Update(ctx context.Context, item T) error
	Delete(ctx context.Context, item T) error
}

type (
	IProposalItemRepository       = IChildRepository[entities.ProposalDetailVehicleItem]
	IProposalPaymentRepository    = IChildRepository[entities.ProposalPayment]
	IProposalCommissionRepository = IChildRepository[entities.ProposalCommission]
	IProposalPersonRepository     = IChildRepository[entities.ProposalPerson]
	IProposalDocumentRepository   = IChildRepository[entities.ProposalDocument]
)

// ISalesOrderRepository persists sales orders spawned by proposals.
type ISalesOrderRepository interface {
	Create(ctx context.Context, o entities.SalesOrder) (entities.SalesOrder, error)
	Update(ctx context.Context, o entities.SalesOrder) (entities.SalesOrder, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.SalesOrder, error)
}
