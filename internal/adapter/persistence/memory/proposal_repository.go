package memory

import (
	"context"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"
)

type ProposalRepository struct {
	rows table[entities.Proposal]
}

var _ interfaces.IProposalRepository = (*ProposalRepository)(nil)

func NewProposalRepository(store *Store) *ProposalRepository {
	return &ProposalRepository{rows: newTable[entities.Proposal](store, "proposals")}
}

func (r *ProposalRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	p = p.Root()
	return p, r.rows.insert(ctx, p.ID, p)
}

func (r *ProposalRepository) Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	p = p.Root()
	return p, r.rows.replace(ctx, p.ID, p)
}

func (r *ProposalRepository) GetByID(_ context.Context, id string) (entities.Proposal, error) {
	p, _, err := r.rows.get(id)
	return p, err
}

func (r *ProposalRepository) ListByNum(_ context.Context, num int64) ([]entities.Proposal, error) {
	return r.rows.filter(func(p entities.Proposal) bool { return p.Num == num })
}

func (r *ProposalRepository) ListByStatus(_ context.Context, status entities.ProposalStatus) ([]entities.Proposal, error) {
	return r.rows.filter(func(p entities.Proposal) bool { return p.Status == status })
}

// Search ignores SellerID; sellers live on the detail, not on the root.
func (r *ProposalRepository) Search(_ context.Context, f entities.ProposalFilter) ([]entities.Proposal, error) {
	return r.rows.filter(func(p entities.Proposal) bool {
		if f.Status != "" && p.Status != f.Status {
			return false
		}
		if f.LeadID != "" && p.LeadID != f.LeadID {
			return false
		}
		if f.ProposalNumber != "" && p.ProposalNumber != f.ProposalNumber {
			return false
		}
		return true
	})
}

type ProposalDetailRepository struct {
	rows table[entities.ProposalDetail]
}

var _ interfaces.IProposalDetailRepository = (*ProposalDetailRepository)(nil)

func NewProposalDetailRepository(store *Store) *ProposalDetailRepository {
	return &ProposalDetailRepository{rows: newTable[entities.ProposalDetail](store, "proposal_details")}
}

func (r *ProposalDetailRepository) Create(ctx context.Context, d entities.ProposalDetail) (entities.ProposalDetail, error) {
	return d, r.rows.insert(ctx, d.ID, d)
}

func (r *ProposalDetailRepository) Update(ctx context.Context, d entities.ProposalDetail) (entities.ProposalDetail, error) {
	return d, r.rows.replace(ctx, d.ID, d)
}

func (r *ProposalDetailRepository) GetByProposalID(_ context.Context, proposalID string) (entities.ProposalDetail, error) {
	return r.rows.first(func(d entities.ProposalDetail) bool { return d.ProposalID == proposalID })
}

type ProposalDetailVehicleRepository struct {
	rows table[entities.ProposalDetailVehicle]
}

var _ interfaces.IProposalDetailVehicleRepository = (*ProposalDetailVehicleRepository)(nil)

func NewProposalDetailVehicleRepository(store *Store) *ProposalDetailVehicleRepository {
	return &ProposalDetailVehicleRepository{rows: newTable[entities.ProposalDetailVehicle](store, "proposal_detail_vehicles")}
}

func (r *ProposalDetailVehicleRepository) Create(ctx context.Context, v entities.ProposalDetailVehicle) (entities.ProposalDetailVehicle, error) {
	return v, r.rows.insert(ctx, v.ID, v)
}

func (r *ProposalDetailVehicleRepository) Update(ctx context.Context, v entities.ProposalDetailVehicle) (entities.ProposalDetailVehicle, error) {
	return v, r.rows.replace(ctx, v.ID, v)
}

func (r *ProposalDetailVehicleRepository) GetByProposalID(_ context.Context, proposalID string) (entities.ProposalDetailVehicle, error) {
	return r.rows.first(func(v entities.ProposalDetailVehicle) bool { return v.ProposalID == proposalID })
}

// ChildRepository stores one child collection addressed by Key().
type ChildRepository[T any] struct {
	rows       table[T]
	key        func(T) string
	proposalID func(T) string
	prepare    func(T) T
}

func (r *ChildRepository[T]) ListByProposalID(_ context.Context, proposalID string) ([]T, error) {
	return r.rows.filter(func(v T) bool { return r.proposalID(v) == proposalID })
}

func (r *ChildRepository[T]) Create(ctx context.Context, item T) error {
	return r.rows.insert(ctx, r.key(item), r.stored(item))
}

func (r *ChildRepository[T]) Update(ctx context.Context, item T) error {
	return r.rows.replace(ctx, r.key(item), r.stored(item))
}

func (r *ChildRepository[T]) stored(item T) T {
	if r.prepare == nil {
		return item
	}
	return r.prepare(item)
}

func (r *ChildRepository[T]) Delete(ctx context.Context, item T) error {
	r.rows.delete(ctx, r.key(item))
	return nil
}

func NewProposalItemRepository(store *Store) *ChildRepository[entities.ProposalDetailVehicleItem] {
	return &ChildRepository[entities.ProposalDetailVehicleItem]{
		rows:       newTable[entities.ProposalDetailVehicleItem](store, "proposal_items"),
		key:        entities.ProposalDetailVehicleItem.Key,
		proposalID: func(i entities.ProposalDetailVehicleItem) string { return i.ProposalID },
	}
}

func NewProposalPaymentRepository(store *Store) *ChildRepository[entities.ProposalPayment] {
	return &ChildRepository[entities.ProposalPayment]{
		rows:       newTable[entities.ProposalPayment](store, "proposal_payments"),
		key:        entities.ProposalPayment.Key,
		proposalID: func(p entities.ProposalPayment) string { return p.ProposalID },
	}
}

func NewProposalCommissionRepository(store *Store) *ChildRepository[entities.ProposalCommission] {
	return &ChildRepository[entities.ProposalCommission]{
		rows:       newTable[entities.ProposalCommission](store, "proposal_commissions"),
		key:        entities.ProposalCommission.Key,
		proposalID: func(c entities.ProposalCommission) string { return c.ProposalID },
	}
}

// NewProposalPersonRepository drops the Person payload; person data lives in
// the person registry.
func NewProposalPersonRepository(store *Store) *ChildRepository[entities.ProposalPerson] {
	return &ChildRepository[entities.ProposalPerson]{
		rows:       newTable[entities.ProposalPerson](store, "proposal_persons"),
		key:        entities.ProposalPerson.Key,
		proposalID: func(p entities.ProposalPerson) string { return p.ProposalID },
		prepare: func(p entities.ProposalPerson) entities.ProposalPerson {
			p.Person = nil
			return p
		},
	}
}

func NewProposalDocumentRepository(store *Store) *ChildRepository[entities.ProposalDocument] {
	return &ChildRepository[entities.ProposalDocument]{
		rows:       newTable[entities.ProposalDocument](store, "proposal_documents"),
		key:        entities.ProposalDocument.Key,
		proposalID: func(d entities.ProposalDocument) string { return d.ProposalID },
	}
}

var (
	_ interfaces.IProposalItemRepository       = (*ChildRepository[entities.ProposalDetailVehicleItem])(nil)
	_ interfaces.IProposalPaymentRepository    = (*ChildRepository[entities.ProposalPayment])(nil)
	_ interfaces.IProposalCommissionRepository = (*ChildRepository[entities.ProposalCommission])(nil)
	_ interfaces.IProposalPersonRepository     = (*ChildRepository[entities.ProposalPerson])(nil)
	_ interfaces.IProposalDocumentRepository   = (*ChildRepository[entities.ProposalDocument])(nil)
)

type SalesOrderRepository struct {
	rows table[entities.SalesOrder]
}

var _ interfaces.ISalesOrderRepository = (*SalesOrderRepository)(nil)

func NewSalesOrderRepository(store *Store) *SalesOrderRepository {
	return &SalesOrderRepository{rows: newTable[entities.SalesOrder](store, "sales_orders")}
}

func (r *SalesOrderRepository) Create(ctx context.Context, o entities.SalesOrder) (entities.SalesOrder, error) {
	return o, r.rows.insert(ctx, o.ID, o)
}

func (r *SalesOrderRepository) Update(ctx context.Context, o entities.SalesOrder) (entities.SalesOrder, error) {
	return o, r.rows.replace(ctx, o.ID, o)
}

func (r *SalesOrderRepository) GetByProposalID(_ context.Context, proposalID string) (entities.SalesOrder, error) {
	return r.rows.first(func(o entities.SalesOrder) bool { return o.ProposalID == proposalID })
}
