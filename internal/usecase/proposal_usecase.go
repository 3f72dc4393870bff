package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/infrastructure/logger"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const auditEntityProposal = "proposal"

// IProposalUseCase exposes the proposal aggregate operations.
//
// Create/Update/Delete each run as a single unit of work: the root and every
// child collection commit together or not at all. Status changes go through
// Update with a different Status on the payload.
type IProposalUseCase interface {
	Create(ctx context.Context, p entities.Proposal, user entities.ActingUser) (entities.Proposal, error)
	Update(ctx context.Context, id string, p entities.Proposal, user entities.ActingUser) (entities.Proposal, error)
	Delete(ctx context.Context, id string, user entities.ActingUser) error
	GetAggregate(ctx context.Context, id string) (entities.Proposal, error)
	Search(ctx context.Context, filter entities.ProposalFilter) ([]entities.Proposal, error)
}

// ProposalDependencies are the collaborators of ProposalUseCase.
// RuleSet defaults to DiscountRuleSet; Audit, Issues and PaymentGateway are optional.
type ProposalDependencies struct {
	UnitOfWork     interfaces.IUnitOfWork
	Repositories   ProposalRepositories
	Sequence       interfaces.ISequenceRepository
	Config         interfaces.IConfigurationProvider
	Persons        interfaces.IPersonService
	Sellers        interfaces.ISellerService
	Channels       interfaces.IChannelService
	RuleSet        interfaces.IApprovalRuleSet
	Audit          interfaces.IAuditSink
	Issues         interfaces.IIssueTracker
	PaymentGateway interfaces.IPaymentGateway
}

type ProposalUseCase struct {
	uow         interfaces.IUnitOfWork
	repos       ProposalRepositories
	loader      *proposalLoader
	numbers     *ProposalNumberGenerator
	guard       *StatusTransitionGuard
	persons     interfaces.IPersonService
	details     *ProposalDetailUseCase
	vehicles    *ProposalDetailVehicleUseCase
	items       *ProposalItemUseCase
	payments    *ProposalPaymentUseCase
	commissions *ProposalCommissionUseCase
	personLinks *ProposalPersonUseCase
	documents   *ProposalDocumentUseCase
	salesOrders *SalesOrderUseCase
	audit       interfaces.IAuditSink
	issues      interfaces.IIssueTracker
	now         func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(deps ProposalDependencies) *ProposalUseCase {
	rules := deps.RuleSet
	if rules == nil {
		rules = DiscountRuleSet{}
	}
	repos := deps.Repositories
	approvals := NewApprovalRuleEvaluator(deps.Sellers, deps.Config, rules, repos)

	return &ProposalUseCase{
		uow:         deps.UnitOfWork,
		repos:       repos,
		loader:      newProposalLoader(repos),
		numbers:     NewProposalNumberGenerator(deps.Sequence, deps.Config),
		guard:       NewStatusTransitionGuard(approvals, deps.Channels, deps.Persons),
		persons:     deps.Persons,
		details:     NewProposalDetailUseCase(repos.Details, deps.Channels, deps.Sellers),
		vehicles:    NewProposalDetailVehicleUseCase(repos.DetailVehicles),
		items:       NewProposalItemUseCase(repos.Items),
		payments:    NewProposalPaymentUseCase(repos.Payments, deps.PaymentGateway),
		commissions: NewProposalCommissionUseCase(repos.Commissions),
		personLinks: NewProposalPersonUseCase(repos.Persons),
		documents:   NewProposalDocumentUseCase(repos.Documents),
		salesOrders: NewSalesOrderUseCase(repos.SalesOrders),
		audit:       deps.Audit,
		issues:      deps.Issues,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create persists a new proposal in IN_PROGRESS.
//
// A payload without Num gets a freshly generated number and version 1. A
// payload with Num opens a new version of that proposal number, keeping its
// Cod and ProposalNumber.
func (u *ProposalUseCase) Create(ctx context.Context, in entities.Proposal, user entities.ActingUser) (entities.Proposal, error) {
	logger.L().Info("[proposal][usecase] create start", zap.String("user_id", user.ID), zap.Int64("num", in.Num))
	if err := validateRequired(in); err != nil {
		return entities.Proposal{}, err
	}

	var saved entities.Proposal
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		now := u.now()
		p := in
		p.ID = uuid.NewString()
		p.Status = entities.ProposalStatusInProgress
		p.LeadID = strings.TrimSpace(p.LeadID)
		p.CreatedBy = user.ID
		p.CreatedAt = now
		p.UpdatedAt = now
		p.DeletedAt = nil
		p.ValidityDate = nil
		p.SalesOrder = nil

		if err := u.assignNumber(ctx, &p, now); err != nil {
			return err
		}

		p = wireOwnership(p, uuid.NewString(), uuid.NewString())
		if err := u.prepareChildren(ctx, &p, user); err != nil {
			return err
		}

		if _, err := u.repos.Proposals.Create(ctx, p.Root()); err != nil {
			return fmt.Errorf("create proposal root: %w", err)
		}
		if err := u.persistChildren(ctx, p, entities.Proposal{}); err != nil {
			return err
		}

		var err error
		saved, err = u.loader.loadByID(ctx, p.ID)
		return err
	})
	if err != nil {
		return entities.Proposal{}, u.failure("create", err, ErrProposalSaveFailed)
	}

	logger.L().Info("[proposal][usecase] create ok",
		zap.String("proposal_id", saved.ID),
		zap.String("proposal_number", saved.ProposalNumber),
		zap.Int("version", saved.Version),
	)
	u.recordAudit(ctx, saved, entities.AuditOperationCreate, user)
	return saved, nil
}

// Update applies the submitted aggregate to the persisted proposal id.
//
// A Status different from the persisted one is a transition request and must
// pass the status guard. The generated number is never changed.
func (u *ProposalUseCase) Update(ctx context.Context, id string, in entities.Proposal, user entities.ActingUser) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	logger.L().Info("[proposal][usecase] update start",
		zap.String("proposal_id", id),
		zap.String("user_id", user.ID),
		zap.String("requested_status", string(in.Status)),
	)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	if err := validateRequired(in); err != nil {
		return entities.Proposal{}, err
	}

	var (
		saved    entities.Proposal
		previous entities.ProposalStatus
		order    *entities.SalesOrder
	)
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		current, err := u.loader.loadByID(ctx, id)
		if err != nil {
			return fmt.Errorf("load proposal: %w", err)
		}
		if current.ID == "" {
			return ErrProposalNotFound
		}
		if current.IsDeleted() {
			return ErrProposalDeleted
		}
		previous = current.Status

		p := in
		p.ID = current.ID
		p.Num = current.Num
		p.Cod = current.Cod
		p.ProposalNumber = current.ProposalNumber
		p.LeadID = strings.TrimSpace(p.LeadID)
		p.CreatedBy = current.CreatedBy
		p.CreatedAt = current.CreatedAt
		p.DeletedAt = nil
		p.UpdatedAt = u.now()
		if p.Version <= 0 {
			p.Version = current.Version
		}
		// set only by the status guard on entering ON_CUSTOMER_APPROVAL
		p.ValidityDate = current.ValidityDate
		if p.Version != current.Version {
			siblings, err := u.repos.Proposals.ListByNum(ctx, p.Num)
			if err != nil {
				return fmt.Errorf("list proposals by num: %w", err)
			}
			if err := checkDuplicate(siblings, p); err != nil {
				return err
			}
		}

		detailID, vehicleID := uuid.NewString(), uuid.NewString()
		if current.Detail != nil {
			detailID = current.Detail.ID
		}
		if current.DetailVehicle != nil {
			vehicleID = current.DetailVehicle.ID
		}
		p = wireOwnership(p, detailID, vehicleID)
		if err := u.prepareChildren(ctx, &p, user); err != nil {
			return err
		}

		requested := p.Status
		if requested == "" || requested == current.Status {
			p.Status = CoerceUnchanged(current.Status)
		} else if err := u.guard.Guard(ctx, current.Status, requested, &p, user); err != nil {
			return err
		}

		if _, err := u.repos.Proposals.Update(ctx, p.Root()); err != nil {
			return fmt.Errorf("update proposal root: %w", err)
		}
		if err := u.persistChildren(ctx, p, current); err != nil {
			return err
		}

		switch {
		case p.Status == entities.ProposalStatusFinishedWithSale && current.Status != entities.ProposalStatusFinishedWithSale:
			o, err := u.salesOrders.GenerateFromProposal(ctx, p, user)
			if err != nil {
				return err
			}
			order = &o
		case p.SalesOrder != nil && current.SalesOrder != nil &&
			strings.TrimSpace(p.SalesOrder.Classification) != current.SalesOrder.Classification:
			if _, err := u.salesOrders.ChangeClassification(ctx, p.ID, p.SalesOrder.Classification); err != nil {
				return err
			}
		}

		saved, err = u.loader.loadByID(ctx, p.ID)
		return err
	})
	if err != nil {
		return entities.Proposal{}, u.failure("update", err, ErrProposalUpdateFailed)
	}

	logger.L().Info("[proposal][usecase] update ok",
		zap.String("proposal_id", saved.ID),
		zap.String("from_status", string(previous)),
		zap.String("to_status", string(saved.Status)),
	)
	u.recordAudit(ctx, saved, entities.AuditOperationUpdate, user)
	if order != nil {
		saved = u.openSalesOrderIssue(ctx, saved, *order, user)
	}
	return saved, nil
}

// Delete soft deletes a proposal that has not generated a sales order.
func (u *ProposalUseCase) Delete(ctx context.Context, id string, user entities.ActingUser) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProposalID
	}

	var deleted entities.Proposal
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		current, err := u.loader.loadByID(ctx, id)
		if err != nil {
			return fmt.Errorf("load proposal: %w", err)
		}
		if current.ID == "" {
			return ErrProposalNotFound
		}
		if current.IsDeleted() {
			return ErrProposalDeleted
		}
		if current.SalesOrder != nil {
			return ErrProposalHasSalesOrder
		}

		now := u.now()
		current.DeletedAt = &now
		current.UpdatedAt = now
		if _, err := u.repos.Proposals.Update(ctx, current.Root()); err != nil {
			return fmt.Errorf("soft delete proposal: %w", err)
		}
		deleted = current
		return nil
	})
	if err != nil {
		return u.failure("delete", err, ErrProposalDeleteFailed)
	}

	logger.L().Info("[proposal][usecase] delete ok", zap.String("proposal_id", id), zap.String("user_id", user.ID))
	u.recordAudit(ctx, deleted, entities.AuditOperationDelete, user)
	return nil
}

// GetAggregate loads the full proposal with every child collection and the
// person data of each associated person.
func (u *ProposalUseCase) GetAggregate(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.loader.loadByID(ctx, id)
	if err != nil {
		logger.L().Error("[proposal][usecase] load failed", zap.String("proposal_id", id), zap.Error(err))
		return entities.Proposal{}, ErrProposalSearchFailed
	}
	if p.ID == "" || p.IsDeleted() {
		return entities.Proposal{}, ErrProposalNotFound
	}

	for i, link := range p.Persons {
		person, err := u.persons.GetByID(ctx, link.PersonID)
		if err != nil {
			logger.L().Error("[proposal][usecase] load person failed", zap.String("person_id", link.PersonID), zap.Error(err))
			return entities.Proposal{}, ErrProposalSearchFailed
		}
		if person.ID != "" {
			p.Persons[i].Person = &person
		}
	}
	return p, nil
}

// Search lists non-deleted proposals matching filter, each with its detail.
func (u *ProposalUseCase) Search(ctx context.Context, filter entities.ProposalFilter) ([]entities.Proposal, error) {
	filter.SellerID = strings.TrimSpace(filter.SellerID)
	filter.LeadID = strings.TrimSpace(filter.LeadID)
	filter.ProposalNumber = strings.TrimSpace(filter.ProposalNumber)

	found, err := u.repos.Proposals.Search(ctx, filter)
	if err != nil {
		logger.L().Error("[proposal][usecase] search failed", zap.Error(err))
		return nil, ErrProposalSearchFailed
	}

	out := make([]entities.Proposal, 0, len(found))
	for _, p := range found {
		if p.IsDeleted() {
			continue
		}
		detail, err := u.repos.Details.GetByProposalID(ctx, p.ID)
		if err != nil {
			logger.L().Error("[proposal][usecase] load detail failed", zap.String("proposal_id", p.ID), zap.Error(err))
			return nil, ErrProposalSearchFailed
		}
		if filter.SellerID != "" && detail.SellerID != filter.SellerID {
			continue
		}
		if detail.ID != "" {
			p.Detail = &detail
		}
		out = append(out, p)
	}
	return out, nil
}

func (u *ProposalUseCase) assignNumber(ctx context.Context, p *entities.Proposal, now time.Time) error {
	if p.Num == 0 {
		n, err := u.numbers.Next(ctx, now)
		if err != nil {
			return err
		}
		p.Num, p.Cod, p.ProposalNumber, p.Version = n.Num, n.Cod, n.Formatted, 1
		return nil
	}

	if p.Version <= 0 {
		return ErrProposalInvalidVersion
	}
	siblings, err := u.repos.Proposals.ListByNum(ctx, p.Num)
	if err != nil {
		return fmt.Errorf("list proposals by num: %w", err)
	}
	var base *entities.Proposal
	for i := range siblings {
		if !siblings[i].IsDeleted() {
			base = &siblings[i]
			break
		}
	}
	if base == nil {
		return ErrProposalNumberUnknown
	}
	p.Cod = base.Cod
	p.ProposalNumber = base.ProposalNumber
	return checkDuplicate(siblings, *p)
}

// prepareChildren persists person data through the person service and
// resolves payment pre-approval before anything is reconciled.
func (u *ProposalUseCase) prepareChildren(ctx context.Context, p *entities.Proposal, user entities.ActingUser) error {
	if p.ImmediateDelivery {
		p.Persons = nil
	}
	for i := range p.Persons {
		link := &p.Persons[i]
		if link.Person == nil {
			continue
		}
		person := *link.Person
		if person.ID == "" {
			person.ID = link.PersonID
		}
		saved, err := u.persons.SaveOrUpdate(ctx, person, user)
		if err != nil {
			return fmt.Errorf("save person: %w", err)
		}
		link.PersonID = saved.ID
		link.Person = &saved
	}

	payments, err := u.payments.ResolvePreApproval(ctx, p.Payments)
	if err != nil {
		return err
	}
	p.Payments = payments
	return nil
}

// persistChildren saves detail and detail-vehicle and reconciles every child
// collection of p against existing.
func (u *ProposalUseCase) persistChildren(ctx context.Context, p, existing entities.Proposal) error {
	if _, err := u.details.Save(ctx, *p.Detail); err != nil {
		return err
	}
	if _, err := u.vehicles.Save(ctx, *p.DetailVehicle); err != nil {
		return err
	}

	if _, err := Reconcile(ctx, existing.Items, p.Items, u.items.Ops()); err != nil {
		return err
	}
	if _, err := Reconcile(ctx, existing.Payments, p.Payments, u.payments.Ops()); err != nil {
		return err
	}
	if _, err := Reconcile(ctx, existing.Persons, p.Persons, u.personLinks.Ops()); err != nil {
		return err
	}
	if _, err := Reconcile(ctx, existing.Commissions, p.Commissions, u.commissions.Ops()); err != nil {
		return err
	}
	if _, err := Reconcile(ctx, existing.Documents, p.Documents, u.documents.Ops()); err != nil {
		return err
	}
	return nil
}

func (u *ProposalUseCase) openSalesOrderIssue(ctx context.Context, p entities.Proposal, order entities.SalesOrder, user entities.ActingUser) entities.Proposal {
	if u.issues == nil {
		return p
	}
	title := fmt.Sprintf("Sales order for proposal %s", p.ProposalNumber)
	fields := map[string]string{
		"proposal_id":     p.ID,
		"proposal_number": p.ProposalNumber,
		"sales_order_id":  order.ID,
		"seller_id":       p.SellerID(),
		"classification":  order.Classification,
	}
	key, err := u.issues.CreateIssue(ctx, title, fields, user)
	if err != nil {
		logger.L().Warn("[proposal][usecase] issue creation failed",
			zap.String("proposal_id", p.ID),
			zap.String("sales_order_id", order.ID),
			zap.Error(err),
		)
		return p
	}
	attached, err := u.salesOrders.AttachIssue(ctx, order, key)
	if err != nil {
		logger.L().Warn("[proposal][usecase] attach issue failed",
			zap.String("sales_order_id", order.ID),
			zap.String("issue_key", key),
			zap.Error(err),
		)
		return p
	}
	p.SalesOrder = &attached
	return p
}

// recordAudit writes the snapshot after commit. Failures are logged only.
func (u *ProposalUseCase) recordAudit(ctx context.Context, p entities.Proposal, op entities.AuditOperation, user entities.ActingUser) {
	if u.audit == nil {
		return
	}
	snapshot, err := json.Marshal(p)
	if err != nil {
		logger.L().Error("[proposal][usecase] audit snapshot failed", zap.String("proposal_id", p.ID), zap.Error(err))
		return
	}
	if err := u.audit.Record(ctx, snapshot, auditEntityProposal, p.ID, op, user); err != nil {
		logger.L().Warn("[proposal][usecase] audit record failed",
			zap.String("proposal_id", p.ID),
			zap.String("operation", string(op)),
			zap.Error(err),
		)
	}
}

// failure keeps business and not-found errors and hides everything else
// behind generic.
func (u *ProposalUseCase) failure(op string, err error, generic error) error {
	var rv *RuleViolation
	if errors.As(err, &rv) {
		logger.L().Info("[proposal][usecase] "+op+" rejected", zap.String("code", rv.Code))
		return rv
	}
	if errors.Is(err, ErrProposalNotFound) || errors.Is(err, ErrInvalidProposalID) {
		return err
	}
	logger.L().Error("[proposal][usecase] "+op+" failed", zap.Error(err))
	return generic
}

func validateRequired(p entities.Proposal) error {
	if p.Detail == nil || p.DetailVehicle == nil {
		return ErrProposalRequiredFields
	}
	return nil
}

// checkDuplicate rejects p when another live proposal shares its number, code
// and version.
func checkDuplicate(siblings []entities.Proposal, p entities.Proposal) error {
	for _, s := range siblings {
		if s.ID == p.ID || s.IsDeleted() {
			continue
		}
		if s.Num == p.Num && s.Cod == p.Cod && s.Version == p.Version {
			return ErrProposalDuplicated
		}
	}
	return nil
}

// wireOwnership returns a copy of p whose children point at p and at the
// given detail and detail-vehicle ids.
func wireOwnership(p entities.Proposal, detailID, vehicleID string) entities.Proposal {
	detail := *p.Detail
	detail.ID = detailID
	detail.ProposalID = p.ID
	p.Detail = &detail

	vehicle := *p.DetailVehicle
	vehicle.ID = vehicleID
	vehicle.ProposalID = p.ID
	vehicle.DetailID = detailID
	p.DetailVehicle = &vehicle

	items := make([]entities.ProposalDetailVehicleItem, len(p.Items))
	for i, it := range p.Items {
		it.ProposalID = p.ID
		it.DetailVehicleID = vehicleID
		items[i] = it
	}
	p.Items = items

	payments := make([]entities.ProposalPayment, len(p.Payments))
	for i, pay := range p.Payments {
		pay.ProposalID = p.ID
		pay.DetailID = detailID
		payments[i] = pay
	}
	p.Payments = payments

	commissions := make([]entities.ProposalCommission, len(p.Commissions))
	for i, c := range p.Commissions {
		c.ProposalID = p.ID
		c.DetailID = detailID
		commissions[i] = c
	}
	p.Commissions = commissions

	persons := make([]entities.ProposalPerson, len(p.Persons))
	for i, link := range p.Persons {
		link.ProposalID = p.ID
		persons[i] = link
	}
	p.Persons = persons

	documents := make([]entities.ProposalDocument, len(p.Documents))
	for i, d := range p.Documents {
		d.ProposalID = p.ID
		documents[i] = d
	}
	p.Documents = documents
	return p
}
