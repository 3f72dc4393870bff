package usecase

import (
	"context"
	"strings"
	"time"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ISalesOrderUseCase covers the part of the sales order lifecycle driven by proposals.
type ISalesOrderUseCase interface {
	GenerateFromProposal(ctx context.Context, p entities.Proposal, user entities.ActingUser) (entities.SalesOrder, error)
	ChangeClassification(ctx context.Context, proposalID, classification string) (entities.SalesOrder, error)
	AttachIssue(ctx context.Context, order entities.SalesOrder, issueKey string) (entities.SalesOrder, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.SalesOrder, error)
}

type SalesOrderUseCase struct {
	repo interfaces.ISalesOrderRepository
	now  func() time.Time
}

var _ ISalesOrderUseCase = (*SalesOrderUseCase)(nil)

func NewSalesOrderUseCase(repo interfaces.ISalesOrderRepository) *SalesOrderUseCase {
	return &SalesOrderUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// GenerateFromProposal creates the one sales order of a proposal, owned by user
// and waiting for back-office validation.
func (u *SalesOrderUseCase) GenerateFromProposal(ctx context.Context, p entities.Proposal, user entities.ActingUser) (entities.SalesOrder, error) {
	existing, err := u.repo.GetByProposalID(ctx, p.ID)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if existing.ID != "" {
		return entities.SalesOrder{}, ErrSalesOrderAlreadyGenerated
	}

	now := u.now()
	o := entities.SalesOrder{
		ID:          uuid.NewString(),
		ProposalID:  p.ID,
		Status:      entities.SalesOrderStatusValidationBackoffice,
		OwnerUserID: user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.SalesOrder != nil {
		o.Classification = strings.TrimSpace(p.SalesOrder.Classification)
	}
	return u.repo.Create(ctx, o)
}

func (u *SalesOrderUseCase) ChangeClassification(ctx context.Context, proposalID, classification string) (entities.SalesOrder, error) {
	o, err := u.GetByProposalID(ctx, proposalID)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	classification = strings.TrimSpace(classification)
	if o.Classification == classification {
		return o, nil
	}
	o.Classification = classification
	o.UpdatedAt = u.now()
	return u.repo.Update(ctx, o)
}

func (u *SalesOrderUseCase) AttachIssue(ctx context.Context, order entities.SalesOrder, issueKey string) (entities.SalesOrder, error) {
	order.IssueKey = strings.TrimSpace(issueKey)
	order.UpdatedAt = u.now()
	return u.repo.Update(ctx, order)
}

func (u *SalesOrderUseCase) GetByProposalID(ctx context.Context, proposalID string) (entities.SalesOrder, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.SalesOrder{}, ErrInvalidProposalID
	}
	o, err := u.repo.GetByProposalID(ctx, proposalID)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if o.ID == "" {
		return entities.SalesOrder{}, ErrSalesOrderNotFound
	}
	return o, nil
}
