package usecase

import (
	"context"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/infrastructure/logger"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ComputeDiscount sums the vehicle price discounts and every item discount.
// It only reads the aggregate.
func ComputeDiscount(p entities.Proposal) decimal.Decimal {
	total := decimal.Zero
	if p.DetailVehicle != nil {
		total = total.Add(p.DetailVehicle.PriceDiscountAmount).Add(p.DetailVehicle.ProductAmountDiscount)
	}
	for _, it := range p.Items {
		total = total.Add(it.AmountDiscount)
	}
	return total
}

// ApplyRulesCheckpoint derives the approval flags from the user's checkpoints.
func ApplyRulesCheckpoint(user entities.ActingUser) entities.ApprovalCheckpoints {
	return entities.ApprovalCheckpoints{
		All:           user.HasCheckpoint(entities.CheckpointCommercialApprovalAll),
		SalesTeamOnly: user.HasCheckpoint(entities.CheckpointCommercialApprovalSalesTeam),
	}
}

// IApprovalUseCase exposes commercial approval queries for reviewers.
type IApprovalUseCase interface {
	Search(ctx context.Context, user entities.ActingUser) ([]entities.ProposalApproval, error)
}

// ApprovalRuleEvaluator decides whether a commercial approval action is
// authorized and whether a proposal discount needs approval.
type ApprovalRuleEvaluator struct {
	sellers interfaces.ISellerService
	config  interfaces.IConfigurationProvider
	rules   interfaces.IApprovalRuleSet
	loader  *proposalLoader
}

var _ IApprovalUseCase = (*ApprovalRuleEvaluator)(nil)

func NewApprovalRuleEvaluator(
	sellers interfaces.ISellerService,
	config interfaces.IConfigurationProvider,
	rules interfaces.IApprovalRuleSet,
	repos ProposalRepositories,
) *ApprovalRuleEvaluator {
	return &ApprovalRuleEvaluator{
		sellers: sellers,
		config:  config,
		rules:   rules,
		loader:  newProposalLoader(repos),
	}
}

// BuildView computes a fresh approval view of p for the reviewer.
func (e *ApprovalRuleEvaluator) BuildView(ctx context.Context, p entities.Proposal, reviewer entities.ActingUser) (entities.ProposalApproval, error) {
	discount := ComputeDiscount(p)
	threshold, err := configDecimal(ctx, e.config, ConfigProposalDiscountApprovalThreshold, decimal.Zero)
	if err != nil {
		return entities.ProposalApproval{}, err
	}
	inTeam, err := e.inReviewerTeam(ctx, p.SellerID(), reviewer)
	if err != nil {
		return entities.ProposalApproval{}, err
	}
	return entities.ProposalApproval{
		ProposalID:       p.ID,
		ProposalNumber:   p.ProposalNumber,
		Status:           p.Status,
		SellerID:         p.SellerID(),
		Discount:         discount,
		RequiresApproval: discount.GreaterThan(threshold),
		InReviewerTeam:   inTeam,
		ValidityDate:     p.ValidityDate,
		CreatedAt:        p.CreatedAt,
	}, nil
}

// ValidateRuleApproval asks the rule set whether user may move the proposal
// behind view from previous into target.
func (e *ApprovalRuleEvaluator) ValidateRuleApproval(
	ctx context.Context,
	view entities.ProposalApproval,
	target, previous entities.ProposalStatus,
	user entities.ActingUser,
) error {
	return e.rules.Authorize(ctx, view, ApplyRulesCheckpoint(user), target, previous, user)
}

// Search lists proposals waiting for commercial approval that user may review.
//
// Reviewers with the ALL checkpoint see every proposal. Reviewers with the
// SALESTEAM checkpoint get the proposals of their own teams' sellers appended.
func (e *ApprovalRuleEvaluator) Search(ctx context.Context, user entities.ActingUser) ([]entities.ProposalApproval, error) {
	flags := ApplyRulesCheckpoint(user)
	if !flags.All && !flags.SalesTeamOnly {
		return []entities.ProposalApproval{}, nil
	}

	daysLimit, err := configInt(ctx, e.config, ConfigProposalDaysLimit, defaultProposalDaysLimit)
	if err != nil {
		logger.L().Error("[approval][usecase] invalid days limit", zap.Error(err))
		return nil, ErrProposalSearchFailed
	}

	proposals, err := e.loader.repos.Proposals.ListByStatus(ctx, entities.ProposalStatusInCommercialApproval)
	if err != nil {
		logger.L().Error("[approval][usecase] list by status failed", zap.Error(err))
		return nil, ErrProposalSearchFailed
	}

	out := make([]entities.ProposalApproval, 0, len(proposals))
	seen := make(map[string]struct{}, len(proposals))

	add := func(p entities.Proposal) error {
		agg, err := e.loader.load(ctx, p)
		if err != nil {
			return err
		}
		view, err := e.BuildView(ctx, agg, user)
		if err != nil {
			return err
		}
		if view.ValidityDate == nil {
			v := view.CreatedAt.AddDate(0, 0, daysLimit)
			view.ValidityDate = &v
		}
		out = append(out, view)
		seen[p.ID] = struct{}{}
		return nil
	}

	if flags.All {
		for _, p := range proposals {
			if p.IsDeleted() {
				continue
			}
			if err := add(p); err != nil {
				logger.L().Error("[approval][usecase] build view failed", zap.String("proposal_id", p.ID), zap.Error(err))
				return nil, ErrProposalSearchFailed
			}
		}
	}

	if flags.SalesTeamOnly {
		teamSellers, err := e.teamSellerIDs(ctx, user)
		if err != nil {
			logger.L().Error("[approval][usecase] resolve sales team failed", zap.String("user_id", user.ID), zap.Error(err))
			return nil, ErrProposalSearchFailed
		}
		for _, p := range proposals {
			if p.IsDeleted() {
				continue
			}
			if _, dup := seen[p.ID]; dup {
				continue
			}
			detail, err := e.loader.repos.Details.GetByProposalID(ctx, p.ID)
			if err != nil {
				logger.L().Error("[approval][usecase] load detail failed", zap.String("proposal_id", p.ID), zap.Error(err))
				return nil, ErrProposalSearchFailed
			}
			if _, ok := teamSellers[detail.SellerID]; !ok {
				continue
			}
			if err := add(p); err != nil {
				logger.L().Error("[approval][usecase] build view failed", zap.String("proposal_id", p.ID), zap.Error(err))
				return nil, ErrProposalSearchFailed
			}
		}
	}
	return out, nil
}

func (e *ApprovalRuleEvaluator) reviewerTeams(ctx context.Context, reviewer entities.ActingUser) ([]string, error) {
	if reviewer.ID == "" {
		return nil, nil
	}
	seller, err := e.sellers.GetByUser(ctx, reviewer.ID)
	if err != nil {
		return nil, err
	}
	return seller.SalesTeamIDs, nil
}

func (e *ApprovalRuleEvaluator) teamSellerIDs(ctx context.Context, reviewer entities.ActingUser) (map[string]struct{}, error) {
	teams, err := e.reviewerTeams(ctx, reviewer)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{})
	for _, team := range teams {
		sellers, err := e.sellers.GetBySalesTeam(ctx, team)
		if err != nil {
			return nil, err
		}
		for _, s := range sellers {
			ids[s.ID] = struct{}{}
		}
	}
	return ids, nil
}

func (e *ApprovalRuleEvaluator) inReviewerTeam(ctx context.Context, sellerID string, reviewer entities.ActingUser) (bool, error) {
	if sellerID == "" {
		return false, nil
	}
	teams, err := e.reviewerTeams(ctx, reviewer)
	if err != nil || len(teams) == 0 {
		return false, err
	}
	seller, err := e.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return false, err
	}
	for _, t := range teams {
		for _, st := range seller.SalesTeamIDs {
			if t == st {
				return true, nil
			}
		}
	}
	return false, nil
}

// DiscountRuleSet is the default approval rule set.
//
// Commercial approval and disapproval need the ALL checkpoint, or the
// SALESTEAM checkpoint over a proposal sold by the reviewer's own team.
// Sending to the customer is always authorized here; the payment gate lives in
// the status guard.
type DiscountRuleSet struct{}

var _ interfaces.IApprovalRuleSet = DiscountRuleSet{}

func (DiscountRuleSet) Authorize(
	_ context.Context,
	view entities.ProposalApproval,
	checkpoints entities.ApprovalCheckpoints,
	target, _ entities.ProposalStatus,
	_ entities.ActingUser,
) error {
	switch target {
	case entities.ProposalStatusCommercialApproved, entities.ProposalStatusCommercialDisapproved:
		if checkpoints.All {
			return nil
		}
		if checkpoints.SalesTeamOnly && view.InReviewerTeam {
			return nil
		}
		return ErrApprovalNotAuthorized
	}
	return nil
}
