package usecase

import (
	"context"
	"errors"
	"testing"

	"concessionaria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestComputeDiscount(t *testing.T) {
	p := newProposal()
	p.DetailVehicle.PriceDiscountAmount = decimal.RequireFromString("1000.50")
	p.DetailVehicle.ProductAmountDiscount = decimal.NewFromInt(250)
	p.Items = append(p.Items, entities.ProposalDetailVehicleItem{ItemID: "x", AmountDiscount: decimal.RequireFromString("49.50")})

	if got := ComputeDiscount(p); !got.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("expected 1300, got %s", got)
	}
	if got := ComputeDiscount(entities.Proposal{}); !got.IsZero() {
		t.Fatalf("expected zero for empty proposal, got %s", got)
	}
}

func TestApplyRulesCheckpoint(t *testing.T) {
	both := entities.ActingUser{Checkpoints: []string{
		entities.CheckpointCommercialApprovalAll,
		entities.CheckpointCommercialApprovalSalesTeam,
	}}
	if got := ApplyRulesCheckpoint(both); !got.All || !got.SalesTeamOnly {
		t.Fatalf("expected both flags, got %+v", got)
	}
	if got := ApplyRulesCheckpoint(plainUser); got.All || got.SalesTeamOnly {
		t.Fatalf("expected no flags, got %+v", got)
	}
}

func TestDiscountRuleSet_Authorize(t *testing.T) {
	ctx := context.Background()
	rules := DiscountRuleSet{}
	view := entities.ProposalApproval{InReviewerTeam: false}
	teamView := entities.ProposalApproval{InReviewerTeam: true}

	cases := []struct {
		name   string
		view   entities.ProposalApproval
		cp     entities.ApprovalCheckpoints
		target entities.ProposalStatus
		deny   bool
	}{
		{"all approves", view, entities.ApprovalCheckpoints{All: true}, entities.ProposalStatusCommercialApproved, false},
		{"team approves own team", teamView, entities.ApprovalCheckpoints{SalesTeamOnly: true}, entities.ProposalStatusCommercialDisapproved, false},
		{"team denied outside team", view, entities.ApprovalCheckpoints{SalesTeamOnly: true}, entities.ProposalStatusCommercialApproved, true},
		{"no checkpoint denied", teamView, entities.ApprovalCheckpoints{}, entities.ProposalStatusCommercialApproved, true},
		{"customer approval always allowed", view, entities.ApprovalCheckpoints{}, entities.ProposalStatusOnCustomerApproval, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := rules.Authorize(ctx, tc.view, tc.cp, tc.target, entities.ProposalStatusInCommercialApproval, plainUser)
			if tc.deny && !errors.Is(err, ErrApprovalNotAuthorized) {
				t.Fatalf("expected ErrApprovalNotAuthorized, got %v", err)
			}
			if !tc.deny && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestApprovalRuleEvaluator_Search(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv(t)
	uc := env.useCase()

	team := mustCreate(t, uc, withDiscount(newProposal(), 3000))
	mustMove(t, uc, team.ID, entities.ProposalStatusInCommercialApproval, sellerUser)

	otherIn := withDiscount(newProposal(), 100)
	otherIn.Detail.SellerID = "s-2"
	other := mustCreate(t, uc, otherIn)
	mustMove(t, uc, other.ID, entities.ProposalStatusInCommercialApproval, sellerUser)

	mustCreate(t, uc, newProposal())

	deleted := mustCreate(t, uc, newProposal())
	mustMove(t, uc, deleted.ID, entities.ProposalStatusInCommercialApproval, sellerUser)
	if err := uc.Delete(ctx, deleted.ID, sellerUser); err != nil {
		t.Fatalf("delete: %v", err)
	}

	approvals := env.approvals()

	t.Run("user without checkpoints sees nothing", func(t *testing.T) {
		got, err := approvals.Search(ctx, plainUser)
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty result, got %+v %v", got, err)
		}
	})

	t.Run("ALL sees every pending proposal", func(t *testing.T) {
		got, err := approvals.Search(ctx, reviewerUser)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 proposals, got %d: %+v", len(got), got)
		}
		byID := map[string]entities.ProposalApproval{}
		for _, v := range got {
			byID[v.ProposalID] = v
		}
		v, ok := byID[team.ID]
		if !ok || !v.Discount.Equal(decimal.NewFromInt(3000)) || !v.RequiresApproval || v.SellerID != "s-1" {
			t.Fatalf("unexpected view: %+v", v)
		}
		if want := testNow.AddDate(0, 0, 30); v.ValidityDate == nil || !v.ValidityDate.Equal(want) {
			t.Fatalf("expected default validity %s, got %v", want, v.ValidityDate)
		}
	})

	t.Run("SALESTEAM sees only its own team", func(t *testing.T) {
		got, err := approvals.Search(ctx, teamLeadUser)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(got) != 1 || got[0].ProposalID != team.ID || !got[0].InReviewerTeam {
			t.Fatalf("expected only the team proposal, got %+v", got)
		}
	})

	t.Run("both checkpoints do not duplicate", func(t *testing.T) {
		both := entities.ActingUser{ID: "u-lead", Checkpoints: []string{
			entities.CheckpointCommercialApprovalAll,
			entities.CheckpointCommercialApprovalSalesTeam,
		}}
		got, err := approvals.Search(ctx, both)
		if err != nil || len(got) != 2 {
			t.Fatalf("expected 2 distinct proposals, got %+v %v", got, err)
		}
	})

	t.Run("invalid days limit", func(t *testing.T) {
		env.config.Set(ConfigProposalDaysLimit, "thirty")
		defer env.config.Set(ConfigProposalDaysLimit, "30")
		if _, err := approvals.Search(ctx, reviewerUser); !errors.Is(err, ErrProposalSearchFailed) {
			t.Fatalf("expected ErrProposalSearchFailed, got %v", err)
		}
	})
}
