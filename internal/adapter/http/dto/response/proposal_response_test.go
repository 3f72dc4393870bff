package response

import (
	"testing"
	"time"

	"concessionaria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromProposal(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Proposal{
		ID:             "p-1",
		Status:         entities.ProposalStatusFinishedWithSale,
		Num:            42,
		Cod:            "A",
		ProposalNumber: "P2410-42A",
		Version:        2,
		CreatedAt:      now,
		Detail:         &entities.ProposalDetail{ID: "d-1", SellerID: "s-1"},
		DetailVehicle:  &entities.ProposalDetailVehicle{ID: "v-1", ProductPrice: decimal.NewFromInt(1000)},
		Payments:       []entities.ProposalPayment{{PaymentMethodID: "pix", Amount: decimal.NewFromInt(10), PreApproved: true}},
		SalesOrder:     &entities.SalesOrder{ID: "so-1", Status: entities.SalesOrderStatusValidationBackoffice, IssueKey: "BO-1"},
	}

	res := FromProposal(p)
	if res.ID != "p-1" || res.Status != "FINISHED_WITH_SALE" || res.ProposalNumber != "P2410-42A" || res.Version != 2 {
		t.Fatalf("unexpected root: %+v", res)
	}
	if res.Detail == nil || res.Detail.SellerID != "s-1" {
		t.Fatalf("unexpected detail: %+v", res.Detail)
	}
	if res.DetailVehicle == nil || !res.DetailVehicle.ProductPrice.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected vehicle: %+v", res.DetailVehicle)
	}
	if len(res.Payments) != 1 || !res.Payments[0].PreApproved {
		t.Fatalf("unexpected payments: %+v", res.Payments)
	}
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %+v", res.Items)
	}
	if res.SalesOrder == nil || res.SalesOrder.IssueKey != "BO-1" || res.SalesOrder.Status != "VALIDATION_BACKOFFICE" {
		t.Fatalf("unexpected sales order: %+v", res.SalesOrder)
	}
}

func TestFromProposalApprovals(t *testing.T) {
	validity := time.Date(2024, 10, 30, 0, 0, 0, 0, time.UTC)
	out := FromProposalApprovals([]entities.ProposalApproval{{
		ProposalID:       "p-1",
		Status:           entities.ProposalStatusInCommercialApproval,
		Discount:         decimal.RequireFromString("250.75"),
		RequiresApproval: true,
		ValidityDate:     &validity,
	}})
	if len(out) != 1 {
		t.Fatalf("expected 1 view, got %d", len(out))
	}
	if out[0].Status != "IN_COMMERCIAL_APPROVAL" || !out[0].RequiresApproval || !out[0].ValidityDate.Equal(validity) {
		t.Fatalf("unexpected view: %+v", out[0])
	}
	if !out[0].Discount.Equal(decimal.RequireFromString("250.75")) {
		t.Fatalf("unexpected discount: %s", out[0].Discount)
	}
}
