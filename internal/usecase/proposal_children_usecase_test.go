package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"concessionaria_xpto/internal/adapter/persistence/memory"
	"concessionaria_xpto/internal/domain/entities"
	mock_interfaces "concessionaria_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestChildValidation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	items := NewProposalItemUseCase(memory.NewProposalItemRepository(store))
	payments := NewProposalPaymentUseCase(memory.NewProposalPaymentRepository(store), nil)
	commissions := NewProposalCommissionUseCase(memory.NewProposalCommissionRepository(store))
	persons := NewProposalPersonUseCase(memory.NewProposalPersonRepository(store))
	documents := NewProposalDocumentUseCase(memory.NewProposalDocumentRepository(store))

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"item without id", func() error {
			return items.Insert(ctx, entities.ProposalDetailVehicleItem{ProposalID: "p-1", DetailVehicleID: "dv-1", ItemID: "  "})
		}, ErrInvalidItem},
		{"item with negative discount", func() error {
			return items.Insert(ctx, entities.ProposalDetailVehicleItem{ProposalID: "p-1", DetailVehicleID: "dv-1", ItemID: "i", AmountDiscount: decimal.NewFromInt(-1)})
		}, ErrInvalidItem},
		{"payment without method", func() error {
			return payments.Insert(ctx, entities.ProposalPayment{ProposalID: "p-1", DetailID: "d-1"})
		}, ErrInvalidPayment},
		{"commission with zero amount", func() error {
			return commissions.Insert(ctx, entities.ProposalCommission{ProposalID: "p-1", DetailID: "d-1", PartnerPersonID: "pp-1"})
		}, ErrInvalidCommission},
		{"person with unknown role", func() error {
			return persons.Insert(ctx, entities.ProposalPerson{ProposalID: "p-1", PersonID: "c-1", Role: "OWNER"})
		}, ErrInvalidPerson},
		{"document without id", func() error {
			return documents.Insert(ctx, entities.ProposalDocument{ProposalID: "p-1"})
		}, ErrInvalidDocument},
		{"valid item", func() error {
			return items.Insert(ctx, entities.ProposalDetailVehicleItem{ProposalID: "p-1", DetailVehicleID: "dv-1", ItemID: " mat ", Amount: decimal.NewFromInt(300)})
		}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			if tc.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	got, err := items.List(ctx, "p-1")
	if err != nil || len(got) != 1 || got[0].ItemID != "mat" {
		t.Fatalf("expected the trimmed item to be stored, got %+v %v", got, err)
	}
	if documents.Ops().Update != nil {
		t.Fatalf("documents must be insert/delete only")
	}
}

func TestProposalPaymentUseCase_ResolvePreApproval(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewProposalPaymentUseCase(memory.NewProposalPaymentRepository(memory.NewStore()), gateway)

	in := []entities.ProposalPayment{
		{PaymentMethodID: "pix", ProviderPaymentID: " 1001 "},
		{PaymentMethodID: "card", ProviderPaymentID: "1002", PreApproved: true},
		{PaymentMethodID: "cash", PreApproved: true},
	}

	t.Run("derives pre approval from provider status", func(t *testing.T) {
		gateway.EXPECT().GetPaymentStatus(gomock.Any(), "1001").Return("approved", nil)
		gateway.EXPECT().GetPaymentStatus(gomock.Any(), "1002").Return("rejected", nil)

		out, err := uc.ResolvePreApproval(ctx, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out[0].PreApproved || out[0].ProviderPaymentID != "1001" {
			t.Fatalf("expected approved payment, got %+v", out[0])
		}
		if out[1].PreApproved {
			t.Fatalf("rejected provider payment must not be pre-approved")
		}
		if !out[2].PreApproved {
			t.Fatalf("payments without provider id are kept as sent")
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		boom := errors.New("timeout")
		gateway.EXPECT().GetPaymentStatus(gomock.Any(), "1001").Return("", boom)
		if _, err := uc.ResolvePreApproval(ctx, in); !errors.Is(err, boom) {
			t.Fatalf("expected wrapped provider error, got %v", err)
		}
	})
}

func TestProposalDetailUseCase_Save(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channels := mock_interfaces.NewMockIChannelService(ctrl)
	sellers := mock_interfaces.NewMockISellerService(ctrl)
	uc := NewProposalDetailUseCase(memory.NewProposalDetailRepository(memory.NewStore()), channels, sellers)

	channels.EXPECT().GetByID(gomock.Any(), "ch-1").Return(entities.Channel{ID: "ch-1"}, nil).AnyTimes()
	channels.EXPECT().GetByID(gomock.Any(), "ch-x").Return(entities.Channel{}, nil).AnyTimes()
	sellers.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Seller{ID: "s-1"}, nil).AnyTimes()

	if _, err := uc.Save(ctx, entities.ProposalDetail{ProposalID: "p-1", SellerID: "s-1"}); !errors.Is(err, ErrProposalChannelRequired) {
		t.Fatalf("expected ErrProposalChannelRequired, got %v", err)
	}
	if _, err := uc.Save(ctx, entities.ProposalDetail{ProposalID: "p-1", ChannelID: "ch-x", SellerID: "s-1"}); !errors.Is(err, ErrProposalChannelRequired) {
		t.Fatalf("unknown channel: expected ErrProposalChannelRequired, got %v", err)
	}

	first, err := uc.Save(ctx, entities.ProposalDetail{ProposalID: "p-1", ChannelID: "ch-1", SellerID: "s-1"})
	if err != nil || first.ID == "" {
		t.Fatalf("create: %+v %v", first, err)
	}
	again, err := uc.Save(ctx, entities.ProposalDetail{ProposalID: "p-1", ChannelID: " ch-1 ", SellerID: "s-1", InternSellerID: "s-9"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if again.ID != first.ID || again.InternSellerID != "s-9" {
		t.Fatalf("detail must keep its id on update, got %+v", again)
	}
}

func TestProposalDetailVehicleUseCase_Save(t *testing.T) {
	ctx := context.Background()
	uc := NewProposalDetailVehicleUseCase(memory.NewProposalDetailVehicleRepository(memory.NewStore()))

	base := entities.ProposalDetailVehicle{ProposalID: "p-1", DetailID: "d-1", VehicleID: "v-1", ProductPriceID: "pp-1", ProductPrice: decimal.NewFromInt(90000)}

	noVehicle := base
	noVehicle.VehicleID = ""
	if _, err := uc.Save(ctx, noVehicle); !errors.Is(err, ErrProposalVehicleRequired) {
		t.Fatalf("expected ErrProposalVehicleRequired, got %v", err)
	}
	negative := base
	negative.PriceDiscountAmount = decimal.NewFromInt(-5)
	if _, err := uc.Save(ctx, negative); !errors.Is(err, ErrProposalInvalidDiscount) {
		t.Fatalf("expected ErrProposalInvalidDiscount, got %v", err)
	}

	future := base
	future.FutureDelivery = true
	saved, err := uc.Save(ctx, future)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.VehicleID != "" {
		t.Fatalf("future delivery must drop the vehicle, got %q", saved.VehicleID)
	}
}

func TestSalesOrderUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewSalesOrderUseCase(memory.NewSalesOrderRepository(memory.NewStore()))
	uc.now = func() time.Time { return testNow }

	p := entities.Proposal{ID: "p-1", SalesOrder: &entities.SalesOrder{Classification: " retail "}}
	order, err := uc.GenerateFromProposal(ctx, p, sellerUser)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if order.Status != entities.SalesOrderStatusValidationBackoffice || order.Classification != "retail" || order.OwnerUserID != sellerUser.ID {
		t.Fatalf("unexpected order: %+v", order)
	}
	if _, err := uc.GenerateFromProposal(ctx, p, sellerUser); !errors.Is(err, ErrSalesOrderAlreadyGenerated) {
		t.Fatalf("expected ErrSalesOrderAlreadyGenerated, got %v", err)
	}

	changed, err := uc.ChangeClassification(ctx, "p-1", "fleet")
	if err != nil || changed.Classification != "fleet" {
		t.Fatalf("change classification: %+v %v", changed, err)
	}

	withIssue, err := uc.AttachIssue(ctx, changed, " SO-7 ")
	if err != nil || withIssue.IssueKey != "SO-7" {
		t.Fatalf("attach issue: %+v %v", withIssue, err)
	}

	if _, err := uc.GetByProposalID(ctx, "p-2"); !errors.Is(err, ErrSalesOrderNotFound) {
		t.Fatalf("expected ErrSalesOrderNotFound, got %v", err)
	}
	if _, err := uc.GetByProposalID(ctx, " "); !errors.Is(err, ErrInvalidProposalID) {
		t.Fatalf("expected ErrInvalidProposalID, got %v", err)
	}
}
