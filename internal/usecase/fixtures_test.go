package usecase

import (
	"context"
	"testing"
	"time"

	"concessionaria_xpto/internal/adapter/persistence/memory"
	"concessionaria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

var (
	sellerUser   = entities.ActingUser{ID: "u-seller", Name: "Seller"}
	reviewerUser = entities.ActingUser{ID: "u-rev", Checkpoints: []string{entities.CheckpointCommercialApprovalAll}}
	teamLeadUser = entities.ActingUser{ID: "u-lead", Checkpoints: []string{entities.CheckpointCommercialApprovalSalesTeam}}
	outsiderUser = entities.ActingUser{ID: "u-out", Checkpoints: []string{entities.CheckpointCommercialApprovalSalesTeam}}
	plainUser    = entities.ActingUser{ID: "u-none"}
)

// testEnv is a proposal use case running on the in-memory store.
type testEnv struct {
	store    *memory.Store
	config   *memory.Configuration
	sellers  *memory.SellerRegistry
	channels *memory.ChannelRegistry
	persons  *memory.PersonRegistry
	audit    *memory.AuditLog
	deps     ProposalDependencies
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	env := &testEnv{
		store: store,
		config: memory.NewConfiguration(map[string]string{
			ConfigProposalNumberFixedLetter:         "B",
			ConfigProposalInitialCodeLetter:         "B",
			ConfigProposalDiscountApprovalThreshold: "0",
			ConfigProposalDaysLimit:                 "30",
		}),
		sellers:  memory.NewSellerRegistry(store),
		channels: memory.NewChannelRegistry(store),
		persons:  memory.NewPersonRegistry(store),
		audit:    memory.NewAuditLog(store),
	}

	for _, c := range []entities.Channel{
		{ID: "ch-store", Name: "Store"},
		{ID: "ch-partner", Name: "Partner", HasPartner: true},
	} {
		if err := env.channels.Put(c); err != nil {
			t.Fatalf("seed channel: %v", err)
		}
	}
	for _, s := range []entities.Seller{
		{ID: "s-1", UserID: "u-seller", SalesTeamIDs: []string{"team-1"}},
		{ID: "s-lead", UserID: "u-lead", SalesTeamIDs: []string{"team-1"}},
		{ID: "s-out", UserID: "u-out", SalesTeamIDs: []string{"team-9"}},
		{ID: "s-2", UserID: "u-other", SalesTeamIDs: []string{"team-9"}},
	} {
		if err := env.sellers.Put(s); err != nil {
			t.Fatalf("seed seller: %v", err)
		}
	}

	env.deps = ProposalDependencies{
		UnitOfWork: memory.NewUnitOfWork(store),
		Repositories: ProposalRepositories{
			Proposals:      memory.NewProposalRepository(store),
			Details:        memory.NewProposalDetailRepository(store),
			DetailVehicles: memory.NewProposalDetailVehicleRepository(store),
			Items:          memory.NewProposalItemRepository(store),
			Payments:       memory.NewProposalPaymentRepository(store),
			Commissions:    memory.NewProposalCommissionRepository(store),
			Persons:        memory.NewProposalPersonRepository(store),
			Documents:      memory.NewProposalDocumentRepository(store),
			SalesOrders:    memory.NewSalesOrderRepository(store),
		},
		Sequence: memory.NewSequence(),
		Config:   env.config,
		Persons:  env.persons,
		Sellers:  env.sellers,
		Channels: env.channels,
		Audit:    env.audit,
	}
	return env
}

// useCase builds the proposal use case on a fixed clock.
func (e *testEnv) useCase() *ProposalUseCase {
	uc := NewProposalUseCase(e.deps)
	clock := func() time.Time { return testNow }
	uc.now = clock
	uc.guard.now = clock
	uc.salesOrders.now = clock
	return uc
}

func (e *testEnv) approvals() *ApprovalRuleEvaluator {
	return NewApprovalRuleEvaluator(e.deps.Sellers, e.deps.Config, DiscountRuleSet{}, e.deps.Repositories)
}

func strPtr(s string) *string { return &s }

func client() entities.Person {
	return entities.Person{
		Name:           "Ana Souza",
		Classification: entities.PersonClassificationPF,
		CPF:            strPtr("12345678900"),
		Address:        &entities.Address{Street: "Rua A", Number: "10", City: "São Paulo", State: "SP", ZipCode: "01000-000"},
	}
}

// newProposal is a valid submitted aggregate with one item, one payment and
// one client. It carries no discount.
func newProposal() entities.Proposal {
	c := client()
	return entities.Proposal{
		LeadID: "lead-1",
		Detail: &entities.ProposalDetail{ChannelID: "ch-store", SellerID: "s-1"},
		DetailVehicle: &entities.ProposalDetailVehicle{
			VehicleID:      "veh-1",
			ProductPriceID: "price-1",
			ProductPrice:   decimal.NewFromInt(120000),
			AgreedTermDays: 10,
		},
		Items:    []entities.ProposalDetailVehicleItem{{ItemID: "mats", Amount: decimal.NewFromInt(300)}},
		Payments: []entities.ProposalPayment{{PaymentMethodID: "financing", Amount: decimal.NewFromInt(120300)}},
		Persons:  []entities.ProposalPerson{{Role: entities.ProposalPersonRoleClient, Person: &c}},
	}
}

func withDiscount(p entities.Proposal, amount int64) entities.Proposal {
	v := *p.DetailVehicle
	v.PriceDiscountAmount = decimal.NewFromInt(amount)
	p.DetailVehicle = &v
	return p
}

func withStatus(p entities.Proposal, s entities.ProposalStatus) entities.Proposal {
	p.Status = s
	return p
}

// mustCreate creates newProposal-like input and fails the test on error.
func mustCreate(t *testing.T, uc *ProposalUseCase, in entities.Proposal) entities.Proposal {
	t.Helper()
	p, err := uc.Create(context.Background(), in, sellerUser)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return p
}

// mustMove loads id and resubmits it with status s.
func mustMove(t *testing.T, uc *ProposalUseCase, id string, s entities.ProposalStatus, user entities.ActingUser) entities.Proposal {
	t.Helper()
	current, err := uc.GetAggregate(context.Background(), id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	p, err := uc.Update(context.Background(), id, withStatus(current, s), user)
	if err != nil {
		t.Fatalf("move %s to %s: %v", id, s, err)
	}
	return p
}
