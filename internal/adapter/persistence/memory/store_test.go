package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"concessionaria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestUnitOfWork_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("commit keeps writes", func(t *testing.T) {
		store := NewStore()
		repo := NewProposalRepository(store)
		uow := NewUnitOfWork(store)

		err := uow.Do(ctx, func(ctx context.Context) error {
			_, err := repo.Create(ctx, entities.Proposal{ID: "p-1", Status: entities.ProposalStatusInProgress})
			return err
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := repo.GetByID(ctx, "p-1")
		if got.ID != "p-1" {
			t.Fatalf("expected committed proposal, got %+v", got)
		}
	})

	t.Run("error restores the rows it wrote", func(t *testing.T) {
		store := NewStore()
		repo := NewProposalRepository(store)
		items := NewProposalItemRepository(store)
		uow := NewUnitOfWork(store)

		if _, err := repo.Create(ctx, entities.Proposal{ID: "p-1", Version: 1}); err != nil {
			t.Fatalf("seed: %v", err)
		}

		boom := errors.New("boom")
		err := uow.Do(ctx, func(ctx context.Context) error {
			if _, err := repo.Update(ctx, entities.Proposal{ID: "p-1", Version: 2}); err != nil {
				return err
			}
			if err := items.Create(ctx, entities.ProposalDetailVehicleItem{ProposalID: "p-1", DetailVehicleID: "dv", ItemID: "a"}); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}

		got, _ := repo.GetByID(ctx, "p-1")
		if got.Version != 1 {
			t.Fatalf("expected version 1 after rollback, got %d", got.Version)
		}
		left, _ := items.ListByProposalID(ctx, "p-1")
		if len(left) != 0 {
			t.Fatalf("expected no items after rollback, got %v", left)
		}
	})

	t.Run("rollback keeps writes made outside the unit", func(t *testing.T) {
		store := NewStore()
		orders := NewSalesOrderRepository(store)
		items := NewProposalItemRepository(store)
		uow := NewUnitOfWork(store)

		kept := entities.ProposalDetailVehicleItem{ProposalID: "p-1", DetailVehicleID: "dv", ItemID: "kept"}
		if err := items.Create(ctx, kept); err != nil {
			t.Fatalf("seed: %v", err)
		}
		order, err := orders.Create(ctx, entities.SalesOrder{ID: "so-1", ProposalID: "p-9"})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}

		boom := errors.New("boom")
		err = uow.Do(ctx, func(txCtx context.Context) error {
			if err := items.Delete(txCtx, kept); err != nil {
				return err
			}
			// another request attaching an issue while the unit runs
			order.IssueKey = "SO-7"
			if _, err := orders.Update(ctx, order); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}

		got, _ := orders.GetByProposalID(ctx, "p-9")
		if got.IssueKey != "SO-7" {
			t.Fatalf("write outside the unit was lost: %+v", got)
		}
		left, _ := items.ListByProposalID(ctx, "p-1")
		if len(left) != 1 || left[0].ItemID != "kept" {
			t.Fatalf("deleted row must come back after rollback, got %+v", left)
		}
	})

	t.Run("nested call joins the outer unit", func(t *testing.T) {
		store := NewStore()
		repo := NewProposalRepository(store)
		uow := NewUnitOfWork(store)

		err := uow.Do(ctx, func(ctx context.Context) error {
			if err := uow.Do(ctx, func(ctx context.Context) error {
				_, err := repo.Create(ctx, entities.Proposal{ID: "inner"})
				return err
			}); err != nil {
				return err
			}
			return errors.New("outer failed")
		})
		if err == nil {
			t.Fatalf("expected error")
		}
		if got, _ := repo.GetByID(ctx, "inner"); got.ID != "" {
			t.Fatalf("inner write should roll back with the outer unit")
		}
	})
}

func TestChildRepository(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	persons := NewProposalPersonRepository(store)

	link := entities.ProposalPerson{
		ProposalID: "p-1",
		PersonID:   "c-1",
		Role:       entities.ProposalPersonRoleClient,
		Person:     &entities.Person{ID: "c-1", Name: "Ana"},
	}
	if err := persons.Create(ctx, link); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := persons.Create(ctx, link); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	got, err := persons.ListByProposalID(ctx, "p-1")
	if err != nil || len(got) != 1 {
		t.Fatalf("list: %v %v", got, err)
	}
	if got[0].Person != nil {
		t.Fatalf("person payload must not be stored on the link")
	}

	if err := persons.Update(ctx, entities.ProposalPerson{ProposalID: "p-1", PersonID: "other"}); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
	if err := persons.Delete(ctx, link); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := persons.ListByProposalID(ctx, "p-1"); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestStore_RowsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	vehicles := NewProposalDetailVehicleRepository(store)

	v := entities.ProposalDetailVehicle{ID: "dv-1", ProposalID: "p-1", ProductPrice: decimal.NewFromInt(100)}
	if _, err := vehicles.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}
	v.ProductPrice = decimal.NewFromInt(1)

	got, _ := vehicles.GetByProposalID(ctx, "p-1")
	if !got.ProductPrice.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("stored row changed through caller copy: %s", got.ProductPrice)
	}
}

func TestSequence_ConcurrentValuesAreUnique(t *testing.T) {
	seq := NewSequence()
	const n = 50

	var wg sync.WaitGroup
	values := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := seq.Next(context.Background(), "proposal_number")
			if err != nil {
				t.Errorf("next: %v", err)
				return
			}
			values <- v
		}()
	}
	wg.Wait()
	close(values)

	seen := map[int64]bool{}
	for v := range values {
		if seen[v] {
			t.Fatalf("duplicate value %d", v)
		}
		seen[v] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d values, got %d", n, len(seen))
	}
}

func TestSellerRegistry(t *testing.T) {
	ctx := context.Background()
	sellers := NewSellerRegistry(NewStore())
	_ = sellers.Put(entities.Seller{ID: "s-1", UserID: "u-1", SalesTeamIDs: []string{"t-1"}})
	_ = sellers.Put(entities.Seller{ID: "s-2", UserID: "u-2", SalesTeamIDs: []string{"t-1", "t-2"}})
	_ = sellers.Put(entities.Seller{ID: "s-3", UserID: "u-3", SalesTeamIDs: []string{"t-3"}})

	byUser, _ := sellers.GetByUser(ctx, "u-2")
	if byUser.ID != "s-2" {
		t.Fatalf("expected s-2, got %q", byUser.ID)
	}
	team, _ := sellers.GetBySalesTeam(ctx, "t-1")
	if len(team) != 2 || team[0].ID != "s-1" || team[1].ID != "s-2" {
		t.Fatalf("unexpected team members: %+v", team)
	}
	missing, err := sellers.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero seller, got %+v %v", missing, err)
	}
}

func TestAuditLog(t *testing.T) {
	ctx := context.Background()
	log := NewAuditLog(NewStore())
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	log.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	user := entities.ActingUser{ID: "u-1"}

	if err := log.Record(ctx, []byte(`{"v":1}`), "proposal", "p-1", entities.AuditOperationCreate, user); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := log.Record(ctx, []byte(`{"v":2}`), "proposal", "p-1", entities.AuditOperationUpdate, user); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := log.Record(ctx, []byte(`{}`), "proposal", "p-2", entities.AuditOperationCreate, user); err != nil {
		t.Fatalf("record: %v", err)
	}

	trail, err := log.ListByEntityID(ctx, "p-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trail) != 2 || trail[0].Operation != entities.AuditOperationCreate || trail[1].Operation != entities.AuditOperationUpdate {
		t.Fatalf("unexpected trail: %+v", trail)
	}
	if trail[0].UserID != "u-1" || string(trail[1].Snapshot) != `{"v":2}` {
		t.Fatalf("unexpected record contents: %+v", trail[1])
	}
}
