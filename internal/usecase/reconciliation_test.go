package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type row struct {
	id  string
	val int
}

// recorder applies reconcile operations to an in-memory map and keeps a log.
type recorder struct {
	rows    map[string]row
	log     []string
	failOn  string
	failErr error
}

func newRecorder(existing ...row) *recorder {
	r := &recorder{rows: map[string]row{}}
	for _, e := range existing {
		r.rows[e.id] = e
	}
	return r
}

func (r *recorder) step(op string, item row) error {
	if r.failOn == op+":"+item.id {
		return r.failErr
	}
	r.log = append(r.log, op+":"+item.id)
	switch op {
	case "delete":
		delete(r.rows, item.id)
	default:
		r.rows[item.id] = item
	}
	return nil
}

func (r *recorder) ops() ChildOps[row] {
	return ChildOps[row]{
		Key:    func(x row) string { return x.id },
		Same:   func(a, b row) bool { return a == b },
		Insert: func(_ context.Context, x row) error { return r.step("insert", x) },
		Update: func(_ context.Context, x row) error { return r.step("update", x) },
		Delete: func(_ context.Context, x row) error { return r.step("delete", x) },
	}
}

func (r *recorder) current() []row {
	out := make([]row, 0, len(r.rows))
	for _, x := range r.rows {
		out = append(out, x)
	}
	return out
}

func TestReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces A,B with B,C", func(t *testing.T) {
		a, b, c := row{"A", 1}, row{"B", 2}, row{"C", 3}
		rec := newRecorder(a, b)

		res, err := Reconcile(ctx, []row{a, b}, []row{b, c}, rec.ops())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res != (ReconcileResult{Deleted: 1, Inserted: 1}) {
			t.Fatalf("unexpected result: %+v", res)
		}
		if want := []string{"delete:A", "insert:C"}; !reflect.DeepEqual(rec.log, want) {
			t.Fatalf("expected %v, got %v", want, rec.log)
		}
		if _, ok := rec.rows["A"]; ok || len(rec.rows) != 2 {
			t.Fatalf("unexpected final rows: %v", rec.rows)
		}
	})

	t.Run("second run with same input is a no-op", func(t *testing.T) {
		desired := []row{{"A", 1}, {"B", 5}}
		rec := newRecorder(row{"A", 1}, row{"B", 2}, row{"Z", 9})

		if _, err := Reconcile(ctx, rec.current(), desired, rec.ops()); err != nil {
			t.Fatalf("first run: %v", err)
		}
		rec.log = nil
		res, err := Reconcile(ctx, rec.current(), desired, rec.ops())
		if err != nil {
			t.Fatalf("second run: %v", err)
		}
		if res.Changed() || len(rec.log) != 0 {
			t.Fatalf("expected no operations, got %+v %v", res, rec.log)
		}
	})

	t.Run("changed payload is updated with desired value", func(t *testing.T) {
		rec := newRecorder(row{"A", 1})
		res, err := Reconcile(ctx, []row{{"A", 1}}, []row{{"A", 7}}, rec.ops())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Updated != 1 || rec.rows["A"].val != 7 {
			t.Fatalf("expected update to 7, got %+v %v", res, rec.rows)
		}
	})

	t.Run("empty desired deletes everything", func(t *testing.T) {
		rec := newRecorder(row{"A", 1}, row{"B", 2})
		res, err := Reconcile(ctx, []row{{"A", 1}, {"B", 2}}, nil, rec.ops())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Deleted != 2 || len(rec.rows) != 0 {
			t.Fatalf("expected all deleted, got %+v %v", res, rec.rows)
		}
	})

	t.Run("deletes run before inserts and updates", func(t *testing.T) {
		rec := newRecorder(row{"A", 1}, row{"B", 2})
		_, err := Reconcile(ctx, []row{{"A", 1}, {"B", 2}}, []row{{"B", 3}, {"C", 1}}, rec.ops())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := []string{"delete:A", "insert:C", "update:B"}; !reflect.DeepEqual(rec.log, want) {
			t.Fatalf("expected %v, got %v", want, rec.log)
		}
	})

	t.Run("first failure stops the run", func(t *testing.T) {
		boom := errors.New("boom")
		rec := newRecorder(row{"A", 1})
		rec.failOn, rec.failErr = "insert:B", boom

		res, err := Reconcile(ctx, []row{{"A", 1}}, []row{{"B", 1}, {"C", 1}}, rec.ops())
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if res.Deleted != 1 || res.Inserted != 0 {
			t.Fatalf("unexpected partial result: %+v", res)
		}
		if _, ok := rec.rows["C"]; ok {
			t.Fatalf("C must not be inserted after the failure")
		}
	})

	t.Run("insert-only collections never update", func(t *testing.T) {
		rec := newRecorder(row{"A", 1})
		ops := rec.ops()
		ops.Update = nil

		res, err := Reconcile(ctx, []row{{"A", 1}}, []row{{"A", 2}}, ops)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Changed() {
			t.Fatalf("expected no change, got %+v", res)
		}
	})
}

func TestPlanReconcile_DuplicateKeysLastWins(t *testing.T) {
	plan := PlanReconcile(nil, []row{{"A", 1}, {"A", 2}}, newRecorder().ops())
	if len(plan.ToInsert) != 1 || plan.ToInsert[0].val != 2 {
		t.Fatalf("expected a single insert carrying the last value, got %+v", plan.ToInsert)
	}
}
