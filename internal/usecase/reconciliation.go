package usecase

import "context"

// ChildOps describes how to reconcile one child-collection type.
//
// Key is the explicit identity of an item. Same compares payloads of two items
// with the same key; when nil every matched item is considered unchanged.
// Update may be nil for types that only support delete/insert.
type ChildOps[T any] struct {
	Key    func(T) string
	Same   func(a, b T) bool
	Insert func(ctx context.Context, item T) error
	Update func(ctx context.Context, item T) error
	Delete func(ctx context.Context, item T) error
}

// ReconcileResult counts the operations applied by Reconcile.
type ReconcileResult struct {
	Deleted  int
	Inserted int
	Updated  int
}

func (r ReconcileResult) Changed() bool {
	return r.Deleted+r.Inserted+r.Updated > 0
}

// ReconcilePlan is the diff between an existing and a desired collection.
type ReconcilePlan[T any] struct {
	ToDelete []T
	ToInsert []T
	ToUpdate []T
}

// PlanReconcile computes the three-way diff by key.
//
// ToUpdate carries the desired payload of items present on both sides whose
// payload differs. Nil slices are treated as empty. When desired repeats a key
// the last occurrence wins.
func PlanReconcile[T any](existing, desired []T, ops ChildOps[T]) ReconcilePlan[T] {
	existingByKey := make(map[string]T, len(existing))
	for _, e := range existing {
		existingByKey[ops.Key(e)] = e
	}

	desiredByKey := make(map[string]T, len(desired))
	desiredOrder := make([]string, 0, len(desired))
	for _, d := range desired {
		k := ops.Key(d)
		if _, seen := desiredByKey[k]; !seen {
			desiredOrder = append(desiredOrder, k)
		}
		desiredByKey[k] = d
	}

	var plan ReconcilePlan[T]
	for _, e := range existing {
		if _, keep := desiredByKey[ops.Key(e)]; !keep {
			plan.ToDelete = append(plan.ToDelete, e)
		}
	}
	for _, k := range desiredOrder {
		d := desiredByKey[k]
		current, exists := existingByKey[k]
		if !exists {
			plan.ToInsert = append(plan.ToInsert, d)
			continue
		}
		if ops.Update == nil {
			continue
		}
		if ops.Same != nil && !ops.Same(current, d) {
			plan.ToUpdate = append(plan.ToUpdate, d)
		}
	}
	return plan
}

// Reconcile makes the persisted collection match desired.
//
// Deletes run first, then inserts, then updates, each through the child's own
// operation. The first failure aborts the remaining work and is returned as-is;
// rolling back what was already applied is the surrounding unit of work's job.
func Reconcile[T any](ctx context.Context, existing, desired []T, ops ChildOps[T]) (ReconcileResult, error) {
	plan := PlanReconcile(existing, desired, ops)
	var res ReconcileResult

	for _, item := range plan.ToDelete {
		if err := ops.Delete(ctx, item); err != nil {
			return res, err
		}
		res.Deleted++
	}
	for _, item := range plan.ToInsert {
		if err := ops.Insert(ctx, item); err != nil {
			return res, err
		}
		res.Inserted++
	}
	for _, item := range plan.ToUpdate {
		if err := ops.Update(ctx, item); err != nil {
			return res, err
		}
		res.Updated++
	}
	return res, nil
}
