// Package memory keeps every proposal table in process memory.
//
// It backs the use case tests and local runs without DynamoDB. Rows are
// stored as JSON so callers never share pointers with the store.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"concessionaria_xpto/internal/usecase/interfaces"
)

var (
	ErrDuplicateKey = errors.New("memory: duplicate key")
	ErrRowNotFound  = errors.New("memory: row not found")
)

type rows map[string][]byte

// Store holds all tables. Units of work are serialized by txMu; a failed unit
// of work puts back only the rows it wrote.
type Store struct {
	mu     sync.RWMutex
	txMu   sync.Mutex
	tables map[string]rows
}

func NewStore() *Store {
	return &Store{tables: map[string]rows{}}
}

type txKey struct{}

type undoEntry struct {
	table   string
	id      string
	raw     []byte
	existed bool
}

// memTx records the value each row had before its first write in the unit.
// It is guarded by Store.mu.
type memTx struct {
	seen map[string]bool
	undo []undoEntry
}

func txFrom(ctx context.Context) *memTx {
	tx, _ := ctx.Value(txKey{}).(*memTx)
	return tx
}

func (tx *memTx) remember(table string, tbl rows, id string) {
	k := table + "\x00" + id
	if tx.seen[k] {
		return
	}
	tx.seen[k] = true
	raw, existed := tbl[id]
	tx.undo = append(tx.undo, undoEntry{table: table, id: id, raw: raw, existed: existed})
}

func (s *Store) rollback(tx *memTx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(tx.undo) - 1; i >= 0; i-- {
		e := tx.undo[i]
		tbl, ok := s.tables[e.table]
		if !ok {
			tbl = rows{}
			s.tables[e.table] = tbl
		}
		if e.existed {
			tbl[e.id] = e.raw
		} else {
			delete(tbl, e.id)
		}
	}
}

// UnitOfWork implements interfaces.IUnitOfWork over a Store.
type UnitOfWork struct {
	store *Store
}

var _ interfaces.IUnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFrom(ctx) != nil {
		return fn(ctx)
	}

	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	tx := &memTx{seen: map[string]bool{}}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		u.store.rollback(tx)
		return err
	}
	return nil
}

// table is a typed view over one named table.
type table[T any] struct {
	store *Store
	name  string
}

func newTable[T any](store *Store, name string) table[T] {
	return table[T]{store: store, name: name}
}

func (t table[T]) get(id string) (T, bool, error) {
	var v T
	t.store.mu.RLock()
	raw, ok := t.store.tables[t.name][id]
	t.store.mu.RUnlock()
	if !ok {
		return v, false, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, err
	}
	return v, true, nil
}

func (t table[T]) insert(ctx context.Context, id string, v T) error {
	return t.write(ctx, id, v, func(exists bool) error {
		if exists {
			return ErrDuplicateKey
		}
		return nil
	})
}

func (t table[T]) replace(ctx context.Context, id string, v T) error {
	return t.write(ctx, id, v, func(exists bool) error {
		if !exists {
			return ErrRowNotFound
		}
		return nil
	})
}

func (t table[T]) upsert(ctx context.Context, id string, v T) error {
	return t.write(ctx, id, v, func(bool) error { return nil })
}

func (t table[T]) write(ctx context.Context, id string, v T, check func(exists bool) error) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	tbl, ok := t.store.tables[t.name]
	if !ok {
		tbl = rows{}
		t.store.tables[t.name] = tbl
	}
	_, exists := tbl[id]
	if err := check(exists); err != nil {
		return err
	}
	if tx := txFrom(ctx); tx != nil {
		tx.remember(t.name, tbl, id)
	}
	tbl[id] = raw
	return nil
}

func (t table[T]) delete(ctx context.Context, id string) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	tbl, ok := t.store.tables[t.name]
	if !ok {
		return
	}
	if tx := txFrom(ctx); tx != nil {
		tx.remember(t.name, tbl, id)
	}
	delete(tbl, id)
}

// filter returns the rows accepted by keep, ordered by id.
func (t table[T]) filter(keep func(T) bool) ([]T, error) {
	t.store.mu.RLock()
	tbl := t.store.tables[t.name]
	ids := make([]string, 0, len(tbl))
	for id := range tbl {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	raws := make([][]byte, 0, len(ids))
	for _, id := range ids {
		raws = append(raws, tbl[id])
	}
	t.store.mu.RUnlock()

	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (t table[T]) first(keep func(T) bool) (T, error) {
	var zero T
	all, err := t.filter(keep)
	if err != nil || len(all) == 0 {
		return zero, err
	}
	return all[0], nil
}
