package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type PersonRegistry struct {
	rows table[entities.Person]
}

var _ interfaces.IPersonService = (*PersonRegistry)(nil)

func NewPersonRegistry(store *Store) *PersonRegistry {
	return &PersonRegistry{rows: newTable[entities.Person](store, "persons")}
}

func (r *PersonRegistry) SaveOrUpdate(ctx context.Context, p entities.Person, _ entities.ActingUser) (entities.Person, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return p, r.rows.upsert(ctx, p.ID, p)
}

func (r *PersonRegistry) GetByID(_ context.Context, id string) (entities.Person, error) {
	p, _, err := r.rows.get(id)
	return p, err
}

type SellerRegistry struct {
	rows table[entities.Seller]
}

var _ interfaces.ISellerService = (*SellerRegistry)(nil)

func NewSellerRegistry(store *Store) *SellerRegistry {
	return &SellerRegistry{rows: newTable[entities.Seller](store, "sellers")}
}

// Put registers or replaces a seller.
func (r *SellerRegistry) Put(s entities.Seller) error {
	return r.rows.upsert(context.Background(), s.ID, s)
}

func (r *SellerRegistry) GetByID(_ context.Context, id string) (entities.Seller, error) {
	s, _, err := r.rows.get(id)
	return s, err
}

func (r *SellerRegistry) GetByUser(_ context.Context, userID string) (entities.Seller, error) {
	return r.rows.first(func(s entities.Seller) bool { return s.UserID == userID })
}

func (r *SellerRegistry) GetBySalesTeam(_ context.Context, salesTeamID string) ([]entities.Seller, error) {
	return r.rows.filter(func(s entities.Seller) bool {
		for _, id := range s.SalesTeamIDs {
			if id == salesTeamID {
				return true
			}
		}
		return false
	})
}

type ChannelRegistry struct {
	rows table[entities.Channel]
}

var _ interfaces.IChannelService = (*ChannelRegistry)(nil)

func NewChannelRegistry(store *Store) *ChannelRegistry {
	return &ChannelRegistry{rows: newTable[entities.Channel](store, "channels")}
}

func (r *ChannelRegistry) Put(c entities.Channel) error {
	return r.rows.upsert(context.Background(), c.ID, c)
}

func (r *ChannelRegistry) GetByID(_ context.Context, id string) (entities.Channel, error) {
	c, _, err := r.rows.get(id)
	return c, err
}

// Configuration is a fixed key/value configuration provider.
type Configuration struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ interfaces.IConfigurationProvider = (*Configuration)(nil)

func NewConfiguration(values map[string]string) *Configuration {
	c := &Configuration{values: map[string]string{}}
	for k, v := range values {
		c.values[k] = v
	}
	return c
}

func (c *Configuration) Set(key, value string) {
	c.mu.Lock()
	c.values[key] = value
	c.mu.Unlock()
}

func (c *Configuration) GetValue(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key], nil
}

// Sequence is a process-wide counter. It lives outside the Store so a rolled
// back unit of work never hands the same value out twice.
type Sequence struct {
	mu     sync.Mutex
	values map[string]int64
}

var _ interfaces.ISequenceRepository = (*Sequence)(nil)

func NewSequence() *Sequence {
	return &Sequence{values: map[string]int64{}}
}

func (s *Sequence) Next(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name]++
	return s.values[name], nil
}

// AuditLog keeps audit records in memory.
type AuditLog struct {
	rows table[entities.AuditRecord]
	now  func() time.Time
}

var _ interfaces.IAuditSink = (*AuditLog)(nil)

func NewAuditLog(store *Store) *AuditLog {
	return &AuditLog{
		rows: newTable[entities.AuditRecord](store, "audit_logs"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (a *AuditLog) Record(
	ctx context.Context,
	snapshot []byte,
	entity, entityID string,
	operation entities.AuditOperation,
	user entities.ActingUser,
) error {
	rec := entities.AuditRecord{
		ID:        uuid.NewString(),
		Entity:    entity,
		EntityID:  entityID,
		Operation: operation,
		Snapshot:  append([]byte(nil), snapshot...),
		UserID:    user.ID,
		CreatedAt: a.now(),
	}
	if err := a.rows.insert(ctx, rec.ID, rec); err != nil {
		return fmt.Errorf("record audit %s/%s: %w", entity, entityID, err)
	}
	return nil
}

// ListByEntityID returns the audit trail of one entity, oldest first.
func (a *AuditLog) ListByEntityID(_ context.Context, entityID string) ([]entities.AuditRecord, error) {
	out, err := a.rows.filter(func(r entities.AuditRecord) bool { return r.EntityID == entityID })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
