package repository

import (
	"context"
	"time"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"
)

const defaultAuditLogsTableName = "audit_logs"

type auditItem struct {
	ID        string `dynamodbav:"id"`
	Entity    string `dynamodbav:"entity"`
	EntityID  string `dynamodbav:"entity_id"`
	Operation string `dynamodbav:"operation"`
	Snapshot  string `dynamodbav:"snapshot"`
	UserID    string `dynamodbav:"user_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditDynamoRepository appends aggregate snapshots to the audit log.
//
// Table requirements:
//   - PK: id (string)
//   - GSI entity_id-index: entity_id (string)
type AuditDynamoRepository struct {
	table dynamoTable
	now   func() time.Time
}

var _ interfaces.IAuditSink = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb DynamoDBAPI) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		table: newDynamoTable(ddb, "AUDIT_LOGS_TABLE", defaultAuditLogsTableName),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *AuditDynamoRepository) Record(
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
		Snapshot:  snapshot,
		UserID:    user.ID,
		CreatedAt: r.now(),
	}
	av, err := attributevalue.MarshalMap(auditItem{
		ID:        rec.ID,
		Entity:    rec.Entity,
		EntityID:  rec.EntityID,
		Operation: string(rec.Operation),
		Snapshot:  string(rec.Snapshot),
		UserID:    rec.UserID,
		CreatedAt: formatTime(rec.CreatedAt),
	})
	if err != nil {
		return err
	}
	return r.table.put(ctx, rec.ID, av, writeCreate)
}

// ListByEntityID returns the audit trail of one entity ordered by id.
func (r *AuditDynamoRepository) ListByEntityID(ctx context.Context, entityID string) ([]entities.AuditRecord, error) {
	raw, err := r.table.queryEq(ctx, "entity_id-index", "entity_id", entityID)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll[auditItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.AuditRecord, 0, len(items))
	for _, it := range items {
		out = append(out, entities.AuditRecord{
			ID:        it.ID,
			Entity:    it.Entity,
			EntityID:  it.EntityID,
			Operation: entities.AuditOperation(it.Operation),
			Snapshot:  []byte(it.Snapshot),
			UserID:    it.UserID,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
