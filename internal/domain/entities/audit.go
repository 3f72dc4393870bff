package entities

import (
	"encoding/json"
	"time"
)

type AuditOperation string

const (
	AuditOperationCreate AuditOperation = "CREATE"
	AuditOperationUpdate AuditOperation = "UPDATE"
	AuditOperationDelete AuditOperation = "DELETE"
)

// AuditRecord keeps the serialized aggregate snapshot written after each
// successful proposal operation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (entity_id-index): entity_id
type AuditRecord struct {
	ID        string          `json:"id"`
	Entity    string          `json:"entity"`
	EntityID  string          `json:"entity_id"`
	Operation AuditOperation  `json:"operation"`
	Snapshot  json.RawMessage `json:"snapshot"`
	UserID    string          `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
}
