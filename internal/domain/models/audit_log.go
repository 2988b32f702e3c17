package models

import "tripbook/internal/domain"

type AuditOperation string

const (
	AuditInsert AuditOperation = "INSERT"
	AuditUpdate AuditOperation = "UPDATE"
	AuditDelete AuditOperation = "DELETE"
)

// AuditEntry is one row for the audit sink. OldData/NewData are marshalled
// to JSON at write time; either may be nil.
type AuditEntry struct {
	TableName   string           `json:"table_name"`
	RecordID    int64            `json:"record_id"`
	Operation   AuditOperation   `json:"operation"`
	ActorType   domain.ActorType `json:"actor_type"`
	ActorID     int64            `json:"actor_id"`
	ActorName   string           `json:"actor_name"`
	OldData     any              `json:"old_data,omitempty"`
	NewData     any              `json:"new_data,omitempty"`
	Description string           `json:"description"`
}
