package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "tripbook/internal/config"
	"tripbook/internal/domain/models"
)

type AuditRepository struct {
	DB *sql.DB
}

func (r AuditRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Write persists one audit entry. Old/new snapshots are stored as JSON;
// absent snapshots become the JSON null literal so the column stays valid.
func (r AuditRepository) Write(e models.AuditEntry) error {
	oldStr := "null"
	newStr := "null"
	if e.OldData != nil {
		if b, err := json.Marshal(e.OldData); err == nil {
			oldStr = string(b)
		}
	}
	if e.NewData != nil {
		if b, err := json.Marshal(e.NewData); err == nil {
			newStr = string(b)
		}
	}

	_, err := r.db().Exec(`
		INSERT INTO audit_logs
			(table_name, record_id, operation, actor_type, actor_id, actor_name,
			 old_data, new_data, description, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,NOW())`,
		e.TableName, e.RecordID, string(e.Operation),
		string(e.ActorType), e.ActorID, e.ActorName,
		oldStr, newStr, e.Description,
	)
	return err
}
