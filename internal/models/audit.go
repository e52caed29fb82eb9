package models

import "time"

const (
	AuditActionLogin           = "LOGIN"
	AuditActionOfficialsUpdate = "OFFICIALS_UPDATE"

	AuditResourceAuth = "auth"
	AuditResourceGame = "game"
)

// AuditLog records who changed what. Before and After hold JSON snapshots.
type AuditLog struct {
	ID         string    `db:"id"`
	ActorID    *string   `db:"actor_id"`
	Action     string    `db:"action"`
	Resource   string    `db:"resource"`
	ResourceID *string   `db:"resource_id"`
	Before     []byte    `db:"before_values"`
	After      []byte    `db:"after_values"`
	ClientIP   string    `db:"client_ip"`
	UserAgent  string    `db:"user_agent"`
	CreatedAt  time.Time `db:"created_at"`
}
