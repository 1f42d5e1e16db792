package models

import "gorm.io/gorm"

// Audit actions recorded for administrator operations
const (
	AuditActionDelete  = "delete"
	AuditActionRestore = "restore"
	AuditActionPurge   = "purge"
)

// AuditEntry records an administrator action in PostgreSQL
type AuditEntry struct {
	gorm.Model
	Action     string `json:"action" gorm:"index"`
	DesignID   string `json:"design_id" gorm:"index"`
	ActorEmail string `json:"actor_email"`
	Detail     string `json:"detail"`
}
