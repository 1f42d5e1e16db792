package repositories

import (
	"github.com/tasarim-galerisi/backend/internal/models"
	"gorm.io/gorm"
)

// AuditRepository defines the interface for the administrator audit trail
type AuditRepository interface {
	CreateEntry(entry *models.AuditEntry) error
	GetEntriesByDesignID(designID string) ([]models.AuditEntry, error)
	GetRecentEntries(limit int) ([]models.AuditEntry, error)
}

// PostgresAuditRepository implements AuditRepository for PostgreSQL
type PostgresAuditRepository struct {
	db *gorm.DB
}

// NewPostgresAuditRepository creates a new PostgresAuditRepository
func NewPostgresAuditRepository(db *gorm.DB) *PostgresAuditRepository {
	return &PostgresAuditRepository{db: db}
}

// CreateEntry records an administrator action
func (r *PostgresAuditRepository) CreateEntry(entry *models.AuditEntry) error {
	return r.db.Create(entry).Error
}

// GetEntriesByDesignID retrieves the audit history of a single design
func (r *PostgresAuditRepository) GetEntriesByDesignID(designID string) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	if err := r.db.Where("design_id = ?", designID).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetRecentEntries retrieves the most recent administrator actions
func (r *PostgresAuditRepository) GetRecentEntries(limit int) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
