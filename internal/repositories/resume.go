package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerpilot/internal/models"
)

type ResumeRepository interface {
	Create(document *models.ResumeDocument) error
	FindByID(id uuid.UUID) (*models.ResumeDocument, error)
}

type resumeRepository struct {
	db *gorm.DB
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(document *models.ResumeDocument) error {
	if err := r.db.Create(&document).Error; err != nil {
		return fmt.Errorf("failed to create resume document: %w", err)
	}

	return nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(id uuid.UUID) (*models.ResumeDocument, error) {
	var doc models.ResumeDocument
	if err := r.db.Where("id = ?", id).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("resume document not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find resume document: %w", err)
	}

	return &doc, nil
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}
