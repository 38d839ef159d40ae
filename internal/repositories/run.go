package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerpilot/internal/models"
)

type RunRepository interface {
	Create(run *models.GenerationRun) error
	FindByID(id uuid.UUID) (*models.GenerationRun, error)
	FindRecent(limit int) ([]models.GenerationRun, error)
}

type runRepository struct {
	db *gorm.DB
}

// Create implements RunRepository.
func (r *runRepository) Create(run *models.GenerationRun) error {
	if err := r.db.Create(&run).Error; err != nil {
		return fmt.Errorf("failed to create generation run: %w", err)
	}

	return nil
}

// FindByID implements RunRepository.
func (r *runRepository) FindByID(id uuid.UUID) (*models.GenerationRun, error) {
	var run models.GenerationRun
	if err := r.db.Where("id = ?", id).First(&run).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("generation run not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find generation run: %w", err)
	}

	return &run, nil
}

// FindRecent implements RunRepository.
func (r *runRepository) FindRecent(limit int) ([]models.GenerationRun, error) {
	var runs []models.GenerationRun
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}

	return runs, nil
}

func NewRunRepository(db *gorm.DB) RunRepository {
	return &runRepository{db: db}
}
