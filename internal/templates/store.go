package templates

import (
	"errors"
	"fmt"

	"trade-journal-go/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a template id does not exist.
var ErrNotFound = errors.New("template not found")

// Store persists entry templates. Templates live outside the ledger core:
// they are applied to a trade input before it is handed to a ledger command.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns all templates ordered by name.
func (s *Store) List() ([]models.Template, error) {
	var tpls []models.Template
	if err := s.db.Order("name asc").Find(&tpls).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return tpls, nil
}

// Get returns a single template by id.
func (s *Store) Get(id uint) (models.Template, error) {
	var tpl models.Template
	if err := s.db.First(&tpl, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Template{}, ErrNotFound
		}
		return models.Template{}, fmt.Errorf("failed to get template %d: %w", id, err)
	}
	return tpl, nil
}

// Create stores a new template and returns it with its assigned id.
func (s *Store) Create(tpl models.Template) (models.Template, error) {
	if err := s.db.Create(&tpl).Error; err != nil {
		return models.Template{}, fmt.Errorf("failed to create template: %w", err)
	}
	return tpl, nil
}

// Delete removes a template by id.
func (s *Store) Delete(id uint) error {
	res := s.db.Delete(&models.Template{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete template %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
