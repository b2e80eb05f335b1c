// Package history records and lists generation metadata.
package history

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pgen-dev/pgen/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrGenerationNil is returned when attempting to record a nil generation.
	ErrGenerationNil = errors.New("generation is nil")
	// ErrInvalidLimit is returned for a list limit below 1.
	ErrInvalidLimit = errors.New("limit must be at least 1")
)

// Record stores a generation.
func Record(db *gorm.DB, g *models.Generation) error {
	if db == nil {
		return ErrDBNil
	}
	if g == nil {
		return ErrGenerationNil
	}

	return db.Create(g).Error
}

// List returns up to limit generations, newest first.
func List(db *gorm.DB, limit int) ([]models.Generation, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	var generations []models.Generation
	result := db.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&generations)
	if result.Error != nil {
		return nil, result.Error
	}

	return generations, nil
}

// Count returns the number of recorded generations.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.Generation{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// Purge deletes every generation and returns how many were removed.
func Purge(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	result := db.Where("1 = 1").Delete(&models.Generation{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
