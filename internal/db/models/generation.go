// Package models contains database model definitions.
package models

import (
	"time"
)

// Generation records one generated batch. Passwords themselves are never stored.
type Generation struct {
	// ID is the unique identifier of the record.
	ID uint64 `gorm:"primaryKey"`
	// CreatedAt is the time of generation (managed by GORM).
	CreatedAt time.Time `gorm:"index"`
	// Length is the number of characters per password.
	Length int `gorm:"not null"`
	// Count is the number of passwords in the batch.
	Count int `gorm:"not null"`
	// CharsetSize is the number of candidate characters.
	CharsetSize int `gorm:"not null"`
	// NoRepeat tells whether characters were pairwise distinct.
	NoRepeat bool
	// EntropyBits is the estimated strength of each password.
	EntropyBits float64
	// Algorithm names the stream used.
	Algorithm string `gorm:"size:20;not null"`
	// Sinks lists where the passwords went, e.g. "stdout" or "clipboard,file".
	Sinks string `gorm:"size:64"`
}
