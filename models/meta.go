package models

import (
	"time"

	"github.com/google/uuid"
)

// Meta carries the fields every stored entity shares. Embed it in a model
// struct and the store will mint the ID and maintain the timestamps.
type Meta struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Metadata exposes the embedded Meta to the store.
func (m *Meta) Metadata() *Meta { return m }
