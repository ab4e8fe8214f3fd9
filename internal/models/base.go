// Package models holds the persisted entities and their validation rules.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Base carries identity and timestamps shared by every stored entity.
type Base struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Meta exposes the embedded Base to generic store code.
func (b *Base) Meta() *Base { return b }

// Defaulter is implemented by entities that fill unset fields before validation.
type Defaulter interface {
	ApplyDefaults()
}
