package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for catalog browsing. Names are unique.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IconURL   string    `json:"icon_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
