package domain

import "time"

type City struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// Populated only when the caller asked for the eager-loaded shape.
	PointsOfInterest []PointOfInterest `db:"-" json:"points_of_interest,omitempty"`
}
