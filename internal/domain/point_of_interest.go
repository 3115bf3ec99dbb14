package domain

import "time"

// PointOfInterest belongs to exactly one city for its entire lifetime.
type PointOfInterest struct {
	ID          int64     `db:"id" json:"id"`
	CityID      int64     `db:"city_id" json:"city_id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
