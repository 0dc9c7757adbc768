package models

import "time"

// Course defines a course offering based on the 'courses' table
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Duration    string    `json:"duration" db:"duration"` // e.g. "6 months"
	Fee         float64   `json:"fee" db:"fee"`
	Asset
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AssetName returns the title the course's asset key is derived from.
func (c *Course) AssetName() string { return c.Title }

// CourseDescriptor parameterizes the shared CRUD machinery for courses.
var CourseDescriptor = Descriptor{
	Name:          "course",
	Table:         "courses",
	Columns:       []string{"title", "description", "duration", "fee", "image_url", "image_ref"},
	Required:      []string{"title", "description", "duration", "fee"},
	TitleField:    "title",
	AssetFolder:   "courses",
	AssetRequired: true,
}
