package models

import "time"

// SuccessStory defines a graduate testimonial based on the 'success_stories' table
type SuccessStory struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Course  *string `json:"course,omitempty" db:"course"` // free text, not a courses reference
	Content string  `json:"content" db:"content"`
	Asset
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AssetName returns the name the story's asset key is derived from.
func (s *SuccessStory) AssetName() string { return s.Name }

// SuccessStoryDescriptor parameterizes the shared CRUD machinery for success stories.
var SuccessStoryDescriptor = Descriptor{
	Name:        "success story",
	Table:       "success_stories",
	Columns:     []string{"name", "course", "content", "image_url", "image_ref"},
	Required:    []string{"name", "content"},
	TitleField:  "name",
	AssetFolder: "success-stories",
}
