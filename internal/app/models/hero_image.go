package models

import "time"

// HeroImage defines a home page carousel slide based on the 'hero_images' table
type HeroImage struct {
	ID       int64   `json:"id" db:"id"`
	Title    string  `json:"title" db:"title"`
	Subtitle *string `json:"subtitle,omitempty" db:"subtitle"`
	Asset
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AssetName returns the title the slide's asset key is derived from.
func (h *HeroImage) AssetName() string { return h.Title }

// HeroImageDescriptor parameterizes the shared CRUD machinery for hero images.
var HeroImageDescriptor = Descriptor{
	Name:          "hero image",
	Table:         "hero_images",
	Columns:       []string{"title", "subtitle", "image_url", "image_ref"},
	Required:      []string{"title"},
	TitleField:    "title",
	AssetFolder:   "hero",
	AssetRequired: true,
}
