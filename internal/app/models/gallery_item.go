package models

import "time"

// GalleryItem defines a gallery photo based on the 'gallery' table
type GalleryItem struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description,omitempty" db:"description"`
	Asset
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AssetName returns the title the item's asset key is derived from.
func (g *GalleryItem) AssetName() string { return g.Title }

// GalleryItemDescriptor parameterizes the shared CRUD machinery for gallery items.
var GalleryItemDescriptor = Descriptor{
	Name:          "gallery item",
	Table:         "gallery",
	Columns:       []string{"title", "description", "image_url", "image_ref"},
	Required:      []string{"title"},
	TitleField:    "title",
	AssetFolder:   "gallery",
	AssetRequired: true,
}
