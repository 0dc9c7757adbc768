package models

import "time"

// Pillar defines an institutional value block based on the 'pillars' table
type Pillar struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Asset
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AssetName returns the title the pillar's asset key is derived from.
func (p *Pillar) AssetName() string { return p.Title }

// PillarDescriptor parameterizes the shared CRUD machinery for pillars.
var PillarDescriptor = Descriptor{
	Name:        "pillar",
	Table:       "pillars",
	Columns:     []string{"title", "description", "image_url", "image_ref"},
	Required:    []string{"title", "description"},
	TitleField:  "title",
	AssetFolder: "pillars",
}
