package models

// Asset holds the blob store attachment of a content record: a retrievable
// URL plus the opaque handle needed to delete the object later.
type Asset struct {
	ImageURL *string `json:"imageUrl,omitempty" db:"image_url"`
	ImageRef *string `json:"imageRef,omitempty" db:"image_ref"`
}

// AssetRef returns the deletion handle, or "" when no asset is attached.
func (a Asset) AssetRef() string {
	if a.ImageRef != nil {
		return *a.ImageRef
	}
	return ""
}
