package models

// Descriptor parameterizes the CRUD machinery shared by all content
// resources: one table, one column list, one required-field list, one
// optional asset slot. The repositories, services and controllers are
// written once against this and instantiated per resource.
type Descriptor struct {
	// Name is the singular resource name used in messages ("course")
	Name string
	// Table is the database table name
	Table string
	// Columns are the insertable/updatable columns, excluding id and timestamps
	Columns []string
	// Required are the columns that must be present and non-empty on create
	Required []string
	// TitleField is the column whose value derives deterministic asset keys
	TitleField string
	// AssetFolder is the blob store namespace; empty means the resource
	// carries no binary asset
	AssetFolder string
	// AssetRequired marks the asset mandatory on create
	AssetRequired bool
}

// HasAsset reports whether the resource carries a binary asset.
func (d Descriptor) HasAsset() bool {
	return d.AssetFolder != ""
}
