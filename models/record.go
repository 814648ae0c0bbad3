package models

// Record is a single report catalog entry. All descriptive fields are free
// text; Categoria is the unit of authorization.
type Record struct {
	// ID is assigned by the database and never changes afterwards.
	ID int64 `json:"id"`

	// Categoria is the category label matched against a user's roles.
	Categoria string `json:"categoria"`

	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Link        string `json:"link"`

	// Vigencia is the lifecycle status of the report (e.g. "Vigente").
	Vigencia string `json:"vigencia"`
}

// TableName returns the name of the database table
// associated with the Record model.
func (r Record) TableName() string {
	return "data"
}

// RecordFilter restricts which records a listing returns.
//
// When All is set the filter is bypassed. Otherwise only records whose
// categoria is in Categories are returned; an empty Categories matches nothing.
type RecordFilter struct {
	All        bool
	Categories []string
}
