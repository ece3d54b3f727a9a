package storage

// TableMeta is the content of a dataset's meta.json
type TableMeta struct {
	Name    string       `json:"name"`
	Columns []ColumnMeta `json:"columns"`
}

// ColumnMeta describes one column. Type is optional and only used to
// parse date/time strings; cells are otherwise typed by their JSON value.
type ColumnMeta struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

const (
	metaFile = "meta.json"
	dataFile = "data.json"
)
