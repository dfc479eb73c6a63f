package searchindex

// LogCollectionSchema describes the mirrored log documents. The flattened
// text surfaces (message, rawStackTrace, detailString) are the only fields
// queried with free text; everything else is equality-filtered.
func LogCollectionSchema(name string) CollectionSchema {
	return CollectionSchema{
		Name: name,
		Fields: []CollectionField{
			{Name: "projectId", Type: "string", Facet: true},
			{Name: "level", Type: "string", Facet: true},
			{Name: "environment", Type: "string", Facet: true},
			{Name: "logType", Type: "string", Facet: true},
			{Name: "hostname", Type: "string", Facet: true},
			{Name: "message", Type: "string"},
			{Name: "rawStackTrace", Type: "string"},
			{Name: "detailString", Type: "string"},
			{Name: "timestampMS", Type: "int64"},
		},
		DefaultSortingField: "timestampMS",
	}
}
