package searchindex

import (
	"context"
	"errors"
)

// SearchParams is the wire shape for a collection-scoped search.
type SearchParams struct {
	Q             string
	QueryBy       string
	FilterBy      string
	SortBy        string
	FacetBy       string
	Page          int
	PerPage       int
	UseBooleanAnd bool
}

type Hit struct {
	Document map[string]interface{} `json:"document"`
}

type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Facet struct {
	FieldName string       `json:"field_name"`
	Counts    []FacetCount `json:"counts"`
}

type SearchResult struct {
	Found       int     `json:"found"`
	Hits        []Hit   `json:"hits"`
	FacetCounts []Facet `json:"facet_counts,omitempty"`
}

type CollectionField struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Facet bool   `json:"facet,omitempty"`
}

type CollectionSchema struct {
	Name                string            `json:"name"`
	Fields              []CollectionField `json:"fields"`
	DefaultSortingField string            `json:"default_sorting_field,omitempty"`
}

var (
	// ErrNotFound signals a missing document or an unprovisioned collection.
	ErrNotFound = errors.New("search index: not found")
	// ErrUnavailable signals the index cannot be reached; read paths recover
	// by falling back to the primary store.
	ErrUnavailable = errors.New("search index: unavailable")
)

// Client is the collection-scoped surface the services depend on. The
// production implementation talks to a Typesense-compatible HTTP API.
type Client interface {
	Search(ctx context.Context, collection string, params SearchParams) (*SearchResult, error)
	CreateDocument(ctx context.Context, collection string, doc map[string]interface{}) error
	DeleteDocument(ctx context.Context, collection, id string) error
	EnsureCollection(ctx context.Context, schema CollectionSchema) error
}
