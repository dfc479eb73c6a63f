package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient creates a client for a Typesense-compatible search API.
func NewHTTPClient(baseURL, apiKey string) Client {
	return &httpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpClient) Search(ctx context.Context, collection string, params SearchParams) (*SearchResult, error) {
	values := url.Values{}
	values.Set("q", params.Q)
	values.Set("query_by", params.QueryBy)
	if params.FilterBy != "" {
		values.Set("filter_by", params.FilterBy)
	}
	if params.SortBy != "" {
		values.Set("sort_by", params.SortBy)
	}
	if params.FacetBy != "" {
		values.Set("facet_by", params.FacetBy)
	}
	values.Set("page", strconv.Itoa(params.Page))
	values.Set("per_page", strconv.Itoa(params.PerPage))
	if params.UseBooleanAnd {
		values.Set("use_boolean_and", "true")
	}

	endpoint := fmt.Sprintf("%s/collections/%s/documents/search?%s",
		c.baseURL, url.PathEscape(collection), values.Encode())

	body, status, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("search failed with status %d: %s", status, string(body))
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &result, nil
}

func (c *httpClient) CreateDocument(ctx context.Context, collection string, doc map[string]interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	endpoint := fmt.Sprintf("%s/collections/%s/documents?action=upsert", c.baseURL, url.PathEscape(collection))

	body, status, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("create document failed with status %d: %s", status, string(body))
	}
	return nil
}

func (c *httpClient) DeleteDocument(ctx context.Context, collection, id string) error {
	endpoint := fmt.Sprintf("%s/collections/%s/documents/%s",
		c.baseURL, url.PathEscape(collection), url.PathEscape(id))

	body, status, err := c.do(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status == http.StatusNotFound {
		return ErrNotFound
	}
	if status != http.StatusOK {
		return fmt.Errorf("delete document failed with status %d: %s", status, string(body))
	}
	return nil
}

// EnsureCollection retrieves the collection and creates it when the API
// answers 404 (the "not yet provisioned" signal).
func (c *httpClient) EnsureCollection(ctx context.Context, schema CollectionSchema) error {
	endpoint := fmt.Sprintf("%s/collections/%s", c.baseURL, url.PathEscape(schema.Name))

	_, status, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status == http.StatusOK {
		return nil
	}
	if status != http.StatusNotFound {
		return fmt.Errorf("retrieve collection failed with status %d", status)
	}

	payload, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("failed to marshal collection schema: %w", err)
	}

	body, status, err := c.do(ctx, http.MethodPost, c.baseURL+"/collections", payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("create collection failed with status %d: %s", status, string(body))
	}
	return nil
}

func (c *httpClient) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("X-TYPESENSE-API-KEY", c.apiKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
