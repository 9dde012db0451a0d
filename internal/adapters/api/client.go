// Package api implements the directory port against the workspace REST API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mwatts/anyctl/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	apiVersionHeader = "Anytype-Version"
	apiVersion       = "2025-05-20"

	// pageLimit is the page size requested from list endpoints.
	pageLimit = 100

	requestTimeout = 30 * time.Second
)

// Client implements ports.Directory over HTTP. It is the external
// collaborator the resolver calls into on cache misses; cancellation of an
// in-flight lookup happens here via the request context.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a directory client for the given API endpoint.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// FindByName returns all entities under scope whose display name matches
// name, preserving the directory's listing order. The API has no name
// filter, so the match happens client-side over the listing.
func (c *Client) FindByName(ctx context.Context, scope, name string) ([]domain.Entity, error) {
	all, err := c.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	var matches []domain.Entity
	for _, e := range all {
		if e.Name == name {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// List returns all entities under scope in listing order, following
// pagination until the last page. An empty scope lists top-level spaces;
// otherwise the types of the identified space are listed.
func (c *Client) List(ctx context.Context, scope string) ([]domain.Entity, error) {
	path := "/v1/spaces"
	if scope != "" {
		path = "/v1/spaces/" + url.PathEscape(scope) + "/types"
	}

	var entities []domain.Entity
	offset := 0
	for {
		page, err := c.getPage(ctx, path, offset)
		if err != nil {
			return nil, err
		}
		for _, dto := range page.Data {
			entities = append(entities, domain.Entity{ID: dto.ID, Name: dto.Name})
		}
		if !page.Pagination.HasMore {
			return entities, nil
		}
		offset += len(page.Data)
	}
}

func (c *Client) getPage(ctx context.Context, path string, offset int) (*listResponse, error) {
	endpoint := fmt.Sprintf("%s%s?offset=%d&limit=%d", c.baseURL, path, offset, pageLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Join(domain.ErrAPIRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiVersionHeader, apiVersion)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrAPIRequestFailed, err), "path", path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrAPIStatus, "status", resp.StatusCode)
		return nil, zerr.With(statusErr, "path", path)
	}

	var page listResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrAPIDecodeFailed, err), "path", path)
	}
	return &page, nil
}
