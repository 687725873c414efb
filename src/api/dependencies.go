package api

import (
	"context"
	"net/http"
)

// Dependency is one row of an organization-wide dependency search.
type Dependency struct {
	Ecosystem  string `json:"ecosystem"`
	Name       string `json:"name"`
	Version    string `json:"version"`
	Direct     bool   `json:"direct"`
	Repository string `json:"repository"`
	Branch     string `json:"branch,omitempty"`
}

// DependencyPage is one page of search results. End is true on the
// final page.
type DependencyPage struct {
	Rows   []Dependency `json:"rows"`
	Offset int          `json:"offset"`
	Limit  int          `json:"limit"`
	End    bool         `json:"end"`
}

// DependencySearch selects and pages dependency rows.
type DependencySearch struct {
	Query  string `json:"query,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// SearchDependencies runs a paged dependency search across all
// monitored repositories of the organization.
func (c *Client) SearchDependencies(ctx context.Context, org string, search DependencySearch) (*DependencyPage, error) {
	var page DependencyPage
	err := c.doJSON(ctx, http.MethodPost, "/orgs/"+org+"/dependencies/search", nil, search, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}
