package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// maxListPages caps the list-all pagination loop. A server that keeps
// returning a next page past this is treated as misbehaving.
const maxListPages = 100

// Repository is a monitored repository record as returned by the API.
type Repository struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Homepage      string `json:"homepage,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
	Visibility    string `json:"visibility,omitempty"`
	Archived      bool   `json:"archived,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// RepositoryPage is one page of a repository listing. NextPage is 0 on
// the final page.
type RepositoryPage struct {
	Results  []Repository `json:"results"`
	NextPage int          `json:"nextPage"`
}

// RepositoryFields are the writable fields for create and update.
type RepositoryFields struct {
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	Homepage      string `json:"homepage,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
	Visibility    string `json:"visibility,omitempty"`
	Archived      *bool  `json:"archived,omitempty"`
}

// ListQuery controls sorting and page size for repository listings.
type ListQuery struct {
	Sort      string
	Direction string
	PerPage   int
	Page      int
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.Direction != "" {
		v.Set("direction", q.Direction)
	}
	if q.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

// CreateRepository registers a repository under the organization. The
// server slugifies the requested name; the returned record carries the
// canonical slug.
func (c *Client) CreateRepository(ctx context.Context, org string, fields RepositoryFields) (*Repository, error) {
	var repo Repository
	err := c.doJSON(ctx, http.MethodPost, "/orgs/"+org+"/repos", nil, fields, &repo)
	if err != nil {
		return nil, err
	}
	return &repo, nil
}

// Repository fetches a single repository record by slug.
func (c *Client) Repository(ctx context.Context, org, slug string) (*Repository, error) {
	var repo Repository
	err := c.doJSON(ctx, http.MethodGet, "/orgs/"+org+"/repos/"+slug, nil, nil, &repo)
	if err != nil {
		return nil, err
	}
	return &repo, nil
}

// ListRepositories fetches one page of the organization's repositories.
func (c *Client) ListRepositories(ctx context.Context, org string, q ListQuery) (*RepositoryPage, error) {
	var page RepositoryPage
	err := c.doJSON(ctx, http.MethodGet, "/orgs/"+org+"/repos", q.values(), nil, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAllRepositories walks the listing page by page until the server
// reports no next page. The loop is capped at maxListPages fetches;
// exceeding the cap is a hard failure, not a retry target.
func (c *Client) ListAllRepositories(ctx context.Context, org string, q ListQuery) ([]Repository, error) {
	var all []Repository
	q.Page = 1

	for i := 0; i < maxListPages; i++ {
		page, err := c.ListRepositories(ctx, org, q)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Results...)
		if page.NextPage == 0 {
			return all, nil
		}
		q.Page = page.NextPage
	}

	return nil, fmt.Errorf("repository listing did not terminate after %d pages", maxListPages)
}

// UpdateRepository patches writable fields on an existing repository.
func (c *Client) UpdateRepository(ctx context.Context, org, slug string, fields RepositoryFields) (*Repository, error) {
	var repo Repository
	err := c.doJSON(ctx, http.MethodPatch, "/orgs/"+org+"/repos/"+slug, nil, fields, &repo)
	if err != nil {
		return nil, err
	}
	return &repo, nil
}

// DeleteRepository removes a repository record from the organization.
func (c *Client) DeleteRepository(ctx context.Context, org, slug string) error {
	return c.doJSON(ctx, http.MethodDelete, "/orgs/"+org+"/repos/"+slug, nil, nil, nil)
}
