package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSONSendsBearerToken(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode(Repository{Slug: "my-repo"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok_123")
	repo, err := c.Repository(context.Background(), "acme", "my-repo")
	if err != nil {
		t.Fatalf("Repository: %v", err)
	}
	if repo.Slug != "my-repo" {
		t.Fatalf("slug = %q", repo.Slug)
	}
	if gotAuth != "Bearer tok_123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q", gotAccept)
	}
}

func TestDoJSONMapsStatusToError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	_, err := c.OrganizationQuota(context.Background(), "acme")
	if err == nil {
		t.Fatalf("expected error for 403 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error is %T, want *StatusError", err)
	}
	if statusErr.StatusCode != 403 {
		t.Fatalf("StatusCode = %d, want 403", statusErr.StatusCode)
	}
}

func TestCreateRepositorySendsFields(t *testing.T) {
	var gotBody RepositoryFields
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/orgs/acme/repos" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		json.NewEncoder(w).Encode(Repository{Slug: "my-repo", Name: "My Repo"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	repo, err := c.CreateRepository(context.Background(), "acme", RepositoryFields{
		Name:          "My Repo",
		DefaultBranch: "main",
	})
	if err != nil {
		t.Fatalf("CreateRepository: %v", err)
	}
	if repo.Slug != "my-repo" {
		t.Fatalf("slug = %q", repo.Slug)
	}
	if gotBody.Name != "My Repo" || gotBody.DefaultBranch != "main" {
		t.Fatalf("request body = %#v", gotBody)
	}
}
