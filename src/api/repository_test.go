package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

func TestListAllFollowsPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		resp := RepositoryPage{
			Results: []Repository{{Slug: "repo-" + strconv.Itoa(page)}},
		}
		if page < 3 {
			resp.NextPage = page + 1
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	repos, err := c.ListAllRepositories(context.Background(), "acme", ListQuery{PerPage: 1})
	if err != nil {
		t.Fatalf("ListAllRepositories: %v", err)
	}
	if len(repos) != 3 {
		t.Fatalf("got %d repos, want 3", len(repos))
	}
	if repos[2].Slug != "repo-3" {
		t.Fatalf("last slug = %q", repos[2].Slug)
	}
}

func TestListAllStopsAtPageCap(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		// Misbehaving server: always advertises another page.
		json.NewEncoder(w).Encode(RepositoryPage{
			Results:  []Repository{{Slug: "repo"}},
			NextPage: page + 1,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	_, err := c.ListAllRepositories(context.Background(), "acme", ListQuery{})
	if err == nil {
		t.Fatalf("expected failure against never-ending listing")
	}
	if !strings.Contains(err.Error(), "did not terminate") {
		t.Fatalf("error = %v", err)
	}
	if requests != 100 {
		t.Fatalf("made %d requests, want exactly 100", requests)
	}
}

func TestDeleteRepository(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if err := c.DeleteRepository(context.Background(), "acme", "my-repo"); err != nil {
		t.Fatalf("DeleteRepository: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/orgs/acme/repos/my-repo" {
		t.Fatalf("request = %s %s", gotMethod, gotPath)
	}
}
