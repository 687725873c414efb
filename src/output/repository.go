package output

import (
	"fmt"
	"io"

	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/result"
)

// CreateMessage builds the human success line for repository creation.
// The server slugifies the requested name; when the two differ, the
// message carries a warning suffix so the caller knows which slug to
// use from now on.
func CreateMessage(slug, requestedName string) string {
	msg := fmt.Sprintf("Created repository %s", slug)
	if requestedName != "" && requestedName != slug {
		msg += fmt.Sprintf(" (requested name %q was adjusted to match slug rules)", requestedName)
	}
	return msg
}

// RepositoryCreated renders the outcome of repository create.
func RepositoryCreated(w io.Writer, f Format, env result.Envelope[*api.Repository], requestedName string, color bool) int {
	if f == FormatJSON {
		return JSON(w, env)
	}
	if !env.Ok {
		return failureText(w, f, env, color)
	}

	repo := env.Data
	msg := CreateMessage(repo.Slug, requestedName)

	if f == FormatMarkdown {
		fmt.Fprintf(w, "## Repository created\n\n%s\n\n", msg)
		repositoryMarkdownTable(w, repo)
		return 0
	}

	sec := NewSection(w, "Repository", 0, color)
	sec.Row("%s %s", StatusIcon("success", color), msg)
	repositoryRows(sec, repo, color)
	sec.Close()
	return 0
}

// Repository renders a single repository record (view and update).
func Repository(w io.Writer, f Format, env result.Envelope[*api.Repository], color bool) int {
	if f == FormatJSON {
		return JSON(w, env)
	}
	if !env.Ok {
		return failureText(w, f, env, color)
	}

	repo := env.Data
	if f == FormatMarkdown {
		fmt.Fprintf(w, "## %s\n\n", repo.Slug)
		repositoryMarkdownTable(w, repo)
		return 0
	}

	sec := NewSection(w, "Repository", 0, color)
	sec.Row("%s", bold(color, repo.Slug))
	repositoryRows(sec, repo, color)
	sec.Close()
	return 0
}

// RepositoryDeleted renders the outcome of repository del.
func RepositoryDeleted(w io.Writer, f Format, env result.Envelope[*api.Repository], slug string, color bool) int {
	if f == FormatJSON {
		return JSON(w, env)
	}
	if !env.Ok {
		return failureText(w, f, env, color)
	}

	if f == FormatMarkdown {
		fmt.Fprintf(w, "Deleted repository `%s`.\n", slug)
		return 0
	}
	fmt.Fprintf(w, "%s Deleted repository %s\n", StatusIcon("success", color), slug)
	return 0
}

// RepositoryList renders a repository listing.
func RepositoryList(w io.Writer, f Format, env result.Envelope[[]api.Repository], color bool) int {
	if f == FormatJSON {
		return JSON(w, env)
	}
	if !env.Ok {
		return failureText(w, f, env, color)
	}

	repos := env.Data
	if f == FormatMarkdown {
		fmt.Fprintf(w, "## Repositories (%d)\n\n", len(repos))
		fmt.Fprintf(w, "| Slug | Visibility | Default branch | Archived |\n")
		fmt.Fprintf(w, "| --- | --- | --- | --- |\n")
		for _, r := range repos {
			fmt.Fprintf(w, "| %s | %s | %s | %v |\n", r.Slug, r.Visibility, r.DefaultBranch, r.Archived)
		}
		return 0
	}

	sec := NewSection(w, fmt.Sprintf("Repositories (%d)", len(repos)), 0, color)
	sec.Row("%-28s%-12s%-16s%s", "slug", "visibility", "branch", "archived")
	for _, r := range repos {
		archived := ""
		if r.Archived {
			archived = "yes"
		}
		sec.Row("%-28s%-12s%-16s%s", r.Slug, r.Visibility, r.DefaultBranch, archived)
	}
	sec.Close()
	return 0
}

func repositoryRows(sec *Section, repo *api.Repository, color bool) {
	sec.Row("%-16s%s", "id", repo.ID)
	if repo.Name != "" && repo.Name != repo.Slug {
		sec.Row("%-16s%s", "name", repo.Name)
	}
	if repo.Description != "" {
		sec.Row("%-16s%s", "description", repo.Description)
	}
	if repo.Homepage != "" {
		sec.Row("%-16s%s", "homepage", repo.Homepage)
	}
	if repo.DefaultBranch != "" {
		sec.Row("%-16s%s", "branch", repo.DefaultBranch)
	}
	if repo.Visibility != "" {
		sec.Row("%-16s%s", "visibility", repo.Visibility)
	}
	if repo.Archived {
		sec.Row("%-16s%s", "archived", "yes")
	}
	if repo.CreatedAt != "" {
		sec.Row("%-16s%s", "created", Dimmed(repo.CreatedAt, color))
	}
}

func repositoryMarkdownTable(w io.Writer, repo *api.Repository) {
	fmt.Fprintf(w, "| Field | Value |\n| --- | --- |\n")
	fmt.Fprintf(w, "| id | %s |\n", repo.ID)
	fmt.Fprintf(w, "| slug | %s |\n", repo.Slug)
	if repo.Description != "" {
		fmt.Fprintf(w, "| description | %s |\n", repo.Description)
	}
	if repo.Homepage != "" {
		fmt.Fprintf(w, "| homepage | %s |\n", repo.Homepage)
	}
	if repo.DefaultBranch != "" {
		fmt.Fprintf(w, "| default branch | %s |\n", repo.DefaultBranch)
	}
	if repo.Visibility != "" {
		fmt.Fprintf(w, "| visibility | %s |\n", repo.Visibility)
	}
	fmt.Fprintf(w, "| archived | %v |\n", repo.Archived)
}
