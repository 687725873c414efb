// Package gitinfo reads metadata from the local git repository so
// repository create/update can default the name and branch from the
// working checkout. Everything is best-effort: a missing repo or remote
// simply yields empty fields.
package gitinfo

import (
	"strings"

	"github.com/go-git/go-git/v5"
)

// Info holds git metadata for command defaults.
type Info struct {
	RemoteURL string // origin URL, if any
	Branch    string // current branch name, if on a branch
	RepoName  string // repo name parsed from the remote URL
}

// Detect opens the repository at rootDir and collects defaults.
// Returns a zero Info (not an error) when rootDir is not a git repo.
func Detect(rootDir string) (*Info, error) {
	info := &Info{}

	repo, err := git.PlainOpenWithOptions(rootDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return info, nil
	}

	if remote, err := repo.Remote("origin"); err == nil {
		urls := remote.Config().URLs
		if len(urls) > 0 {
			info.RemoteURL = urls[0]
			info.RepoName = RepoNameFromRemote(urls[0])
		}
	}

	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}

	return info, nil
}

// RepoNameFromRemote extracts the repository name from a git remote URL.
// Handles SSH (git@host:org/repo.git) and HTTPS (https://host/org/repo.git).
func RepoNameFromRemote(remoteURL string) string {
	path := projectPath(remoteURL)
	if path == "" {
		return ""
	}
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// projectPath extracts "org/repo" from a remote URL.
func projectPath(remoteURL string) string {
	url := strings.TrimSuffix(remoteURL, ".git")

	for _, prefix := range []string{"https://", "http://", "ssh://"} {
		if strings.HasPrefix(url, prefix) {
			withoutScheme := strings.TrimPrefix(url, prefix)
			if idx := strings.Index(withoutScheme, "/"); idx >= 0 {
				return strings.TrimPrefix(withoutScheme[idx+1:], "/")
			}
			return ""
		}
	}

	// SSH shorthand: git@host:org/repo
	if idx := strings.Index(url, ":"); idx >= 0 {
		return url[idx+1:]
	}

	return ""
}
