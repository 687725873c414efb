package gitinfo

import "testing"

func TestRepoNameFromRemote(t *testing.T) {
	cases := []struct {
		remote string
		want   string
	}{
		{"https://github.com/acme/widgets.git", "widgets"},
		{"https://gitlab.example.com/group/sub/widgets.git", "widgets"},
		{"git@github.com:acme/widgets.git", "widgets"},
		{"ssh://git@github.com/acme/widgets", "widgets"},
		{"", ""},
	}

	for _, c := range cases {
		if got := RepoNameFromRemote(c.remote); got != c.want {
			t.Errorf("RepoNameFromRemote(%q) = %q, want %q", c.remote, got, c.want)
		}
	}
}

func TestDetectOutsideRepo(t *testing.T) {
	info, err := Detect(t.TempDir())
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if info.RemoteURL != "" || info.Branch != "" {
		t.Fatalf("expected zero info outside a repo: %#v", info)
	}
}
