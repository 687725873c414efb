package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/result"
)

func TestJSONSerializesWholeEnvelope(t *testing.T) {
	env := result.Success(&api.Repository{Slug: "my-repo", ID: "r_1"})

	var buf bytes.Buffer
	code := RepositoryCreated(&buf, FormatJSON, env, "my-repo", false)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	// The envelope itself — not just the payload — must be serialized.
	if raw["ok"] != true {
		t.Fatalf("missing envelope tag in output: %s", buf.String())
	}
	data, ok := raw["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data payload in output: %s", buf.String())
	}
	if data["slug"] != "my-repo" {
		t.Fatalf("payload slug = %v", data["slug"])
	}
}

func TestCreateMessageWarningSuffix(t *testing.T) {
	exact := CreateMessage("my-repo", "my-repo")
	if !strings.Contains(exact, "my-repo") {
		t.Fatalf("message misses slug: %q", exact)
	}
	if strings.Contains(exact, "adjusted") {
		t.Fatalf("unexpected warning suffix for matching name: %q", exact)
	}

	adjusted := CreateMessage("my-repo", "My Repo")
	if !strings.Contains(adjusted, "my-repo") {
		t.Fatalf("message misses slug: %q", adjusted)
	}
	if !strings.Contains(adjusted, "adjusted") {
		t.Fatalf("missing warning suffix for adjusted name: %q", adjusted)
	}
}

func TestFailureWithoutCodeExitsOne(t *testing.T) {
	env := result.Failure[*api.Repository]("something broke", 0, "")

	var buf bytes.Buffer
	code := Repository(&buf, FormatText, env, false)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "something broke") {
		t.Fatalf("message not rendered: %q", buf.String())
	}
}

func TestFailureWithExplicitCode(t *testing.T) {
	env := result.Failure[*api.Repository]("forbidden", 403, "token lacks scope")

	var buf bytes.Buffer
	code := Repository(&buf, FormatText, env, false)
	if code != 403 {
		t.Fatalf("exit code = %d, want 403", code)
	}
	if !strings.Contains(buf.String(), "token lacks scope") {
		t.Fatalf("cause not rendered: %q", buf.String())
	}
}

func TestFailureJSONStillWholeEnvelope(t *testing.T) {
	env := result.Failure[*api.Repository]("forbidden", 403, "")

	var buf bytes.Buffer
	code := Repository(&buf, FormatJSON, env, false)
	if code != 403 {
		t.Fatalf("exit code = %d, want 403", code)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if raw["ok"] != false || raw["message"] != "forbidden" {
		t.Fatalf("envelope fields wrong: %s", buf.String())
	}
}

func TestRepositoryListMarkdownTable(t *testing.T) {
	env := result.Success([]api.Repository{
		{Slug: "alpha", Visibility: "private", DefaultBranch: "main"},
		{Slug: "beta", Visibility: "public", DefaultBranch: "trunk", Archived: true},
	})

	var buf bytes.Buffer
	code := RepositoryList(&buf, FormatMarkdown, env, false)
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	out := buf.String()
	if !strings.Contains(out, "| alpha | private | main | false |") {
		t.Fatalf("missing alpha row:\n%s", out)
	}
	if !strings.Contains(out, "| beta | public | trunk | true |") {
		t.Fatalf("missing beta row:\n%s", out)
	}
}
