package result

import (
	"encoding/json"
	"testing"
)

func TestSuccessVariant(t *testing.T) {
	env := Success(map[string]string{"slug": "my-repo"})

	if !env.Ok {
		t.Fatalf("Success() produced Ok=false")
	}
	if env.Message != "" || env.Code != 0 || env.Cause != "" {
		t.Fatalf("success variant carries failure fields: %#v", env)
	}
	if env.ExitCode() != 0 {
		t.Fatalf("ExitCode() = %d, want 0", env.ExitCode())
	}
}

func TestFailureDefaultsToExitOne(t *testing.T) {
	env := Failure[struct{}]("request failed", 0, "")

	if env.Ok {
		t.Fatalf("Failure() produced Ok=true")
	}
	if env.ExitCode() != 1 {
		t.Fatalf("ExitCode() = %d, want 1", env.ExitCode())
	}
}

func TestFailureExplicitCode(t *testing.T) {
	env := Failure[struct{}]("unauthorized", 401, "token rejected")

	if got := env.ExitCode(); got != 401 {
		t.Fatalf("ExitCode() = %d, want 401", got)
	}
	if env.Cause != "token rejected" {
		t.Fatalf("Cause = %q", env.Cause)
	}
}

func TestJSONOmitsUnusedVariantFields(t *testing.T) {
	data, err := json.Marshal(Failure[map[string]string]("nope", 403, ""))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := raw["data"]; present {
		t.Fatalf("failure JSON carries data field: %s", data)
	}
	if raw["ok"] != false {
		t.Fatalf("failure JSON ok = %v", raw["ok"])
	}
	if raw["code"] != float64(403) {
		t.Fatalf("failure JSON code = %v", raw["code"])
	}
}
