package cmd

import (
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/vigilhq/vigil/src/api"
)

func TestFailureFromStatusError(t *testing.T) {
	err := &api.StatusError{
		StatusCode: 403,
		Method:     "GET",
		URL:        "https://api.vigilhq.com/v0/orgs/acme/repos",
		Body:       "forbidden",
	}

	env := failureFrom[*api.Repository](err)
	if env.Ok {
		t.Fatalf("status error produced a success envelope")
	}
	if env.Code != 403 {
		t.Fatalf("code = %d, want 403", env.Code)
	}
	if env.Cause != "forbidden" {
		t.Fatalf("cause = %q", env.Cause)
	}
	if env.ExitCode() != 403 {
		t.Fatalf("exit code = %d, want 403", env.ExitCode())
	}
}

func TestFailureFromPlainError(t *testing.T) {
	env := failureFrom[*api.Repository](errors.New("connection refused"))
	if env.Code != 0 {
		t.Fatalf("code = %d, want 0", env.Code)
	}
	if env.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", env.ExitCode())
	}
}

func TestFilterByRange(t *testing.T) {
	c, err := semver.NewConstraint(">=4.17.0 <4.17.21")
	if err != nil {
		t.Fatalf("constraint: %v", err)
	}

	rows := []api.Dependency{
		{Name: "lodash", Version: "4.17.15"},
		{Name: "lodash", Version: "4.17.21"},
		{Name: "lodash", Version: "not-a-version"},
		{Name: "lodash", Version: "4.16.0"},
	}

	kept := filterByRange(rows, c)
	if len(kept) != 1 {
		t.Fatalf("kept %d rows, want 1: %v", len(kept), kept)
	}
	if kept[0].Version != "4.17.15" {
		t.Fatalf("kept version %q", kept[0].Version)
	}
}

func TestExitErrorNilErrIsSilent(t *testing.T) {
	e := &ExitError{Code: 5}
	if e.Error() != "" {
		t.Fatalf("nil-cause ExitError has message %q", e.Error())
	}
}
