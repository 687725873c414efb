package cmd

import (
	"errors"
	"fmt"

	"github.com/vigilhq/vigil/src/api"
	"github.com/vigilhq/vigil/src/result"
)

// newClient builds an API client from config and environment. A missing
// token is an input error, not a remote failure.
func newClient() (*api.Client, error) {
	token := api.TokenFromEnv()
	if token == "" {
		return nil, usageErrorf("no API token: set %s", api.TokenEnv)
	}
	return api.NewClient(cfg.API.BaseURL, token), nil
}

// requireOrg resolves the organization slug from the --org flag or the
// config file.
func requireOrg() (string, error) {
	if orgFlag != "" {
		return orgFlag, nil
	}
	if cfg.Org != "" {
		return cfg.Org, nil
	}
	return "", usageErrorf("no organization: pass --org or set org in %s", ".vigil.yml")
}

// failureFrom wraps an API error in a failure envelope. Status errors
// carry the HTTP status as the exit code and the response body as the
// cause; anything else gets the default exit code.
func failureFrom[T any](err error) result.Envelope[T] {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		msg := fmt.Sprintf("%s %s returned %d", statusErr.Method, statusErr.URL, statusErr.StatusCode)
		return result.Failure[T](msg, statusErr.StatusCode, statusErr.Body)
	}
	return result.Failure[T](err.Error(), 0, "")
}
