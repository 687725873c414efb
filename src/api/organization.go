package api

import (
	"context"
	"net/http"
)

// Quota reports an organization's plan limits and current consumption.
type Quota struct {
	Plan       string `json:"plan"`
	ScansUsed  int    `json:"scans_used"`
	ScansLimit int    `json:"scans_limit"`
	SeatsUsed  int    `json:"seats_used"`
	SeatsLimit int    `json:"seats_limit"`
	PeriodEnd  string `json:"period_end,omitempty"`
}

// PolicyRule is one rule of an organization's security policy.
type PolicyRule struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Action   string `json:"action"` // error, warn, monitor, ignore
}

// SecurityPolicy is the full rule set configured for an organization.
type SecurityPolicy struct {
	Rules []PolicyRule `json:"rules"`
}

// OrganizationQuota fetches the organization's quota settings.
func (c *Client) OrganizationQuota(ctx context.Context, org string) (*Quota, error) {
	var quota Quota
	err := c.doJSON(ctx, http.MethodGet, "/orgs/"+org+"/settings/quota", nil, nil, &quota)
	if err != nil {
		return nil, err
	}
	return &quota, nil
}

// SecurityPolicy fetches the organization's security policy rules.
func (c *Client) SecurityPolicy(ctx context.Context, org string) (*SecurityPolicy, error) {
	var policy SecurityPolicy
	err := c.doJSON(ctx, http.MethodGet, "/orgs/"+org+"/settings/security-policy", nil, nil, &policy)
	if err != nil {
		return nil, err
	}
	return &policy, nil
}
