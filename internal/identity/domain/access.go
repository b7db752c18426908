package domain

import "time"

type RuleType string

const (
	RuleEmail       RuleType = "email"
	RuleEmailDomain RuleType = "email_domain"
	RuleSSOTenant   RuleType = "sso_tenant"
	RuleSSOGroup    RuleType = "sso_group"
	RuleSSORole     RuleType = "sso_role"
)

// AccessGroup is an app-scoped bundle of authorization rules. Rules
// within a group are OR'd; a group with zero rules never matches.
type AccessGroup struct {
	ID        string
	AppID     string
	Name      string
	CreatedAt time.Time

	Rules []AccessGroupRule
}

type AccessGroupRule struct {
	ID        string
	GroupID   string
	Type      RuleType
	Value     string
	CreatedAt time.Time
}

// AccessGroupAssignment binds a group to an app or to one app surface,
// never both.
type AccessGroupAssignment struct {
	ID        string
	GroupID   string
	AppID     string
	SurfaceID string
	CreatedAt time.Time
}
