package service

import (
	"context"
	"log/slog"

	autherror "github.com/metorial/identity-core/internal/errors"
	"github.com/metorial/identity-core/internal/identity/domain"
)

// AccessService evaluates access-group policy for a user against an
// app or app surface. Apps with zero assignments are open; otherwise
// any single matching rule in any assigned group authorizes.
type AccessService struct {
	store  domain.Store
	logger *slog.Logger
}

func NewAccessService(store domain.Store, logger *slog.Logger) *AccessService {
	return &AccessService{store: store, logger: logger}
}

func (s *AccessService) CheckAppAccess(ctx context.Context, userID, appID string) (bool, error) {
	assignments, err := s.store.ListAssignmentsForApp(ctx, appID)
	if err != nil {
		return false, err
	}
	return s.checkAssignments(ctx, userID, appID, assignments)
}

func (s *AccessService) CheckSurfaceAccess(ctx context.Context, userID, appID, surfaceID string) (bool, error) {
	assignments, err := s.store.ListAssignmentsForSurface(ctx, surfaceID)
	if err != nil {
		return false, err
	}
	return s.checkAssignments(ctx, userID, appID, assignments)
}

// CheckAccess is the single-group variant used by admin tooling. Same
// matching core as the assignment paths.
func (s *AccessService) CheckAccess(ctx context.Context, userID, groupID string) (bool, error) {
	group, err := s.store.GetAccessGroup(ctx, groupID)
	if err != nil {
		return false, err
	}
	if group == nil {
		return false, autherror.ErrGroupNotFound
	}
	m, err := s.newMatcher(ctx, userID)
	if err != nil {
		return false, err
	}
	return s.groupMatches(ctx, m, group, group.AppID)
}

func (s *AccessService) checkAssignments(ctx context.Context, userID, appID string, assignments []domain.AccessGroupAssignment) (bool, error) {
	if len(assignments) == 0 {
		return true, nil
	}
	m, err := s.newMatcher(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, a := range assignments {
		group, err := s.store.GetAccessGroup(ctx, a.GroupID)
		if err != nil {
			return false, err
		}
		if group == nil {
			continue
		}
		ok, err := s.groupMatches(ctx, m, group, appID)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// matcher caches the per-user facts the rules consult.
type matcher struct {
	userID         string
	verifiedEmails []domain.UserEmail

	profilesLoaded bool
	profiles       []domain.SSOProfile
	tenantScope    map[string]bool
	tenantNames    map[string]string
}

func (s *AccessService) newMatcher(ctx context.Context, userID string) (*matcher, error) {
	emails, err := s.store.ListUserEmails(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &matcher{userID: userID, verifiedEmails: domain.VerifiedEmails(emails)}, nil
}

// loadProfiles resolves the SSO tenants visible to the app (app-scoped
// plus global) and the user's SSO profiles for their verified emails.
func (s *AccessService) loadProfiles(ctx context.Context, m *matcher, appID string) error {
	if m.profilesLoaded {
		return nil
	}
	m.profilesLoaded = true
	m.tenantScope = make(map[string]bool)
	m.tenantNames = make(map[string]string)

	tenants, err := s.store.ListSSOTenantsForApp(ctx, appID)
	if err != nil {
		return err
	}
	for _, t := range tenants {
		m.tenantScope[t.ID] = true
		m.tenantNames[t.ID] = t.Name
	}

	addrs := make([]string, 0, len(m.verifiedEmails))
	for _, e := range m.verifiedEmails {
		addrs = append(addrs, e.Email)
	}
	if len(addrs) == 0 {
		return nil
	}
	profiles, err := s.store.ListSSOProfilesByEmails(ctx, addrs)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if m.tenantScope[p.TenantID] {
			m.profiles = append(m.profiles, p)
		}
	}
	return nil
}

func (s *AccessService) groupMatches(ctx context.Context, m *matcher, group *domain.AccessGroup, appID string) (bool, error) {
	for _, rule := range group.Rules {
		ok, err := s.ruleMatches(ctx, m, rule, appID)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (s *AccessService) ruleMatches(ctx context.Context, m *matcher, rule domain.AccessGroupRule, appID string) (bool, error) {
	switch rule.Type {
	case domain.RuleEmail:
		for _, e := range m.verifiedEmails {
			if e.Email == normalizeEmail(rule.Value) {
				return true, nil
			}
		}
		return false, nil

	case domain.RuleEmailDomain:
		for _, e := range m.verifiedEmails {
			if emailDomain(e.Email) == normalizeEmail(rule.Value) {
				return true, nil
			}
		}
		return false, nil

	case domain.RuleSSOTenant, domain.RuleSSOGroup, domain.RuleSSORole:
		if len(m.verifiedEmails) == 0 {
			return false, nil
		}
		if err := s.loadProfiles(ctx, m, appID); err != nil {
			return false, err
		}
		for _, p := range m.profiles {
			switch rule.Type {
			case domain.RuleSSOTenant:
				if p.TenantID == rule.Value || m.tenantNames[p.TenantID] == rule.Value {
					return true, nil
				}
			case domain.RuleSSOGroup:
				if containsString(p.Groups, rule.Value) {
					return true, nil
				}
			case domain.RuleSSORole:
				if containsString(p.Roles, rule.Value) {
					return true, nil
				}
			}
		}
		return false, nil

	default:
		// Unknown rule types are skipped, not failed, so groups can
		// mix rule types freely.
		return false, nil
	}
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
