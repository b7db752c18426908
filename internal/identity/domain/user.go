package domain

import "time"

type User struct {
	ID           string
	FirstName    string
	LastName     string
	ImageURL     string
	LastLoginAt  *time.Time
	LastActiveAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserEmail struct {
	ID         string
	UserID     string
	Email      string
	VerifiedAt *time.Time
	CreatedAt  time.Time
}

// VerifiedEmails filters to addresses with a verification stamp.
func VerifiedEmails(emails []UserEmail) []UserEmail {
	out := make([]UserEmail, 0, len(emails))
	for _, e := range emails {
		if e.VerifiedAt != nil {
			out = append(out, e)
		}
	}
	return out
}

// SSOTenant is a federation tenant an app can log users in through.
// Global tenants (AppID empty) are visible to every app.
type SSOTenant struct {
	ID        string
	AppID     string
	Name      string
	CreatedAt time.Time
}

// SSOProfile is the identity a federation tenant reported for one of
// the user's emails. Groups and Roles come from the upstream assertion.
type SSOProfile struct {
	ID         string
	UserID     string
	TenantID   string
	Email      string
	ExternalID string
	Groups     []string
	Roles      []string
	CreatedAt  time.Time
}

type App struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// AppSurface is a sub-scope of an app that access groups can target
// independently of the whole app.
type AppSurface struct {
	ID        string
	AppID     string
	Name      string
	CreatedAt time.Time
}
