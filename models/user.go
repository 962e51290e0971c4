package models

// User is the per-request identity decoded from a bearer credential.
// It is never persisted; its lifetime is a single request.
type User struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	FirstName      string   `json:"firstName,omitempty"`
	LastName       string   `json:"lastName,omitempty"`
	Brand          Brand    `json:"brand"`
	Roles          []string `json:"roles"`
	OrganizationID string   `json:"organizationId,omitempty"` // B2B users only
	IsPremium      bool     `json:"isPremium"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the user carries at least one of the given roles.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}
