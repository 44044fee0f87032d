package types

import "fmt"

// User roles.
const (
	RoleAdmin   = "Admin"
	RoleLivreur = "Livreur"
	RoleClient  = "Client"
	RoleManager = "Manager"
)

// User statuses.
const (
	UserActive   = "Actif"
	UserInactive = "Inactif"
)

// validRoles is the set of recognized role values.
var validRoles = map[string]bool{
	RoleAdmin:   true,
	RoleLivreur: true,
	RoleClient:  true,
	RoleManager: true,
}

// validUserStatuses is the set of recognized user status values.
var validUserStatuses = map[string]bool{
	UserActive:   true,
	UserInactive: true,
}

// User is a back-office account. Delivery records reference users by name,
// not by id; the reference is advisory only.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// RecordID implements Record.
func (u User) RecordID() int { return u.ID }

// Validate checks the required fields and enum values.
func (u User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	if !validRoles[u.Role] {
		return ErrInvalidRole
	}
	if !validUserStatuses[u.Status] {
		return ErrInvalidUserStatus
	}
	return nil
}
