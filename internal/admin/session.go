package admin

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Credentials is the single configured admin credential the login check
// runs against.
type Credentials struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// Login checks the submitted credential and persists the session entry on
// success. The session carries a fresh token so a later login is
// distinguishable from the previous one.
func (p *Panel) Login(creds Credentials, email, password string) (types.Session, error) {
	if email == "" || password == "" || email != creds.Email || password != creds.Password {
		p.notify.Notify("email ou mot de passe incorrect", types.SeverityError)
		return types.Session{}, types.ErrInvalidCredentials
	}
	name := creds.Name
	if name == "" {
		name = email
	}
	role := creds.Role
	if role == "" {
		role = types.RoleAdmin
	}
	sess := types.Session{
		Name:  name,
		Role:  role,
		Email: email,
		Token: uuid.NewString(),
	}
	if err := store.WriteObject(p.store, types.KeySession, sess); err != nil {
		return types.Session{}, err
	}
	p.notify.Notify(fmt.Sprintf("connecté en tant que %s", sess.Name), types.SeveritySuccess)
	return sess, nil
}

// Logout removes the session entry. Logging out while logged out is fine.
func (p *Panel) Logout() error {
	return p.store.Delete(types.KeySession)
}

// CurrentSession returns the persisted session, or nil when logged out.
func (p *Panel) CurrentSession() (*types.Session, error) {
	return store.ReadObject[types.Session](p.store, types.KeySession)
}

// RequireRole is the authentication guard: it yields the session when one
// exists and its role is among those allowed, and halts the operation
// otherwise. With no roles given, any authenticated session passes.
func (p *Panel) RequireRole(roles ...string) (*types.Session, error) {
	sess, err := p.CurrentSession()
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, types.ErrNotAuthenticated
	}
	if len(roles) == 0 {
		return sess, nil
	}
	for _, r := range roles {
		if sess.Role == r {
			return sess, nil
		}
	}
	return nil, fmt.Errorf("%w: role %s not allowed", types.ErrNotAuthenticated, sess.Role)
}
