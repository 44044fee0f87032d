package admin

import (
	"fmt"

	"github.com/courierworks/glovoadmin/pkg/query"
	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Users runs the list pipeline over the users collection.
func (p *Panel) Users(st query.State) (query.Page[types.User], error) {
	records, err := store.ReadCollection[types.User](p.store, types.CollectionUsers)
	if err != nil {
		return query.Page[types.User]{}, err
	}
	return query.Run(records, st, UserColumns()), nil
}

// User returns one user by id.
func (p *Panel) User(id int) (types.User, error) {
	records, err := store.ReadCollection[types.User](p.store, types.CollectionUsers)
	if err != nil {
		return types.User{}, err
	}
	i := findIndex(records, id)
	if i < 0 {
		return types.User{}, fmt.Errorf("%w: user %d", types.ErrNotFound, id)
	}
	return records[i], nil
}

// CreateUser validates the user, allocates its id, stamps the creation
// date, and appends it to the collection.
func (p *Panel) CreateUser(u types.User) (types.User, error) {
	if u.Status == "" {
		u.Status = types.UserActive
	}
	if err := u.Validate(); err != nil {
		p.notifyInvalid(types.CollectionUsers, err)
		return types.User{}, err
	}
	records, err := store.ReadCollection[types.User](p.store, types.CollectionUsers)
	if err != nil {
		return types.User{}, err
	}
	u.ID = types.NextID(records)
	u.CreatedAt = types.Today()
	records = append(records, u)
	if err := store.WriteCollection(p.store, types.CollectionUsers, records); err != nil {
		return types.User{}, err
	}
	p.notify.Notify(fmt.Sprintf("user %d created", u.ID), types.SeveritySuccess)
	return u, nil
}

// UpdateUser replaces every field of the stored user except the id and the
// creation date; the user form always submits the full field set.
func (p *Panel) UpdateUser(id int, u types.User) (types.User, error) {
	if err := u.Validate(); err != nil {
		p.notifyInvalid(types.CollectionUsers, err)
		return types.User{}, err
	}
	records, err := store.ReadCollection[types.User](p.store, types.CollectionUsers)
	if err != nil {
		return types.User{}, err
	}
	i := findIndex(records, id)
	if i < 0 {
		p.notify.Notify(fmt.Sprintf("user %d not found", id), types.SeverityWarning)
		return types.User{}, fmt.Errorf("%w: user %d", types.ErrNotFound, id)
	}
	u.ID = id
	u.CreatedAt = records[i].CreatedAt
	records[i] = u
	if err := store.WriteCollection(p.store, types.CollectionUsers, records); err != nil {
		return types.User{}, err
	}
	p.notify.Notify(fmt.Sprintf("user %d updated", id), types.SeveritySuccess)
	return u, nil
}
