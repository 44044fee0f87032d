package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courierworks/glovoadmin/pkg/query"
	"github.com/courierworks/glovoadmin/pkg/types"
)

func TestCreateUser(t *testing.T) {
	p, notify := newTestPanel(t)

	u, err := p.CreateUser(types.User{Name: "Karim", Email: "karim@x.ma", Role: types.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, 1, u.ID)
	assert.Equal(t, types.UserActive, u.Status, "status defaults to Actif")
	assert.Equal(t, types.Today(), u.CreatedAt)

	_, sev := notify.last()
	assert.Equal(t, types.SeveritySuccess, sev)

	t.Run("ids increment", func(t *testing.T) {
		u2, err := p.CreateUser(types.User{Name: "Salma", Email: "salma@x.ma", Role: types.RoleLivreur})
		require.NoError(t, err)
		assert.Equal(t, 2, u2.ID)
	})

	t.Run("invalid user aborts with no state change", func(t *testing.T) {
		_, err := p.CreateUser(types.User{Email: "no-name@x.ma", Role: types.RoleAdmin})
		assert.ErrorIs(t, err, types.ErrMissingField)

		_, sev := notify.last()
		assert.Equal(t, types.SeverityError, sev)

		page, err := p.Users(query.State{})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total, "nothing was appended")
	})
}

func TestUpdateUserReplacesAllFields(t *testing.T) {
	p, _ := newTestPanel(t)

	created, err := p.CreateUser(types.User{Name: "Karim", Email: "karim@x.ma", Role: types.RoleAdmin})
	require.NoError(t, err)

	// The form submits the full field set; the stored record is replaced.
	updated, err := p.UpdateUser(created.ID, types.User{
		Name:   "Karim Alaoui",
		Email:  "karim.alaoui@x.ma",
		Role:   types.RoleManager,
		Status: types.UserInactive,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "id is immutable")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "creation date is immutable")
	assert.Equal(t, "Karim Alaoui", updated.Name)
	assert.Equal(t, types.RoleManager, updated.Role)
	assert.Equal(t, types.UserInactive, updated.Status)

	stored, err := p.User(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateUserNotFound(t *testing.T) {
	p, notify := newTestPanel(t)

	_, err := p.UpdateUser(42, types.User{Name: "X", Email: "x@x.ma", Role: types.RoleAdmin, Status: types.UserActive})
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, sev := notify.last()
	assert.Equal(t, types.SeverityWarning, sev)
}

func TestUsersListPipeline(t *testing.T) {
	p, _ := newTestPanel(t)

	for _, u := range []types.User{
		{Name: "Karim", Email: "karim@x.ma", Role: types.RoleAdmin},
		{Name: "Youssef", Email: "youssef@x.ma", Role: types.RoleLivreur},
		{Name: "Salma", Email: "salma@x.ma", Role: types.RoleLivreur},
	} {
		_, err := p.CreateUser(u)
		require.NoError(t, err)
	}

	t.Run("filter by role", func(t *testing.T) {
		page, err := p.Users(query.State{Filters: map[string]string{"role": types.RoleLivreur}})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("search by name substring", func(t *testing.T) {
		page, err := p.Users(query.State{Search: "youss"})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		assert.Equal(t, "Youssef", page.Records[0].Name)
	})

	t.Run("sort by name", func(t *testing.T) {
		page, err := p.Users(query.State{SortColumn: "name"})
		require.NoError(t, err)
		require.Len(t, page.Records, 3)
		assert.Equal(t, "Karim", page.Records[0].Name)
		assert.Equal(t, "Salma", page.Records[1].Name)
		assert.Equal(t, "Youssef", page.Records[2].Name)
	})

	t.Run("empty collection lists fine", func(t *testing.T) {
		fresh, _ := newTestPanel(t)
		page, err := fresh.Users(query.State{})
		require.NoError(t, err)
		assert.Zero(t, page.Total)
		assert.Empty(t, page.Records)
	})
}
