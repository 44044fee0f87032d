// End-to-end admin panel scenarios driven through the CLI.
package integration

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// user mirrors the CLI's JSON output for a user record.
type user struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// order mirrors the CLI's JSON output for an order record.
type order struct {
	ID            int     `json:"id"`
	ClientID      int     `json:"clientId"`
	ClientName    string  `json:"clientName"`
	Products      string  `json:"products"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	Notes         string  `json:"notes"`
}

// page mirrors the CLI's JSON output for a list pipeline result.
type page[T any] struct {
	Records []T
	Total   int
}

// stats mirrors the CLI's JSON output for the dashboard KPIs.
type stats struct {
	Users      int            `json:"users"`
	Orders     int            `json:"orders"`
	Revenue    float64        `json:"revenue"`
	ByStatus   map[string]int `json:"ordersByStatus"`
	Deliveries int            `json:"deliveries"`
}

func TestUserLifecycle(t *testing.T) {
	env := NewTestEnv(t, "json")

	// Create three users.
	for i, role := range []string{"Admin", "Livreur", "Livreur"} {
		env.MustRun("user", "add",
			"--name", fmt.Sprintf("User %d", i+1),
			"--email", fmt.Sprintf("u%d@x.ma", i+1),
			"--role", role)
	}

	t.Run("list with role filter", func(t *testing.T) {
		result := env.MustRun("--json", "user", "list", "--role", "Livreur")
		p := ParseJSON[page[user]](t, result.Stdout)
		assert.Equal(t, 2, p.Total)
	})

	t.Run("update replaces fields but keeps id and date", func(t *testing.T) {
		before := ParseJSON[user](t, env.MustRun("--json", "user", "get", "1").Stdout)

		result := env.MustRun("--json", "user", "update", "1",
			"--name", "Renamed", "--email", "renamed@x.ma", "--role", "Manager", "--status", "Inactif")
		after := ParseJSON[user](t, result.Stdout)

		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, before.CreatedAt, after.CreatedAt)
		assert.Equal(t, "Renamed", after.Name)
		assert.Equal(t, "Manager", after.Role)
	})

	t.Run("invalid role exits with user error", func(t *testing.T) {
		result := env.Run("user", "add", "--name", "X", "--email", "x@x.ma", "--role", "Superviseur")
		assert.Equal(t, 1, result.ExitCode)
	})

	t.Run("delete without --yes keeps the record", func(t *testing.T) {
		env.MustRun("user", "delete", "2")
		result := env.MustRun("--json", "user", "list")
		p := ParseJSON[page[user]](t, result.Stdout)
		assert.Equal(t, 3, p.Total)
	})

	t.Run("delete with --yes removes it", func(t *testing.T) {
		env.MustRun("user", "delete", "2", "--yes")
		result := env.MustRun("--json", "user", "list")
		p := ParseJSON[page[user]](t, result.Stdout)
		assert.Equal(t, 2, p.Total)

		get := env.Run("user", "get", "2")
		assert.Equal(t, 1, get.ExitCode)
	})

	t.Run("ids are never reused after a delete", func(t *testing.T) {
		result := env.MustRun("--json", "user", "add", "--name", "New", "--email", "new@x.ma", "--role", "Client")
		u := ParseJSON[user](t, result.Stdout)
		assert.Equal(t, 4, u.ID)
	})
}

func TestOrderPatchLifecycle(t *testing.T) {
	env := NewTestEnv(t, "json")

	env.MustRun("client", "add", "--name", "Amina Belkadi", "--email", "amina@x.ma")

	created := ParseJSON[order](t, env.MustRun("--json", "order", "add",
		"--client", "1", "--products", "Couscous royal", "--quantity", "1",
		"--amount", "85", "--notes", "sans épices").Stdout)
	require.Equal(t, "Amina Belkadi", created.ClientName)
	require.Equal(t, "En attente", created.Status)

	t.Run("status-only patch preserves notes", func(t *testing.T) {
		updated := ParseJSON[order](t, env.MustRun("--json", "order", "update", "1",
			"--status", "Livrée", "--payment", "Payée").Stdout)

		assert.Equal(t, "Livrée", updated.Status)
		assert.Equal(t, "Payée", updated.PaymentStatus)
		assert.Equal(t, "sans épices", updated.Notes)
		assert.Equal(t, "Couscous royal", updated.Products)
	})

	t.Run("unknown client snapshot falls back", func(t *testing.T) {
		o := ParseJSON[order](t, env.MustRun("--json", "order", "add",
			"--client", "99", "--products", "Thé", "--amount", "12").Stdout)
		assert.Equal(t, "Client inconnu", o.ClientName)
	})

	t.Run("search matches the order id", func(t *testing.T) {
		result := env.MustRun("--json", "order", "list", "--search", "2")
		p := ParseJSON[page[order]](t, result.Stdout)
		require.Equal(t, 1, p.Total)
		assert.Equal(t, 2, p.Records[0].ID)
	})
}

func TestStatsRevenue(t *testing.T) {
	env := NewTestEnv(t, "json")

	env.MustRun("client", "add", "--name", "Amina", "--email", "a@x.ma")
	env.MustRun("order", "add", "--client", "1", "--products", "a", "--amount", "5")
	env.MustRun("order", "add", "--client", "1", "--products", "b", "--amount", "15")
	env.MustRun("order", "add", "--client", "1", "--products", "c", "--amount", "20", "--status", "Annulée")

	s := ParseJSON[stats](t, env.MustRun("--json", "stats").Stdout)
	assert.Equal(t, 3, s.Orders)
	assert.Equal(t, 20.0, s.Revenue)
	assert.Equal(t, 1, s.ByStatus["Annulée"])
}

func TestSessionLifecycle(t *testing.T) {
	env := NewTestEnv(t, "json")

	t.Run("whoami while logged out fails", func(t *testing.T) {
		result := env.Run("whoami")
		assert.Equal(t, 1, result.ExitCode)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		result := env.Run("login", "--email", "admin@glovoadmin.ma", "--password", "wrong")
		assert.Equal(t, 1, result.ExitCode)
	})

	t.Run("login then whoami then logout", func(t *testing.T) {
		env.MustRun("login", "--email", "admin@glovoadmin.ma", "--password", "admin123")

		result := env.MustRun("whoami")
		assert.True(t, strings.Contains(result.Stdout, "Administrateur"), "whoami output: %s", result.Stdout)

		env.MustRun("logout")
		after := env.Run("whoami")
		assert.Equal(t, 1, after.ExitCode)
	})
}

func TestSeedAndDeliveryFlow(t *testing.T) {
	env := NewTestEnv(t, "json")

	env.MustRun("seed")

	s := ParseJSON[stats](t, env.MustRun("--json", "stats").Stdout)
	assert.Equal(t, 5, s.Users)
	assert.Equal(t, 3, s.Deliveries)

	t.Run("seed twice does not duplicate", func(t *testing.T) {
		env.MustRun("seed")
		again := ParseJSON[stats](t, env.MustRun("--json", "stats").Stdout)
		assert.Equal(t, s.Users, again.Users)
	})

	t.Run("drivers are the courier-role users", func(t *testing.T) {
		result := env.MustRun("--json", "delivery", "drivers")
		drivers := ParseJSON[[]user](t, result.Stdout)
		require.Len(t, drivers, 3)
		for _, d := range drivers {
			assert.Equal(t, "Livreur", d.Role)
		}
	})

	t.Run("delivery copies the order address", func(t *testing.T) {
		result := env.MustRun("--json", "delivery", "add", "--order", "3", "--driver", "Salma Idrissi")
		d := ParseJSON[struct {
			Address string `json:"address"`
		}](t, result.Stdout)
		assert.NotEmpty(t, d.Address)
	})
}
