package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidate(t *testing.T) {
	valid := User{Name: "Karim", Email: "karim@example.com", Role: RoleAdmin, Status: UserActive}

	tests := []struct {
		name    string
		mutate  func(*User)
		wantErr error
	}{
		{name: "valid user", mutate: func(*User) {}},
		{name: "missing name", mutate: func(u *User) { u.Name = "" }, wantErr: ErrMissingField},
		{name: "missing email", mutate: func(u *User) { u.Email = "" }, wantErr: ErrMissingField},
		{name: "unknown role", mutate: func(u *User) { u.Role = "Superviseur" }, wantErr: ErrInvalidRole},
		{name: "unknown status", mutate: func(u *User) { u.Status = "Suspendu" }, wantErr: ErrInvalidUserStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.mutate(&u)
			err := u.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClientValidate(t *testing.T) {
	valid := Client{Name: "Amina", Email: "amina@example.com", Type: ClientParticulier}

	assert.NoError(t, valid.Validate())

	noType := valid
	noType.Type = ""
	assert.ErrorIs(t, noType.Validate(), ErrInvalidClientType)

	noName := valid
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), ErrMissingField)
}

func TestProductValidate(t *testing.T) {
	valid := Product{Name: "Tajine", Category: "Plats", Price: 65, Stock: 10}

	assert.NoError(t, valid.Validate())

	negPrice := valid
	negPrice.Price = -1
	assert.ErrorIs(t, negPrice.Validate(), ErrNegativePrice)

	negStock := valid
	negStock.Stock = -5
	assert.ErrorIs(t, negStock.Validate(), ErrNegativeStock)

	// Zero price and zero stock are allowed.
	free := valid
	free.Price = 0
	free.Stock = 0
	assert.NoError(t, free.Validate())
}

func TestDeliveryValidate(t *testing.T) {
	valid := Delivery{OrderID: 1, Driver: "Youssef", Status: DeliveryPending}

	assert.NoError(t, valid.Validate())

	noOrder := valid
	noOrder.OrderID = 0
	assert.ErrorIs(t, noOrder.Validate(), ErrMissingField)

	badStatus := valid
	badStatus.Status = "Perdue"
	assert.ErrorIs(t, badStatus.Validate(), ErrInvalidDelivery)
}

func TestOrderValidate(t *testing.T) {
	valid := Order{ClientID: 1, Products: "Couscous", Amount: 85, Status: OrderPending, PaymentStatus: PaymentPending}

	assert.NoError(t, valid.Validate())

	noClient := valid
	noClient.ClientID = 0
	assert.ErrorIs(t, noClient.Validate(), ErrMissingField)

	zeroAmount := valid
	zeroAmount.Amount = 0
	assert.ErrorIs(t, zeroAmount.Validate(), ErrMissingField)

	badStatus := valid
	badStatus.Status = "Expédiée"
	assert.ErrorIs(t, badStatus.Validate(), ErrInvalidOrderStatus)

	badPayment := valid
	badPayment.PaymentStatus = "Avoir"
	assert.ErrorIs(t, badPayment.Validate(), ErrInvalidPayment)
}

func TestNextID(t *testing.T) {
	t.Run("empty collection starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, NextID([]User{}))
	})

	t.Run("max plus one", func(t *testing.T) {
		users := []User{{ID: 1}, {ID: 2}, {ID: 3}}
		assert.Equal(t, 4, NextID(users))
	})

	t.Run("gaps are never refilled", func(t *testing.T) {
		// Record 2 was deleted; the next id is still past the max.
		users := []User{{ID: 1}, {ID: 3}}
		assert.Equal(t, 4, NextID(users))
	})

	t.Run("order of records does not matter", func(t *testing.T) {
		orders := []Order{{ID: 7}, {ID: 2}, {ID: 5}}
		assert.Equal(t, 8, NextID(orders))
	})
}

func TestOrderPatchApply(t *testing.T) {
	base := Order{
		ID:            3,
		ClientID:      1,
		ClientName:    "Amina Belkadi",
		Products:      "Couscous royal",
		Quantity:      1,
		Amount:        85,
		Status:        OrderPending,
		PaymentStatus: PaymentPending,
		Address:       "45 bd Zerktouni",
		CreatedAt:     "2024-04-13",
		Notes:         "sans épices",
	}

	t.Run("empty patch changes nothing", func(t *testing.T) {
		assert.Equal(t, base, OrderPatch{}.Apply(base))
	})

	t.Run("nil fields keep stored values", func(t *testing.T) {
		status := OrderDelivered
		payment := PaymentPaid
		got := OrderPatch{Status: &status, PaymentStatus: &payment}.Apply(base)

		assert.Equal(t, OrderDelivered, got.Status)
		assert.Equal(t, PaymentPaid, got.PaymentStatus)
		// Untouched fields survive, notes included.
		assert.Equal(t, "sans épices", got.Notes)
		assert.Equal(t, "Couscous royal", got.Products)
		assert.Equal(t, 3, got.ID)
		assert.Equal(t, "2024-04-13", got.CreatedAt)
	})

	t.Run("explicit empty string clears a field", func(t *testing.T) {
		empty := ""
		got := OrderPatch{Notes: &empty}.Apply(base)
		assert.Equal(t, "", got.Notes)
	})
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Config{Backend: BackendJSON}.Validate())
	require.NoError(t, Config{Backend: BackendSQLite, DataDir: "/tmp/x"}.Validate())

	assert.ErrorIs(t, Config{}.Validate(), ErrBackendEmpty)
	assert.ErrorIs(t, Config{Backend: "postgres"}.Validate(), ErrBackendUnknown)
}
