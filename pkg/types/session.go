package types

// Session is the authenticated user entry persisted under KeySession.
// Absent means not logged in.
type Session struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// CartItem is one line of the public-facing shopping cart persisted under
// KeyCart. The cart is unrelated to the admin collections.
type CartItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
