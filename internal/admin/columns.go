package admin

import (
	"strconv"

	"github.com/courierworks/glovoadmin/pkg/query"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Column sets per entity. Getters return display strings; numeric columns
// expose their decimal representation so that free-text search over them
// uses string-contains semantics, not numeric comparison.

// UserColumns describes the users list.
func UserColumns() query.Columns[types.User] {
	return query.Columns[types.User]{
		Fields: map[string]query.Getter[types.User]{
			"id":        func(u types.User) string { return strconv.Itoa(u.ID) },
			"name":      func(u types.User) string { return u.Name },
			"email":     func(u types.User) string { return u.Email },
			"role":      func(u types.User) string { return u.Role },
			"status":    func(u types.User) string { return u.Status },
			"createdAt": func(u types.User) string { return u.CreatedAt },
		},
		Search: []string{"name", "email"},
	}
}

// ClientColumns describes the clients list.
func ClientColumns() query.Columns[types.Client] {
	return query.Columns[types.Client]{
		Fields: map[string]query.Getter[types.Client]{
			"id":        func(c types.Client) string { return strconv.Itoa(c.ID) },
			"name":      func(c types.Client) string { return c.Name },
			"email":     func(c types.Client) string { return c.Email },
			"phone":     func(c types.Client) string { return c.Phone },
			"city":      func(c types.Client) string { return c.City },
			"type":      func(c types.Client) string { return c.Type },
			"createdAt": func(c types.Client) string { return c.CreatedAt },
		},
		Search: []string{"name", "email"},
	}
}

// ProductColumns describes the products list.
func ProductColumns() query.Columns[types.Product] {
	return query.Columns[types.Product]{
		Fields: map[string]query.Getter[types.Product]{
			"id":        func(p types.Product) string { return strconv.Itoa(p.ID) },
			"name":      func(p types.Product) string { return p.Name },
			"category":  func(p types.Product) string { return p.Category },
			"price":     func(p types.Product) string { return strconv.FormatFloat(p.Price, 'f', -1, 64) },
			"stock":     func(p types.Product) string { return strconv.Itoa(p.Stock) },
			"supplier":  func(p types.Product) string { return p.Supplier },
			"available": func(p types.Product) string { return strconv.FormatBool(p.Available) },
		},
		Search: []string{"name", "supplier"},
	}
}

// OrderColumns describes the orders list. Searching "12" matches order 12
// as well as order 112.
func OrderColumns() query.Columns[types.Order] {
	return query.Columns[types.Order]{
		Fields: map[string]query.Getter[types.Order]{
			"id":            func(o types.Order) string { return strconv.Itoa(o.ID) },
			"clientId":      func(o types.Order) string { return strconv.Itoa(o.ClientID) },
			"clientName":    func(o types.Order) string { return o.ClientName },
			"products":      func(o types.Order) string { return o.Products },
			"quantity":      func(o types.Order) string { return strconv.Itoa(o.Quantity) },
			"amount":        func(o types.Order) string { return strconv.FormatFloat(o.Amount, 'f', -1, 64) },
			"status":        func(o types.Order) string { return o.Status },
			"paymentStatus": func(o types.Order) string { return o.PaymentStatus },
			"address":       func(o types.Order) string { return o.Address },
			"createdAt":     func(o types.Order) string { return o.CreatedAt },
		},
		Search: []string{"id", "clientName", "products"},
	}
}

// DeliveryColumns describes the deliveries list.
func DeliveryColumns() query.Columns[types.Delivery] {
	return query.Columns[types.Delivery]{
		Fields: map[string]query.Getter[types.Delivery]{
			"id":        func(d types.Delivery) string { return strconv.Itoa(d.ID) },
			"orderId":   func(d types.Delivery) string { return strconv.Itoa(d.OrderID) },
			"driver":    func(d types.Delivery) string { return d.Driver },
			"address":   func(d types.Delivery) string { return d.Address },
			"status":    func(d types.Delivery) string { return d.Status },
			"duration":  func(d types.Delivery) string { return strconv.Itoa(d.Duration) },
			"createdAt": func(d types.Delivery) string { return d.CreatedAt },
		},
		Search: []string{"id", "driver", "address"},
	}
}
