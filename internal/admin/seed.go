package admin

import (
	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Seed populates every empty collection with demo data so a fresh install
// has something to show. Collections that already hold records are left
// alone; Seed never overwrites.
func (p *Panel) Seed() error {
	if err := seedCollection(p, types.CollectionUsers, seedUsers); err != nil {
		return err
	}
	if err := seedCollection(p, types.CollectionClients, seedClients); err != nil {
		return err
	}
	if err := seedCollection(p, types.CollectionProducts, seedProducts); err != nil {
		return err
	}
	if err := seedCollection(p, types.CollectionOrders, seedOrders); err != nil {
		return err
	}
	if err := seedCollection(p, types.CollectionDeliveries, seedDeliveries); err != nil {
		return err
	}
	p.notify.Notify("demo data seeded", types.SeverityInfo)
	return nil
}

// seedCollection writes the seed records only when the collection is empty.
func seedCollection[T any](p *Panel, key string, records []T) error {
	existing, err := store.ReadCollection[T](p.store, key)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return store.WriteCollection(p.store, key, records)
}

var seedUsers = []types.User{
	{ID: 1, Name: "Karim Alaoui", Email: "karim@glovoadmin.ma", Role: types.RoleAdmin, Status: types.UserActive, CreatedAt: "2024-01-15"},
	{ID: 2, Name: "Youssef Benali", Email: "youssef@glovoadmin.ma", Role: types.RoleLivreur, Status: types.UserActive, CreatedAt: "2024-02-03"},
	{ID: 3, Name: "Salma Idrissi", Email: "salma@glovoadmin.ma", Role: types.RoleLivreur, Status: types.UserActive, CreatedAt: "2024-02-10"},
	{ID: 4, Name: "Nadia Berrada", Email: "nadia@glovoadmin.ma", Role: types.RoleManager, Status: types.UserActive, CreatedAt: "2024-03-21"},
	{ID: 5, Name: "Omar Tazi", Email: "omar@glovoadmin.ma", Role: types.RoleLivreur, Status: types.UserInactive, CreatedAt: "2024-04-02"},
}

var seedClients = []types.Client{
	{ID: 1, Name: "Amina Belkadi", Email: "amina@example.com", Phone: "0612345678", Address: "12 rue des Orangers", City: "Casablanca", Type: types.ClientParticulier, CreatedAt: "2024-01-20"},
	{ID: 2, Name: "Café Central", Email: "contact@cafecentral.ma", Phone: "0522334455", Address: "3 avenue Hassan II", City: "Rabat", Type: types.ClientEntreprise, CreatedAt: "2024-02-11"},
	{ID: 3, Name: "Hassan Moutaki", Email: "hassan.m@example.com", Phone: "0661122334", Address: "45 bd Zerktouni", City: "Casablanca", Type: types.ClientParticulier, CreatedAt: "2024-03-05"},
	{ID: 4, Name: "Épicerie du Port", Email: "port@epicerie.ma", Phone: "0539876543", Address: "7 quai de la Marine", City: "Tanger", Type: types.ClientEntreprise, CreatedAt: "2024-03-28"},
}

var seedProducts = []types.Product{
	{ID: 1, Name: "Tajine poulet citron", Category: "Plats", Price: 65, Stock: 40, Supplier: "Dar Cuisine", Available: true},
	{ID: 2, Name: "Couscous royal", Category: "Plats", Price: 85, Stock: 25, Supplier: "Dar Cuisine", Available: true},
	{ID: 3, Name: "Jus d'orange frais", Category: "Boissons", Price: 18, Stock: 120, Supplier: "Fruitière Atlas", Available: true},
	{ID: 4, Name: "Pastilla au poisson", Category: "Plats", Price: 95, Stock: 0, Supplier: "Dar Cuisine", Available: false},
	{ID: 5, Name: "Thé à la menthe", Category: "Boissons", Price: 12, Stock: 200, Supplier: "Maison du Thé", Available: true},
}

var seedOrders = []types.Order{
	{ID: 1, ClientID: 1, ClientName: "Amina Belkadi", Products: "Tajine poulet citron x2", Quantity: 2, Amount: 130, Status: types.OrderDelivered, PaymentStatus: types.PaymentPaid, Address: "12 rue des Orangers, Casablanca", CreatedAt: "2024-04-10"},
	{ID: 2, ClientID: 2, ClientName: "Café Central", Products: "Jus d'orange frais x20", Quantity: 20, Amount: 360, Status: types.OrderInTransit, PaymentStatus: types.PaymentPending, Address: "3 avenue Hassan II, Rabat", CreatedAt: "2024-04-12"},
	{ID: 3, ClientID: 3, ClientName: "Hassan Moutaki", Products: "Couscous royal", Quantity: 1, Amount: 85, Status: types.OrderPending, PaymentStatus: types.PaymentPending, Address: "45 bd Zerktouni, Casablanca", CreatedAt: "2024-04-13"},
	{ID: 4, ClientID: 1, ClientName: "Amina Belkadi", Products: "Thé à la menthe x3", Quantity: 3, Amount: 36, Status: types.OrderCancelled, PaymentStatus: types.PaymentRefunded, Address: "12 rue des Orangers, Casablanca", CreatedAt: "2024-04-14", Notes: "annulée par le client"},
}

var seedDeliveries = []types.Delivery{
	{ID: 1, OrderID: 1, Driver: "Youssef Benali", Address: "12 rue des Orangers, Casablanca", Status: types.DeliveryDelivered, Duration: 35, CreatedAt: "2024-04-10"},
	{ID: 2, OrderID: 2, Driver: "Salma Idrissi", Address: "3 avenue Hassan II, Rabat", Status: types.DeliveryInTransit, Duration: 0, CreatedAt: "2024-04-12"},
	{ID: 3, OrderID: 3, Driver: "Youssef Benali", Address: "45 bd Zerktouni, Casablanca", Status: types.DeliveryPending, Duration: 0, CreatedAt: "2024-04-13"},
}
