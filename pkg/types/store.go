package types

// Collection keys. Each collection value is a JSON array of records;
// KeySession and KeyCart hold a JSON object and a JSON array respectively.
const (
	CollectionUsers      = "users"
	CollectionClients    = "clients"
	CollectionProducts   = "products"
	CollectionOrders     = "orders"
	CollectionDeliveries = "deliveries"

	KeySession = "user"
	KeyCart    = "cart"
)

// Collections lists the entity collections in display order.
var Collections = []string{
	CollectionUsers,
	CollectionClients,
	CollectionProducts,
	CollectionOrders,
	CollectionDeliveries,
}

// Store is a synchronous key-value store of JSON-encoded values, one value
// per collection key. Read returns (nil, nil) when the key is absent;
// callers must not distinguish an absent key from an empty collection.
// Write replaces the value unconditionally. The store assumes a single
// writer; every write is last-writer-wins with no conflict detection.
type Store interface {
	// Read returns the raw JSON value stored under key, or nil if the key
	// has never been written.
	Read(key string) ([]byte, error)

	// Write persists the raw JSON value under key, replacing any previous
	// value.
	Write(key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases resources held by the store. Close is idempotent;
	// after Close, all operations return ErrStoreClosed.
	Close() error
}

// Record is implemented by every entity stored in a collection.
type Record interface {
	RecordID() int
}

// NextID returns the identifier for the next record in a collection:
// one greater than the highest existing id, or 1 for an empty collection.
// Ids are assigned once at creation and never reassigned. Not safe under
// concurrent writers; the store contract above rules those out.
func NextID[T Record](records []T) int {
	max := 0
	for _, r := range records {
		if id := r.RecordID(); id > max {
			max = id
		}
	}
	return max + 1
}
