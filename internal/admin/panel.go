// Package admin implements the admin panel behind the CLI: the per-entity
// form controllers (create, update, two-phase delete), the list pipeline
// wiring, cross-entity join helpers, session handling, the shopping cart,
// and the dashboard KPIs. All reads and writes go through the Store; every
// mutation re-reads the collection, changes it in memory, and writes the
// whole collection back.
package admin

import (
	"encoding/json"
	"fmt"

	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Panel is the admin panel over one store. It also owns the per-collection
// pending-deletion mark used by the two-phase delete flow; the mark lives
// in memory only, mirroring page-level view state.
type Panel struct {
	store   types.Store
	notify  types.Notifier
	pending map[string]int
}

// NewPanel creates a Panel over the given store. A nil notifier discards
// notifications.
func NewPanel(st types.Store, notify types.Notifier) *Panel {
	if notify == nil {
		notify = types.NopNotifier{}
	}
	return &Panel{
		store:   st,
		notify:  notify,
		pending: make(map[string]int),
	}
}

// RequestDelete marks a record for deletion. The record is not touched
// until ConfirmDelete is called with the same collection and id.
func (p *Panel) RequestDelete(collection string, id int) {
	p.pending[collection] = id
}

// PendingDelete returns the id currently marked for deletion in a
// collection, if any.
func (p *Panel) PendingDelete(collection string) (int, bool) {
	id, ok := p.pending[collection]
	return id, ok
}

// CancelDelete clears the pending-deletion mark for a collection.
func (p *Panel) CancelDelete(collection string) {
	delete(p.pending, collection)
}

// ConfirmDelete completes a two-phase delete: the id must match the mark
// set by RequestDelete. Exactly one record is removed; the rest keep their
// relative order byte for byte. Deleting an id that no longer exists
// leaves the collection unchanged.
func (p *Panel) ConfirmDelete(collection string, id int) error {
	want, ok := p.pending[collection]
	if !ok || want != id {
		return types.ErrNoPendingDelete
	}
	delete(p.pending, collection)

	records, err := store.ReadCollection[json.RawMessage](p.store, collection)
	if err != nil {
		return err
	}
	idx := -1
	for i, raw := range records {
		var probe struct {
			ID int `json:"id"`
		}
		if json.Unmarshal(raw, &probe) == nil && probe.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		p.notify.Notify(fmt.Sprintf("%s: record %d not found", collection, id), types.SeverityWarning)
		return fmt.Errorf("%w: %s %d", types.ErrNotFound, collection, id)
	}
	records = append(records[:idx], records[idx+1:]...)
	if err := store.WriteCollection(p.store, collection, records); err != nil {
		return err
	}
	p.notify.Notify(fmt.Sprintf("%s: record %d deleted", collection, id), types.SeveritySuccess)
	return nil
}

// findIndex locates a record by id with a linear scan, -1 when absent.
func findIndex[T types.Record](records []T, id int) int {
	for i, r := range records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// notifyInvalid reports a validation failure. The triggering operation
// aborts with no state change.
func (p *Panel) notifyInvalid(collection string, err error) {
	p.notify.Notify(fmt.Sprintf("%s: %v", collection, err), types.SeverityError)
}
