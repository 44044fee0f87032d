package admin

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/courierworks/glovoadmin/pkg/store"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// ClientUnknown is the display placeholder substituted for an unresolvable
// client reference. It is never surfaced as an error.
const ClientUnknown = "Client inconnu"

// LookupClientName resolves a client id into its name and reports whether
// the reference resolved. Callers that only need something to display
// should use ClientDisplayName instead.
func (p *Panel) LookupClientName(id int) (string, bool, error) {
	records, err := store.ReadCollection[types.Client](p.store, types.CollectionClients)
	if err != nil {
		return "", false, err
	}
	i := findIndex(records, id)
	if i < 0 {
		return "", false, nil
	}
	return records[i].Name, true, nil
}

// ClientDisplayName resolves a client id for display, falling back to the
// placeholder on a miss or a read failure.
func (p *Panel) ClientDisplayName(id int) string {
	name, found, err := p.LookupClientName(id)
	if err != nil || !found {
		return ClientUnknown
	}
	return name
}

// DriverCandidates returns the users holding the courier role, for the
// delivery-assignment choices. Order follows the collection.
func (p *Panel) DriverCandidates() ([]types.User, error) {
	records, err := store.ReadCollection[types.User](p.store, types.CollectionUsers)
	if err != nil {
		return nil, err
	}
	drivers := make([]types.User, 0, len(records))
	for _, u := range records {
		if u.Role == types.RoleLivreur {
			drivers = append(drivers, u)
		}
	}
	return drivers, nil
}

// OrderChoice is one entry of the delivery-assignment picker: the order id
// plus a label combining the client display name and the amount.
type OrderChoice struct {
	OrderID    int
	ClientName string
	Amount     float64
	Label      string
}

// OrderChoices lists the orders as assignment choices, sorted by client
// display name ascending with locale-aware, case-insensitive comparison.
// The choices are a read-only snapshot; they are not kept consistent with
// later edits.
func (p *Panel) OrderChoices() ([]OrderChoice, error) {
	records, err := store.ReadCollection[types.Order](p.store, types.CollectionOrders)
	if err != nil {
		return nil, err
	}
	choices := make([]OrderChoice, 0, len(records))
	for _, o := range records {
		name := o.ClientName
		if name == "" {
			name = ClientUnknown
		}
		choices = append(choices, OrderChoice{
			OrderID:    o.ID,
			ClientName: name,
			Amount:     o.Amount,
			Label:      fmt.Sprintf("#%d - %s (%.2f)", o.ID, name, o.Amount),
		})
	}
	c := collate.New(language.French, collate.Loose)
	sort.SliceStable(choices, func(i, j int) bool {
		return c.CompareString(choices[i].ClientName, choices[j].ClientName) < 0
	})
	return choices, nil
}
