// Package store provides the public factory for opening a Store backend
// from a Config, plus typed helpers for reading and writing whole
// collections. Implementation details stay in the internal backends.
package store

import (
	"github.com/courierworks/glovoadmin/internal/jsonstore"
	"github.com/courierworks/glovoadmin/internal/sqlitestore"
	"github.com/courierworks/glovoadmin/pkg/types"
)

// Open validates the config and opens the selected backend.
//
// Example:
//
//	st, err := store.Open(types.Config{
//	    Backend: types.BackendJSON,
//	    DataDir: ".glovoadmin-db",
//	})
//	defer st.Close()
func Open(cfg types.Config) (types.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case types.BackendSQLite:
		return sqlitestore.Open(cfg)
	default:
		return jsonstore.Open(cfg)
	}
}
