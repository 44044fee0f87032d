package store

import (
	"encoding/json"
	"fmt"

	"github.com/courierworks/glovoadmin/pkg/types"
)

// ReadCollection decodes the JSON array stored under key into a typed
// slice. An absent key reads as an empty collection. A value that does not
// decode fails the read with ErrCorruptData rather than cascading silently.
func ReadCollection[T any](s types.Store, key string) ([]T, error) {
	raw, err := s.Read(key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrCorruptData, key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// WriteCollection encodes the records as a JSON array and persists them
// under key. A nil slice is written as an empty array, never as null.
func WriteCollection[T any](s types.Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.Write(key, raw)
}

// ReadObject decodes the JSON object stored under key, returning nil when
// the key is absent.
func ReadObject[T any](s types.Store, key string) (*T, error) {
	raw, err := s.Read(key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrCorruptData, key, err)
	}
	return &v, nil
}

// WriteObject encodes a single JSON object under key.
func WriteObject[T any](s types.Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.Write(key, raw)
}
