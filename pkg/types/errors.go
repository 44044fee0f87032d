package types

import "errors"

// Store operation errors.
var (
	ErrNotFound        = errors.New("record not found")
	ErrCollectionEmpty = errors.New("collection name must not be empty")
	ErrCorruptData     = errors.New("stored data is corrupt")
	ErrStoreClosed     = errors.New("store is closed")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// Entity validation errors. Validate methods wrap ErrMissingField with the
// field name; enum errors are returned as-is.
var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidUserStatus  = errors.New("invalid user status")
	ErrInvalidClientType  = errors.New("invalid client type")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidPayment     = errors.New("invalid payment status")
	ErrInvalidDelivery    = errors.New("invalid delivery status")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrNegativeStock      = errors.New("stock must not be negative")
	ErrNoPendingDelete    = errors.New("no deletion pending for this record")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
)
