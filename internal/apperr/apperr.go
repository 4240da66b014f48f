package apperr

import "errors"

// Sentinel errors handlers translate into 404 responses. Anything else coming
// up from the store layer is a 500.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// ErrStoreUnavailable marks failures to obtain a store connection, as opposed
// to a query that ran and failed. Handlers report the two differently.
var ErrStoreUnavailable = errors.New("store unavailable")
