package storagefee

import "errors"

// ErrInsufficientFunds indicates the funded storage does not cover the
// estimated cost of the new records.
var ErrInsufficientFunds = errors.New("storagefee: insufficient funds")
