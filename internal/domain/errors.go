package domain

import "errors"

// ErrUnauthorized is returned by document store backends when the store rejects an
// operation because the configured credentials lack the required privileges.
var ErrUnauthorized = errors.New("document store: unauthorized")
