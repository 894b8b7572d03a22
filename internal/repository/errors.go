// Package repository implements the database access layer for the customer
// backend. Every query is parameterized; no SQL is ever built from request
// input by string interpolation.
package repository

import "errors"

// ErrNotFound is returned when a by-id lookup, update or delete matches no
// row. Handlers translate it to a 404 response; any other repository error
// is treated as an internal failure.
var ErrNotFound = errors.New("no matching row")
