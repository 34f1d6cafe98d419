// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Repositories are stateless: each one is bound to the database session
// of the current request and is discarded with it.
package repository

import "errors"

// ErrNotFound is returned by point lookups that match no row.
var ErrNotFound = errors.New("record not found")
