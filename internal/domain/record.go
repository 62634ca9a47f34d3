// Package domain contains the core data types for the namebook application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, view).
package domain

// MaxNameLength is the largest name, in characters, the records table accepts.
const MaxNameLength = 80

// Record is the single persisted entity: a name with a storage-assigned id.
// ID is assigned by the database on insert and never changes or gets reused.
type Record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
