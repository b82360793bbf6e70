// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "errors"

// ErrNotFound is returned when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// ErrDuplicateKey is returned when an insert violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrWriteConflict is returned when a concurrent transaction touched the same documents.
var ErrWriteConflict = errors.New("write conflict")
