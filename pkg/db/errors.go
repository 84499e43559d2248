// Package errors pkg/db/errors.go provides errors for the db package.

package db

import "errors"

var (
	ErrFailedOpenDB      = errors.New("failed to open database")
	ErrFailedToInit      = errors.New("failed to initialize schema")
	ErrFailedToEnableWAL = errors.New("failed to enable WAL mode")
	ErrFailedToBeginTx   = errors.New("failed to begin transaction")
	ErrFailedToInsert    = errors.New("failed to insert")
	ErrFailedToQuery     = errors.New("failed to query")
	ErrFailedToScan      = errors.New("failed to scan")
	ErrFailedToUpdate    = errors.New("failed to update")
	ErrFailedToDelete    = errors.New("failed to delete")

	// ErrDeviceNotFound is returned by lookups for an unknown device IP.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrJobNotFound is returned by job lookups for an unknown id.
	ErrJobNotFound = errors.New("job not found")
)
