package models

import "errors"

// Sentinel errors shared by the remote clients and the migration logic.
var (
	// ErrNotFound reports that a target entity does not exist. Lookups use
	// it to decide create-vs-update; deletes treat it as success.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict reports a duplicate (e.g. adding a PSTN usage name that is
	// already in the target's global list).
	ErrConflict = errors.New("entity already exists")
)
