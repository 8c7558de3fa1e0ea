package store

import "errors"

var (
	// ErrInvalidReference rejects a whole batch whose facility or actor
	// does not exist.
	ErrInvalidReference = errors.New("unknown facility or actor reference")

	// ErrFacilityNotFound - facility lookup miss
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrUserNotFound - user lookup miss
	ErrUserNotFound = errors.New("user not found")

	// ErrAlertNotFound - alert lookup miss
	ErrAlertNotFound = errors.New("alert not found")

	// ErrEmptyCatalogName rejects catalog resolution for a blank name.
	ErrEmptyCatalogName = errors.New("empty catalog entity name")
)
