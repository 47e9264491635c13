// Package hotel holds the booking session models and the errors shared by
// the catalog, registry, ledger and booking packages. Callers match the
// sentinels with errors.Is; every returned error wraps one of them with the
// room number or field that caused it.
package hotel

import "errors"

// ErrValidation is returned for out-of-range input such as an unknown room
// category, a duplicate room number or a non-positive number of nights.
var ErrValidation = errors.New("validation failed")

// ErrRoomUnavailable is returned when a requested room does not exist, is
// occupied or is under maintenance.
var ErrRoomUnavailable = errors.New("room not available")

// ErrNotFound is returned when a lookup by room number or meal name finds
// nothing, for example a checkout without an open reservation.
var ErrNotFound = errors.New("not found")
