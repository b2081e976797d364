package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores, clients, and parsers return
// these (optionally wrapped) so services can translate them into degraded
// results or caller errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in a store or external source
// - ErrUnavailable: external source temporarily unreachable or non-success
// - ErrMalformed: payload could not be decoded as its declared format
//
// ErrInvalidArgument is the one caller-facing contract error: it marks a
// caller bug (unknown body, unnamed feature), never an environmental state.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("unavailable")
	ErrMalformed       = errors.New("malformed")
	ErrInvalidArgument = errors.New("invalid argument")
)
