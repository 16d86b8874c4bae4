package model

import "errors"

// Error kinds are terminal for the current invocation; nothing is retried.
// Provider-reported errors are wrapped with their original message text
// preserved so diagnostics stay intact.
var (
	ErrInvalidDomain     = errors.New("invalid domain")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrZoneNotFound      = errors.New("zone not found")
	ErrNoMatchingRecords = errors.New("matching RRs not found")
	ErrDuplicateRecord   = errors.New("duplicate record")
	ErrBatchRejected     = errors.New("change batch rejected")
)
