package service

import "errors"

var (
	// ErrMalformedPatch marks a patch operation referencing an unsupported
	// op, path or value type. The whole document is rejected.
	ErrMalformedPatch = errors.New("malformed patch operation")
)
