package storage

import "errors"

var (
	// ErrChecksumMismatch indicates stored matrix files that no longer match
	// the checksum recorded when the run was saved.
	ErrChecksumMismatch = errors.New("storage: checksum mismatch")

	// ErrInvalidRunID indicates an id that is not a run UUID.
	ErrInvalidRunID = errors.New("storage: invalid run id")

	// ErrRunNotFound indicates an unknown run.
	ErrRunNotFound = errors.New("storage: run not found")
)
