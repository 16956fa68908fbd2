package service

import "errors"

var (
	// ErrNilDataset is returned when a computation is requested without
	// a loaded dataset.
	ErrNilDataset = errors.New("nil dataset")

	// ErrPartyMismatch is returned when a delta is requested between
	// actions belonging to different parties.
	ErrPartyMismatch = errors.New("actions belong to different parties")
)
