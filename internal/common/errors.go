package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Journal errors.
	ErrEmptyEntry   = errors.New("entry has neither title nor content")
	ErrAmbiguousRef = errors.New("ambiguous entry reference")

	// Configuration errors.
	ErrInvalidViewMode         = errors.New("invalid view mode")
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
