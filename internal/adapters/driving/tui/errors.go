package tui

import "errors"

// ErrMissingResolver is returned when the resolver service is not provided.
var ErrMissingResolver = errors.New("tui: resolver service is required")

// ErrMissingCorpus is returned when the corpus service is not provided.
var ErrMissingCorpus = errors.New("tui: corpus service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
