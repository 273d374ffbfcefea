// Package mcp provides an MCP (Model Context Protocol) server adapter for faqdesk.
// It lets AI assistants ask FAQ questions through the resolution pipeline.
package mcp

import "errors"

// ErrMissingResolver is returned when the resolver service is not provided.
var ErrMissingResolver = errors.New("mcp: resolver service is required")

// ErrMissingCorpus is returned when the corpus service is not provided.
var ErrMissingCorpus = errors.New("mcp: corpus service is required")

// ErrUnknownChoice is returned when choose receives an unsupported choice.
var ErrUnknownChoice = errors.New("mcp: unknown choice")
