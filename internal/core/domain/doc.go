// Package domain defines the core business entities for faqdesk.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FaqGroup: A static question/answer group compiled into the binary
//   - CacheEntry: A previously answered question persisted locally
//   - Resolution: The explicit state of the answer-resolution pipeline
//   - AppSettings: Thresholds, remote service and cache configuration
//   - OfficeMail: A pre-filled message to the programme office
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
