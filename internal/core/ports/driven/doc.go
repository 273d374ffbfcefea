// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CorpusSource: Supplies the compiled-in FAQ groups and quick templates
//   - CacheSlot: Holds the serialised answer cache under one named slot
//   - Answerer: Sends a question to the remote answer service
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Clipboard: Copies answers. Without it, copy actions report unavailable.
//   - URLOpener: Opens mailto links. Without it, the link is only printed.
package driven
