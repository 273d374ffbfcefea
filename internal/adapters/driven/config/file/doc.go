// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem under ~/.faqdesk.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage, with live reload
//   - LoadDotEnv: optional .env loading for remote service overrides
package file
