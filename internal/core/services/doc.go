// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Resolver owns the question routing pipeline; AnswerCache and
// CorpusService are the two local answer sources it consults before
// the remote answer service.
package services
