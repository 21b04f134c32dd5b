// Package validator implements lint-style checks over a parsed MSL program.
//
// The parser enforces the grammar; the validator catches configurations that
// are grammatically fine but almost certainly wrong: properties with empty
// names, duplicate property names inside one log body, and log levels
// outside the conventional set. It is deliberately not a schema validator —
// the language is small and the parser already rejects unknown constructs.
//
// Checks run over the whole tree and accumulate into an errors.ErrorList, so
// a single run reports every finding. Strict mode promotes the advisory
// checks (duplicate properties, unconventional levels) to errors; without it
// only the always-wrong cases fail.
package validator
