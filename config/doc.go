// Package config loads the numeric policy of the engine from a YAML file
// and optional dotenv overrides, and turns it into []matrix.Option.
//
// The engine itself never reads files or the environment; config is the one
// place where I/O happens, so callers configure once and pass Options() to
// every kernel (or to linalg.NewEngine).
package config
