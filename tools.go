//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools are declared in the go.mod tool block:
// - github.com/matryer/moq (consumer-side interface mocks, see //go:generate lines in *_test.go)
// - github.com/pressly/goose/v3/cmd/goose (migrations/, also embedded into cmd/migrate)
