// Package migrations embeds the goose SQL migrations so binaries and tests
// apply the same schema.
package migrations

import "embed"

// FS holds every *.sql migration file.
//
//go:embed *.sql
var FS embed.FS
