// Package migrations embeds the SQL schema migrations so the server
// binary can apply them without a separate migration artifact.
package migrations

import "embed"

// FS holds the embedded goose migration files.
//
//go:embed *.sql
var FS embed.FS
