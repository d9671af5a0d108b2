// Package migrations embeds the SQL migration files so the binary carries its
// own schema history.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
