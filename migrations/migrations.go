// Package migrations embeds the schema migration files so the migration
// binary does not depend on its working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
