// Package migrations embeds the schema so the server binary can migrate
// without the source tree.
package migrations

import _ "embed"

//go:embed create_tables.up.sql
var Up string

//go:embed create_tables.down.sql
var Down string
