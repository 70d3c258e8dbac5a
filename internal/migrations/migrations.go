// Package migrations embeds the ordered SQL migration steps applied by goose
// when the vault database is opened. New schema changes are added as new
// numbered files, never by editing applied ones.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
