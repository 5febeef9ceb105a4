// Package migrations embeds the SQL schema so the migrate command ships as
// a single binary.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
