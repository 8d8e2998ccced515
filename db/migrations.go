// Package db carries the SQL migrations as an embedded filesystem so the
// server and the test helpers apply the same schema regardless of the
// working directory they run from.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
